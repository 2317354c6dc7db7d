// Package memcache is the in-memory cache.Store: a bounded LRU holding
// the process-lifetime corpus cache. It also serves as the test twin for
// the sqlite store.
package memcache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
)

// DefaultSize bounds the LRU when no size is given; corpora are few, so
// a small cache already holds every registry source.
const DefaultSize = 64

// Store is an LRU-bounded in-memory cache.Store.
type Store struct {
	lru *lru.Cache[string, cache.Entry]
}

// New creates a Store holding at most size entries. Size <= 0 means
// DefaultSize.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New[string, cache.Entry](size)
	if err != nil {
		return nil, err
	}
	return &Store{lru: l}, nil
}

// Get implements cache.Store.
func (s *Store) Get(ctx context.Context, key string) (cache.Entry, bool, error) {
	e, ok := s.lru.Get(key)
	if !ok {
		return cache.Entry{}, false, nil
	}
	return copyEntry(e), true, nil
}

// Put implements cache.Store.
func (s *Store) Put(ctx context.Context, key string, e cache.Entry) error {
	s.lru.Add(key, copyEntry(e))
	return nil
}

// Keys implements cache.Store.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	return s.lru.Keys(), nil
}

// Close implements cache.Store.
func (s *Store) Close() error {
	s.lru.Purge()
	return nil
}

// copyEntry detaches the word slice so callers cannot mutate cached data.
func copyEntry(e cache.Entry) cache.Entry {
	words := make([]string, len(e.Words))
	copy(words, e.Words)
	return cache.Entry{Words: words, FetchedAt: e.FetchedAt}
}
