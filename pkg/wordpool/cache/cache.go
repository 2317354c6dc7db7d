// Package cache defines the corpus cache contract shared by the in-memory
// and persistent implementations, plus the per-source error log.
package cache

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Entry is one cached corpus: the normalized word list and when it was
// fetched. Entries older than the freshness window are refetched.
type Entry struct {
	Words     []string
	FetchedAt time.Time
}

// Fresh reports whether the entry is still inside the freshness window
// at the given instant.
func (e Entry) Fresh(window time.Duration, now time.Time) bool {
	if e.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(e.FetchedAt) < window
}

// Store is a best-effort key-value cache of fetched corpora. A missing,
// corrupted or stale entry is never an error to the caller; it just means
// a network fetch. Implementations must keep each key independently and
// atomically replaceable (last writer wins on refresh).
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, e Entry) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Key derives the cache key for a corpus URL: the trailing path segment,
// which is stable across mirror hosts of the same list. Falls back to the
// whole string when there is no usable path.
func Key(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if seg := lastSegment(u.Path); seg != "" {
			return seg
		}
		if u.Host != "" {
			return u.Host
		}
	}
	return rawURL
}

func lastSegment(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return ""
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ErrorLog records the last fetch error per source id. Entries are set on
// failure and cleared on the next successful fetch of the source's own
// corpus; a recovered failure stays visible until then. Safe for
// concurrent use.
type ErrorLog struct {
	mu   sync.RWMutex
	errs map[string]string
}

// NewErrorLog creates an empty error log.
func NewErrorLog() *ErrorLog {
	return &ErrorLog{errs: make(map[string]string)}
}

// Set records msg as the last error for the source.
func (l *ErrorLog) Set(sourceID, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs[sourceID] = msg
}

// Clear removes the recorded error for the source, if any.
func (l *ErrorLog) Clear(sourceID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.errs, sourceID)
}

// Get returns the last recorded error for the source.
func (l *ErrorLog) Get(sourceID string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	msg, ok := l.errs[sourceID]
	return msg, ok
}

// All returns a copy of the whole log for diagnostics.
func (l *ErrorLog) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]string, len(l.errs))
	for k, v := range l.errs {
		out[k] = v
	}
	return out
}
