package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
)

func TestPutGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(0)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	e := cache.Entry{Words: []string{"apple", "grape"}, FetchedAt: time.Now()}
	if err := s.Put(ctx, "common.txt", e); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "common.txt")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got.Words) != 2 || got.Words[0] != "apple" {
		t.Errorf("Unexpected entry: %v", got.Words)
	}

	// Cached data must be detached from caller slices.
	got.Words[0] = "mutated"
	again, _, _ := s.Get(ctx, "common.txt")
	if again.Words[0] != "apple" {
		t.Error("Get should return a copy")
	}
}

func TestGetMissing(t *testing.T) {
	s, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, ok, err := s.Get(context.Background(), "nope"); ok || err != nil {
		t.Errorf("Missing key: ok=%v err=%v", ok, err)
	}
}

func TestLRUEviction(t *testing.T) {
	ctx := context.Background()
	s, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, k := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, k, cache.Entry{Words: []string{k}, FetchedAt: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}

	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("Oldest key should have been evicted")
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 keys, got %v", keys)
	}
}
