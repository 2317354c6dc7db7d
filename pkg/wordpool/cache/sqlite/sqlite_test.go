package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
)

func TestPutGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	fetched := time.Now().Truncate(time.Millisecond)
	e := cache.Entry{Words: []string{"apple", "grape", "mango"}, FetchedAt: fetched}
	if err := s.Put(ctx, "common.txt", e); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "common.txt")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got.Words, e.Words) {
		t.Errorf("Words = %v, want %v", got.Words, e.Words)
	}
	if !got.FetchedAt.Equal(fetched) {
		t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, fetched)
	}
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, "nope"); ok || err != nil {
		t.Errorf("Missing key: ok=%v err=%v", ok, err)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	old := cache.Entry{Words: []string{"old"}, FetchedAt: time.Now().Add(-48 * time.Hour)}
	if err := s.Put(ctx, "k", old); err != nil {
		t.Fatal(err)
	}
	fresh := cache.Entry{Words: []string{"new"}, FetchedAt: time.Now()}
	if err := s.Put(ctx, "k", fresh); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Words) != 1 || got.Words[0] != "new" {
		t.Errorf("Last writer should win, got %v", got.Words)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	e := cache.Entry{Words: []string{"apple"}, FetchedAt: time.Now()}
	if err := s.Put(ctx, "common.txt", e); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, ok, err := s.Get(ctx, "common.txt")
	if err != nil || !ok {
		t.Fatalf("Entry lost across reopen: ok=%v err=%v", ok, err)
	}
	if got.Words[0] != "apple" {
		t.Errorf("Unexpected words after reopen: %v", got.Words)
	}
}

func TestKeys(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	now := time.Now()
	for _, k := range []string{"b.txt", "a.txt"} {
		if err := s.Put(ctx, k, cache.Entry{Words: []string{"w"}, FetchedAt: now}); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"a.txt", "b.txt"}) {
		t.Errorf("Keys = %v", keys)
	}
}
