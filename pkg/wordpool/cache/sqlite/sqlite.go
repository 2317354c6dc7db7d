// Package sqlite persists the corpus cache so the generator keeps working
// offline after the first successful fetch of each source.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
)

// sqliteStore implements cache.Store on a single SQLite file.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite-backed cache at path with WAL
// mode enabled.
func Open(ctx context.Context, path string) (cache.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS corpus_cache (
	key TEXT PRIMARY KEY,
	words TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Get returns the cached entry for key. A row whose word payload fails to
// decode is treated as a miss: the cache is best effort and a refetch
// repairs it.
func (s *sqliteStore) Get(ctx context.Context, key string) (cache.Entry, bool, error) {
	var (
		payload   string
		fetchedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT words, fetched_at FROM corpus_cache WHERE key = ?", key,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return cache.Entry{}, false, nil
	}
	if err != nil {
		return cache.Entry{}, false, err
	}

	var words []string
	if err := json.Unmarshal([]byte(payload), &words); err != nil {
		return cache.Entry{}, false, nil
	}

	return cache.Entry{
		Words:     words,
		FetchedAt: time.UnixMilli(fetchedAt),
	}, true, nil
}

// Put stores the entry under key, replacing any previous row. Timestamps
// are stored as epoch millis.
func (s *sqliteStore) Put(ctx context.Context, key string, e cache.Entry) error {
	payload, err := json.Marshal(e.Words)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO corpus_cache (key, words, fetched_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET words = excluded.words, fetched_at = excluded.fetched_at`,
		key, string(payload), e.FetchedAt.UnixMilli())
	return err
}

// Keys returns every cached key.
func (s *sqliteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM corpus_cache ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
