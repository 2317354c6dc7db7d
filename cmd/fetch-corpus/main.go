// Command fetch-corpus warms the persistent corpus cache for every
// registry source so wordgen can run offline afterwards.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
	"github.com/cognicore/wordpool/pkg/wordpool/cache/sqlite"
	"github.com/cognicore/wordpool/pkg/wordpool/fetch"
	"github.com/cognicore/wordpool/pkg/wordpool/source"
)

func main() {
	var (
		dbPath  = flag.String("db", "wordpool-cache.db", "Persistent cache path")
		timeout = flag.Duration("timeout", fetch.DefaultTimeout, "Per-source fetch timeout")
	)
	flag.Parse()

	ctx := context.Background()

	store, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open cache:", err)
	}
	defer store.Close()

	fetcher := &fetch.Fetcher{Timeout: *timeout}
	registry := source.NewRegistry()

	warmed := 0
	failed := 0
	for _, src := range registry.All() {
		if src.URL == "" {
			// Aliases derive from another corpus; nothing to fetch.
			continue
		}

		words, err := fetcher.Fetch(ctx, src.URL)
		if err != nil {
			log.Printf("  %s: %v", src.ID, err)
			failed++
			continue
		}

		entry := cache.Entry{Words: words, FetchedAt: time.Now()}
		if err := store.Put(ctx, cache.Key(src.URL), entry); err != nil {
			log.Printf("  %s: cache write failed: %v", src.ID, err)
			failed++
			continue
		}

		log.Printf("  %s: cached %d words", src.ID, len(words))
		warmed++

		// Be nice to the hosts
		time.Sleep(100 * time.Millisecond)
	}

	log.Printf("✓ Warmed %d corpora into %s (%d failed)", warmed, *dbPath, failed)
}
