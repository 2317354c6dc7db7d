package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cognicore/wordpool/pkg/wordpool"
	"github.com/cognicore/wordpool/pkg/wordpool/cache/sqlite"
	"github.com/cognicore/wordpool/pkg/wordpool/config"
	"github.com/cognicore/wordpool/pkg/wordpool/fetch"
	"github.com/cognicore/wordpool/pkg/wordpool/source"
	"github.com/cognicore/wordpool/pkg/wordpool/validate"
)

func main() {
	var (
		length      = flag.Int("length", 5, "Exact word length")
		count       = flag.Int("count", 10, "Number of words to generate")
		sources     = flag.String("sources", source.DefaultID, "Comma-separated source ids")
		dbPath      = flag.String("db", "", "Persistent cache path (optional)")
		sourcesPath = flag.String("sources-config", "", "Extra sources YAML file (optional)")
		denyPath    = flag.String("deny-config", "", "Extra denylist terms YAML file (optional)")
		seed        = flag.Int64("seed", 0, "Random seed (0 = time-based)")
		timeout     = flag.Duration("timeout", fetch.DefaultTimeout, "Per-source fetch timeout")
		strict      = flag.Bool("strict", false, "Enable the problem-word denylist")
		listOnly    = flag.Bool("list-sources", false, "List available sources and exit")
	)
	flag.Parse()

	ctx := context.Background()

	gen, cleanup, err := buildGenerator(ctx, *dbPath, *sourcesPath, *denyPath, *seed, *timeout, *strict)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if *listOnly {
		for _, s := range gen.Sources() {
			fmt.Printf("%-12s %s — %s\n", s.ID, s.Name, s.Description)
		}
		return
	}

	ids := splitIDs(*sources)
	res, err := gen.GenerateMulti(ctx, *length, ids, *count)
	if err != nil {
		for id, msg := range gen.ErrorLog() {
			log.Printf("source %s: %s", id, msg)
		}
		log.Fatal(err)
	}

	for _, w := range res.Words {
		fmt.Println(w)
	}

	if len(res.FailedSources) > 0 {
		color.Yellow("warning: %d source(s) contributed nothing: %s",
			len(res.FailedSources), strings.Join(res.FailedSources, ", "))
		for _, id := range res.FailedSources {
			if msg, ok := errFor(gen, id); ok {
				color.Yellow("  %s: %s", id, msg)
			}
		}
	}
}

func errFor(gen *wordpool.Generator, id string) (string, bool) {
	msg, ok := gen.ErrorLog()[id]
	return msg, ok
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// buildGenerator wires the registry, validator, fetcher and caches from
// the command-line options.
func buildGenerator(ctx context.Context, dbPath, sourcesPath, denyPath string, seed int64, timeout time.Duration, strict bool) (*wordpool.Generator, func(), error) {
	opts := wordpool.Options{
		Fetcher: &fetch.Fetcher{Timeout: timeout},
	}

	registry := source.NewRegistry()
	if sourcesPath != "" {
		extra, err := config.LoadSources(sourcesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load sources: %w", err)
		}
		for _, s := range extra {
			registry.Add(s)
		}
	}
	opts.Registry = registry

	vopts := validate.Options{Denylist: strict}
	if denyPath != "" {
		deny, err := config.LoadDenylist(denyPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load denylist: %w", err)
		}
		vopts.ExtraDenyTerms = deny.Terms
	}
	opts.Validator = validate.New(vopts)

	if dbPath != "" {
		store, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = store
	}

	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	gen, err := wordpool.New(opts)
	if err != nil {
		if opts.Cache != nil {
			opts.Cache.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := gen.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}
	return gen, cleanup, nil
}
