// Package wordpool generates random word lists from external corpora:
// fetch (cached, failure-tolerant), filter by length, validate against
// heuristic acceptability rules, and sample without replacement.
package wordpool

import (
	"context"
	crand "crypto/rand"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/singleflight"

	"github.com/cognicore/wordpool/pkg/wordpool/cache"
	"github.com/cognicore/wordpool/pkg/wordpool/cache/memcache"
	"github.com/cognicore/wordpool/pkg/wordpool/fetch"
	"github.com/cognicore/wordpool/pkg/wordpool/internalerr"
	"github.com/cognicore/wordpool/pkg/wordpool/sample"
	"github.com/cognicore/wordpool/pkg/wordpool/source"
	"github.com/cognicore/wordpool/pkg/wordpool/validate"
)

// DefaultFreshness is how long a cached corpus is served without a
// network fetch.
const DefaultFreshness = 24 * time.Hour

// Options configures a Generator. Every field is optional; zero values
// give the builtin registry, default fetcher and validator, an in-memory
// cache only, and a 24h freshness window.
type Options struct {
	Registry  *source.Registry
	Fetcher   *fetch.Fetcher
	Validator *validate.Validator

	// Cache is the persistent corpus cache (sqlite in production).
	// Nil means in-memory caching only.
	Cache cache.Store

	// MemCacheSize bounds the in-memory cache layer.
	MemCacheSize int

	// Freshness overrides DefaultFreshness.
	Freshness time.Duration

	// Rand supplies the sampling randomness; mainly for tests.
	Rand *rand.Rand
}

// Generator is the word-list generation orchestrator. It owns the caches
// and error log, so tests get isolation from fresh instances. Safe for
// concurrent use.
type Generator struct {
	registry  *source.Registry
	fetcher   *fetch.Fetcher
	validator *validate.Validator
	persist   cache.Store
	mem       *memcache.Store
	freshness time.Duration
	errlog    *cache.ErrorLog
	group     singleflight.Group

	randMu  sync.Mutex
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
}

// Result is the outcome of a multi-source generation request.
// FailedSources is populated even on success so callers can surface
// partial degradation.
type Result struct {
	// ID correlates this result with error-log diagnostics.
	ID            string
	Words         []string
	FailedSources []string
}

// New creates a Generator with the given options.
func New(opts Options) (*Generator, error) {
	mem, err := memcache.New(opts.MemCacheSize)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		registry:  opts.Registry,
		fetcher:   opts.Fetcher,
		validator: opts.Validator,
		persist:   opts.Cache,
		mem:       mem,
		freshness: opts.Freshness,
		errlog:    cache.NewErrorLog(),
		rng:       opts.Rand,
		entropy:   ulid.Monotonic(crand.Reader, 0),
	}
	if g.registry == nil {
		g.registry = source.NewRegistry()
	}
	if g.fetcher == nil {
		g.fetcher = &fetch.Fetcher{}
	}
	if g.validator == nil {
		g.validator = validate.New(validate.Options{})
	}
	if g.freshness <= 0 {
		g.freshness = DefaultFreshness
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g, nil
}

// Close releases the caches.
func (g *Generator) Close() error {
	if err := g.mem.Close(); err != nil {
		return err
	}
	if g.persist != nil {
		return g.persist.Close()
	}
	return nil
}

// Sources lists the available corpora.
func (g *Generator) Sources() []source.Source {
	return g.registry.All()
}

// ErrorLog returns the last fetch error per source id, for diagnostics.
func (g *Generator) ErrorLog() map[string]string {
	return g.errlog.All()
}

// CachedWords returns the current in-memory cache contents keyed by
// cache key, for diagnostics.
func (g *Generator) CachedWords(ctx context.Context) (map[string][]string, error) {
	keys, err := g.mem.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(keys))
	for _, k := range keys {
		if e, ok, err := g.mem.Get(ctx, k); err == nil && ok {
			out[k] = e.Words
		}
	}
	return out, nil
}

// Generate is the single-source form: up to count valid words of exactly
// the given length from one corpus.
func (g *Generator) Generate(ctx context.Context, length int, sourceID string, count int) ([]string, error) {
	res, err := g.GenerateMulti(ctx, length, []string{sourceID}, count)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}

// GenerateMulti fetches every selected source, merges the length-matched
// words into a deduplicated pool, validates, and samples up to count
// words. A failing source never aborts the batch; its id is reported in
// Result.FailedSources instead. Hard failures are ErrNoSources (empty
// selection), ErrAllSourcesFailed (every fetch failed) and ErrNoMatches
// (fetches succeeded, nothing valid survived).
func (g *Generator) GenerateMulti(ctx context.Context, length int, sourceIDs []string, count int) (Result, error) {
	if len(sourceIDs) == 0 {
		return Result{}, internalerr.ErrNoSources
	}

	type outcome struct {
		words []string
		err   error
	}
	outcomes := make([]outcome, len(sourceIDs))

	// Sources complete in any order; each failure stays its own.
	var wg sync.WaitGroup
	for i, id := range sourceIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			words, err := g.sourceWords(ctx, id)
			outcomes[i] = outcome{words: words, err: err}
		}(i, id)
	}
	wg.Wait()

	var failed []string
	var pool []string
	hardFailed := 0
	seen := make(map[string]struct{})
	for i, res := range outcomes {
		id := sourceIDs[i]
		if res.err != nil {
			failed = append(failed, id)
			hardFailed++
			continue
		}
		matched := 0
		for _, w := range res.words {
			if len(w) != length {
				continue
			}
			matched++
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
		if matched == 0 {
			// Empty contribution: reported as failed, not a hard error.
			failed = append(failed, id)
		}
	}

	var valid []string
	for _, w := range pool {
		if g.validator.Validate(w).Valid {
			valid = append(valid, w)
		}
	}

	if len(valid) == 0 {
		if hardFailed == len(sourceIDs) {
			return Result{FailedSources: failed}, internalerr.ErrAllSourcesFailed
		}
		return Result{FailedSources: failed}, internalerr.ErrNoMatches
	}

	g.randMu.Lock()
	words := sample.Take(g.rng, valid, count)
	id := ulid.MustNew(ulid.Now(), g.entropy).String()
	g.randMu.Unlock()

	return Result{ID: id, Words: words, FailedSources: failed}, nil
}

// sourceWords resolves one source id to its word list, applying alias
// fallback and part-of-speech post-filtering, and maintains the error log
// (set on failure, cleared on success).
func (g *Generator) sourceWords(ctx context.Context, id string) ([]string, error) {
	src := g.registry.Lookup(id)

	// Pure alias: derive from the default corpus.
	if src.URL == "" {
		words, err := g.fetchCached(ctx, g.registry.Default().URL)
		if err != nil {
			g.errlog.Set(id, err.Error())
			return nil, err
		}
		g.errlog.Clear(id)
		return filterClass(words, src.Class), nil
	}

	words, err := g.fetchCached(ctx, src.URL)
	if err != nil && src.Class != validate.ClassUnknown && src.URL != g.registry.Default().URL {
		// Authoritative corpus unreachable: degrade to the general
		// corpus filtered by word class. The original failure stays in
		// the error log so the degradation remains diagnosable.
		g.errlog.Set(id, err.Error())
		if fallback, fbErr := g.fetchCached(ctx, g.registry.Default().URL); fbErr == nil {
			return filterClass(fallback, src.Class), nil
		}
	}
	if err != nil {
		g.errlog.Set(id, err.Error())
		return nil, err
	}
	g.errlog.Clear(id)
	return words, nil
}

// fetchCached serves a corpus from the in-memory layer, then the
// persistent cache, then the network, deduplicating concurrent cold
// fetches of the same key. Successful fetches refresh both cache layers;
// persistence is best effort.
func (g *Generator) fetchCached(ctx context.Context, url string) ([]string, error) {
	key := cache.Key(url)
	now := time.Now()

	if e, ok, err := g.mem.Get(ctx, key); err == nil && ok && e.Fresh(g.freshness, now) {
		return e.Words, nil
	}

	v, err, _ := g.group.Do(key, func() (interface{}, error) {
		if g.persist != nil {
			if e, ok, err := g.persist.Get(ctx, key); err == nil && ok && e.Fresh(g.freshness, time.Now()) {
				_ = g.mem.Put(ctx, key, e)
				return e.Words, nil
			}
		}

		words, err := g.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		e := cache.Entry{Words: words, FetchedAt: time.Now()}
		_ = g.mem.Put(ctx, key, e)
		if g.persist != nil {
			_ = g.persist.Put(ctx, key, e)
		}
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func filterClass(words []string, class validate.Class) []string {
	if class == validate.ClassUnknown {
		return words
	}
	var out []string
	for _, w := range words {
		if validate.Classify(w) == class {
			out = append(out, w)
		}
	}
	return out
}
