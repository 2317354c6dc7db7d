// Package source catalogs the external word corpora the generator can
// draw from, decoupling the ids callers use from physical corpus URLs.
package source

import "github.com/cognicore/wordpool/pkg/wordpool/validate"

// Source identifies one externally hosted corpus. Sources are defined at
// startup and never mutated.
type Source struct {
	ID          string
	Name        string
	Description string

	// URL is the corpus location. Empty for pure alias sources, which
	// are derived entirely from the default corpus.
	URL string

	// Class, when set, post-filters the fetched words by detected part
	// of speech. It also lets a source degrade to the default corpus
	// filtered by Class when its own corpus is unreachable.
	Class validate.Class
}

// DefaultID is the corpus unknown ids fall back to.
const DefaultID = "common"

const corporaBase = "https://raw.githubusercontent.com/dariusk/corpora/master/data"

func builtinSources() []Source {
	return []Source{
		{
			ID:          "common",
			Name:        "Common Words",
			Description: "The 10,000 most common English words by frequency, swear words removed",
			URL:         "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-no-swears.txt",
		},
		{
			ID:          "enable",
			Name:        "ENABLE Dictionary",
			Description: "The ENABLE word list used by word games, one word per line",
			URL:         "https://raw.githubusercontent.com/dolph/dictionary/master/enable1.txt",
		},
		{
			ID:          "nouns",
			Name:        "Nouns",
			Description: "Common English nouns",
			URL:         corporaBase + "/words/nouns.json",
			Class:       validate.ClassNoun,
		},
		{
			ID:          "verbs",
			Name:        "Verbs",
			Description: "Common English verbs",
			URL:         corporaBase + "/words/verbs.json",
			Class:       validate.ClassVerb,
		},
		{
			ID:          "adjectives",
			Name:        "Adjectives",
			Description: "Common English adjectives",
			URL:         corporaBase + "/words/adjs.json",
			Class:       validate.ClassAdjective,
		},
		{
			ID:          "adverbs",
			Name:        "Adverbs",
			Description: "Adverbs derived from the common-word corpus by suffix shape",
			Class:       validate.ClassAdverb,
		},
		{
			ID:          "animals",
			Name:        "Animals",
			Description: "Common animal names",
			URL:         corporaBase + "/animals/common.json",
		},
	}
}

// Registry maps source ids to their metadata and fetch strategy. Lookup
// of an unknown id returns the default corpus.
type Registry struct {
	byID  map[string]Source
	order []string
}

// NewRegistry creates a registry holding the builtin catalog.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Source)}
	for _, s := range builtinSources() {
		r.Add(s)
	}
	return r
}

// Add registers a source, replacing any previous definition of the id.
func (r *Registry) Add(s Source) {
	if _, ok := r.byID[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
}

// Lookup resolves id to its source; unknown ids resolve to the default
// corpus.
func (r *Registry) Lookup(id string) Source {
	if s, ok := r.byID[id]; ok {
		return s
	}
	return r.Default()
}

// Default returns the fallback general corpus.
func (r *Registry) Default() Source {
	return r.byID[DefaultID]
}

// All returns every registered source in registration order.
func (r *Registry) All() []Source {
	out := make([]Source, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
