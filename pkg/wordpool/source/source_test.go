package source

import (
	"testing"

	"github.com/cognicore/wordpool/pkg/wordpool/validate"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	all := r.All()
	if len(all) == 0 {
		t.Fatal("Registry should have builtin sources")
	}

	ids := make(map[string]bool)
	for _, s := range all {
		if s.ID == "" || s.Name == "" || s.Description == "" {
			t.Errorf("Source %+v missing metadata", s)
		}
		if ids[s.ID] {
			t.Errorf("Duplicate source id %q", s.ID)
		}
		ids[s.ID] = true
	}

	for _, id := range []string{"common", "enable", "nouns", "verbs", "adjectives", "adverbs"} {
		if !ids[id] {
			t.Errorf("Missing builtin source %q", id)
		}
	}
}

func TestLookupKnown(t *testing.T) {
	r := NewRegistry()

	s := r.Lookup("nouns")
	if s.ID != "nouns" || s.Class != validate.ClassNoun {
		t.Errorf("Lookup(nouns) = %+v", s)
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	r := NewRegistry()

	s := r.Lookup("no-such-corpus")
	if s.ID != DefaultID {
		t.Errorf("Unknown id should resolve to %q, got %q", DefaultID, s.ID)
	}
}

func TestAliasSourceHasNoURL(t *testing.T) {
	r := NewRegistry()

	s := r.Lookup("adverbs")
	if s.URL != "" {
		t.Errorf("adverbs should be a pure alias, has URL %q", s.URL)
	}
	if s.Class != validate.ClassAdverb {
		t.Errorf("adverbs alias should carry its class, got %s", s.Class)
	}
}

func TestAddReplacesAndExtends(t *testing.T) {
	r := NewRegistry()
	before := len(r.All())

	r.Add(Source{ID: "slang", Name: "Slang", Description: "test corpus", URL: "https://corpus.test/slang.txt"})
	if len(r.All()) != before+1 {
		t.Error("Add should extend the catalog")
	}

	r.Add(Source{ID: "slang", Name: "Slang v2", Description: "replacement", URL: "https://corpus.test/slang2.txt"})
	if len(r.All()) != before+1 {
		t.Error("Re-adding an id should replace, not duplicate")
	}
	if got := r.Lookup("slang"); got.Name != "Slang v2" {
		t.Errorf("Lookup after replace = %+v", got)
	}
}
