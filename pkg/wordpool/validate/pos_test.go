package validate

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		word string
		want Class
	}{
		{"quickly", ClassAdverb},
		{"happiness", ClassNoun},
		{"painter", ClassNoun},
		{"movement", ClassNoun},
		{"running", ClassVerb},
		{"simplify", ClassVerb},
		{"famous", ClassAdjective},
		{"hopeful", ClassAdjective},
		{"zebra", ClassUnknown},
		{"ly", ClassUnknown}, // suffix with no stem
	}

	for _, c := range cases {
		if got := Classify(c.word); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.word, got, c.want)
		}
	}
}

func TestClassifyAdverbBeforeAdjective(t *testing.T) {
	// "-ly" must win over weaker adjective patterns.
	if got := Classify("musically"); got != ClassAdverb {
		t.Errorf("Classify(musically) = %s, want adverb", got)
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Class
	}{
		{"", ClassUnknown},
		{"noun", ClassNoun},
		{"Nouns", ClassNoun},
		{"verb", ClassVerb},
		{"adjectives", ClassAdjective},
		{"ADVERB", ClassAdverb},
	} {
		got, err := ParseClass(c.in)
		if err != nil {
			t.Errorf("ParseClass(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClass(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	if _, err := ParseClass("gerund"); err == nil {
		t.Error("ParseClass should reject unknown classes")
	}
}
