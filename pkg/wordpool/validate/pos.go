package validate

import (
	"fmt"
	"strings"
)

// Class is a coarse part-of-speech category detected from word shape.
// It is used to filter a general corpus into a pseudo-category when no
// dedicated corpus for that category is reachable.
type Class int

const (
	ClassUnknown Class = iota
	ClassNoun
	ClassVerb
	ClassAdjective
	ClassAdverb
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case ClassNoun:
		return "noun"
	case ClassVerb:
		return "verb"
	case ClassAdjective:
		return "adjective"
	case ClassAdverb:
		return "adverb"
	}
	return "unknown"
}

// ParseClass maps a config string to a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ClassUnknown, nil
	case "noun", "nouns":
		return ClassNoun, nil
	case "verb", "verbs":
		return ClassVerb, nil
	case "adjective", "adjectives":
		return ClassAdjective, nil
	case "adverb", "adverbs":
		return ClassAdverb, nil
	}
	return ClassUnknown, fmt.Errorf("unknown word class %q", s)
}

// Suffix patterns per class, checked in declaration order. Adverbs go
// first so "-ly" is not swallowed by weaker adjective patterns.
var classSuffixes = []struct {
	class    Class
	suffixes []string
}{
	{ClassAdverb, []string{"ly"}},
	{ClassAdjective, []string{"ous", "ful", "ive", "able", "ible", "less", "ish", "al", "ic"}},
	{ClassVerb, []string{"ize", "ise", "ify", "ate", "ing", "ed"}},
	{ClassNoun, []string{"tion", "sion", "ness", "ment", "ance", "ence", "ship", "ism", "ist", "ity", "age", "er", "or"}},
}

// Classify guesses the part of speech of word from its suffix. Words that
// match no pattern classify as ClassUnknown. Like the rest of the package
// this is a lossy shape heuristic, not morphology.
func Classify(word string) Class {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, group := range classSuffixes {
		for _, suf := range group.suffixes {
			// The suffix must leave a stem behind.
			if len(w) > len(suf)+1 && strings.HasSuffix(w, suf) {
				return group.class
			}
		}
	}
	return ClassUnknown
}
