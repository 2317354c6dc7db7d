// Package validate decides whether a candidate word looks like a plausible
// common word. The rules are heuristic and intentionally lossy: false
// positives are acceptable, linguistic correctness is not the goal.
package validate

import (
	"regexp"
	"strings"
)

// Repetition selects which excessive-repetition rule is applied.
type Repetition int

const (
	// RepetitionStrict rejects a word when its most frequent letter
	// accounts for strictly more than half the word.
	RepetitionStrict Repetition = iota
	// RepetitionComposite additionally rejects a word whose top letter
	// reaches exactly half the word while any other letter also repeats.
	RepetitionComposite
)

// Options configures a Validator. The zero value gives the default chain:
// length bounds [3,9], strict repetition, no denylist.
type Options struct {
	MinLength  int
	MaxLength  int
	Repetition Repetition

	// Denylist enables the problem-word membership check built from
	// name, place, technical and slang corpora plus synthetic
	// consonant+suffix patterns.
	Denylist bool

	// ExtraDenyTerms extends the builtin profanity list.
	ExtraDenyTerms []string
}

// Result is the outcome of validating one word. Reason is populated only
// when the word is rejected.
type Result struct {
	Valid  bool
	Reason string
}

// Validator applies an ordered chain of acceptability checks with
// early exit: the first failing check's reason wins. Validators are
// pure and safe for concurrent use.
type Validator struct {
	opts      Options
	profanity map[string]struct{}
	deny      *denylist
	checks    []check
}

// check returns a rejection reason, or "" when the word passes.
type check func(v *Validator, word string) string

// New creates a Validator with the given options.
func New(opts Options) *Validator {
	if opts.MinLength <= 0 {
		opts.MinLength = 3
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 9
	}

	v := &Validator{
		opts:      opts,
		profanity: make(map[string]struct{}, len(profanityTerms)+len(opts.ExtraDenyTerms)),
	}
	for _, t := range profanityTerms {
		v.profanity[t] = struct{}{}
	}
	for _, t := range opts.ExtraDenyTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			v.profanity[t] = struct{}{}
		}
	}

	v.checks = []check{
		(*Validator).checkCharClass,
		(*Validator).checkLength,
		(*Validator).checkProfanity,
		(*Validator).checkVowel,
		(*Validator).checkRepetition,
		(*Validator).checkAbbreviation,
		(*Validator).checkRegionalSpelling,
		(*Validator).checkRarePattern,
	}
	if opts.Denylist {
		v.deny = newDenylist()
		v.checks = append(v.checks, (*Validator).checkDenylist)
	}

	return v
}

// Validate runs the rule chain over word. Input is trimmed and lowercased
// before any check runs.
func (v *Validator) Validate(word string) Result {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return Result{Reason: "empty word"}
	}
	for _, c := range v.checks {
		if reason := c(v, w); reason != "" {
			return Result{Reason: reason}
		}
	}
	return Result{Valid: true}
}

func isVowel(r byte) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func (v *Validator) checkCharClass(w string) string {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "contains non-letter characters"
		}
	}
	return ""
}

func (v *Validator) checkLength(w string) string {
	if len(w) < v.opts.MinLength {
		return "too short"
	}
	if len(w) > v.opts.MaxLength {
		return "too long"
	}
	return ""
}

func (v *Validator) checkProfanity(w string) string {
	if _, ok := v.profanity[w]; ok {
		return "matches profanity list"
	}
	return ""
}

func (v *Validator) checkVowel(w string) string {
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			return ""
		}
	}
	return "no vowels"
}

func (v *Validator) checkRepetition(w string) string {
	var counts [26]int
	max := 0
	for i := 0; i < len(w); i++ {
		counts[w[i]-'a']++
		if counts[w[i]-'a'] > max {
			max = counts[w[i]-'a']
		}
	}

	if 2*max > len(w) {
		return "excessive letter repetition"
	}
	if v.opts.Repetition == RepetitionComposite && 2*max == len(w) {
		repeated := 0
		for _, n := range counts {
			if n >= 2 {
				repeated++
			}
		}
		if repeated > 1 {
			return "excessive letter repetition"
		}
	}
	return ""
}

// checkAbbreviation flags words shaped like acronyms or abbreviations:
// consonant-heavy overall, short and nearly vowel-free, or built from
// scattered single vowels the way spelled-out letter sequences are.
func (v *Validator) checkAbbreviation(w string) string {
	consonants := 0
	for i := 0; i < len(w); i++ {
		if !isVowel(w[i]) {
			consonants++
		}
	}

	if float64(consonants)/float64(len(w)) > 0.7 {
		return "looks like an abbreviation"
	}
	if len(w) <= 3 && consonants >= 2 {
		return "looks like an abbreviation"
	}

	runs, maxRun := vowelRuns(w)
	if runs >= 3 && maxRun == 1 {
		return "looks like an abbreviation"
	}
	return ""
}

// vowelRuns counts maximal runs of consecutive vowels and the length of
// the longest run.
func vowelRuns(w string) (runs, maxRun int) {
	cur := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			cur++
			continue
		}
		if cur > 0 {
			runs++
			if cur > maxRun {
				maxRun = cur
			}
			cur = 0
		}
	}
	if cur > 0 {
		runs++
		if cur > maxRun {
			maxRun = cur
		}
	}
	return runs, maxRun
}

// Orthographic patterns associated with non-US spellings.
var regionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`our$`),
	regexp.MustCompile(`ise$`),
	regexp.MustCompile(`yse$`),
	regexp.MustCompile(`re$`),
	regexp.MustCompile(`ogue$`),
	regexp.MustCompile(`ae`),
	regexp.MustCompile(`oe`),
}

func (v *Validator) checkRegionalSpelling(w string) string {
	for _, p := range regionalPatterns {
		if p.MatchString(w) {
			return "regional spelling"
		}
	}
	return ""
}

var rareRun = regexp.MustCompile(`[qwxz]{2,}`)

// checkRarePattern rejects letter sequences uncommon in everyday English:
// adjacent rare letters, a bare leading x or q, and long consonant runs.
func (v *Validator) checkRarePattern(w string) string {
	if rareRun.MatchString(w) {
		return "uncommon letter pattern"
	}
	if w[0] == 'x' {
		return "uncommon letter pattern"
	}
	if w[0] == 'q' && (len(w) < 2 || w[1] != 'u') {
		return "uncommon letter pattern"
	}

	run := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			run = 0
			continue
		}
		run++
		if run == i+1 && run >= 3 {
			// Run still anchored at the start of the word.
			return "uncommon letter pattern"
		}
		if run >= 4 {
			return "uncommon letter pattern"
		}
	}
	return ""
}

func (v *Validator) checkDenylist(w string) string {
	if v.deny.contains(w) {
		return "matches problem-word list"
	}
	return ""
}
