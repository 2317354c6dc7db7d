package validate

import "strings"

// denylist is the problem-word set used by the optional membership check.
// It combines explicit name/place/technical/slang corpora with synthetic
// consonant+suffix patterns for nationality, technical and place-name
// shapes, so obvious proper-noun derivatives are caught without listing
// each one.
type denylist struct {
	exact map[string]struct{}
}

var denylistCorpora = [][]string{
	// Given names.
	{
		"aaron", "alice", "amanda", "andrew", "angela", "anna", "brian",
		"carlos", "david", "diana", "emily", "emma", "george", "hannah",
		"harry", "henry", "jacob", "james", "jason", "john", "karen",
		"kevin", "laura", "linda", "maria", "mary", "megan", "oliver",
		"oscar", "peter", "rachel", "robert", "sarah", "steven", "thomas",
	},
	// Place names.
	{
		"africa", "asia", "berlin", "boston", "canada", "chicago",
		"china", "dallas", "denver", "egypt", "europe", "france",
		"india", "japan", "kenya", "london", "madrid", "mexico",
		"moscow", "paris", "peru", "russia", "spain", "texas", "tokyo",
	},
	// Technical jargon.
	{
		"admin", "blog", "botnet", "cache", "codec", "debug", "email",
		"emoji", "html", "http", "intel", "linux", "modem", "pixel",
		"query", "regex", "router", "server", "sudo", "wifi",
	},
	// Chat slang and informal contractions.
	{
		"aint", "bruh", "dunno", "gonna", "gotta", "kinda", "lemme",
		"nope", "outta", "sorta", "wanna", "yeah", "yolo", "yup",
	},
	// Offensive terms outside the profanity list proper.
	{
		"commie", "gimp", "gypsy", "hobo", "junkie", "nazi", "psycho",
		"retard", "spaz", "tard", "tranny",
	},
}

// Suffix groups for the synthetic patterns. A word is denied when it ends
// in one of these with a consonant immediately before the suffix, the
// shape of derived nationalities ("sudanese"), product-speak ("shareware")
// and settlement names ("boston").
var syntheticSuffixes = [][]string{
	// Nationality.
	{"ese", "ian", "ish"},
	// Technical.
	{"ware", "byte", "tron", "tech"},
	// Place names.
	{"ton", "ville", "burg", "land", "ford", "shire"},
}

func newDenylist() *denylist {
	d := &denylist{exact: make(map[string]struct{})}
	for _, corpus := range denylistCorpora {
		for _, w := range corpus {
			d.exact[w] = struct{}{}
		}
	}
	return d
}

func (d *denylist) contains(word string) bool {
	if _, ok := d.exact[word]; ok {
		return true
	}
	return matchesSyntheticSuffix(word)
}

func matchesSyntheticSuffix(word string) bool {
	for _, group := range syntheticSuffixes {
		for _, suf := range group {
			if len(word) <= len(suf)+1 || !strings.HasSuffix(word, suf) {
				continue
			}
			prev := word[len(word)-len(suf)-1]
			if !isVowel(prev) {
				return true
			}
		}
	}
	return false
}
