package fetch

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Corpus hosts drift between formats silently, so the body shape is
// sniffed with an ordered list of extraction strategies; the first one
// producing any valid token wins. HTML pages are stripped to text before
// sniffing.
var strategies = []func(string) []string{
	fromJSON,
	splitLines,
	splitCommas,
	splitFields,
	wholeBody,
}

// JSON object keys that commonly hold the word array.
var arrayKeys = []string{
	"words", "nouns", "verbs", "adjs", "adjectives", "adverbs",
	"animals", "data", "list", "items", "results",
}

// Field names tried when a JSON array holds objects instead of strings.
var entryKeys = []string{"word", "name", "value", "text"}

// Tokens normalizes a raw corpus body into a flat list of lowercase
// alphabetic tokens. Returns nil when no strategy finds a single token.
func Tokens(body []byte) []string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return nil
	}
	if s[0] == '<' {
		s = strings.TrimSpace(stripHTML(s))
		if s == "" {
			return nil
		}
	}
	for _, strat := range strategies {
		if toks := strat(s); len(toks) > 0 {
			return toks
		}
	}
	return nil
}

// normalizeToken lowercases and trims a raw token and keeps it only if it
// is purely alphabetic.
func normalizeToken(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if tok == "" {
		return ""
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < 'a' || tok[i] > 'z' {
			return ""
		}
	}
	return tok
}

func fromJSON(s string) []string {
	if s[0] != '[' && s[0] != '{' {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}

	switch t := v.(type) {
	case []interface{}:
		return tokensFromArray(t)
	case map[string]interface{}:
		for _, k := range arrayKeys {
			if arr, ok := t[k].([]interface{}); ok {
				if toks := tokensFromArray(arr); len(toks) > 0 {
					return toks
				}
			}
		}
		// Last resort: any array-valued property, in stable key order.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := t[k].([]interface{}); ok {
				if toks := tokensFromArray(arr); len(toks) > 0 {
					return toks
				}
			}
		}
	}
	return nil
}

func tokensFromArray(arr []interface{}) []string {
	var toks []string
	for _, el := range arr {
		switch e := el.(type) {
		case string:
			if tok := normalizeToken(e); tok != "" {
				toks = append(toks, tok)
			}
		case map[string]interface{}:
			for _, k := range entryKeys {
				if s, ok := e[k].(string); ok {
					if tok := normalizeToken(s); tok != "" {
						toks = append(toks, tok)
					}
					break
				}
			}
		}
	}
	return toks
}

func splitLines(s string) []string {
	if !strings.ContainsRune(s, '\n') {
		return nil
	}
	var toks []string
	for _, line := range strings.Split(s, "\n") {
		// CSV-ish lines contribute their first column.
		if i := strings.IndexAny(line, ",;\t"); i >= 0 {
			line = line[:i]
		}
		if tok := normalizeToken(line); tok != "" {
			toks = append(toks, tok)
		}
	}
	return toks
}

func splitCommas(s string) []string {
	if !strings.ContainsRune(s, ',') {
		return nil
	}
	var toks []string
	for _, part := range strings.Split(s, ",") {
		if tok := normalizeToken(part); tok != "" {
			toks = append(toks, tok)
		}
	}
	return toks
}

func splitFields(s string) []string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil
	}
	var toks []string
	for _, f := range fields {
		if tok := normalizeToken(f); tok != "" {
			toks = append(toks, tok)
		}
	}
	return toks
}

func wholeBody(s string) []string {
	if tok := normalizeToken(s); tok != "" {
		return []string{tok}
	}
	return nil
}

// malformedJSON reports whether body claims a JSON shape but fails to
// decode. Such bodies are parse failures; everything else that yields no
// tokens is just an empty corpus.
func malformedJSON(body []byte) bool {
	s := bytes.TrimSpace(body)
	if len(s) == 0 || (s[0] != '{' && s[0] != '[') {
		return false
	}
	return !json.Valid(s)
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
