package search

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minCoverage is the share of a query word's trigrams an item must contain.
const minCoverage = 0.4

// Match represents a search match with its index and score.
type Match struct {
	Index int
	Score float64
}

// Matcher performs trigram search with multi-word support.
type Matcher struct {
	trigrams   []map[string]struct{}
	normalized []string
}

// NewMatcher indexes items.
func NewMatcher(items []Item) *Matcher {
	m := &Matcher{
		trigrams:   make([]map[string]struct{}, len(items)),
		normalized: make([]string, len(items)),
	}
	for i, item := range items {
		text := normalize(item.FilterValue())
		m.normalized[i] = text
		m.trigrams[i] = trigrams(text)
	}
	return m
}

// Len returns the number of indexed items.
func (m *Matcher) Len() int {
	return len(m.normalized)
}

// Search finds the items matching every word of query, best first. Ties keep
// index order. An empty query matches everything.
func (m *Matcher) Search(query string) []Match {
	words := strings.Fields(normalize(query))
	if len(words) == 0 {
		all := make([]Match, len(m.normalized))
		for i := range all {
			all[i] = Match{Index: i}
		}
		return all
	}

	wordTris := make([]map[string]struct{}, len(words))
	for i, w := range words {
		wordTris[i] = trigrams(w)
	}

	var matches []Match
	for i := range m.normalized {
		if score := m.score(i, words, wordTris); score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return matches
}

// score is zero unless every word matches.
func (m *Matcher) score(idx int, words []string, wordTris []map[string]struct{}) float64 {
	text := m.normalized[idx]
	total := 0.0
	for i, word := range words {
		// Short words have too few trigrams to score.
		if len([]rune(word)) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total++
			continue
		}
		c := coverage(wordTris[i], m.trigrams[idx])
		if c < minCoverage {
			return 0
		}
		if strings.Contains(text, word) {
			c += 0.5
		}
		total += c
	}
	return total / float64(len(words))
}

var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lowercases s and strips diacritics, so "cafe" finds "Café".
func normalize(s string) string {
	out, _, err := transform.String(fold, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// trigrams returns the set of trigrams of s, padded so prefixes and
// suffixes count.
func trigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	tris := make(map[string]struct{})
	r := []rune("  " + s + "  ")
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// coverage is |query ∩ item| / |query|.
func coverage(query, item map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := item[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
