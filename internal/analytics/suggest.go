package analytics

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SuggestMinQueryLen is the minimum trimmed query length, in runes, for a
// suggestion lookup. Callers can check it up front to avoid loading a corpus
// for a query that cannot match.
const SuggestMinQueryLen = 2

const suggestLimit = 10

// Suggest ranks catering label autocompletions for query against a corpus of
// past order-item labels. Matching is case-insensitive; labels that differ
// only in casing are counted together and surface with the casing they first
// appeared with. Labels that start with the query rank above those merely
// containing it, then by frequency, then alphabetically. Queries shorter
// than two characters return nothing.
func Suggest(query string, corpus []string) []string {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < SuggestMinQueryLen {
		return nil
	}
	q := strings.ToLower(query)

	type label struct {
		original string
		lower    string
		count    int
	}

	byLower := make(map[string]*label, len(corpus))
	for _, raw := range corpus {
		lower := strings.ToLower(raw)
		if l, ok := byLower[lower]; ok {
			l.count++
			continue
		}
		byLower[lower] = &label{original: raw, lower: lower, count: 1}
	}

	matches := make([]*label, 0, len(byLower))
	for _, l := range byLower {
		if strings.Contains(l.lower, q) {
			matches = append(matches, l)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		pi := strings.HasPrefix(matches[i].lower, q)
		pj := strings.HasPrefix(matches[j].lower, q)
		if pi != pj {
			return pi
		}
		if matches[i].count != matches[j].count {
			return matches[i].count > matches[j].count
		}
		return matches[i].lower < matches[j].lower
	})

	if len(matches) > suggestLimit {
		matches = matches[:suggestLimit]
	}
	out := make([]string, len(matches))
	for i, l := range matches {
		out[i] = l.original
	}
	return out
}
