// Package textmatch implements the keyword/synonym matching engine used by
// candidate retrieval. Catalog vocabulary is inconsistent ("yoga" vs
// "wellness" vs "pilates"), so a curated synonym table plus naive suffix
// stemming stands in for semantic search.
package textmatch

import (
	"sort"
	"strings"
)

// stemRule strips Suffix and appends Replacement. Rules are tried in order
// and only the first matching rule is applied. The stemming is intentionally
// naive ("running" -> "runn"); the synonym table was curated against this
// exact behavior.
type stemRule struct {
	suffix      string
	replacement string
}

var stemRules = []stemRule{
	{"ing", ""},
	{"ed", ""},
	{"er", ""},
	{"ers", ""},
	{"s", ""},
	{"ies", "y"},
	{"ness", ""},
}

// Normalize lowercases, trims and applies the first matching stemming rule.
func Normalize(term string) string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	for _, rule := range stemRules {
		if strings.HasSuffix(normalized, rule.suffix) {
			return strings.TrimSuffix(normalized, rule.suffix) + rule.replacement
		}
	}
	return normalized
}

// RelatedTerms returns the fuzzy-equivalence class of word: its normalized
// and lowercased forms, the synonym list registered under the normalized
// form, and, since the table stores synonymy asymmetrically, the key and
// full list of every entry whose synonyms contain the normalized form.
// The result is sorted so callers get a deterministic order.
func RelatedTerms(word string) []string {
	normalized := Normalize(word)
	terms := map[string]struct{}{
		normalized:            {},
		strings.ToLower(word): {},
	}

	if synonyms, ok := synonymTable[normalized]; ok {
		for _, syn := range synonyms {
			terms[syn] = struct{}{}
		}
	}

	for key, synonyms := range synonymTable {
		for _, syn := range synonyms {
			if syn == normalized {
				terms[key] = struct{}{}
				for _, s := range synonyms {
					terms[s] = struct{}{}
				}
				break
			}
		}
	}

	out := make([]string, 0, len(terms))
	for t := range terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FuzzyMatch reports whether a and b match directly (normalized substring in
// either direction) or through their related-term sets.
func FuzzyMatch(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)

	if strings.Contains(nb, na) || strings.Contains(na, nb) {
		return true
	}

	aRelated := RelatedTerms(a)
	bRelated := RelatedTerms(b)
	for _, at := range aRelated {
		for _, bt := range bRelated {
			if at == bt || strings.Contains(at, bt) || strings.Contains(bt, at) {
				return true
			}
		}
	}
	return false
}

// MatchScore rates how well two terms match on a 0-5 scale:
//
//	5: normalized terms are equal
//	4: one normalized term contains the other
//	3: related-term sets share an exact member
//	2: some cross-pair of related terms has a substring relationship
//	0: no relation
//
// The value 1 is never produced; downstream score accumulation was tuned
// against these exact bands.
func MatchScore(a, b string) int {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 5
	}
	if strings.Contains(nb, na) || strings.Contains(na, nb) {
		return 4
	}

	aRelated := RelatedTerms(a)
	bRelated := RelatedTerms(b)

	bSet := make(map[string]struct{}, len(bRelated))
	for _, bt := range bRelated {
		bSet[bt] = struct{}{}
	}
	for _, at := range aRelated {
		if _, ok := bSet[at]; ok {
			return 3
		}
	}

	for _, at := range aRelated {
		for _, bt := range bRelated {
			if strings.Contains(at, bt) || strings.Contains(bt, at) {
				return 2
			}
		}
	}
	return 0
}

// ExpandTerms unions each input term with its related terms, preserving
// first-seen order.
func ExpandTerms(terms []string) []string {
	seen := make(map[string]struct{})
	var expanded []string
	add := func(t string) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			expanded = append(expanded, t)
		}
	}
	for _, term := range terms {
		add(term)
		for _, related := range RelatedTerms(term) {
			add(related)
		}
	}
	return expanded
}
