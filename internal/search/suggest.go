package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/streamvault/internal/catalog"
)

// MaxSuggestions caps the "did you mean" list
const MaxSuggestions = 3

// maxWordDistance is the typo budget for the word-level fallback
const maxWordDistance = 2

// Suggest proposes up to MaxSuggestions title names for a query that found
// nothing. Blocked titles are never suggested. Suggestions do not affect
// the derived view.
func Suggest(c *catalog.Catalog, prefs Membership, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var names []string
	for _, t := range c.Titles() {
		if !prefs.IsBlocked(t.ID) {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	// Subsequence match first ("mdmx" -> "Mad Max: Fury Road")
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		out := make([]string, 0, min(len(ranks), MaxSuggestions))
		for _, r := range ranks[:min(len(ranks), MaxSuggestions)] {
			out = append(out, r.Target)
		}
		return out
	}

	return typoSuggestions(strings.ToLower(query), names)
}

// typoSuggestions ranks names by the closest word to any query word
func typoSuggestions(query string, names []string) []string {
	type candidate struct {
		name string
		dist int
	}

	queryWords := strings.Fields(query)
	var candidates []candidate
	for _, name := range names {
		best := -1
		for _, word := range strings.FieldsFunc(strings.ToLower(name), isSeparator) {
			for _, q := range queryWords {
				d := levenshtein.ComputeDistance(q, word)
				if best < 0 || d < best {
					best = d
				}
			}
		}
		if best >= 0 && best <= maxWordDistance {
			candidates = append(candidates, candidate{name: name, dist: best})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	out := make([]string, 0, MaxSuggestions)
	for _, c := range candidates[:min(len(candidates), MaxSuggestions)] {
		out = append(out, c.name)
	}
	return out
}

func isSeparator(r rune) bool {
	return r == ' ' || r == ':' || r == '-' || r == ','
}
