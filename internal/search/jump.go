package search

import (
	"strings"

	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/sahilm/fuzzy"
)

// JumpMatch is a quick-jump candidate with highlight positions in its name
type JumpMatch struct {
	View           domain.TitleView
	MatchedIndexes []int
}

// jumpSource implements sahilm/fuzzy.Source over lowercased names
type jumpSource []domain.TitleView

func (s jumpSource) String(i int) string { return strings.ToLower(s[i].Name) }
func (s jumpSource) Len() int            { return len(s) }

// Jump ranks already-derived results against a fuzzy pattern. Because it
// only reorders and narrows its input, block exclusion and query matching
// carry over from Derive.
func Jump(pattern string, results []domain.TitleView) []JumpMatch {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		out := make([]JumpMatch, len(results))
		for i, v := range results {
			out[i] = JumpMatch{View: v}
		}
		return out
	}

	matches := fuzzy.FindFrom(pattern, jumpSource(results))
	out := make([]JumpMatch, len(matches))
	for i, m := range matches {
		out[i] = JumpMatch{View: results[m.Index], MatchedIndexes: m.MatchedIndexes}
	}
	return out
}
