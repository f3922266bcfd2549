// Package search derives the visible catalog (search results and shelves)
// from the static catalog, the session's preference sets and a query.
package search

import (
	"strings"

	"github.com/mmcdole/streamvault/internal/domain"
	"golang.org/x/text/cases"
)

// Matcher tests titles against a case-folded query.
// A Matcher is not safe for concurrent use.
type Matcher struct {
	folded string
	caser  cases.Caser
}

// NewMatcher normalizes query. Whitespace-only queries are empty.
func NewMatcher(query string) Matcher {
	caser := cases.Fold()
	return Matcher{
		folded: caser.String(strings.TrimSpace(query)),
		caser:  caser,
	}
}

// Empty reports whether the query matches everything
func (m Matcher) Empty() bool {
	return m.folded == ""
}

// Match reports whether the query is a case-insensitive substring of the
// title name, any genre tag, or the description.
func (m Matcher) Match(t domain.Title) bool {
	if m.Empty() {
		return true
	}
	if m.contains(t.Name) {
		return true
	}
	for _, g := range t.Genres {
		if m.contains(g) {
			return true
		}
	}
	return m.contains(t.Description)
}

func (m Matcher) contains(s string) bool {
	return strings.Contains(m.caser.String(s), m.folded)
}
