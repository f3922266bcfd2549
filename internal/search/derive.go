package search

import (
	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
)

// Membership answers per-title preference lookups (consumer-defined interface)
type Membership interface {
	IsFavorite(id domain.TitleID) bool
	IsBlocked(id domain.TitleID) bool
}

// View is everything the catalog screen renders for one set of inputs.
type View struct {
	Query   string
	Results []domain.TitleView // flat search results
	Shelves []domain.ShelfView // non-empty shelves in static order
}

// Project combines a title with the preference sets.
func Project(t domain.Title, prefs Membership) domain.TitleView {
	return domain.TitleView{
		Title:      t,
		IsFavorite: prefs.IsFavorite(t.ID),
		IsBlocked:  prefs.IsBlocked(t.ID),
	}
}

// visible is the one predicate shared by both outputs of Derive
func visible(v domain.TitleView, m Matcher) bool {
	return !v.IsBlocked && m.Match(v.Title)
}

// Derive computes search results and visible shelves. It is a pure function
// of its inputs; both outputs apply the same visibility predicate.
func Derive(c *catalog.Catalog, prefs Membership, query string) View {
	m := NewMatcher(query)

	projected := make(map[domain.TitleID]domain.TitleView, c.Len())
	results := make([]domain.TitleView, 0, c.Len())
	for _, t := range c.Titles() {
		v := Project(t, prefs)
		projected[t.ID] = v
		if visible(v, m) {
			results = append(results, v)
		}
	}

	shelves := make([]domain.ShelfView, 0, len(c.Shelves()))
	for _, shelf := range c.Shelves() {
		var titles []domain.TitleView
		for _, id := range shelf.TitleIDs {
			v, ok := projected[id]
			if !ok {
				continue
			}
			if visible(v, m) {
				titles = append(titles, v)
			}
		}
		if len(titles) == 0 {
			continue
		}
		shelves = append(shelves, domain.ShelfView{ID: shelf.ID, Name: shelf.Name, Titles: titles})
	}

	return View{Query: query, Results: results, Shelves: shelves}
}

// ResultIDs returns the ids of the search results in order
func (v View) ResultIDs() []domain.TitleID {
	ids := make([]domain.TitleID, len(v.Results))
	for i, r := range v.Results {
		ids[i] = r.ID
	}
	return ids
}
