package search

import (
	"slices"
	"testing"

	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
)

type sets struct {
	favorites map[domain.TitleID]bool
	blocked   map[domain.TitleID]bool
}

func (s sets) IsFavorite(id domain.TitleID) bool { return s.favorites[id] }
func (s sets) IsBlocked(id domain.TitleID) bool  { return s.blocked[id] }

func prefs(favorites, blocked []domain.TitleID) sets {
	s := sets{favorites: map[domain.TitleID]bool{}, blocked: map[domain.TitleID]bool{}}
	for _, id := range favorites {
		s.favorites[id] = true
	}
	for _, id := range blocked {
		s.blocked[id] = true
	}
	return s
}

func builtin(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Builtin())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestMatcher(t *testing.T) {
	title := domain.Title{
		Name:        "Inception",
		Genres:      []string{"Action", "Sci-Fi"},
		Description: "Dream-sharing technology",
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"incep", true},
		{"INCEPTION", true},
		{"sci-fi", true},
		{"dream", true},
		{" dream ", true},
		{"Technology", true},
		{"horror", false},
		{"inceptionx", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := NewMatcher(tt.query).Match(title); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestDeriveBlockedAndQuery(t *testing.T) {
	c, err := catalog.New(domain.CatalogData{
		Titles: []domain.Title{
			{ID: 1, Name: "The Dark Knight", Category: "action", Rating: 9.0},
			{ID: 2, Name: "Inception", Category: "action", Rating: 8.8},
			{ID: 3, Name: "Mad Max: Fury Road", Category: "action", Rating: 8.1},
		},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	p := prefs([]domain.TitleID{1, 2, 3}, []domain.TitleID{2})

	v := Derive(c, p, "")
	if got := v.ResultIDs(); !slices.Equal(got, []domain.TitleID{1, 3}) {
		t.Errorf("empty query results = %v, want [1 3]", got)
	}

	v = Derive(c, p, "dark")
	if got := v.ResultIDs(); !slices.Equal(got, []domain.TitleID{1}) {
		t.Errorf("query dark results = %v, want [1]", got)
	}
	if !v.Results[0].IsFavorite || v.Results[0].IsBlocked {
		t.Errorf("projection flags wrong: %+v", v.Results[0])
	}
	for _, shelf := range v.Shelves {
		for _, tv := range shelf.Titles {
			if tv.ID != 1 {
				t.Errorf("shelf %s contains %d, want only 1", shelf.ID, tv.ID)
			}
		}
	}
}

func TestDeriveDropsEmptyShelves(t *testing.T) {
	c := builtin(t)

	// Inception, Mad Max and The Dark Knight make up the whole top-rated shelf.
	v := Derive(c, prefs(nil, []domain.TitleID{1, 2, 3}), "")
	for _, shelf := range v.Shelves {
		if shelf.ID == "top-rated" {
			t.Errorf("top-rated shelf should be dropped, got %+v", shelf)
		}
		if len(shelf.Titles) == 0 {
			t.Errorf("shelf %s is empty", shelf.ID)
		}
	}
	if len(v.Shelves) != 4 {
		t.Errorf("got %d shelves, want 4", len(v.Shelves))
	}

	if v := Derive(c, prefs(nil, nil), "no such title anywhere"); len(v.Results) != 0 || len(v.Shelves) != 0 {
		t.Errorf("unmatched query: got %d results, %d shelves", len(v.Results), len(v.Shelves))
	}
}

func TestDerivePreservesOrder(t *testing.T) {
	c := builtin(t)
	v := Derive(c, prefs(nil, []domain.TitleID{3}), "")

	if got := v.ResultIDs(); !slices.Equal(got, []domain.TitleID{1, 2, 4, 5}) {
		t.Errorf("results = %v, want [1 2 4 5]", got)
	}

	wantShelves := []string{"trending", "action", "popular", "new", "top-rated"}
	var gotShelves []string
	for _, s := range v.Shelves {
		gotShelves = append(gotShelves, s.ID)
	}
	if !slices.Equal(gotShelves, wantShelves) {
		t.Errorf("shelf order = %v, want %v", gotShelves, wantShelves)
	}
}

// Every shelf entry must also be a search result, and nothing blocked may
// appear in either output, across a spread of queries and block sets.
func TestDeriveConsistency(t *testing.T) {
	c := builtin(t)
	queries := []string{"", "a", "ACTION", "sci", "dream", "wick", "zzz", " the "}
	blockSets := [][]domain.TitleID{nil, {1}, {2, 4}, {1, 2, 3, 4, 5}}

	for _, q := range queries {
		for _, blocked := range blockSets {
			p := prefs([]domain.TitleID{1}, blocked)
			v := Derive(c, p, q)

			inResults := map[domain.TitleID]bool{}
			for _, r := range v.Results {
				if r.IsBlocked || p.IsBlocked(r.ID) {
					t.Errorf("q=%q blocked=%v: blocked title %d in results", q, blocked, r.ID)
				}
				inResults[r.ID] = true
			}
			for _, s := range v.Shelves {
				if len(s.Titles) == 0 {
					t.Errorf("q=%q blocked=%v: empty shelf %s", q, blocked, s.ID)
				}
				for _, tv := range s.Titles {
					if !inResults[tv.ID] {
						t.Errorf("q=%q blocked=%v: shelf %s has %d missing from results", q, blocked, s.ID, tv.ID)
					}
				}
			}

			if NewMatcher(q).Empty() && len(v.Results)+len(blocked) != c.Len() {
				t.Errorf("q=%q blocked=%v: got %d results", q, blocked, len(v.Results))
			}
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	c := builtin(t)
	p := prefs([]domain.TitleID{1, 2}, []domain.TitleID{4})

	a := Derive(c, p, "action")
	b := Derive(c, p, "action")
	if !slices.Equal(a.ResultIDs(), b.ResultIDs()) || len(a.Shelves) != len(b.Shelves) {
		t.Errorf("Derive not deterministic: %v vs %v", a.ResultIDs(), b.ResultIDs())
	}
}

func TestSuggest(t *testing.T) {
	c := builtin(t)

	tests := []struct {
		name    string
		query   string
		blocked []domain.TitleID
		want    []string
	}{
		{"subsequence", "mdmx", nil, []string{"Mad Max: Fury Road"}},
		{"typo", "inseption", nil, []string{"Inception"}},
		{"blocked never suggested", "inseption", []domain.TitleID{2}, []string{}},
		{"empty query", "", nil, nil},
		{"nothing close", "qqqqqqqq", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(c, prefs(nil, tt.blocked), tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestJump(t *testing.T) {
	c := builtin(t)
	results := Derive(c, prefs(nil, []domain.TitleID{1}), "").Results

	all := Jump("", results)
	if len(all) != len(results) {
		t.Fatalf("empty pattern: got %d, want %d", len(all), len(results))
	}

	matches := Jump("wick", results)
	if len(matches) == 0 || matches[0].View.ID != 4 {
		t.Fatalf("Jump(wick) = %+v, want John Wick first", matches)
	}
	if len(matches[0].MatchedIndexes) != 4 {
		t.Errorf("matched indexes = %v, want 4 positions", matches[0].MatchedIndexes)
	}

	for _, m := range Jump("dark", results) {
		if m.View.ID == 1 {
			t.Errorf("blocked title surfaced in jump palette")
		}
	}
}
