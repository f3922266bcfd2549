package catalog

import (
	"errors"
	"testing"

	"github.com/mmcdole/streamvault/internal/domain"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

type memStore struct {
	data   domain.CatalogData
	seeded bool
	err    error
}

func (s *memStore) LoadCatalog() (domain.CatalogData, bool, error) { return s.data, s.seeded, s.err }
func (s *memStore) SaveCatalog(data domain.CatalogData) error {
	s.data, s.seeded = data, true
	return nil
}
func (s *memStore) Close() error { return nil }

func TestBuiltinShelves(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("New(Builtin()): %v", err)
	}

	want := map[string][]domain.TitleID{
		"trending":  {1, 2, 3, 4, 5},
		"action":    {1, 2, 3, 4, 5},
		"popular":   {1, 2, 3, 4, 5},
		"new":       {1, 2, 3, 4, 5},
		"top-rated": {1, 2, 3},
	}

	shelves := c.Shelves()
	if len(shelves) != len(want) {
		t.Fatalf("got %d shelves, want %d", len(shelves), len(want))
	}
	if shelves[0].Name != "Trending Now" || shelves[4].Name != "Top Rated" {
		t.Errorf("unexpected shelf order: %q ... %q", shelves[0].Name, shelves[4].Name)
	}
	for _, shelf := range shelves {
		ids := want[shelf.ID]
		if len(ids) != len(shelf.TitleIDs) {
			t.Errorf("shelf %s: got %v, want %v", shelf.ID, shelf.TitleIDs, ids)
			continue
		}
		for i := range ids {
			if ids[i] != shelf.TitleIDs[i] {
				t.Errorf("shelf %s: got %v, want %v", shelf.ID, shelf.TitleIDs, ids)
				break
			}
		}
	}
}

func TestLookup(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if title, err := c.Lookup(1); err != nil || title.Name != "The Dark Knight" {
		t.Errorf("Lookup(1) = %q, %v", title.Name, err)
	}

	featured, err := c.Lookup(domain.FeaturedTitleID)
	if err != nil {
		t.Fatalf("Lookup(featured): %v", err)
	}
	if featured.Name != "Stranger Things" {
		t.Errorf("featured = %q, want Stranger Things", featured.Name)
	}
	if c.Has(domain.FeaturedTitleID) {
		t.Error("featured title must not be part of the browsable catalog")
	}

	if _, err := c.Lookup(99); !errors.Is(err, domain.ErrTitleNotFound) {
		t.Errorf("Lookup(99) error = %v, want ErrTitleNotFound", err)
	}
}

func TestNewRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *domain.CatalogData)
	}{
		{"empty", func(d *domain.CatalogData) { d.Titles = nil }},
		{"duplicate id", func(d *domain.CatalogData) { d.Titles[1].ID = d.Titles[0].ID }},
		{"reserved id", func(d *domain.CatalogData) { d.Titles[0].ID = domain.FeaturedTitleID }},
		{"shelf references unknown title", func(d *domain.CatalogData) {
			d.Shelves[0].TitleIDs = append(d.Shelves[0].TitleIDs, 42)
		}},
		{"skip after duration", func(d *domain.CatalogData) { d.Ads[0].SkipAfterSeconds = d.Ads[0].DurationSeconds + 1 }},
		{"negative skip", func(d *domain.CatalogData) { d.Ads[0].SkipAfterSeconds = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := Builtin()
			tc.mutate(&data)
			if _, err := New(data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPickAd(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ad, ok := c.PickAd(fixedPicker(1))
	if !ok || ad.Brand != "Firefox" {
		t.Errorf("PickAd(1) = %q, %v; want Firefox", ad.Brand, ok)
	}

	data := Builtin()
	data.Ads = nil
	empty, err := New(data)
	if err != nil {
		t.Fatalf("New without ads: %v", err)
	}
	if _, ok := empty.PickAd(fixedPicker(0)); ok {
		t.Error("PickAd on empty pool should report false")
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Load(nil) has %d titles, want 5", c.Len())
	}

	c, err = Load(&memStore{}, nil)
	if err != nil {
		t.Fatalf("Load(unseeded): %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("Load(unseeded) has %d titles, want 5", c.Len())
	}

	data := Builtin()
	data.Titles = data.Titles[:2]
	data.Shelves = nil
	seeded := &memStore{data: data, seeded: true}
	c, err = Load(seeded, nil)
	if err != nil {
		t.Fatalf("Load(seeded): %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d titles, want 2", c.Len())
	}
	if len(c.Shelves()) == 0 {
		t.Error("shelves should be rebuilt when the snapshot has none")
	}

	broken := &memStore{err: errors.New("disk on fire")}
	if _, err := Load(broken, nil); err == nil {
		t.Error("expected store error to propagate")
	}
}

func TestDataRoundTrip(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	again, err := New(c.Data())
	if err != nil {
		t.Fatalf("New(Data()): %v", err)
	}
	if again.Len() != c.Len() || len(again.Ads()) != len(c.Ads()) {
		t.Error("Data() lost catalog content")
	}
	if _, ok := again.Plan(domain.TierPremium); !ok {
		t.Error("premium plan missing after round trip")
	}
}
