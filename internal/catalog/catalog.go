package catalog

import (
	"fmt"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// Catalog is the immutable title/shelf/ad/plan table set.
// It is built once at startup and shared read-only by every session.
type Catalog struct {
	titles   []domain.Title
	byID     map[domain.TitleID]int
	featured *domain.Featured
	shelves  []domain.Shelf
	ads      []domain.Advertisement
	plans    map[domain.Tier]domain.Plan
	offers   []domain.PlanOffer
}

// New validates data and builds a Catalog.
// Shelves are derived from the titles when data carries none.
func New(data domain.CatalogData) (*Catalog, error) {
	if len(data.Titles) == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	c := &Catalog{
		titles: make([]domain.Title, len(data.Titles)),
		byID:   make(map[domain.TitleID]int, len(data.Titles)),
		plans:  make(map[domain.Tier]domain.Plan, len(data.Plans)),
	}
	copy(c.titles, data.Titles)

	for i, t := range c.titles {
		if t.ID == domain.FeaturedTitleID {
			return nil, fmt.Errorf("title %q uses reserved id %d", t.Name, t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate title id %d", t.ID)
		}
		c.byID[t.ID] = i
	}

	if data.Featured != nil {
		featured := *data.Featured
		featured.Title.ID = domain.FeaturedTitleID
		c.featured = &featured
	}

	shelves := data.Shelves
	if len(shelves) == 0 {
		shelves = BuildShelves(c.titles)
	}
	for _, shelf := range shelves {
		for _, id := range shelf.TitleIDs {
			if _, ok := c.byID[id]; !ok {
				return nil, fmt.Errorf("shelf %q: %w: %d", shelf.ID, domain.ErrTitleNotFound, id)
			}
		}
	}
	c.shelves = shelves

	for _, ad := range data.Ads {
		if err := ad.Validate(); err != nil {
			return nil, err
		}
	}
	c.ads = append([]domain.Advertisement(nil), data.Ads...)

	for _, p := range data.Plans {
		c.plans[p.Tier] = p
	}
	c.offers = append([]domain.PlanOffer(nil), data.PlanOffers...)

	return c, nil
}

// Titles returns the flat browsable catalog in load order
func (c *Catalog) Titles() []domain.Title {
	return c.titles
}

// Len returns the number of browsable titles
func (c *Catalog) Len() int {
	return len(c.titles)
}

// Has reports whether id names a browsable title
func (c *Catalog) Has(id domain.TitleID) bool {
	_, ok := c.byID[id]
	return ok
}

// Title returns a browsable title or the featured title by id
func (c *Catalog) Title(id domain.TitleID) (domain.Title, bool) {
	if i, ok := c.byID[id]; ok {
		return c.titles[i], true
	}
	if id == domain.FeaturedTitleID && c.featured != nil {
		return c.featured.Title, true
	}
	return domain.Title{}, false
}

// Lookup is Title with a NotFound error for unknown ids
func (c *Catalog) Lookup(id domain.TitleID) (domain.Title, error) {
	t, ok := c.Title(id)
	if !ok {
		return domain.Title{}, fmt.Errorf("%w: %d", domain.ErrTitleNotFound, id)
	}
	return t, nil
}

// Featured returns the hero banner, if the catalog has one
func (c *Catalog) Featured() (domain.Featured, bool) {
	if c.featured == nil {
		return domain.Featured{}, false
	}
	return *c.featured, true
}

// Shelves returns the static shelf membership
func (c *Catalog) Shelves() []domain.Shelf {
	return c.shelves
}

// Ads returns the advertisement pool
func (c *Catalog) Ads() []domain.Advertisement {
	return c.ads
}

// PickAd selects an ad uniformly at random. Selection is not remembered,
// so the same ad may be picked twice in a row.
func (c *Catalog) PickAd(p Picker) (domain.Advertisement, bool) {
	if len(c.ads) == 0 {
		return domain.Advertisement{}, false
	}
	return c.ads[p.IntN(len(c.ads))], true
}

// Plan returns the plan for a tier
func (c *Catalog) Plan(tier domain.Tier) (domain.Plan, bool) {
	p, ok := c.plans[tier]
	return p, ok
}

// Offers returns the informational plan price cards
func (c *Catalog) Offers() []domain.PlanOffer {
	return c.offers
}

// Data returns the catalog as raw tables, suitable for seeding a store
func (c *Catalog) Data() domain.CatalogData {
	data := domain.CatalogData{
		Titles:     append([]domain.Title(nil), c.titles...),
		Shelves:    append([]domain.Shelf(nil), c.shelves...),
		Ads:        append([]domain.Advertisement(nil), c.ads...),
		PlanOffers: append([]domain.PlanOffer(nil), c.offers...),
	}
	if c.featured != nil {
		featured := *c.featured
		data.Featured = &featured
	}
	for _, tier := range []domain.Tier{domain.TierBasic, domain.TierPremium} {
		if p, ok := c.plans[tier]; ok {
			data.Plans = append(data.Plans, p)
		}
	}
	return data
}
