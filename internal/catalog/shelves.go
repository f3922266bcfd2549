package catalog

import "github.com/mmcdole/streamvault/internal/domain"

// topRatedThreshold is the minimum rating for the "Top Rated" shelf
const topRatedThreshold = 8.0

// headCount is how many leading titles the curated shelves take
const headCount = 5

// shelfRule selects a shelf's members from the ordered title list
type shelfRule struct {
	id     string
	name   string
	choose func(titles []domain.Title) []domain.Title
}

var shelfRules = []shelfRule{
	{id: "trending", name: "Trending Now", choose: head},
	{id: "action", name: "Action & Adventure", choose: byCategory("action")},
	{id: "popular", name: "Popular on StreamVault", choose: head},
	{id: "new", name: "New Releases", choose: head},
	{id: "top-rated", name: "Top Rated", choose: minRating(topRatedThreshold)},
}

// BuildShelves assigns static shelf membership from the title list.
// Shelf order follows shelfRules; member order follows titles.
func BuildShelves(titles []domain.Title) []domain.Shelf {
	shelves := make([]domain.Shelf, 0, len(shelfRules))
	for _, rule := range shelfRules {
		chosen := rule.choose(titles)
		ids := make([]domain.TitleID, len(chosen))
		for i, t := range chosen {
			ids[i] = t.ID
		}
		shelves = append(shelves, domain.Shelf{ID: rule.id, Name: rule.name, TitleIDs: ids})
	}
	return shelves
}

func head(titles []domain.Title) []domain.Title {
	return titles[:min(headCount, len(titles))]
}

func byCategory(category string) func([]domain.Title) []domain.Title {
	return func(titles []domain.Title) []domain.Title {
		var out []domain.Title
		for _, t := range titles {
			if t.Category == category {
				out = append(out, t)
			}
		}
		return out
	}
}

func minRating(threshold float64) func([]domain.Title) []domain.Title {
	return func(titles []domain.Title) []domain.Title {
		var out []domain.Title
		for _, t := range titles {
			if t.Rating >= threshold {
				out = append(out, t)
			}
		}
		return out
	}
}
