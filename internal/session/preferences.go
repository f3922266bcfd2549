package session

import (
	"slices"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Preferences holds the session-scoped favorite and blocked sets.
// Toggles on ids the catalog does not know are no-ops.
type Preferences struct {
	known     func(domain.TitleID) bool
	favorites map[domain.TitleID]struct{}
	blocked   map[domain.TitleID]struct{}

	// revision increments on every effective toggle, favorites included
	revision uint64
}

// NewPreferences seeds the favorite set; unknown ids are dropped
func NewPreferences(known func(domain.TitleID) bool, initialFavorites []domain.TitleID) *Preferences {
	p := &Preferences{
		known:     known,
		favorites: make(map[domain.TitleID]struct{}),
		blocked:   make(map[domain.TitleID]struct{}),
	}
	for _, id := range initialFavorites {
		if known(id) {
			p.favorites[id] = struct{}{}
		}
	}
	return p
}

// ToggleFavorite flips favorite membership. It returns the new membership
// and whether the toggle took effect.
func (p *Preferences) ToggleFavorite(id domain.TitleID) (on, ok bool) {
	return p.toggle(p.favorites, id)
}

// ToggleBlocked flips blocked membership. It returns the new membership
// and whether the toggle took effect.
func (p *Preferences) ToggleBlocked(id domain.TitleID) (on, ok bool) {
	return p.toggle(p.blocked, id)
}

func (p *Preferences) toggle(set map[domain.TitleID]struct{}, id domain.TitleID) (bool, bool) {
	if !p.known(id) {
		return false, false
	}
	p.revision++
	if _, in := set[id]; in {
		delete(set, id)
		return false, true
	}
	set[id] = struct{}{}
	return true, true
}

// IsFavorite reports favorite membership
func (p *Preferences) IsFavorite(id domain.TitleID) bool {
	_, ok := p.favorites[id]
	return ok
}

// IsBlocked reports blocked membership
func (p *Preferences) IsBlocked(id domain.TitleID) bool {
	_, ok := p.blocked[id]
	return ok
}

// Revision changes whenever either set changes
func (p *Preferences) Revision() uint64 {
	return p.revision
}

// FavoriteIDs returns favorite ids in ascending order
func (p *Preferences) FavoriteIDs() []domain.TitleID {
	return sortedIDs(p.favorites)
}

// BlockedIDs returns blocked ids in ascending order
func (p *Preferences) BlockedIDs() []domain.TitleID {
	return sortedIDs(p.blocked)
}

func sortedIDs(set map[domain.TitleID]struct{}) []domain.TitleID {
	ids := make([]domain.TitleID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
