package domain

import (
	"fmt"
	"strings"
)

// TitleID identifies a catalog entry. Stable for the process lifetime.
type TitleID int

// FeaturedTitleID is reserved for the hero title, which is playable but not
// part of the browsable catalog.
const FeaturedTitleID TitleID = 0

// Title is a catalog entry (movie or show) with static metadata.
// Titles never carry per-user state; see TitleView.
type Title struct {
	ID          TitleID  `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"` // 0-10 audience rating
	Year        int      `json:"year"`
	Genres      []string `json:"genres"`
	Duration    string   `json:"duration"` // Display string, e.g. "2h 27m"
	Category    string   `json:"category"`

	// Image URLs
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
}

// GenreList returns the genres joined for display
func (t Title) GenreList() string {
	return strings.Join(t.Genres, ", ")
}

// Subtitle returns secondary info for list rendering (e.g. "2008 · 9.0")
func (t Title) Subtitle() string {
	if t.Year > 0 {
		return fmt.Sprintf("%d · %.1f", t.Year, t.Rating)
	}
	return fmt.Sprintf("%.1f", t.Rating)
}

// TitleView is a Title projected against the session's preference sets.
// It is rebuilt on every derivation and never cached on the Title itself.
type TitleView struct {
	Title
	IsFavorite bool
	IsBlocked  bool
}

// Featured describes the hero banner. Title is resolvable for playback.
type Featured struct {
	Title         Title  `json:"title"`
	ContentRating string `json:"contentRating"` // e.g. "TV-14"
	Seasons       string `json:"seasons"`       // e.g. "4 Seasons"
}

// Shelf is a named, ordered grouping of titles. Membership is static.
type Shelf struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	TitleIDs []TitleID `json:"titleIds"`
}

// ShelfView is a Shelf after block exclusion and query matching.
type ShelfView struct {
	ID     string
	Name   string
	Titles []TitleView
}

// Advertisement is an interstitial played before content on ad-supported tiers.
type Advertisement struct {
	ID               int    `json:"id"`
	Brand            string `json:"brand"`
	Headline         string `json:"headline"`
	Description      string `json:"description"`
	ImageURL         string `json:"imageUrl"`
	DurationSeconds  int    `json:"durationSeconds"`
	SkipAfterSeconds int    `json:"skipAfterSeconds"`
}

// Validate checks 0 <= SkipAfterSeconds <= DurationSeconds
func (a Advertisement) Validate() error {
	if a.DurationSeconds <= 0 {
		return fmt.Errorf("%w: ad %d has non-positive duration %d", ErrInvalidAd, a.ID, a.DurationSeconds)
	}
	if a.SkipAfterSeconds < 0 || a.SkipAfterSeconds > a.DurationSeconds {
		return fmt.Errorf("%w: ad %d skip-after %d outside [0, %d]", ErrInvalidAd, a.ID, a.SkipAfterSeconds, a.DurationSeconds)
	}
	return nil
}

// Tier is the subscription level of a session
type Tier int

const (
	TierBasic Tier = iota
	TierPremium
)

// String returns a human-readable representation of the tier
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierPremium:
		return "premium"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized tier name
func (t Tier) DisplayName() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierPremium:
		return "Premium"
	default:
		return "Unknown"
	}
}

// Plan describes what a tier includes
type Plan struct {
	Tier     Tier     `json:"tier"`
	HasAds   bool     `json:"hasAds"`
	Features []string `json:"features"`
}

// PlanOffer is an informational price card shown in the billing tab.
type PlanOffer struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}
