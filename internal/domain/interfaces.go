package domain

import "time"

// Task is a scheduled callback that can be cancelled before it fires.
type Task interface {
	// Cancel prevents the callback from running. Safe to call more than once.
	Cancel()
}

// Scheduler runs callbacks after a delay on the caller's event loop.
// Implementations must never run a callback concurrently with the code
// that scheduled it.
type Scheduler interface {
	Schedule(after time.Duration, fire func()) Task
}

// CatalogData is the raw material of a catalog, as loaded from a source.
type CatalogData struct {
	Titles     []Title         `json:"titles"`
	Featured   *Featured       `json:"featured,omitempty"`
	Shelves    []Shelf         `json:"shelves"`
	Ads        []Advertisement `json:"ads"`
	Plans      []Plan          `json:"plans"`
	PlanOffers []PlanOffer     `json:"planOffers"`
}
