package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrTitleNotFound indicates the requested title id is not in the catalog
	ErrTitleNotFound = errors.New("title not found")

	// ErrEmptyCredentials indicates sign-in was attempted with no input at all
	ErrEmptyCredentials = errors.New("credentials are empty")

	// ErrNotSignedIn indicates a session-scoped action without a session
	ErrNotSignedIn = errors.New("not signed in")

	// ErrInvalidAd indicates an advertisement violates its timing constraints
	ErrInvalidAd = errors.New("invalid advertisement")

	// ErrCatalogEmpty indicates a catalog source produced no titles
	ErrCatalogEmpty = errors.New("catalog is empty")

	// ErrNothingPlaying indicates a player action with the player closed
	ErrNothingPlaying = errors.New("no title is playing")

	// ErrNoExternalPlayer indicates player.command is not configured
	ErrNoExternalPlayer = errors.New("no external player configured")
)
