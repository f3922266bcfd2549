package domain

// CatalogStore persists a catalog snapshot.
// The storefront loads from it once at startup and never writes during a session.
type CatalogStore interface {
	// LoadCatalog returns the stored snapshot; ok is false when none was seeded
	LoadCatalog() (data CatalogData, ok bool, err error)

	// SaveCatalog replaces the stored snapshot
	SaveCatalog(data CatalogData) error

	Close() error
}
