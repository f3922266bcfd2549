package catalog

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Load builds the catalog from store, falling back to the built-in tables
// when store is nil or has never been seeded.
func Load(store domain.CatalogStore, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if store == nil {
		logger.Info("using built-in catalog")
		return New(Builtin())
	}

	data, ok, err := store.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}
	if !ok {
		logger.Info("catalog snapshot not seeded, using built-in catalog")
		return New(Builtin())
	}

	c, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog snapshot: %w", err)
	}
	logger.Info("loaded catalog snapshot", "titles", c.Len(), "shelves", len(c.Shelves()), "ads", len(c.Ads()))
	return c, nil
}
