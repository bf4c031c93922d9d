package driven

import (
	"context"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// CatalogueSource loads the raw collection from its concrete transport.
// The core does not own any file format; sources must preserve the source
// document's entry and field order.
type CatalogueSource interface {
	// Load reads and parses the raw collection.
	Load(ctx context.Context) (domain.RawCollection, error)

	// Path returns the source location for display and watching.
	Path() string
}
