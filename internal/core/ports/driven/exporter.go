package driven

import (
	"context"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// Exporter writes a filtered subset of the collection to an external format.
type Exporter interface {
	// Export writes the records to path. When path is empty the exporter
	// chooses a unique default name. Returns the path written.
	Export(ctx context.Context, records []domain.Record, path string) (string, error)
}
