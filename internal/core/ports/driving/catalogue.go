package driving

import (
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// CatalogueService exposes the normalised collection to external actors.
// The collection is built once at load time; every accessor is a pure,
// non-blocking read, so none of them take a context.
type CatalogueService interface {
	// Records returns the full normalised collection in source order.
	// Callers must not mutate the returned slice.
	Records() []domain.Record

	// Record returns the record with the given ID.
	// Returns domain.ErrNotFound when no record matches.
	Record(id string) (*domain.Record, error)

	// Categories returns the distinct non-empty category values, sorted
	// ascending for filter population.
	Categories() []string

	// TimePeriods returns the distinct non-empty time period values,
	// sorted ascending for filter population.
	TimePeriods() []string

	// Len returns the collection size.
	Len() int
}
