package driving

import (
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// QueryService filters the normalised collection for external actors.
// Filtering recomputes from scratch against the full immutable collection
// on every call; it is a pure, non-blocking computation.
type QueryService interface {
	// Filter returns the subsequence of the collection matching the given
	// state, original relative order preserved.
	Filter(state domain.FilterState) []domain.Record

	// Summarize returns the counts and distinct filter values for the
	// given state, for the rendering layer's summary line and pickers.
	Summarize(state domain.FilterState) domain.Summary
}
