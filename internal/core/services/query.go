package services

import (
	"strings"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driving"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService filters the normalised collection against a FilterState.
// Every call recomputes from scratch; collections are small enough that
// full rescans are cheaper than incremental bookkeeping.
type QueryService struct {
	catalogue driving.CatalogueService
}

// NewQueryService creates a query service over the given catalogue.
func NewQueryService(catalogue driving.CatalogueService) *QueryService {
	return &QueryService{catalogue: catalogue}
}

// Filter returns the subsequence of the collection matching state, original
// relative order preserved. Filters are applied as a conjunction: exact
// category, exact time period, then case-insensitive substring search over
// the record's projected text fields.
func (s *QueryService) Filter(state domain.FilterState) []domain.Record {
	records := s.catalogue.Records()

	// Lower-cased once; deliberately not trimmed (see FilterState.Query).
	query := strings.ToLower(state.Query)

	matched := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if state.Category != "" && rec.Category != state.Category {
			continue
		}
		if state.TimePeriod != "" && rec.TimePeriod != state.TimePeriod {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(rec.SearchText()), query) {
			continue
		}
		matched = append(matched, rec)
	}

	logger.Debug("Filter query=%q category=%q period=%q: %d of %d",
		state.Query, state.Category, state.TimePeriod, len(matched), len(records))

	return matched
}

// Summarize returns the counts and distinct filter values for state.
func (s *QueryService) Summarize(state domain.FilterState) domain.Summary {
	return domain.Summary{
		Total:       s.catalogue.Len(),
		Filtered:    len(s.Filter(state)),
		Categories:  s.catalogue.Categories(),
		TimePeriods: s.catalogue.TimePeriods(),
	}
}
