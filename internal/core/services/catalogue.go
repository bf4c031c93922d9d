package services

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driving"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// Ensure CatalogueService implements the interface.
var _ driving.CatalogueService = (*CatalogueService)(nil)

// CatalogueService holds the normalised collection and the distinct filter
// values derived from it. The collection is built once per catalogue load
// and is read-only between builds; Build may be called again to swap in a
// freshly loaded catalogue (file watch reload).
type CatalogueService struct {
	mu         sync.RWMutex
	normalizer *Normalizer
	records    []domain.Record
	byID       map[string]int
	categories []string
	periods    []string
}

// NewCatalogueService creates an empty catalogue service.
func NewCatalogueService(normalizer *Normalizer) *CatalogueService {
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	return &CatalogueService{
		normalizer: normalizer,
		byID:       make(map[string]int),
	}
}

// Build normalises the raw collection, preserving source order, and
// recomputes the distinct category and time period sets.
// An empty raw collection yields an empty collection and empty sets.
func (s *CatalogueService) Build(raw domain.RawCollection) {
	logger.Section("Catalogue Build")
	logger.Debug("Raw entries: %d", len(raw))

	records := make([]domain.Record, 0, len(raw))
	byID := make(map[string]int, len(raw))
	for _, entry := range raw {
		rec := s.normalizer.Normalize(entry.Title, entry.Record)
		byID[rec.ID] = len(records)
		records = append(records, rec)
	}

	categories := distinctValues(records, func(r domain.Record) string { return r.Category })
	periods := distinctValues(records, func(r domain.Record) string { return r.TimePeriod })

	logger.Info("Built %d records, %d categories, %d time periods",
		len(records), len(categories), len(periods))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.byID = byID
	s.categories = categories
	s.periods = periods
}

// Records returns the normalised collection in source order.
// Callers must not mutate the returned slice.
func (s *CatalogueService) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Record returns the record with the given ID.
func (s *CatalogueService) Record(id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec := s.records[i]
	return &rec, nil
}

// Categories returns the distinct non-empty category values, sorted.
func (s *CatalogueService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// TimePeriods returns the distinct non-empty time period values, sorted.
func (s *CatalogueService) TimePeriods() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.periods
}

// Len returns the collection size.
func (s *CatalogueService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// distinctValues collects the distinct non-empty values of one field across
// the collection, sorted ascending with locale-aware collation for filter
// population.
func distinctValues(records []domain.Record, field func(domain.Record) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, rec := range records {
		v := field(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	collate.New(language.English).SortStrings(values)
	return values
}
