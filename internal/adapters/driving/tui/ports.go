// Package tui provides an interactive terminal user interface for shoal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalogue provides access to the normalised record collection.
	Catalogue driving.CatalogueService

	// Query filters the collection against the current filter state.
	Query driving.QueryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalogue driving.CatalogueService, query driving.QueryService) *Ports {
	return &Ports{
		Catalogue: catalogue,
		Query:     query,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalogue == nil {
		return ErrMissingCatalogueService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
