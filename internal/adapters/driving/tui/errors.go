package tui

import "errors"

// ErrMissingCatalogueService is returned when the catalogue service is not provided.
var ErrMissingCatalogueService = errors.New("tui: catalogue service is required")

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
