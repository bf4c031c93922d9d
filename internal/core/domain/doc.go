// Package domain defines the core business entities for Shoal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: The ordered raw field list for one catalogue entry
//   - Record: A normalised catalogue record with a fixed schema
//   - FilterState: The user's current query and filter selections
//   - Summary: Result counts and distinct filter values for display
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
