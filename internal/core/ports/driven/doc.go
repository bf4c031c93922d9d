// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services and driving adapters depend on these interfaces, and
// infrastructure adapters implement them.
//
//   - CatalogueSource: Loads the raw collection from its concrete transport
//   - Exporter: Writes a filtered subset to an external format
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
