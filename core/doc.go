// Package core defines the domain model for EigenLab.
//
// The core package provides:
//   - Domain types (Matrix, Vector, Eigenpair, Decomposition, Alignment)
//   - Typed errors shared between the engine and the transport layer
//   - The static preset matrix catalog served by the API
//
// Types in this package are plain data carriers: they hold no behavior
// beyond JSON marshaling and are safe to share across goroutines because
// they are never mutated after construction. All numerical work lives in
// the engine package.
package core
