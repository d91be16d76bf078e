// Package engine implements the EigenLab numerical core: eigendecomposition
// of 2×2 and 3×3 real matrices, matrix-vector transformation, and the
// eigenvector alignment check.
//
// All operations are pure functions over their inputs: no shared mutable
// state, no I/O, no blocking. A single Engine may be used concurrently from
// any number of goroutines without locking.
//
// Error policy is deliberately asymmetric. Decompose and Transform propagate
// failures (*core.ShapeError for precondition violations, *core.ComputationError
// for numerical failures). CheckAlignment propagates shape errors but converts
// any internal computation failure into a benign "not an eigenvector" result:
// alignment checking is an advisory predicate and must never crash the caller.
package engine
