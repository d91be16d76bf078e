package core

import "fmt"

// ShapeError reports a dimension precondition violation: a matrix of the
// wrong size, a non-square matrix, or a vector whose length does not match
// the matrix. It is always surfaced to the caller and never silently
// corrected.
type ShapeError struct {
	// Op is the operation that rejected the input ("decompose",
	// "transform", "check-alignment").
	Op string
	// Detail names the violated constraint in caller-facing terms.
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("eigenlab: %s: %s", e.Op, e.Detail)
}

// NewShapeError builds a ShapeError for op with a formatted detail message.
func NewShapeError(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// ComputationError reports a numerical failure during eigensolving or
// arithmetic (non-finite input, a solver that failed to converge). The
// offending matrix is echoed for diagnostics.
type ComputationError struct {
	Op     string
	Matrix Matrix
	Err    error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("eigenlab: %s: computation failed for matrix %v: %v", e.Op, e.Matrix, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }
