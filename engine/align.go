package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"eigenlab/core"
)

const opAlign = "check-alignment"

// notAligned is the benign negative result shared by every soft-failure
// path in CheckAlignment.
var notAligned = core.Alignment{IsEigenvector: false}

// CheckAlignment reports whether v is approximately an eigenvector of m,
// i.e. whether m·v = λ·v for some scalar λ within tolerance. A tolerance
// of zero or below selects DefaultTolerance.
//
// Shape violations are hard errors (*core.ShapeError). Everything else
// degrades softly: a vector with norm below tolerance, a dimension the
// parallelism test is undefined for (the cross product exists only in 2D
// and 3D), or non-finite arithmetic all yield "not an eigenvector" rather
// than an error.
func (e *Engine) CheckAlignment(m core.Matrix, v core.Vector, tolerance float64) (core.Alignment, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if !m.IsSquare() {
		return notAligned, core.NewShapeError(opAlign, "matrix must be square, got %dx%d", m.Rows(), m.Cols())
	}
	if len(v) != m.Cols() {
		return notAligned, core.NewShapeError(opAlign, "vector dimension must match matrix size: vector has %d entries, matrix has %d columns", len(v), m.Cols())
	}

	norm := floats.Norm(v, 2)
	if norm < tolerance || math.IsNaN(norm) || math.IsInf(norm, 0) {
		// Degenerate input: alignment is undefined for (near-)zero vectors.
		return notAligned, nil
	}

	normalized := make(core.Vector, len(v))
	for i, x := range v {
		normalized[i] = x / norm
	}
	transformed := multiply(m, normalized)

	crossMag, ok := crossMagnitude(normalized, transformed)
	if !ok {
		e.logger.Debugw("Parallelism test undefined for dimension, reporting not aligned", "dimension", len(v))
		return notAligned, nil
	}
	if math.IsNaN(crossMag) || crossMag >= tolerance {
		return notAligned, nil
	}

	eigenvalue := floats.Dot(transformed, normalized)
	if math.IsNaN(eigenvalue) || math.IsInf(eigenvalue, 0) {
		return notAligned, nil
	}
	return core.Alignment{IsEigenvector: true, Eigenvalue: &eigenvalue}, nil
}

// crossMagnitude returns the magnitude of the generalized cross product of
// two same-length vectors. In 2D the cross product is the scalar
// a₀b₁ − a₁b₀; in 3D it is the classic vector product. For any other
// dimension the test is undefined and ok is false; extending beyond 3D
// would need a different parallelism test (component-wise λ fit).
func crossMagnitude(a, b core.Vector) (magnitude float64, ok bool) {
	switch len(a) {
	case 2:
		return math.Abs(a[0]*b[1] - a[1]*b[0]), true
	case 3:
		cx := a[1]*b[2] - a[2]*b[1]
		cy := a[2]*b[0] - a[0]*b[2]
		cz := a[0]*b[1] - a[1]*b[0]
		return math.Sqrt(cx*cx + cy*cy + cz*cz), true
	default:
		return 0, false
	}
}
