package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"eigenlab/core"
)

const opTransform = "transform"

// Transform computes the matrix-vector product for a square matrix of any
// size N ≥ 1. Each output entry is the dot product of the corresponding
// matrix row with the input vector. No normalization is applied.
func (e *Engine) Transform(m core.Matrix, v core.Vector) (core.Vector, error) {
	if !m.IsSquare() {
		return nil, core.NewShapeError(opTransform, "matrix must be square, got %dx%d", m.Rows(), m.Cols())
	}
	if len(v) != m.Cols() {
		return nil, core.NewShapeError(opTransform, "vector dimension must match matrix size: vector has %d entries, matrix has %d columns", len(v), m.Cols())
	}

	out := multiply(m, v)
	for _, x := range out {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &core.ComputationError{Op: opTransform, Matrix: m, Err: errNonFinite}
		}
	}
	return out, nil
}

// multiply is the shared row-dot-vector product. Callers have already
// checked shapes.
func multiply(m core.Matrix, v core.Vector) core.Vector {
	out := make(core.Vector, len(m))
	for i, row := range m {
		out[i] = floats.Dot(row, v)
	}
	return out
}
