package engine

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"eigenlab/core"
)

const opDecompose = "decompose"

var (
	errNonFinite = errors.New("matrix contains non-finite entries")
	errFactorize = errors.New("eigensolver failed to factorize matrix")
)

// Decompose computes the full eigendecomposition of an n×n real matrix,
// n ∈ {2, 3}. Eigenpairs are returned in the solver's native output order;
// neither order nor eigenvector sign/phase is canonical.
//
// Real eigenvalues (|imag| < 1e-10) keep only their real parts, and the
// real eigenvector is unit-normalized when its norm exceeds 1e-10.
// Complex eigenpairs are emitted with the solver's raw scaling: complex
// eigenvectors are intentionally NOT normalized, mirroring the behavior
// the UI was built against. See the package tests for the pinned contract.
func (e *Engine) Decompose(m core.Matrix, n int) (*core.Decomposition, error) {
	if n != 2 && n != 3 {
		return nil, core.NewShapeError(opDecompose, "decomposition is defined for 2x2 and 3x3 matrices, got %dx%d", n, n)
	}
	if len(m) != n {
		return nil, core.NewShapeError(opDecompose, "matrix must be %dx%d, got %d rows", n, n, len(m))
	}
	for i, row := range m {
		if len(row) != n {
			return nil, core.NewShapeError(opDecompose, "matrix must be %dx%d, row %d has %d columns", n, n, i, len(row))
		}
	}
	if !isFinite(m) {
		return nil, &core.ComputationError{Op: opDecompose, Matrix: m, Err: errNonFinite}
	}

	dense := toDense(m, n)
	var eig mat.Eigen
	if ok := eig.Factorize(dense, mat.EigenRight); !ok {
		e.logger.Errorw("Eigendecomposition failed", "dimension", n, "matrix", m)
		return nil, &core.ComputationError{Op: opDecompose, Matrix: m, Err: errFactorize}
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	result := &core.Decomposition{
		Eigenpairs:  make([]core.Eigenpair, 0, n),
		Determinant: mat.Det(dense),
		Trace:       mat.Trace(dense),
	}
	for j, val := range values {
		result.Eigenpairs = append(result.Eigenpairs, buildEigenpair(val, column(&vectors, j, n)))
	}
	return result, nil
}

// buildEigenpair classifies one solver output pair and applies the
// real-branch normalization.
func buildEigenpair(val complex128, vec []complex128) core.Eigenpair {
	n := len(vec)
	if math.Abs(imag(val)) < realityThreshold {
		rv := make([]float64, n)
		for i, c := range vec {
			rv[i] = real(c)
		}
		if norm := floats.Norm(rv, 2); norm > normFloor {
			floats.Scale(1/norm, rv)
		}
		return core.Eigenpair{
			IsReal: true,
			Value:  core.Complex{Real: real(val)},
			Vector: core.ComplexVector{Real: rv},
		}
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range vec {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return core.Eigenpair{
		IsReal: false,
		Value:  core.Complex{Real: real(val), Imag: imag(val)},
		Vector: core.ComplexVector{Real: re, Imag: im},
	}
}

// toDense copies a Matrix into a gonum dense matrix. The input is never
// aliased, keeping Matrix immutable from the caller's point of view.
func toDense(m core.Matrix, n int) *mat.Dense {
	data := make([]float64, 0, n*n)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}

// column extracts eigenvector j (column j of the right-eigenvector matrix).
func column(vectors *mat.CDense, j, n int) []complex128 {
	col := make([]complex128, n)
	for i := range col {
		col[i] = vectors.At(i, j)
	}
	return col
}

func isFinite(m core.Matrix) bool {
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
