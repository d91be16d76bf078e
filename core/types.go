package core

import "encoding/json"

// Matrix is a square real matrix represented as rows of equal length.
// Inputs are treated as immutable: no operation mutates a Matrix in place.
type Matrix [][]float64

// Vector is an ordered sequence of real numbers.
type Vector []float64

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether every row has length equal to the row count.
// An empty matrix is not square.
func (m Matrix) IsSquare() bool {
	n := len(m)
	if n == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	return true
}

// Complex is a complex scalar split into parts for JSON transport.
type Complex struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// ComplexVector holds the component-wise real and imaginary parts of a
// complex vector as parallel arrays.
type ComplexVector struct {
	Real []float64 `json:"real"`
	Imag []float64 `json:"imag"`
}

// Eigenpair is one eigenvalue together with its eigenvector, tagged with
// the reality classification. For a real pair the Imag parts are zero/nil
// and only the real parts are serialized; for a complex pair the full
// {real, imag} records are serialized.
type Eigenpair struct {
	IsReal bool
	Value  Complex
	Vector ComplexVector
}

// Decomposition is the full eigendecomposition of a square matrix:
// eigenpairs in the solver's native output order (not sorted), plus the
// determinant and trace of the input.
//
// The solver does not guarantee a canonical order, and eigenvector sign
// and phase are solver-defined. Consumers must match eigenvalues by value,
// not by position.
type Decomposition struct {
	Eigenpairs  []Eigenpair
	Determinant float64
	Trace       float64
}

// decompositionJSON is the wire shape: parallel arrays, with real entries
// as plain numbers/arrays and complex entries as {real, imag} records.
type decompositionJSON struct {
	Eigenvalues  []any   `json:"eigenvalues"`
	Eigenvectors []any   `json:"eigenvectors"`
	IsReal       []bool  `json:"is_real"`
	Determinant  float64 `json:"determinant"`
	Trace        float64 `json:"trace"`
}

// MarshalJSON serializes the decomposition in the parallel-array wire
// format consumed by the UI.
func (d Decomposition) MarshalJSON() ([]byte, error) {
	out := decompositionJSON{
		Eigenvalues:  make([]any, 0, len(d.Eigenpairs)),
		Eigenvectors: make([]any, 0, len(d.Eigenpairs)),
		IsReal:       make([]bool, 0, len(d.Eigenpairs)),
		Determinant:  d.Determinant,
		Trace:        d.Trace,
	}
	for _, p := range d.Eigenpairs {
		if p.IsReal {
			out.Eigenvalues = append(out.Eigenvalues, p.Value.Real)
			out.Eigenvectors = append(out.Eigenvectors, p.Vector.Real)
		} else {
			out.Eigenvalues = append(out.Eigenvalues, p.Value)
			out.Eigenvectors = append(out.Eigenvectors, p.Vector)
		}
		out.IsReal = append(out.IsReal, p.IsReal)
	}
	return json.Marshal(out)
}

// Alignment is the result of an eigenvector alignment check. Eigenvalue is
// present iff the vector was found parallel to its transform within the
// requested tolerance.
type Alignment struct {
	IsEigenvector bool     `json:"is_eigenvector"`
	Eigenvalue    *float64 `json:"eigenvalue"`
}
