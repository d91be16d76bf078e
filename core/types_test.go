package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixShapeHelpers(t *testing.T) {
	assert.True(t, Matrix{{1, 0}, {0, 1}}.IsSquare())
	assert.True(t, Matrix{{5}}.IsSquare())
	assert.False(t, Matrix{}.IsSquare())
	assert.False(t, Matrix{{1, 2, 3}, {4, 5, 6}}.IsSquare())
	assert.False(t, Matrix{{1, 2}, {3}}.IsSquare())

	m := Matrix{{1, 2, 3}, {4, 5, 6}}
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, Matrix{}.Cols())
}

func TestDecompositionMarshalMixedPairs(t *testing.T) {
	d := Decomposition{
		Eigenpairs: []Eigenpair{
			{
				IsReal: true,
				Value:  Complex{Real: 2},
				Vector: ComplexVector{Real: []float64{1, 0}},
			},
			{
				IsReal: false,
				Value:  Complex{Real: 0, Imag: 1},
				Vector: ComplexVector{Real: []float64{0.5, 0}, Imag: []float64{0, -0.5}},
			},
		},
		Determinant: 2,
		Trace:       2,
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &got))

	// Real entries serialize as plain numbers/arrays, complex entries as
	// {real, imag} records; the wire shape is parallel arrays.
	assert.JSONEq(t, `[2, {"real":0,"imag":1}]`, string(got["eigenvalues"]))
	assert.JSONEq(t, `[[1,0], {"real":[0.5,0],"imag":[0,-0.5]}]`, string(got["eigenvectors"]))
	assert.JSONEq(t, `[true, false]`, string(got["is_real"]))
	assert.JSONEq(t, `2`, string(got["determinant"]))
	assert.JSONEq(t, `2`, string(got["trace"]))
}

func TestAlignmentMarshal(t *testing.T) {
	raw, err := json.Marshal(Alignment{IsEigenvector: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_eigenvector":false,"eigenvalue":null}`, string(raw))

	lambda := 3.0
	raw, err = json.Marshal(Alignment{IsEigenvector: true, Eigenvalue: &lambda})
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_eigenvector":true,"eigenvalue":3}`, string(raw))
}

func TestShapeErrorMessage(t *testing.T) {
	err := NewShapeError("transform", "vector has %d entries, matrix has %d columns", 3, 2)
	assert.Contains(t, err.Error(), "transform")
	assert.Contains(t, err.Error(), "vector has 3 entries")
}

func TestComputationErrorEchoesInput(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}}
	err := &ComputationError{Op: "decompose", Matrix: m, Err: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "decompose")
}
