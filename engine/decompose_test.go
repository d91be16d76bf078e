package engine

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eigenlab/core"
)

func newTestEngine() *Engine {
	return New(zap.NewNop().Sugar())
}

// realEigenvalues collects the real eigenvalues of a decomposition, sorted
// ascending. Solver output order is not canonical, so tests compare sets.
func realEigenvalues(d *core.Decomposition) []float64 {
	var out []float64
	for _, p := range d.Eigenpairs {
		if p.IsReal {
			out = append(out, p.Value.Real)
		}
	}
	sort.Float64s(out)
	return out
}

func TestDecomposeIdentity2D(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{1, 0}, {0, 1}}, 2)
	require.NoError(t, err)
	require.Len(t, d.Eigenpairs, 2)

	for _, p := range d.Eigenpairs {
		assert.True(t, p.IsReal)
		assert.InDelta(t, 1.0, p.Value.Real, 1e-9)
	}
	assert.InDelta(t, 1.0, d.Determinant, 1e-9)
	assert.InDelta(t, 2.0, d.Trace, 1e-9)
}

func TestDecomposeScaling2D(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{2, 0}, {0, 3}}, 2)
	require.NoError(t, err)
	require.Len(t, d.Eigenpairs, 2)

	values := realEigenvalues(d)
	require.Len(t, values, 2)
	assert.InDelta(t, 2.0, values[0], 1e-9)
	assert.InDelta(t, 3.0, values[1], 1e-9)
	assert.InDelta(t, 6.0, d.Determinant, 1e-9)
	assert.InDelta(t, 5.0, d.Trace, 1e-9)
}

func TestDecomposeRotation2DIsComplex(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{0, -1}, {1, 0}}, 2)
	require.NoError(t, err)
	require.Len(t, d.Eigenpairs, 2)

	var imags []float64
	for _, p := range d.Eigenpairs {
		require.False(t, p.IsReal)
		assert.InDelta(t, 0.0, p.Value.Real, 1e-9)
		imags = append(imags, p.Value.Imag)

		// Complex eigenvectors carry the solver's raw scaling: both
		// component arrays are emitted, untouched.
		assert.Len(t, p.Vector.Real, 2)
		assert.Len(t, p.Vector.Imag, 2)
	}
	sort.Float64s(imags)
	assert.InDelta(t, -1.0, imags[0], 1e-9)
	assert.InDelta(t, 1.0, imags[1], 1e-9)
}

func TestDecomposeShearRepeatedEigenvalue(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{1, 1}, {0, 1}}, 2)
	require.NoError(t, err)

	values := realEigenvalues(d)
	require.Len(t, values, 2)
	assert.InDelta(t, 1.0, values[0], 1e-9)
	assert.InDelta(t, 1.0, values[1], 1e-9)
}

func TestDecomposeScaling3D(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, 3)
	require.NoError(t, err)
	require.Len(t, d.Eigenpairs, 3)

	values := realEigenvalues(d)
	require.Len(t, values, 3)
	assert.InDelta(t, 2.0, values[0], 1e-9)
	assert.InDelta(t, 3.0, values[1], 1e-9)
	assert.InDelta(t, 4.0, values[2], 1e-9)
	assert.InDelta(t, 24.0, d.Determinant, 1e-9)
	assert.InDelta(t, 9.0, d.Trace, 1e-9)
}

func TestDecomposeRotationAboutZ(t *testing.T) {
	e := newTestEngine()

	d, err := e.Decompose(core.Matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, 3)
	require.NoError(t, err)
	require.Len(t, d.Eigenpairs, 3)

	var realCount, complexCount int
	for _, p := range d.Eigenpairs {
		if p.IsReal {
			realCount++
			assert.InDelta(t, 1.0, p.Value.Real, 1e-9)
		} else {
			complexCount++
			assert.InDelta(t, 0.0, p.Value.Real, 1e-9)
			assert.InDelta(t, 1.0, math.Abs(p.Value.Imag), 1e-9)
		}
	}
	assert.Equal(t, 1, realCount)
	assert.Equal(t, 2, complexCount)
}

func TestDecomposeRealEigenvectorsAreUnitNorm(t *testing.T) {
	e := newTestEngine()

	matrices := []core.Matrix{
		{{3, 1}, {1, 3}},
		{{1, 0}, {0, -1}},
		{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
	}
	for _, m := range matrices {
		d, err := e.Decompose(m, len(m))
		require.NoError(t, err)
		for _, p := range d.Eigenpairs {
			if !p.IsReal {
				continue
			}
			var sum float64
			for _, x := range p.Vector.Real {
				sum += x * x
			}
			assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-6, "matrix %v", m)
		}
	}
}

func TestDecomposeShapeErrors(t *testing.T) {
	e := newTestEngine()

	cases := []struct {
		name   string
		matrix core.Matrix
		n      int
	}{
		{"3x3 submitted as 2x2", core.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 2},
		{"ragged rows", core.Matrix{{1, 0}, {0}}, 2},
		{"empty matrix", core.Matrix{}, 2},
		{"unsupported dimension", core.Matrix{{1}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Decompose(tc.matrix, tc.n)
			var shapeErr *core.ShapeError
			require.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestDecomposeNonFiniteInput(t *testing.T) {
	e := newTestEngine()

	m := core.Matrix{{math.NaN(), 0}, {0, 1}}
	_, err := e.Decompose(m, 2)

	var compErr *core.ComputationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, m, compErr.Matrix, "failing input is echoed for diagnostics")
	assert.True(t, errors.Is(err, errNonFinite))
}

func TestDecomposeIsIdempotent(t *testing.T) {
	e := newTestEngine()
	m := core.Matrix{{3, 1}, {1, 3}}

	first, err := e.Decompose(m, 2)
	require.NoError(t, err)
	second, err := e.Decompose(m, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecomposeDoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	m := core.Matrix{{3, 1}, {1, 3}}

	_, err := e.Decompose(m, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Matrix{{3, 1}, {1, 3}}, m)
}
