package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runEig executes the eig command tree with args and captures its output.
func runEig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewEigCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix("[[2,0],[0,3]]")
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, []float64{2, 0}, m[0])

	_, err = parseMatrix("not json")
	assert.Error(t, err)

	_, err = parseMatrix("[]")
	assert.Error(t, err)
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("[3,4]")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, []float64(v))

	_, err = parseVector("{}")
	assert.Error(t, err)

	_, err = parseVector("[]")
	assert.Error(t, err)
}

func TestDecomposeCommandText(t *testing.T) {
	out, err := runEig(t, "decompose", "-m", "[[2,0],[0,3]]")
	require.NoError(t, err)
	assert.Contains(t, out, "Eigendecomposition")
	assert.Contains(t, out, "determinant = 6")
	assert.Contains(t, out, "trace = 5")
}

func TestDecomposeCommandJSON(t *testing.T) {
	out, err := runEig(t, "decompose", "-m", "[[1,0],[0,1]]", "-o", "json")
	require.NoError(t, err)

	var body struct {
		Eigenvalues []float64 `json:"eigenvalues"`
		IsReal      []bool    `json:"is_real"`
		Determinant float64   `json:"determinant"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, []bool{true, true}, body.IsReal)
	assert.InDelta(t, 1.0, body.Determinant, 1e-9)
}

func TestDecomposeCommandRejectsBadMatrix(t *testing.T) {
	_, err := runEig(t, "decompose", "-m", "[[1,0],[0,1],[0,0]]")
	assert.Error(t, err)
}

func TestTransformCommand(t *testing.T) {
	out, err := runEig(t, "transform", "-m", "[[0,-1],[1,0]]", "-v", "[1,0]")
	require.NoError(t, err)
	assert.Contains(t, out, "Transformed:")
	assert.Contains(t, out, "[0, 1]")
}

func TestCheckCommand(t *testing.T) {
	out, err := runEig(t, "check", "-m", "[[2,0],[0,3]]", "-v", "[1,0]")
	require.NoError(t, err)
	assert.Contains(t, out, "Eigenvector:")
	assert.Contains(t, out, "eigenvalue = 2")

	out, err = runEig(t, "check", "-m", "[[2,0],[0,3]]", "-v", "[1,1]")
	require.NoError(t, err)
	assert.Contains(t, out, "Not an eigenvector")
}

func TestPresetsCommandYAML(t *testing.T) {
	out, err := runEig(t, "presets", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Identity Matrix")
	assert.Contains(t, out, "3d")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := runEig(t, "presets", "-o", "csv")
	assert.Error(t, err)
}
