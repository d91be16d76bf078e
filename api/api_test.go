package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eigenlab/config"
	"eigenlab/core"
	"eigenlab/engine"
)

// testConfig returns a config with the defaults the handlers rely on,
// built directly to keep tests independent of viper state.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.API.Port = 5000
	cfg.API.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.API.RateLimit.RequestsPerSecond = 1000
	cfg.API.RateLimit.Burst = 1000
	cfg.Engine.AlignmentTolerance = 1e-6
	cfg.Engine.MaxTransformDim = 16
	return cfg
}

func newTestAPI(cfg *config.Config) *API {
	logger := zap.NewNop().Sugar()
	return NewAPI(engine.New(logger), cfg, logger)
}

// doJSON posts a JSON body and returns the recorded response.
func doJSON(a *API, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(testConfig())

	rec := doJSON(a, "GET", "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

// stubEngine lets error-path tests force engine failures.
type stubEngine struct {
	decomposeErr error
	transformErr error
	alignment    core.Alignment
}

func (s *stubEngine) Decompose(m core.Matrix, n int) (*core.Decomposition, error) {
	if s.decomposeErr != nil {
		return nil, s.decomposeErr
	}
	return &core.Decomposition{}, nil
}

func (s *stubEngine) Transform(m core.Matrix, v core.Vector) (core.Vector, error) {
	if s.transformErr != nil {
		return nil, s.transformErr
	}
	return v, nil
}

func (s *stubEngine) CheckAlignment(m core.Matrix, v core.Vector, tolerance float64) (core.Alignment, error) {
	return s.alignment, nil
}

func TestComputationErrorMapsTo500(t *testing.T) {
	cfg := testConfig()
	logger := zap.NewNop().Sugar()
	stub := &stubEngine{
		decomposeErr: &core.ComputationError{Op: "decompose", Matrix: core.Matrix{{1}}, Err: assert.AnError},
	}
	a := NewAPI(stub, cfg, logger)

	rec := doJSON(a, "POST", "/api/eigenvalues/2d", map[string]interface{}{
		"matrix": [][]float64{{1, 0}, {0, 1}},
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Computation failed", body["error"])
}

func TestShapeErrorMapsTo400(t *testing.T) {
	cfg := testConfig()
	logger := zap.NewNop().Sugar()
	stub := &stubEngine{
		decomposeErr: core.NewShapeError("decompose", "matrix must be 2x2, got 3 rows"),
	}
	a := NewAPI(stub, cfg, logger)

	rec := doJSON(a, "POST", "/api/eigenvalues/2d", map[string]interface{}{
		"matrix": [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "matrix must be 2x2")
}
