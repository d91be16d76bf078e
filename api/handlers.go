package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"eigenlab/core"
	"eigenlab/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// maxRequestBody caps request payloads; matrices here are tiny.
const maxRequestBody = 1 << 20

// respondJSON writes a JSON response with proper error handling
func (a *API) respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorw("Failed to encode JSON response",
			"error", err,
			"data_type", fmt.Sprintf("%T", data))
		// Response already started, can't send error to client
	}
}

// respondError writes the {"error": ...} payload the UI expects.
func (a *API) respondError(w http.ResponseWriter, message string, statusCode int) {
	a.respondJSON(w, map[string]string{"error": message}, statusCode)
}

// decodeRequest decodes and validates a JSON request body into dst.
// It reports whether the request can proceed, writing the error response
// itself when it cannot.
func (a *API) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		a.respondError(w, "Invalid JSON payload", http.StatusBadRequest)
		return false
	}
	if err := a.validate.Struct(dst); err != nil {
		a.respondError(w, "Matrix (and vector, where applicable) are required", http.StatusBadRequest)
		return false
	}
	return true
}

// respondEngineError maps engine failures onto HTTP statuses: shape
// violations are the client's fault (400), numerical failures are 500.
func (a *API) respondEngineError(w http.ResponseWriter, op string, err error) {
	var shapeErr *core.ShapeError
	if errors.As(err, &shapeErr) {
		a.respondError(w, shapeErr.Detail, http.StatusBadRequest)
		return
	}
	metrics.ComputationErrors.WithLabelValues(op).Inc()
	a.logger.Errorw("Computation failed", "operation", op, "error", err)
	a.respondError(w, "Computation failed", http.StatusInternalServerError)
}

type decomposeRequest struct {
	Matrix core.Matrix `json:"matrix" validate:"required,min=1"`
}

type transformRequest struct {
	Matrix core.Matrix `json:"matrix" validate:"required,min=1"`
	Vector core.Vector `json:"vector" validate:"required,min=1"`
}

type checkEigenvectorRequest struct {
	Matrix    core.Matrix `json:"matrix" validate:"required,min=1"`
	Vector    core.Vector `json:"vector" validate:"required,min=1"`
	Tolerance float64     `json:"tolerance"`
}

// healthCheck godoc
//
//	@Summary		Health check
//	@Description	Reports whether the service is up
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/health [get]
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, map[string]string{
		"status":  "healthy",
		"message": "EigenLab backend is running",
	}, http.StatusOK)
}

// decompose2D godoc
//
//	@Summary		2x2 eigendecomposition
//	@Description	Computes eigenvalues, eigenvectors, determinant and trace of a 2x2 matrix
//	@Tags			eigenvalues
//	@Accept			json
//	@Produce		json
//	@Param			request	body		decomposeRequest	true	"Matrix payload"
//	@Success		200		{object}	core.Decomposition
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/eigenvalues/2d [post]
func (a *API) decompose2D(w http.ResponseWriter, r *http.Request) {
	a.decompose(w, r, 2)
}

// decompose3D godoc
//
//	@Summary		3x3 eigendecomposition
//	@Description	Computes eigenvalues, eigenvectors, determinant and trace of a 3x3 matrix
//	@Tags			eigenvalues
//	@Accept			json
//	@Produce		json
//	@Param			request	body		decomposeRequest	true	"Matrix payload"
//	@Success		200		{object}	core.Decomposition
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/eigenvalues/3d [post]
func (a *API) decompose3D(w http.ResponseWriter, r *http.Request) {
	a.decompose(w, r, 3)
}

func (a *API) decompose(w http.ResponseWriter, r *http.Request, n int) {
	var req decomposeRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	timer := prometheus.NewTimer(metrics.ComputationDuration.WithLabelValues("decompose"))
	result, err := a.engine.Decompose(req.Matrix, n)
	timer.ObserveDuration()
	if err != nil {
		a.respondEngineError(w, "decompose", err)
		return
	}

	metrics.Decompositions.WithLabelValues(strconv.Itoa(n)).Inc()
	a.respondJSON(w, result, http.StatusOK)
}

// transformVector godoc
//
//	@Summary		Apply a matrix transformation to a vector
//	@Tags			transform
//	@Accept			json
//	@Produce		json
//	@Param			request	body		transformRequest	true	"Matrix and vector payload"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/transform [post]
func (a *API) transformVector(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}
	if len(req.Matrix) > a.config.Engine.MaxTransformDim {
		a.respondError(w,
			fmt.Sprintf("matrix size %d exceeds the configured limit of %d", len(req.Matrix), a.config.Engine.MaxTransformDim),
			http.StatusBadRequest)
		return
	}

	timer := prometheus.NewTimer(metrics.ComputationDuration.WithLabelValues("transform"))
	transformed, err := a.engine.Transform(req.Matrix, req.Vector)
	timer.ObserveDuration()
	if err != nil {
		a.respondEngineError(w, "transform", err)
		return
	}

	metrics.Transforms.Inc()
	a.respondJSON(w, map[string]interface{}{"transformed_vector": transformed}, http.StatusOK)
}

// checkEigenvector godoc
//
//	@Summary		Check whether a vector is an eigenvector of a matrix
//	@Description	Returns the implied eigenvalue when the vector is parallel to its transform within tolerance
//	@Tags			eigenvalues
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkEigenvectorRequest	true	"Matrix, vector, optional tolerance"
//	@Success		200		{object}	core.Alignment
//	@Failure		400		{object}	map[string]string
//	@Router			/api/check-eigenvector [post]
func (a *API) checkEigenvector(w http.ResponseWriter, r *http.Request) {
	var req checkEigenvectorRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	tolerance := req.Tolerance
	if tolerance <= 0 {
		tolerance = a.config.Engine.AlignmentTolerance
	}

	timer := prometheus.NewTimer(metrics.ComputationDuration.WithLabelValues("check-alignment"))
	result, err := a.engine.CheckAlignment(req.Matrix, req.Vector, tolerance)
	timer.ObserveDuration()
	if err != nil {
		// Only shape violations surface; computation problems already
		// degraded to a negative result inside the engine.
		a.respondEngineError(w, "check-alignment", err)
		return
	}

	metrics.AlignmentChecks.WithLabelValues(strconv.FormatBool(result.IsEigenvector)).Inc()
	a.respondJSON(w, result, http.StatusOK)
}

// getMatrixPresets godoc
//
//	@Summary		Preset matrix catalog
//	@Description	Returns the static catalog of named example matrices for UI population
//	@Tags			presets
//	@Produce		json
//	@Success		200	{object}	map[string][]core.Preset
//	@Router			/api/matrix-presets [get]
func (a *API) getMatrixPresets(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, core.Presets(), http.StatusOK)
}
