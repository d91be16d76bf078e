// Package api EigenLab API
//
//	@title			EigenLab API
//	@version		1.0
//	@description	API for eigenvalue/eigenvector computation, vector transformation, and eigenvector checking
//	@termsOfService	http://swagger.io/terms/
//
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
//
// @host		localhost:5000
// @BasePath	/
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"eigenlab/config"
	"eigenlab/core"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterEntry holds a rate limiter with last seen time
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Computer is the numerical engine consumed by the API. It is defined here,
// at the consumer, so handlers can be tested against a stub engine.
type Computer interface {
	Decompose(m core.Matrix, n int) (*core.Decomposition, error)
	Transform(m core.Matrix, v core.Vector) (core.Vector, error)
	CheckAlignment(m core.Matrix, v core.Vector, tolerance float64) (core.Alignment, error)
}

// API holds the API server
type API struct {
	router         *mux.Router
	server         *http.Server
	engine         Computer
	config         *config.Config
	logger         *zap.SugaredLogger
	validate       *validator.Validate
	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}
}

// NewAPI creates a new API server around the given engine.
func NewAPI(engine Computer, config *config.Config, logger *zap.SugaredLogger) *API {
	api := &API{
		router:       mux.NewRouter(),
		engine:       engine,
		config:       config,
		logger:       logger,
		validate:     validator.New(),
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
	}
	api.setupRoutes()
	go api.cleanupRateLimiters()
	return api
}

// setupRoutes registers middleware and all HTTP routes.
func (a *API) setupRoutes() {
	a.router.Use(a.requestIDMiddleware)
	a.router.Use(a.corsMiddleware)
	a.router.Use(a.rateLimitMiddleware)
	if a.config.Auth.Enabled {
		a.router.Use(a.basicAuthMiddleware)
	}

	a.router.HandleFunc("/api/health", a.healthCheck).Methods("GET", "OPTIONS")
	a.router.HandleFunc("/api/eigenvalues/2d", a.decompose2D).Methods("POST", "OPTIONS")
	a.router.HandleFunc("/api/eigenvalues/3d", a.decompose3D).Methods("POST", "OPTIONS")
	a.router.HandleFunc("/api/transform", a.transformVector).Methods("POST", "OPTIONS")
	a.router.HandleFunc("/api/check-eigenvector", a.checkEigenvector).Methods("POST", "OPTIONS")
	a.router.HandleFunc("/api/matrix-presets", a.getMatrixPresets).Methods("GET", "OPTIONS")
	a.router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	a.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}

// Start starts the API server
func (a *API) Start(port string) error {
	a.server = &http.Server{
		Addr:    port,
		Handler: a.router,
	}
	return a.server.ListenAndServe()
}

// StartTLS starts the API server with TLS
func (a *API) StartTLS(port, certFile, keyFile string) error {
	a.server = &http.Server{
		Addr:    port,
		Handler: a.router,
	}
	return a.server.ListenAndServeTLS(certFile, keyFile)
}

// Stop stops the API server
func (a *API) Stop(ctx context.Context) error {
	close(a.stopCh)
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}
