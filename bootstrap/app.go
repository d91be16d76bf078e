package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"eigenlab/api"
	"eigenlab/config"
	"eigenlab/engine"
	"eigenlab/util/goroutine"

	"go.uber.org/zap"
)

// App represents the EigenLab application with all its components.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger

	Engine    *engine.Engine
	APIServer *api.API

	serviceWg  *sync.WaitGroup
	shutdownCh chan struct{}
}

// NewApp creates a new application instance and initializes all components.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{
		serviceWg:  &sync.WaitGroup{},
		shutdownCh: make(chan struct{}),
	}

	logger, sugar, err := InitLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger
	app.Sugar = sugar

	sugar.Info("EigenLab starting...")

	cfg, err := InitConfig(sugar)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	app.Engine = engine.New(sugar)

	return app, nil
}

// Start starts the API server.
func (a *App) Start(ctx context.Context) error {
	a.APIServer = api.NewAPI(a.Engine, a.Config, a.Sugar)

	a.serviceWg.Add(1)
	go func() {
		defer a.serviceWg.Done()
		defer goroutine.Recover("api-server", a.Sugar)
		addr := fmt.Sprintf(":%d", a.Config.API.Port)
		a.Sugar.Infof("API server started on %s", addr)

		var err error
		if a.Config.API.TLS {
			err = a.APIServer.StartTLS(addr, a.Config.API.CertFile, a.Config.API.KeyFile)
		} else {
			err = a.APIServer.Start(addr)
		}

		if err != nil && err.Error() != "http: Server closed" {
			a.Sugar.Errorf("API server error: %v", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// Shutdown gracefully shuts down all components.
func (a *App) Shutdown() {
	a.Sugar.Info("Shutting down...")

	if a.APIServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.APIServer.Stop(ctx); err != nil {
			a.Sugar.Errorf("API server shutdown error: %v", err)
		}
	}

	a.serviceWg.Wait()
	close(a.shutdownCh)

	a.Sugar.Info("Shutdown complete")
	_ = a.Logger.Sync()
}
