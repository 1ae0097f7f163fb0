// Package server wires the account daemon: storage backend, account service,
// gRPC endpoint and Prometheus metrics, with graceful shutdown on signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/schoolplatform/internal/client/auth"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/client/store"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"
	"github.com/dmitrijs2005/schoolplatform/internal/metrics"
	"github.com/dmitrijs2005/schoolplatform/internal/server/config"

	gs "github.com/dmitrijs2005/schoolplatform/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
	store     *store.Store
	service   services.AuthService
}

// NewApp opens the configured store and builds the account service. Logs are
// written to out as JSON.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(out, level)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	codec, err := auth.NewCodec(c.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("session codec init error: %w", err)
	}

	st, err := store.Open(ctx, c.Storage)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	svc := services.NewAuthService(st.Repository(),
		services.WithSessionCodec(codec),
		services.WithLogger(logger.With("module", "auth_service")),
		services.WithRecorder(collector),
	)

	return &App{
		config:    c,
		logger:    logger,
		registry:  registry,
		collector: collector,
		store:     st,
		service:   svc,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.service, app.collector)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	srv := &http.Server{
		Addr:    app.config.MetricsAddr,
		Handler: metrics.NewMux(app.registry),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "metrics server shutdown failed", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "metrics server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails. The store is closed before Run returns.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.store.Driver())

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(start func(context.Context, context.CancelFunc) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := start(ctx, cancelFunc); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	run(app.startGRPCServer)
	if app.config.MetricsAddr != "" {
		run(app.startMetricsServer)
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}

	app.logger.Info(context.Background(), "App stopped")

	return errors.Join(errs...)
}
