// Package main is the entry point for the FX dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fxdashboard/internal/config"
	"fxdashboard/internal/metrics"
	"fxdashboard/internal/provider"
	"fxdashboard/internal/service"
	"fxdashboard/internal/trend"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// NewApp wires the provider client, trend resampler and dashboard service
// behind the HTTP router.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	if cfg.Frankfurter.BaseURL == "" {
		return nil, errors.New("frankfurter.base_url is required")
	}

	app := &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	rates := newRatesClient(cfg, app.metrics)
	trends := trend.NewResampler(rates)
	dashboard := service.NewDashboardService(rates, trends, logger)

	if err := app.initHTTP(dashboard); err != nil {
		return nil, err
	}
	logger.Infow("Rate provider configured",
		"base_url", cfg.Frankfurter.BaseURL,
		"timeout_sec", cfg.Frankfurter.Timeout,
	)
	return app, nil
}

func newRatesClient(cfg *config.Config, observer provider.FetchObserver) *provider.FrankfurterClient {
	httpClient := provider.NewHTTPClient(time.Duration(cfg.Frankfurter.Timeout) * time.Second)
	fetcher := provider.NewFetcher(httpClient,
		provider.WithUserAgent(cfg.Frankfurter.UserAgent),
		provider.WithObserver(observer),
	)
	return provider.NewFrankfurterClient(cfg.Frankfurter.BaseURL, fetcher)
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Triggered by a signal or by the server failing to start.
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting connections and drains in-flight requests.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	timeout := time.Duration(app.cfg.Server.ShutdownTimeoutSec) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
