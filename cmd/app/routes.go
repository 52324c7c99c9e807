package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ulule/limiter/v3"

	"fxdashboard/internal/api"
	"fxdashboard/internal/api/middleware"
	"fxdashboard/internal/service"
)

func (app *App) initHTTP(dashboard service.DashboardServiceInterface) error {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(app.metrics.Middleware)

	r.Get("/", api.HandleDashboard(dashboard, api.DashboardOptions{
		DefaultYears: app.cfg.Trend.DefaultYears,
		Logger:       app.logger,
	}))

	var apiLimiter *limiter.Limiter
	if app.cfg.Server.RateLimit != "" {
		lim, err := middleware.NewIPLimiter(app.cfg.Server.RateLimit)
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
		apiLimiter = lim
	}

	r.Route("/api", func(r chi.Router) {
		if origins := app.cfg.Server.CORSAllowedOrigins; len(origins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: origins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
				ExposedHeaders: []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
				MaxAge:         300,
			}))
		}
		if apiLimiter != nil {
			r.Use(middleware.RateLimitMiddleware(apiLimiter, app.logger))
		}
		r.Get("/currencies", api.HandleListCurrencies(dashboard))
		r.Route("/rates", func(r chi.Router) {
			r.Get("/latest", api.HandleLatestRate(dashboard))
			r.Get("/historical", api.HandleHistoricalRate(dashboard))
			r.Get("/trend", api.HandleRateTrend(dashboard, app.cfg.Trend.DefaultYears))
		})
	})

	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(dashboard))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", app.metrics.Handler())
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: time.Duration(app.cfg.Server.ReadHeaderTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(app.cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return nil
}
