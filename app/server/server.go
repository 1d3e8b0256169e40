// Package server exposes standings over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	"github.com/ksicht/standings/app/observability/attr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Options configures the HTTP surface.
type Options struct {
	Address string
	// RequestsPerSecond and Burst bound each client address.
	RequestsPerSecond float64
	Burst             int
	Gatherer          prometheus.Gatherer
	Queue             Enqueuer
	HealthChecks      map[string]HealthCheck
}

// Server serves the standings API, health and metrics.
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// NewRouter builds the chi routes.
func NewRouter(service stickerservice.Service, logger *slog.Logger, opts Options) chi.Router {
	api := &stickerAPI{service: service, queue: opts.Queue, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler(opts.HealthChecks))
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		if opts.RequestsPerSecond > 0 {
			burst := opts.Burst
			if burst <= 0 {
				burst = 1
			}
			r.Use(RateLimit(NewIPRateLimiter(rate.Limit(opts.RequestsPerSecond), burst)))
		}

		r.Get("/stickers", api.stickers)
		r.Route("/series/{seriesID}", func(r chi.Router) {
			r.Get("/results", api.seriesResults)
			r.Get("/results.xlsx", api.seriesResultsXLSX)
			r.Get("/envelopes", api.envelopes)
			r.Get("/applications/{applicationID}/progress.png", api.progressChart)
			r.Post("/stickers/resolve", api.enqueueResolve)
		})
	})
	return r
}

// New creates a server listening on opts.Address.
func New(service stickerservice.Service, logger *slog.Logger, opts Options) *Server {
	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              opts.Address,
			Handler:           NewRouter(service, logger, opts),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", attr.String("address", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		report := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				report[name] = err.Error()
				continue
			}
			report[name] = "ok"
		}
		writeJSON(w, status, report)
	}
}
