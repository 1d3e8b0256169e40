package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ksicht/standings/app/eventbus"
	stickerqueue "github.com/ksicht/standings/app/modules/stickers/infrastructure/queue"
	stickerrouter "github.com/ksicht/standings/app/modules/stickers/infrastructure/router"
	"github.com/ksicht/standings/app/observability/attr"
	"github.com/ksicht/standings/app/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

var stdout io.Writer = os.Stdout

// Start runs the queue workers, the event router and the HTTP API until ctx
// is cancelled.
func (app *App) Start(ctx context.Context) error {
	if err := app.Ping(ctx); err != nil {
		return err
	}

	queue, err := stickerqueue.NewService(ctx, app.Cfg.Postgres.DSN, app.Cfg.Stickers.QueueWorkers, app.Logger, app.Metrics, app.Service)
	if err != nil {
		return fmt.Errorf("failed to initialize queue: %w", err)
	}
	if err := queue.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := queue.Stop(stopCtx); err != nil {
			app.Logger.Error("Queue shutdown failed", attr.Error(err))
		}
	}()

	g, ctx := errgroup.WithContext(ctx)

	if app.Cfg.NATS.URL != "" {
		router, bus, err := app.startEventRouter(ctx)
		if err != nil {
			return err
		}
		g.Go(func() error {
			defer bus.Close()
			return router.Run(ctx)
		})
	} else {
		app.Logger.Warn("NATS_URL not set, event handlers disabled")
	}

	api := server.New(app.Service, app.Logger, server.Options{
		Address:           app.Cfg.HTTP.Address,
		RequestsPerSecond: app.Cfg.HTTP.RequestsPerSecond,
		Burst:             app.Cfg.HTTP.Burst,
		Gatherer:          app.Registry,
		Queue:             queue,
		HealthChecks: map[string]server.HealthCheck{
			"postgres": app.Ping,
			"queue":    queue.HealthCheck,
		},
	})
	g.Go(func() error { return api.Run(ctx) })

	if addr := app.Cfg.Observability.MetricsAddress; addr != "" {
		g.Go(func() error { return app.serveMetrics(ctx, addr) })
	}

	app.Logger.Info("Standings started")
	return g.Wait()
}

// startEventRouter wires the sticker handlers onto a NATS-backed router.
func (app *App) startEventRouter(ctx context.Context) (*message.Router, eventbus.EventBus, error) {
	bus, err := eventbus.NewEventBus(app.Cfg.NATS.URL, app.Logger)
	if err != nil {
		return nil, nil, err
	}

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 30 * time.Second}, watermill.NewSlogLogger(app.Logger))
	if err != nil {
		_ = bus.Close()
		return nil, nil, fmt.Errorf("failed to create message router: %w", err)
	}
	stickers := stickerrouter.NewStickerRouter(app.Logger, router, bus, bus, app.Tracer, app.Registry)
	if err := stickers.Configure(ctx, app.Service, app.Metrics); err != nil {
		_ = bus.Close()
		return nil, nil, fmt.Errorf("failed to configure sticker router: %w", err)
	}
	return router, bus, nil
}

// serveMetrics exposes the registry on a dedicated listener.
func (app *App) serveMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	app.Logger.Info("Metrics listening", attr.String("address", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
