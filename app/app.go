package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	stickermetrics "github.com/ksicht/standings/app/observability/metrics"
	"github.com/ksicht/standings/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// App holds the long-lived dependencies shared by every command.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	DB       *bun.DB
	Registry *prometheus.Registry
	Metrics  *stickermetrics.PrometheusMetrics
	Tracer   trace.Tracer
	Service  *stickerservice.StickerService
}

// NewApp initializes the database handle, metrics and the sticker service.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := stickermetrics.NewPrometheusMetrics(registry)
	tracer := otel.Tracer("standings")

	service := stickerservice.NewStickerService(
		stickerdb.NewRepository(db),
		nil,
		logger,
		metrics,
		tracer,
		db,
		cfg.Stickers.LookbackGrades,
	)

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		DB:       db,
		Registry: registry,
		Metrics:  metrics,
		Tracer:   tracer,
		Service:  service,
	}
}

// Ping verifies the database is reachable.
func (app *App) Ping(ctx context.Context) error {
	if err := app.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (app *App) Close() error {
	return app.DB.Close()
}

// NewLogger builds the JSON process logger at the configured level.
func NewLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	return slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: lvl})), nil
}
