package stickerqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	"github.com/ksicht/standings/app/observability/attr"
	stickermetrics "github.com/ksicht/standings/app/observability/metrics"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
)

// QueueService schedules sticker resolution in the background.
type QueueService interface {
	// EnqueueResolve queues a resolve job. Duplicate pending jobs for the
	// same Series are collapsed.
	EnqueueResolve(ctx context.Context, seriesID competitiondomain.SeriesID) (int64, error)
	HealthCheck(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service handles sticker jobs using River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics stickermetrics.StickerMetrics
}

// NewService creates a River client with the resolve worker registered.
func NewService(ctx context.Context, dsn string, workers int, logger *slog.Logger, metrics stickermetrics.StickerMetrics, service stickerservice.Service) (*Service, error) {
	ctxLogger := logger.With(attr.String("component", "river_queue"))

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if workers <= 0 {
		workers = 4
	}
	registry := river.NewWorkers()
	river.AddWorker(registry, NewResolveStickersWorker(service, ctxLogger, metrics))

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			QueueName: {MaxWorkers: workers},
		},
		Workers: registry,
		Logger:  ctxLogger,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.Info("Sticker queue service initialized", attr.Int("max_workers", workers))
	return &Service{client: client, pool: pool, logger: ctxLogger, metrics: metrics}, nil
}

// Migrate applies River's own schema migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create River migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{}); err != nil {
		return fmt.Errorf("failed to run River migrations: %w", err)
	}
	return nil
}

// Pool exposes the pgx pool backing the client.
func (s *Service) Pool() *pgxpool.Pool { return s.pool }

// Start starts processing jobs.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		s.logger.Error("Failed to start River client", attr.Error(err))
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.Info("Sticker queue service started")
	return nil
}

// Stop waits for running jobs and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	defer s.pool.Close()
	if err := s.client.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop River client", attr.Error(err))
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.logger.Info("Sticker queue service stopped")
	return nil
}

// EnqueueResolve inserts a resolve job for the Series.
func (s *Service) EnqueueResolve(ctx context.Context, seriesID competitiondomain.SeriesID) (int64, error) {
	const operation = "enqueue_resolve"
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, operation, seriesID)

	res, err := s.client.Insert(ctx, ResolveStickersJob{SeriesID: seriesID}, &river.InsertOpts{
		Queue: QueueName,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to enqueue resolve job",
			attr.SeriesID("series_id", seriesID),
			attr.Error(err),
		)
		s.metrics.RecordOperationFailure(ctx, operation, seriesID)
		return 0, fmt.Errorf("failed to enqueue resolve job: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, operation, seriesID)
	s.metrics.RecordOperationDuration(ctx, operation, time.Since(start))
	s.logger.InfoContext(ctx, "Resolve job enqueued",
		attr.SeriesID("series_id", seriesID),
		attr.Any("job_id", res.Job.ID),
		attr.Bool("duplicate", res.UniqueSkippedAsDuplicate),
	)
	return res.Job.ID, nil
}

// HealthCheck verifies the queue database is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
