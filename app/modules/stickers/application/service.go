package stickerservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerdomain "github.com/ksicht/standings/app/modules/stickers/domain"
	stickerdb "github.com/ksicht/standings/app/modules/stickers/infrastructure/repositories"
	"github.com/ksicht/standings/app/observability/attr"
	stickermetrics "github.com/ksicht/standings/app/observability/metrics"
	"github.com/ksicht/standings/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultLookbackGrades is the number of preceding Grades loaded into a context.
const DefaultLookbackGrades = 3

// StickerService implements the Service interface.
type StickerService struct {
	repo      stickerdb.Repository
	registry  *stickerdomain.Registry
	evaluator *stickerdomain.Evaluator
	logger    *slog.Logger
	metrics   stickermetrics.StickerMetrics
	tracer    trace.Tracer
	db        *bun.DB
	lookback  int
}

// NewStickerService creates a new StickerService. A non-positive lookback
// falls back to DefaultLookbackGrades.
func NewStickerService(
	repo stickerdb.Repository,
	registry *stickerdomain.Registry,
	logger *slog.Logger,
	metrics stickermetrics.StickerMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	lookback int,
) *StickerService {
	if lookback <= 0 {
		lookback = DefaultLookbackGrades
	}
	if registry == nil {
		registry = stickerdomain.DefaultRegistry()
	}
	return &StickerService{
		repo:      repo,
		registry:  registry,
		evaluator: stickerdomain.NewEvaluator(registry, logger, metrics),
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		db:        db,
		lookback:  lookback,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *StickerService,
	ctx context.Context,
	operationName string,
	seriesID competitiondomain.SeriesID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("series_id", seriesID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, seriesID)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.SeriesID("series_id", seriesID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.SeriesID("series_id", seriesID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, seriesID)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.SeriesID("series_id", seriesID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, seriesID)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.SeriesID("series_id", seriesID),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			attr.SeriesID("series_id", seriesID),
			attr.ExtractCorrelationID(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName, seriesID)
	}

	return result, nil
}

// runInTx ensures the operation runs within a transaction.
func runInTx[S any, F any](
	s *StickerService,
	ctx context.Context,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if s.db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
