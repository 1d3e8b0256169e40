package stickerqueue

import (
	"context"
	"errors"
	"log/slog"

	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	"github.com/ksicht/standings/app/observability/attr"
	stickermetrics "github.com/ksicht/standings/app/observability/metrics"
	"github.com/riverqueue/river"
)

// ResolveStickersWorker runs ResolveStickers for queued Series.
type ResolveStickersWorker struct {
	river.WorkerDefaults[ResolveStickersJob]
	service stickerservice.Service
	logger  *slog.Logger
	metrics stickermetrics.StickerMetrics
}

// NewResolveStickersWorker creates the worker.
func NewResolveStickersWorker(service stickerservice.Service, logger *slog.Logger, metrics stickermetrics.StickerMetrics) *ResolveStickersWorker {
	return &ResolveStickersWorker{service: service, logger: logger, metrics: metrics}
}

// Work resolves the Series. Handled failures such as an unknown Series are
// cancelled instead of retried.
func (w *ResolveStickersWorker) Work(ctx context.Context, job *river.Job[ResolveStickersJob]) error {
	kind := job.Args.Kind()
	logger := w.logger.With(
		attr.String("job_kind", kind),
		attr.SeriesID("series_id", job.Args.SeriesID),
	)

	result, err := w.service.ResolveStickers(ctx, job.Args.SeriesID)
	if err != nil {
		logger.ErrorContext(ctx, "Resolve stickers job failed", attr.Error(err))
		w.metrics.RecordJobOutcome(ctx, kind, OutcomeError)
		return err
	}

	if result.IsFailure() {
		reason := (*result.Failure).Reason
		logger.WarnContext(ctx, "Resolve stickers job cancelled", attr.String("reason", reason))
		w.metrics.RecordJobOutcome(ctx, kind, OutcomeFailed)
		return river.JobCancel(errors.New(reason))
	}

	resolved := *result.Success
	outcome := OutcomeResolved
	if resolved.Unchanged {
		outcome = OutcomeUnchanged
	}
	w.metrics.RecordJobOutcome(ctx, kind, outcome)
	logger.InfoContext(ctx, "Resolve stickers job completed",
		attr.Int("assigned", resolved.Assigned),
		attr.Int("inserted", resolved.Inserted),
		attr.Bool("unchanged", resolved.Unchanged),
	)
	return nil
}
