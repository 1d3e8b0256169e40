// Package metrics records sticker engine metrics.
package metrics

import (
	"context"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
)

// StickerMetrics is implemented by Prometheus and no-op recorders.
type StickerMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string, seriesID competitiondomain.SeriesID)
	RecordOperationSuccess(ctx context.Context, operation string, seriesID competitiondomain.SeriesID)
	RecordOperationFailure(ctx context.Context, operation string, seriesID competitiondomain.SeriesID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordRuleFault(ctx context.Context, sticker competitiondomain.StickerID)
	RecordStickersAssigned(ctx context.Context, count int)
	RecordJobOutcome(ctx context.Context, kind string, outcome string)

	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

var _ StickerMetrics = NoOpMetrics{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, competitiondomain.SeriesID) {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, competitiondomain.SeriesID) {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, competitiondomain.SeriesID) {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration)             {}
func (NoOpMetrics) RecordRuleFault(context.Context, competitiondomain.StickerID)               {}
func (NoOpMetrics) RecordStickersAssigned(context.Context, int)                                {}
func (NoOpMetrics) RecordJobOutcome(context.Context, string, string)                           {}
func (NoOpMetrics) RecordHandlerAttempt(context.Context, string)                               {}
func (NoOpMetrics) RecordHandlerSuccess(context.Context, string)                               {}
func (NoOpMetrics) RecordHandlerFailure(context.Context, string)                               {}
func (NoOpMetrics) RecordHandlerDuration(context.Context, string, time.Duration)               {}
