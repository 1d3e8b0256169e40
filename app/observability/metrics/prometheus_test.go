package metrics

import (
	"context"
	"testing"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	ctx := context.Background()

	m.RecordOperationAttempt(ctx, "ResolveStickers", competitiondomain.SeriesID{})
	m.RecordOperationAttempt(ctx, "ResolveStickers", competitiondomain.SeriesID{})
	m.RecordOperationFailure(ctx, "ResolveStickers", competitiondomain.SeriesID{})
	m.RecordOperationDuration(ctx, "ResolveStickers", 20*time.Millisecond)
	m.RecordRuleFault(ctx, 13)
	m.RecordStickersAssigned(ctx, 5)
	m.RecordJobOutcome(ctx, "resolve_stickers", "success")
	m.RecordHandlerAttempt(ctx, "stickers.resolve")
	m.RecordHandlerFailure(ctx, "stickers.resolve")

	if got := testutil.ToFloat64(m.attempts.WithLabelValues("ResolveStickers")); got != 2 {
		t.Errorf("attempts = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("ResolveStickers")); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.faults.WithLabelValues("13")); got != 1 {
		t.Errorf("faults = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.assigned); got != 5 {
		t.Errorf("assigned = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.jobs.WithLabelValues("resolve_stickers", "success")); got != 1 {
		t.Errorf("jobs = %v, want 1", got)
	}
}

func TestPrometheusMetrics_HandlerOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	ctx := context.Background()

	m.RecordHandlerAttempt(ctx, "stickers.resolve")
	m.RecordHandlerSuccess(ctx, "stickers.resolve")
	m.RecordHandlerDuration(ctx, "stickers.resolve", time.Second)

	if got := testutil.ToFloat64(m.handlers.WithLabelValues("stickers.resolve", "success")); got != 1 {
		t.Errorf("handler successes = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.handlerDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestNewPrometheusMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewPrometheusMetrics(reg)
}
