package metrics

import (
	"context"
	"strconv"
	"time"

	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "standings"

// PrometheusMetrics implements StickerMetrics with client_golang collectors.
type PrometheusMetrics struct {
	attempts        *prometheus.CounterVec
	successes       *prometheus.CounterVec
	failures        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	faults          *prometheus.CounterVec
	assigned        prometheus.Counter
	jobs            *prometheus.CounterVec
	handlers        *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
}

var _ StickerMetrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers the collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that succeeded.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that failed or panicked.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_faults_total",
			Help:      "Sticker rules that failed for an application.",
		}, []string{"sticker"}),
		assigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stickers_assigned_total",
			Help:      "Sticker assignments newly persisted.",
		}),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Queue jobs by kind and outcome.",
		}, []string{"kind", "outcome"}),
		handlers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_messages_total",
			Help:      "Messages handled by outcome.",
		}, []string{"handler", "outcome"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Message handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.duration, m.faults, m.assigned, m.jobs, m.handlers, m.handlerDuration)
	return m
}

// Series ids are not used as labels to keep cardinality bounded.

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string, _ competitiondomain.SeriesID) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string, _ competitiondomain.SeriesID) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string, _ competitiondomain.SeriesID) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordRuleFault(_ context.Context, sticker competitiondomain.StickerID) {
	m.faults.WithLabelValues(strconv.Itoa(int(sticker))).Inc()
}

func (m *PrometheusMetrics) RecordStickersAssigned(_ context.Context, count int) {
	m.assigned.Add(float64(count))
}

func (m *PrometheusMetrics) RecordJobOutcome(_ context.Context, kind string, outcome string) {
	m.jobs.WithLabelValues(kind, outcome).Inc()
}

func (m *PrometheusMetrics) RecordHandlerAttempt(_ context.Context, handlerName string) {
	m.handlers.WithLabelValues(handlerName, "attempt").Inc()
}

func (m *PrometheusMetrics) RecordHandlerSuccess(_ context.Context, handlerName string) {
	m.handlers.WithLabelValues(handlerName, "success").Inc()
}

func (m *PrometheusMetrics) RecordHandlerFailure(_ context.Context, handlerName string) {
	m.handlers.WithLabelValues(handlerName, "failure").Inc()
}

func (m *PrometheusMetrics) RecordHandlerDuration(_ context.Context, handlerName string, duration time.Duration) {
	m.handlerDuration.WithLabelValues(handlerName).Observe(duration.Seconds())
}
