package stickerrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	stickerevents "github.com/ksicht/standings/app/modules/stickers/domain/events"
	stickerhandlers "github.com/ksicht/standings/app/modules/stickers/infrastructure/handlers"
	"github.com/ksicht/standings/app/shared/handlerwrapper"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TestEnvironmentFlag is the flag to check if we're in a test environment
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// StickerRouter handles routing for sticker module events.
type StickerRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	publisher      message.Publisher
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewStickerRouter creates a new StickerRouter. Router metrics are skipped
// without a registry or when APP_ENV=test.
func NewStickerRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *StickerRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}

	return &StickerRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: metricsBuilder != nil,
	}
}

// Configure adds middleware and registers the sticker handlers.
func (r *StickerRouter) Configure(routerCtx context.Context, service stickerservice.Service, handlerMetrics handlerwrapper.ReturningMetrics) error {
	if r.metricsEnabled {
		r.logger.Info("Adding Prometheus router metrics middleware for Stickers")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	} else {
		r.logger.Info("Skipping Prometheus router metrics middleware for Stickers - either in test environment or metrics not configured")
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	handlers := stickerhandlers.NewStickerHandlers(service, r.logger)
	if err := r.registerHandlers(routerCtx, handlers, handlerMetrics); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    handlerwrapper.ReturningMetrics
}

// registerHandler registers a pure transformation-pattern handler with typed payload
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "stickers." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // the event bus reads the topic from message metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			deps.metrics,
			handler,
		),
	)
}

func (r *StickerRouter) registerHandlers(_ context.Context, handlers stickerhandlers.Handlers, handlerMetrics handlerwrapper.ReturningMetrics) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    handlerMetrics,
	}

	registerHandler(deps, stickerevents.StickersResolveRequestedV1, handlers.HandleResolveStickersRequest)
	registerHandler(deps, stickerevents.SeriesResultsRequestedV1, handlers.HandleSeriesResultsRequest)

	return nil
}

// Close stops the router.
func (r *StickerRouter) Close() error {
	return r.Router.Close()
}
