package recaprouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harbor-Links-Club/matchplay-bot/app/eventbus"
	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	recaphandlers "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/handlers"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
	recapmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/recapmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// RecapRouter wires recap module handlers onto the shared watermill router.
type RecapRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	helpers        utils.Helpers
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewRecapRouter creates a new RecapRouter.
func NewRecapRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *RecapRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &RecapRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		helpers:        helpers,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: metricsBuilder != nil,
	}
}

// Configure adds middleware and registers the module's handlers.
func (r *RecapRouter) Configure(ctx context.Context, service recapservice.Service, moduleMetrics recapmetrics.RecapMetrics) error {
	if r.metricsEnabled {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := recaphandlers.NewRecapHandlers(service, r.logger, r.tracer, r.helpers, moduleMetrics)
	return r.RegisterHandlers(ctx, handlers, moduleMetrics)
}

// RegisterHandlers subscribes the match lifecycle and rebuild topics and
// publishes every result message to the topic resolved from its metadata.
func (r *RecapRouter) RegisterHandlers(ctx context.Context, handlers recaphandlers.Handlers, moduleMetrics recapmetrics.RecapMetrics) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		matchevents.MatchClosedV1:      handlerwrapper.Wrap("HandleMatchClosed", handlers.HandleMatchClosed, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.MatchReopenedV1:    handlerwrapper.Wrap("HandleMatchReopened", handlers.HandleMatchReopened, r.logger, moduleMetrics, r.tracer, r.helpers),
		recapevents.RebuildRequestedV1: handlerwrapper.Wrap("HandleRebuildRequest", handlers.HandleRebuildRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("recap.%s", topic)
		handlerFunc := handlerFunc

		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Error(err),
					)
					return nil, err
				}

				for _, m := range messages {
					publishTopic := m.Metadata.Get(utils.TopicMetadataKey)
					if publishTopic == "" {
						r.logger.Error("No publish topic resolved, message dropped",
							attr.String("handler", handlerName),
							attr.String("message_id", m.UUID),
						)
						continue
					}
					if err := r.publisher.Publish(publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *RecapRouter) Close() error {
	return r.Router.Close()
}
