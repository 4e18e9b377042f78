package statsrouter

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
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	statshandlers "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/handlers"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
	statsmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/statsmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// StatsRouter wires stats module handlers onto the shared watermill router.
type StatsRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	helpers        utils.Helpers
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewStatsRouter creates a new StatsRouter.
func NewStatsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *StatsRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &StatsRouter{
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
func (r *StatsRouter) Configure(ctx context.Context, service statsservice.Service, moduleMetrics statsmetrics.StatsMetrics) error {
	if r.metricsEnabled {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := statshandlers.NewStatsHandlers(service, r.logger, r.tracer, r.helpers, moduleMetrics)
	return r.RegisterHandlers(ctx, handlers, moduleMetrics)
}

// RegisterHandlers subscribes the match lifecycle topics and publishes every
// result message to the topic resolved from its metadata.
func (r *StatsRouter) RegisterHandlers(ctx context.Context, handlers statshandlers.Handlers, moduleMetrics statsmetrics.StatsMetrics) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		matchevents.MatchClosedV1:   handlerwrapper.Wrap("HandleMatchClosed", handlers.HandleMatchClosed, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.MatchReopenedV1: handlerwrapper.Wrap("HandleMatchReopened", handlers.HandleMatchReopened, r.logger, moduleMetrics, r.tracer, r.helpers),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("stats.%s", topic)
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

func (r *StatsRouter) Close() error {
	return r.Router.Close()
}
