package matchrouter

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
	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	matchhandlers "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/handlers"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// MatchRouter wires match module handlers onto the shared watermill router.
type MatchRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	helpers        utils.Helpers
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewMatchRouter creates a new MatchRouter.
func NewMatchRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	helpers utils.Helpers,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *MatchRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &MatchRouter{
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
func (r *MatchRouter) Configure(ctx context.Context, service matchservice.Service, moduleMetrics matchmetrics.MatchMetrics) error {
	if r.metricsEnabled {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := matchhandlers.NewMatchHandlers(service, r.logger, r.tracer, r.helpers, moduleMetrics)
	return r.RegisterHandlers(ctx, handlers, moduleMetrics)
}

// RegisterHandlers subscribes each request topic and publishes every result
// message to the topic resolved from its metadata.
func (r *MatchRouter) RegisterHandlers(ctx context.Context, handlers matchhandlers.Handlers, moduleMetrics matchmetrics.MatchMetrics) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		matchevents.HoleScoreSubmitRequestedV1: handlerwrapper.Wrap("HandleHoleScoreSubmitRequest", handlers.HandleHoleScoreSubmitRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.DriveSelectRequestedV1:     handlerwrapper.Wrap("HandleDriveSelectRequest", handlers.HandleDriveSelectRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.ScorecardImportRequestedV1: handlerwrapper.Wrap("HandleScorecardImportRequest", handlers.HandleScorecardImportRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.EvaluationRequestedV1:      handlerwrapper.Wrap("HandleEvaluationRequest", handlers.HandleEvaluationRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
		matchevents.RoundLockRequestedV1:       handlerwrapper.Wrap("HandleRoundLockRequest", handlers.HandleRoundLockRequest, r.logger, moduleMetrics, r.tracer, r.helpers),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("match.%s", topic)
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

func (r *MatchRouter) Close() error {
	return r.Router.Close()
}
