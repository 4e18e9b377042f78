package matchhandlers

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// MatchHandlers handles match module events.
type MatchHandlers struct {
	service matchservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics matchmetrics.MatchMetrics
	helpers utils.Helpers
}

// NewMatchHandlers creates a new MatchHandlers.
func NewMatchHandlers(
	service matchservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics matchmetrics.MatchMetrics,
) *MatchHandlers {
	return &MatchHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		helpers: helpers,
	}
}

// evaluationResults maps a service result onto outbound events: the status
// update plus any closure transition on success, the failure topic otherwise.
func evaluationResults(result results.OperationResult, failureTopic string) ([]handlerwrapper.Result, error) {
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: failureTopic, Payload: result.Failure}}, nil
	}

	outcome, ok := result.Success.(*matchservice.EvaluationOutcome)
	if !ok {
		return nil, fmt.Errorf("unexpected success payload %T", result.Success)
	}

	out := []handlerwrapper.Result{{Topic: matchevents.StatusUpdatedV1, Payload: &outcome.Status}}
	if outcome.Closed != nil {
		out = append(out, handlerwrapper.Result{Topic: matchevents.MatchClosedV1, Payload: outcome.Closed})
	}
	if outcome.Reopened != nil {
		out = append(out, handlerwrapper.Result{Topic: matchevents.MatchReopenedV1, Payload: outcome.Reopened})
	}
	return out, nil
}
