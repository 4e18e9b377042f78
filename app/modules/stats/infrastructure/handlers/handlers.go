package statshandlers

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	statsevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
	statsmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/statsmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

// StatsHandlers handles stats module events.
type StatsHandlers struct {
	service statsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics statsmetrics.StatsMetrics
	helpers utils.Helpers
}

// NewStatsHandlers creates a new StatsHandlers.
func NewStatsHandlers(
	service statsservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics statsmetrics.StatsMetrics,
) *StatsHandlers {
	return &StatsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		helpers: helpers,
	}
}

// factsResults maps a service result onto outbound events: the fact mutation
// plus the rebuild announcement on success, the failure topic otherwise.
func factsResults(result results.OperationResult, failureTopic string) ([]handlerwrapper.Result, error) {
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: failureTopic, Payload: result.Failure}}, nil
	}

	outcome, ok := result.Success.(*statsservice.FactsOutcome)
	if !ok {
		return nil, fmt.Errorf("unexpected success payload %T", result.Success)
	}

	var out []handlerwrapper.Result
	if outcome.Generated != nil {
		out = append(out, handlerwrapper.Result{Topic: statsevents.FactsGeneratedV1, Payload: outcome.Generated})
	}
	if outcome.Deleted != nil {
		out = append(out, handlerwrapper.Result{Topic: statsevents.FactsDeletedV1, Payload: outcome.Deleted})
	}
	if outcome.Rebuilt != nil {
		out = append(out, handlerwrapper.Result{Topic: statsevents.StatsRebuiltV1, Payload: outcome.Rebuilt})
	}
	return out, nil
}
