package matchmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type otelMetrics struct {
	handlerAttempts   metric.Int64Counter
	handlerSuccesses  metric.Int64Counter
	handlerFailures   metric.Int64Counter
	handlerDuration   metric.Float64Histogram
	operationAttempts metric.Int64Counter
	operationOutcomes metric.Int64Counter
	operationDuration metric.Float64Histogram
	holeScores        metric.Int64Counter
	driveSelections   metric.Int64Counter
	scorecardImports  metric.Int64Counter
	matchesClosed     metric.Int64Counter
	matchesReopened   metric.Int64Counter
}

// NewMatchMetrics builds the otel-backed MatchMetrics implementation.
func NewMatchMetrics(meter metric.Meter) (MatchMetrics, error) {
	m := &otelMetrics{}
	var err error

	instruments := []struct {
		counter *metric.Int64Counter
		name    string
		desc    string
	}{
		{&m.handlerAttempts, "match_handler_attempts_total", "Match handler invocations"},
		{&m.handlerSuccesses, "match_handler_successes_total", "Match handler successes"},
		{&m.handlerFailures, "match_handler_failures_total", "Match handler failures"},
		{&m.operationAttempts, "match_operation_attempts_total", "Match service operation attempts"},
		{&m.operationOutcomes, "match_operation_outcomes_total", "Match service operation outcomes"},
		{&m.holeScores, "match_hole_scores_submitted_total", "Hole score submissions"},
		{&m.driveSelections, "match_drive_selections_total", "Drive selections recorded"},
		{&m.scorecardImports, "match_scorecard_imports_total", "Scorecard imports processed"},
		{&m.matchesClosed, "match_closed_total", "Matches that reached a decided state"},
		{&m.matchesReopened, "match_reopened_total", "Closed matches reopened by corrections"},
	}
	for _, inst := range instruments {
		if *inst.counter, err = meter.Int64Counter(inst.name, metric.WithDescription(inst.desc)); err != nil {
			return nil, fmt.Errorf("failed to create counter %s: %w", inst.name, err)
		}
	}

	if m.handlerDuration, err = meter.Float64Histogram("match_handler_duration_seconds",
		metric.WithDescription("Match handler duration"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create handler duration histogram: %w", err)
	}
	if m.operationDuration, err = meter.Float64Histogram("match_operation_duration_seconds",
		metric.WithDescription("Match service operation duration"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create operation duration histogram: %w", err)
	}

	return m, nil
}

func handlerAttrs(handlerName string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("handler", handlerName))
}

func operationAttrs(operation string, extra ...attribute.KeyValue) metric.MeasurementOption {
	attrs := append([]attribute.KeyValue{attribute.String("operation", operation)}, extra...)
	return metric.WithAttributes(attrs...)
}

func (m *otelMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string) {
	m.handlerAttempts.Add(ctx, 1, handlerAttrs(handlerName))
}

func (m *otelMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string) {
	m.handlerSuccesses.Add(ctx, 1, handlerAttrs(handlerName))
}

func (m *otelMetrics) RecordHandlerFailure(ctx context.Context, handlerName string) {
	m.handlerFailures.Add(ctx, 1, handlerAttrs(handlerName))
}

func (m *otelMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
	m.handlerDuration.Record(ctx, duration.Seconds(), handlerAttrs(handlerName))
}

func (m *otelMetrics) RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationAttempts.Add(ctx, 1, operationAttrs(operation))
}

func (m *otelMetrics) RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, operationAttrs(operation, attribute.String("outcome", "success")))
}

func (m *otelMetrics) RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, operationAttrs(operation, attribute.String("outcome", "failure")))
}

func (m *otelMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.operationDuration.Record(ctx, duration.Seconds(), operationAttrs(operation))
}

func (m *otelMetrics) RecordHoleScoreSubmitted(ctx context.Context, matchID uuid.UUID, holeNumber int) {
	m.holeScores.Add(ctx, 1, metric.WithAttributes(attribute.Int("hole", holeNumber)))
}

func (m *otelMetrics) RecordDriveSelected(ctx context.Context, matchID uuid.UUID, holeNumber int) {
	m.driveSelections.Add(ctx, 1, metric.WithAttributes(attribute.Int("hole", holeNumber)))
}

func (m *otelMetrics) RecordScorecardImported(ctx context.Context, matchID uuid.UUID, holesImported int) {
	m.scorecardImports.Add(ctx, 1, metric.WithAttributes(attribute.Int("holes", holesImported)))
}

func (m *otelMetrics) RecordMatchClosed(ctx context.Context, matchID uuid.UUID, finalThru int) {
	m.matchesClosed.Add(ctx, 1, metric.WithAttributes(attribute.Int("final_thru", finalThru)))
}

func (m *otelMetrics) RecordMatchReopened(ctx context.Context, matchID uuid.UUID) {
	m.matchesReopened.Add(ctx, 1)
}
