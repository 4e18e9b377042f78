package statsmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// StatsMetrics is the telemetry surface of the stats module.
type StatsMetrics interface {
	handlerwrapper.Metrics

	RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)

	RecordFactsGenerated(ctx context.Context, matchID uuid.UUID, factCount int)
	RecordFactsDeleted(ctx context.Context, matchID uuid.UUID, factCount int)
	RecordStatsRebuilt(ctx context.Context, playerID string)
}

type otelMetrics struct {
	handlerAttempts   metric.Int64Counter
	handlerSuccesses  metric.Int64Counter
	handlerFailures   metric.Int64Counter
	handlerDuration   metric.Float64Histogram
	operationAttempts metric.Int64Counter
	operationOutcomes metric.Int64Counter
	operationDuration metric.Float64Histogram
	factsGenerated    metric.Int64Counter
	factsDeleted      metric.Int64Counter
	statsRebuilt      metric.Int64Counter
}

// NewStatsMetrics builds the otel-backed StatsMetrics implementation.
func NewStatsMetrics(meter metric.Meter) (StatsMetrics, error) {
	m := &otelMetrics{}
	var err error

	instruments := []struct {
		counter *metric.Int64Counter
		name    string
		desc    string
	}{
		{&m.handlerAttempts, "stats_handler_attempts_total", "Stats handler invocations"},
		{&m.handlerSuccesses, "stats_handler_successes_total", "Stats handler successes"},
		{&m.handlerFailures, "stats_handler_failures_total", "Stats handler failures"},
		{&m.operationAttempts, "stats_operation_attempts_total", "Stats service operation attempts"},
		{&m.operationOutcomes, "stats_operation_outcomes_total", "Stats service operation outcomes"},
		{&m.factsGenerated, "stats_facts_generated_total", "Player match facts generated"},
		{&m.factsDeleted, "stats_facts_deleted_total", "Player match facts deleted on reopen"},
		{&m.statsRebuilt, "stats_player_stats_rebuilt_total", "Player stats rebuilds"},
	}
	for _, inst := range instruments {
		if *inst.counter, err = meter.Int64Counter(inst.name, metric.WithDescription(inst.desc)); err != nil {
			return nil, fmt.Errorf("failed to create counter %s: %w", inst.name, err)
		}
	}

	if m.handlerDuration, err = meter.Float64Histogram("stats_handler_duration_seconds",
		metric.WithDescription("Stats handler duration"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create handler duration histogram: %w", err)
	}
	if m.operationDuration, err = meter.Float64Histogram("stats_operation_duration_seconds",
		metric.WithDescription("Stats service operation duration"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create operation duration histogram: %w", err)
	}

	return m, nil
}

func (m *otelMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string) {
	m.handlerAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("handler", handlerName)))
}

func (m *otelMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string) {
	m.handlerSuccesses.Add(ctx, 1, metric.WithAttributes(attribute.String("handler", handlerName)))
}

func (m *otelMetrics) RecordHandlerFailure(ctx context.Context, handlerName string) {
	m.handlerFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("handler", handlerName)))
}

func (m *otelMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
	m.handlerDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("handler", handlerName)))
}

func (m *otelMetrics) RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *otelMetrics) RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation), attribute.String("outcome", "success")))
}

func (m *otelMetrics) RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation), attribute.String("outcome", "failure")))
}

func (m *otelMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *otelMetrics) RecordFactsGenerated(ctx context.Context, matchID uuid.UUID, factCount int) {
	m.factsGenerated.Add(ctx, int64(factCount))
}

func (m *otelMetrics) RecordFactsDeleted(ctx context.Context, matchID uuid.UUID, factCount int) {
	m.factsDeleted.Add(ctx, int64(factCount))
}

func (m *otelMetrics) RecordStatsRebuilt(ctx context.Context, playerID string) {
	m.statsRebuilt.Add(ctx, 1)
}

// NoOpMetrics discards every measurement. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerFailure(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
}

func (NoOpMetrics) RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
}

func (NoOpMetrics) RecordFactsGenerated(ctx context.Context, matchID uuid.UUID, factCount int) {}
func (NoOpMetrics) RecordFactsDeleted(ctx context.Context, matchID uuid.UUID, factCount int)   {}
func (NoOpMetrics) RecordStatsRebuilt(ctx context.Context, playerID string)                    {}
