package recapmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// RecapMetrics is the telemetry surface of the recap module.
type RecapMetrics interface {
	handlerwrapper.Metrics

	RecordOperationAttempt(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationSuccess(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationFailure(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)

	RecordRecapRebuilt(ctx context.Context, roundID uuid.UUID, matchCount int)
	RecordRebuildScheduled(ctx context.Context, roundID uuid.UUID)
	RecordRecapExported(ctx context.Context, roundID uuid.UUID)
}

type otelMetrics struct {
	handlerAttempts   metric.Int64Counter
	handlerSuccesses  metric.Int64Counter
	handlerFailures   metric.Int64Counter
	handlerDuration   metric.Float64Histogram
	operationAttempts metric.Int64Counter
	operationOutcomes metric.Int64Counter
	operationDuration metric.Float64Histogram
	recapsRebuilt     metric.Int64Counter
	rebuildsScheduled metric.Int64Counter
	recapsExported    metric.Int64Counter
}

// NewRecapMetrics builds the otel-backed RecapMetrics implementation.
func NewRecapMetrics(meter metric.Meter) (RecapMetrics, error) {
	m := &otelMetrics{}
	var err error

	instruments := []struct {
		counter *metric.Int64Counter
		name    string
		desc    string
	}{
		{&m.handlerAttempts, "recap_handler_attempts_total", "Recap handler invocations"},
		{&m.handlerSuccesses, "recap_handler_successes_total", "Recap handler successes"},
		{&m.handlerFailures, "recap_handler_failures_total", "Recap handler failures"},
		{&m.operationAttempts, "recap_operation_attempts_total", "Recap service operation attempts"},
		{&m.operationOutcomes, "recap_operation_outcomes_total", "Recap service operation outcomes"},
		{&m.recapsRebuilt, "recap_rebuilds_total", "Round recap rebuilds"},
		{&m.rebuildsScheduled, "recap_rebuilds_scheduled_total", "Round recap rebuilds scheduled"},
		{&m.recapsExported, "recap_exports_total", "Round recap workbook exports"},
	}
	for _, inst := range instruments {
		if *inst.counter, err = meter.Int64Counter(inst.name, metric.WithDescription(inst.desc)); err != nil {
			return nil, fmt.Errorf("failed to create counter %s: %w", inst.name, err)
		}
	}

	if m.handlerDuration, err = meter.Float64Histogram("recap_handler_duration_seconds",
		metric.WithDescription("Recap handler duration"), metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("failed to create handler duration histogram: %w", err)
	}
	if m.operationDuration, err = meter.Float64Histogram("recap_operation_duration_seconds",
		metric.WithDescription("Recap service operation duration"), metric.WithUnit("s")); err != nil {
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

func (m *otelMetrics) RecordOperationAttempt(ctx context.Context, operation string, roundID uuid.UUID) {
	m.operationAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *otelMetrics) RecordOperationSuccess(ctx context.Context, operation string, roundID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation), attribute.String("outcome", "success")))
}

func (m *otelMetrics) RecordOperationFailure(ctx context.Context, operation string, roundID uuid.UUID) {
	m.operationOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation), attribute.String("outcome", "failure")))
}

func (m *otelMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *otelMetrics) RecordRecapRebuilt(ctx context.Context, roundID uuid.UUID, matchCount int) {
	m.recapsRebuilt.Add(ctx, 1, metric.WithAttributes(attribute.Int("matches", matchCount)))
}

func (m *otelMetrics) RecordRebuildScheduled(ctx context.Context, roundID uuid.UUID) {
	m.rebuildsScheduled.Add(ctx, 1)
}

func (m *otelMetrics) RecordRecapExported(ctx context.Context, roundID uuid.UUID) {
	m.recapsExported.Add(ctx, 1)
}

// NoOpMetrics discards every measurement. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerFailure(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
}

func (NoOpMetrics) RecordOperationAttempt(ctx context.Context, operation string, roundID uuid.UUID) {}
func (NoOpMetrics) RecordOperationSuccess(ctx context.Context, operation string, roundID uuid.UUID) {}
func (NoOpMetrics) RecordOperationFailure(ctx context.Context, operation string, roundID uuid.UUID) {}
func (NoOpMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
}

func (NoOpMetrics) RecordRecapRebuilt(ctx context.Context, roundID uuid.UUID, matchCount int) {}
func (NoOpMetrics) RecordRebuildScheduled(ctx context.Context, roundID uuid.UUID)             {}
func (NoOpMetrics) RecordRecapExported(ctx context.Context, roundID uuid.UUID)                {}
