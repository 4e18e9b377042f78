package recapservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	recapmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/recapmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// Scheduler is the job scheduling surface the recap service depends on. The
// River-backed implementation lives in infrastructure/queue.
type Scheduler interface {
	// ScheduleRecapRebuild enqueues a debounced recap rebuild for the round.
	ScheduleRecapRebuild(ctx context.Context, roundID uuid.UUID) error
	// ScheduleRoundLock enqueues the round lock job for lockAt. Scheduling
	// the same round again is a no-op.
	ScheduleRoundLock(ctx context.Context, roundID uuid.UUID, lockAt time.Time) error
}

// RecapService implements the Service interface.
type RecapService struct {
	repo      recapdb.RecapDB
	scheduler Scheduler
	logger    *slog.Logger
	metrics   recapmetrics.RecapMetrics
	tracer    trace.Tracer

	// serviceWrapper is swappable so tests can bypass telemetry.
	serviceWrapper func(ctx context.Context, operationName string, roundID uuid.UUID, op operationFunc) (results.OperationResult, error)
}

// NewRecapService creates a new RecapService.
func NewRecapService(
	repo recapdb.RecapDB,
	scheduler Scheduler,
	logger *slog.Logger,
	metrics recapmetrics.RecapMetrics,
	tracer trace.Tracer,
) *RecapService {
	s := &RecapService{
		repo:      repo,
		scheduler: scheduler,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
	}
	s.serviceWrapper = s.withTelemetry
	return s
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *RecapService) withTelemetry(ctx context.Context, operationName string, roundID uuid.UUID, op operationFunc) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, roundID)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID("round_id", roundID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, roundID)
			span.RecordError(err)
			result = results.OperationResult{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID("round_id", roundID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, roundID)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID("round_id", roundID),
			attr.Any("failure_payload", result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, roundID)
		return result, nil
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		attr.String("operation", operationName),
		attr.RoundID("round_id", roundID),
		attr.ExtractCorrelationID(ctx),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName, roundID)

	return result, nil
}
