package matchservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// MatchService implements the Service interface.
type MatchService struct {
	repo    matchdb.MatchDB
	logger  *slog.Logger
	metrics matchmetrics.MatchMetrics
	tracer  trace.Tracer

	// serviceWrapper is swappable so tests can bypass telemetry.
	serviceWrapper func(ctx context.Context, operationName string, matchID uuid.UUID, op operationFunc) (results.OperationResult, error)
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	repo matchdb.MatchDB,
	logger *slog.Logger,
	metrics matchmetrics.MatchMetrics,
	tracer trace.Tracer,
) *MatchService {
	s := &MatchService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
	s.serviceWrapper = s.withTelemetry
	return s
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *MatchService) withTelemetry(ctx context.Context, operationName string, matchID uuid.UUID, op operationFunc) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("match_id", matchID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, matchID)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.MatchID("match_id", matchID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, matchID)
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
			attr.MatchID("match_id", matchID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, matchID)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.MatchID("match_id", matchID),
			attr.Any("failure_payload", result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, matchID)
		return result, nil
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		attr.String("operation", operationName),
		attr.MatchID("match_id", matchID),
		attr.ExtractCorrelationID(ctx),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName, matchID)

	return result, nil
}

// loadMatchContext fetches the match together with its round and course.
func (s *MatchService) loadMatchContext(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, *matchplay.Round, *matchplay.Course, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, nil, nil, err
	}
	round, err := s.repo.GetRound(ctx, match.RoundID)
	if err != nil {
		return nil, nil, nil, err
	}
	course, err := s.repo.GetCourse(ctx, round.CourseID)
	if err != nil {
		return nil, nil, nil, err
	}
	return match, round, course, nil
}
