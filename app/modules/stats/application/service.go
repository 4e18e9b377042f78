package statsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	statsmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/statsmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// StatsService implements the Service interface.
type StatsService struct {
	repo    statsdb.StatsDB
	logger  *slog.Logger
	metrics statsmetrics.StatsMetrics
	tracer  trace.Tracer

	// serviceWrapper is swappable so tests can bypass telemetry.
	serviceWrapper func(ctx context.Context, operationName string, matchID uuid.UUID, op operationFunc) (results.OperationResult, error)
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	repo statsdb.StatsDB,
	logger *slog.Logger,
	metrics statsmetrics.StatsMetrics,
	tracer trace.Tracer,
) *StatsService {
	s := &StatsService{
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
func (s *StatsService) withTelemetry(ctx context.Context, operationName string, matchID uuid.UUID, op operationFunc) (result results.OperationResult, err error) {
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

// rebuildForPlayers re-folds the aggregates of every affected player, lifetime
// plus each series they have facts or stored aggregates in.
func (s *StatsService) rebuildForPlayers(ctx context.Context, playerIDs []string) error {
	for _, playerID := range playerIDs {
		if err := s.rebuildPlayer(ctx, playerID); err != nil {
			return err
		}
	}
	return nil
}

func (s *StatsService) rebuildPlayer(ctx context.Context, playerID string) error {
	facts, err := s.repo.GetFactsForPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	scopes := []string{lifetimeSeries}
	seen := map[string]bool{lifetimeSeries: true}

	factSeries, err := s.repo.GetSeriesForPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	// Series with stored aggregates are folded even when no facts remain in
	// them, so a reopen that deleted a player's only facts in a series
	// zeroes the row instead of leaving it crediting the corrected match.
	statsSeries, err := s.repo.GetSeriesWithStats(ctx, playerID)
	if err != nil {
		return err
	}
	for _, series := range append(factSeries, statsSeries...) {
		if seen[series] {
			continue
		}
		seen[series] = true
		scopes = append(scopes, series)
	}

	for _, scope := range scopes {
		stats := statsdomain.AggregateStats(playerID, scope, facts)
		if err := s.repo.UpsertPlayerStats(ctx, stats); err != nil {
			return err
		}
	}

	s.metrics.RecordStatsRebuilt(ctx, playerID)
	return nil
}
