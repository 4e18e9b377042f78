package statsservice

import (
	"context"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// FactsOutcome is the success payload of a fact mutation. Generated and
// Deleted are mutually exclusive; Rebuilt lists the aggregates refreshed as a
// consequence.
type FactsOutcome struct {
	Generated *statsevents.FactsGeneratedPayloadV1
	Deleted   *statsevents.FactsDeletedPayloadV1
	Rebuilt   *statsevents.StatsRebuiltPayloadV1
}

// Service defines the interface for stats operations.
type Service interface {
	GenerateMatchFacts(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error)
	DeleteMatchFacts(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error)
	RebuildPlayerStats(ctx context.Context, playerID string) (results.OperationResult, error)
	GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error)
}

var _ Service = (*StatsService)(nil)

// GetPlayerStats returns the stored aggregate for a player and series scope.
func (s *StatsService) GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error) {
	return s.repo.GetPlayerStats(ctx, playerID, series)
}
