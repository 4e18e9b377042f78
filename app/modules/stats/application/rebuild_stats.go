package statsservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// RebuildPlayerStats re-folds one player's aggregates from their current fact
// set, lifetime and per-series. Safe to call at any time; the fold is total,
// never incremental.
func (s *StatsService) RebuildPlayerStats(ctx context.Context, playerID string) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "RebuildPlayerStats", uuid.Nil, func(ctx context.Context) (results.OperationResult, error) {
		if err := s.rebuildPlayer(ctx, playerID); err != nil {
			return results.OperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Player stats rebuilt",
			attr.PlayerID("player_id", playerID),
		)

		return results.OperationResult{
			Success: &FactsOutcome{
				Rebuilt: &statsevents.StatsRebuiltPayloadV1{
					PlayerIDs: []string{playerID},
				},
			},
		}, nil
	})
}
