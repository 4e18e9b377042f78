package statsservice

import (
	"context"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// DeleteMatchFacts removes every fact for a reopened match and rebuilds the
// affected players' aggregates. A live match has no facts at all; there is no
// partial state to keep.
func (s *StatsService) DeleteMatchFacts(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "DeleteMatchFacts", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		playerIDs, err := s.repo.DeleteFactsForMatch(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if len(playerIDs) == 0 {
			// Reopen raced ahead of fact generation, or the match never
			// closed cleanly. Nothing to undo.
			return results.OperationResult{
				Failure: &statsevents.OperationFailedPayloadV1{
					MatchID: payload.MatchID,
					Reason:  ReasonNoFacts,
				},
			}, nil
		}

		s.metrics.RecordFactsDeleted(ctx, payload.MatchID, len(playerIDs))

		if err := s.rebuildForPlayers(ctx, playerIDs); err != nil {
			return results.OperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Match facts deleted after reopen",
			attr.MatchID("match_id", payload.MatchID),
			attr.RoundID("round_id", payload.RoundID),
			attr.Int("player_count", len(playerIDs)),
		)

		return results.OperationResult{
			Success: &FactsOutcome{
				Deleted: &statsevents.FactsDeletedPayloadV1{
					MatchID:   payload.MatchID,
					PlayerIDs: playerIDs,
				},
				Rebuilt: &statsevents.StatsRebuiltPayloadV1{
					PlayerIDs: playerIDs,
				},
			},
		}, nil
	})
}
