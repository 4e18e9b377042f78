package matchservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// LockRound stops a round from accepting further entries. Locking an already
// locked round is a no-op success so the scheduled lock job stays idempotent.
func (s *MatchService) LockRound(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "LockRound", roundID, func(ctx context.Context) (results.OperationResult, error) {
		round, err := s.repo.GetRound(ctx, roundID)
		if err != nil {
			if errors.Is(err, matchdb.ErrRoundNotFound) {
				return results.OperationResult{
					Failure: &matchevents.OperationFailedPayloadV1{Reason: ReasonRoundNotFound},
				}, nil
			}
			return results.OperationResult{}, err
		}

		if !round.Locked {
			if err := s.repo.SetRoundLocked(ctx, roundID, true); err != nil {
				return results.OperationResult{}, err
			}
			s.logger.InfoContext(ctx, "Round locked",
				attr.RoundID("round_id", roundID),
				attr.ExtractCorrelationID(ctx),
			)
		}

		return results.OperationResult{
			Success: &matchevents.RoundLockedPayloadV1{RoundID: roundID},
		}, nil
	})
}
