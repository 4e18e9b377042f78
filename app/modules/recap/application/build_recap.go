package recapservice

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// BuildRoundRecap recomputes the full recap from every stored snapshot of the
// round. Always a complete rebuild; a round with no decided matches yields an
// empty recap.
func (s *RecapService) BuildRoundRecap(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "BuildRoundRecap", roundID, func(ctx context.Context) (results.OperationResult, error) {
		snapshots, err := s.repo.GetSnapshotsForRound(ctx, roundID)
		if err != nil {
			return results.OperationResult{}, err
		}

		matches := make([]recapdomain.MatchInput, 0, len(snapshots))
		for _, snapshot := range snapshots {
			matches = append(matches, matchInputFromSnapshot(snapshot))
		}

		recap := recapdomain.BuildRecap(roundID, matches)
		if err := s.repo.UpsertRecap(ctx, recap); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordRecapRebuilt(ctx, roundID, recap.MatchCount)

		s.logger.InfoContext(ctx, "Round recap rebuilt",
			attr.RoundID("round_id", roundID),
			attr.Int("match_count", recap.MatchCount),
		)

		return results.OperationResult{
			Success: &recapevents.RecapUpdatedPayloadV1{
				RoundID:    roundID,
				MatchCount: recap.MatchCount,
			},
		}, nil
	})
}

// GetRoundRecap is the read path for the HTTP surface.
func (s *RecapService) GetRoundRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error) {
	return s.repo.GetRecap(ctx, roundID)
}

func matchInputFromSnapshot(snapshot matchevents.MatchSnapshotV1) recapdomain.MatchInput {
	return recapdomain.MatchInput{
		MatchID:      snapshot.MatchID,
		Format:       snapshot.Format,
		Course:       snapshot.Course,
		TeamAPlayers: snapshot.TeamAPlayers,
		TeamBPlayers: snapshot.TeamBPlayers,
		Holes:        snapshot.Holes,
		Status:       snapshot.Status,
	}
}
