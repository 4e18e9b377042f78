package matchservice

import (
	"context"
	"errors"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// SelectDrive toggles the drive selection for a hole and re-evaluates. The
// toggle is idempotent: selecting the same player twice clears the hole.
func (s *MatchService) SelectDrive(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "SelectDrive", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) (results.OperationResult, error) {
			return results.OperationResult{
				Failure: &matchevents.OperationFailedPayloadV1{MatchID: payload.MatchID, Reason: reason},
			}, nil
		}

		if payload.HoleNumber < 1 || payload.HoleNumber > matchplay.Holes {
			return fail(ReasonInvalidHole)
		}
		if payload.Team != matchplay.TeamA && payload.Team != matchplay.TeamB {
			return fail(ReasonInvalidTeam)
		}

		match, round, course, err := s.loadMatchContext(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrMatchNotFound) {
				return fail(ReasonMatchNotFound)
			}
			return results.OperationResult{}, err
		}

		if round.Locked {
			return fail(ReasonRoundLocked)
		}
		if !round.TrackDrives || !match.Format.TracksDrives() {
			s.logger.WarnContext(ctx, "Drive selection on a format that does not track drives",
				attr.MatchID("match_id", match.ID),
				attr.String("format", string(match.Format)),
				attr.ExtractCorrelationID(ctx),
			)
			return fail(ReasonDrivesUntracked)
		}

		ledger := matchplay.NewDriveLedger(match.Holes)
		ledger.RecordDrive(payload.HoleNumber, payload.Team, payload.PlayerSlot)
		ledger.ApplyTo(&match.Holes)

		if err := s.repo.UpdateHoles(ctx, match.ID, match.Holes); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordDriveSelected(ctx, match.ID, payload.HoleNumber)

		outcome, err := s.evaluateAndPersist(ctx, match, round, course)
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{Success: &outcome}, nil
	})
}
