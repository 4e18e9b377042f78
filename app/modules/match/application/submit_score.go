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

// SubmitHoleScore applies one raw hole entry to the match document, persists
// it, and re-evaluates the whole match. A nil gross clears the slot.
func (s *MatchService) SubmitHoleScore(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "SubmitHoleScore", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
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
		if payload.Gross != nil && *payload.Gross < 1 {
			return fail(ReasonInvalidGross)
		}

		match, round, course, err := s.loadMatchContext(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrMatchNotFound) {
				return fail(ReasonMatchNotFound)
			}
			return results.OperationResult{}, err
		}

		if round.Locked {
			s.logger.WarnContext(ctx, "Rejected score for locked round",
				attr.MatchID("match_id", match.ID),
				attr.RoundID("round_id", round.ID),
				attr.ExtractCorrelationID(ctx),
			)
			return fail(ReasonRoundLocked)
		}

		slot := 0
		if payload.PlayerSlot != nil {
			slot = *payload.PlayerSlot
		}
		if err := applyHoleEntry(&match.Holes[payload.HoleNumber-1], match.Format, payload.Team, slot, payload.Gross); err != nil {
			return fail(ReasonInvalidSlot)
		}

		if err := s.repo.UpdateHoles(ctx, match.ID, match.Holes); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordHoleScoreSubmitted(ctx, match.ID, payload.HoleNumber)

		outcome, err := s.evaluateAndPersist(ctx, match, round, course)
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{Success: &outcome}, nil
	})
}

var errBadSlot = errors.New("player slot out of range for format")

// applyHoleEntry writes one gross score into the raw hole entry. Scramble
// takes the single team ball; every other format addresses a player slot.
func applyHoleEntry(hole *matchplay.HoleInput, format matchplay.Format, team matchplay.Team, slot int, gross *int) error {
	if format.TeamScored() {
		if slot != 0 {
			return errBadSlot
		}
		if team == matchplay.TeamB {
			hole.TeamBGross = gross
		} else {
			hole.TeamAGross = gross
		}
		return nil
	}

	if slot < 0 || slot >= format.PlayersPerTeam() {
		return errBadSlot
	}
	if team == matchplay.TeamB {
		hole.TeamBPlayerGross[slot] = gross
	} else {
		hole.TeamAPlayerGross[slot] = gross
	}
	return nil
}
