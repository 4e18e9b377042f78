package matchservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// EvaluationOutcome is the success payload of every operation that ends in a
// wholesale re-evaluation. Closed and Reopened are set only on the evaluation
// that crossed the transition.
type EvaluationOutcome struct {
	Status   matchevents.StatusUpdatedPayloadV1
	Closed   *matchevents.MatchClosedPayloadV1
	Reopened *matchevents.MatchReopenedPayloadV1
}

// EvaluateMatch recomputes a match from its full hole set on demand. It is
// the reprocess path after corrections land outside the normal submit flow.
func (s *MatchService) EvaluateMatch(ctx context.Context, matchID uuid.UUID) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "EvaluateMatch", matchID, func(ctx context.Context) (results.OperationResult, error) {
		match, round, course, err := s.loadMatchContext(ctx, matchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrMatchNotFound) {
				return results.OperationResult{
					Failure: &matchevents.OperationFailedPayloadV1{MatchID: matchID, Reason: ReasonMatchNotFound},
				}, nil
			}
			return results.OperationResult{}, err
		}

		outcome, err := s.evaluateAndPersist(ctx, match, round, course)
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{Success: &outcome}, nil
	})
}

// GetMatch is the read path for the HTTP surface.
func (s *MatchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error) {
	return s.repo.GetMatch(ctx, matchID)
}

// evaluateAndPersist replays the full hole set, persists the derived status
// and result, and reports closure transitions relative to the stored status.
func (s *MatchService) evaluateAndPersist(ctx context.Context, match *matchplay.Match, round *matchplay.Round, course *matchplay.Course) (EvaluationOutcome, error) {
	wasClosed := match.Status != nil && match.Status.Closed

	status := matchplay.Evaluate(match.Format, match.Holes, match.TeamAPlayers, match.TeamBPlayers)
	result, closed := matchplay.Finalize(status)

	var resultPtr *matchplay.MatchResult
	if closed {
		resultPtr = &result
	}

	if err := s.repo.UpdateEvaluation(ctx, match.ID, &status, resultPtr); err != nil {
		return EvaluationOutcome{}, err
	}

	outcome := EvaluationOutcome{
		Status: matchevents.StatusUpdatedPayloadV1{
			MatchID: match.ID,
			RoundID: match.RoundID,
			Status:  status,
			Result:  resultPtr,
		},
	}

	if round.TrackDrives && match.Format.TracksDrives() {
		ledger := matchplay.NewDriveLedger(match.Holes)
		remaining := matchplay.Holes - status.Thru
		outcome.Status.TeamADrivesNeeded = ledger.DrivesStillNeeded(matchplay.TeamA, remaining)
		outcome.Status.TeamBDrivesNeeded = ledger.DrivesStillNeeded(matchplay.TeamB, remaining)
	}

	switch {
	case closed && !wasClosed:
		outcome.Closed = &matchevents.MatchClosedPayloadV1{
			Snapshot: buildSnapshot(match, round, course, status, resultPtr),
		}
		s.metrics.RecordMatchClosed(ctx, match.ID, status.Thru)
		s.logger.InfoContext(ctx, "Match closed",
			attr.MatchID("match_id", match.ID),
			attr.String("display_margin", result.DisplayMargin),
			attr.Int("thru", status.Thru),
			attr.ExtractCorrelationID(ctx),
		)
	case !closed && wasClosed:
		outcome.Reopened = &matchevents.MatchReopenedPayloadV1{
			MatchID: match.ID,
			RoundID: match.RoundID,
		}
		s.metrics.RecordMatchReopened(ctx, match.ID)
		s.logger.InfoContext(ctx, "Match reopened after correction",
			attr.MatchID("match_id", match.ID),
			attr.ExtractCorrelationID(ctx),
		)
	}

	return outcome, nil
}

func buildSnapshot(match *matchplay.Match, round *matchplay.Round, course *matchplay.Course, status matchplay.MatchStatus, result *matchplay.MatchResult) matchevents.MatchSnapshotV1 {
	return matchevents.MatchSnapshotV1{
		MatchID:      match.ID,
		RoundID:      match.RoundID,
		Series:       round.Series,
		Format:       match.Format,
		Course:       *course,
		CoursePar:    round.CoursePar,
		TrackDrives:  round.TrackDrives,
		RoundLocksAt: round.LocksAt,
		TeamAPlayers: match.TeamAPlayers,
		TeamBPlayers: match.TeamBPlayers,
		Holes:        match.Holes,
		Status:       status,
		Result:       result,
	}
}
