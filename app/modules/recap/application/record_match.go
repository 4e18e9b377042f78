package recapservice

import (
	"context"
	"time"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// RecordMatchClosed projects the closed match into the recap store and
// schedules the round's rebuild. When the round carries a lock time still in
// the future, the lock job is scheduled too.
func (s *RecapService) RecordMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	snapshot := payload.Snapshot

	return s.serviceWrapper(ctx, "RecordMatchClosed", snapshot.RoundID, func(ctx context.Context) (results.OperationResult, error) {
		if !snapshot.Status.Closed {
			return results.OperationResult{
				Failure: &recapevents.OperationFailedPayloadV1{
					RoundID: snapshot.RoundID,
					Reason:  ReasonNotDecided,
				},
			}, nil
		}

		if err := s.repo.UpsertSnapshot(ctx, snapshot); err != nil {
			return results.OperationResult{}, err
		}

		if err := s.scheduler.ScheduleRecapRebuild(ctx, snapshot.RoundID); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordRebuildScheduled(ctx, snapshot.RoundID)

		if lockAt := snapshot.RoundLocksAt; lockAt != nil && lockAt.After(time.Now()) {
			if err := s.scheduler.ScheduleRoundLock(ctx, snapshot.RoundID, *lockAt); err != nil {
				return results.OperationResult{}, err
			}
		}

		s.logger.InfoContext(ctx, "Match snapshot stored for recap",
			attr.MatchID("match_id", snapshot.MatchID),
			attr.RoundID("round_id", snapshot.RoundID),
		)

		return results.OperationResult{
			Success: &recapevents.RebuildRequestedPayloadV1{RoundID: snapshot.RoundID},
		}, nil
	})
}

// RecordMatchReopened removes the reopened match from the projection and
// schedules a rebuild so the recap stops counting it.
func (s *RecapService) RecordMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	return s.serviceWrapper(ctx, "RecordMatchReopened", payload.RoundID, func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.DeleteSnapshot(ctx, payload.MatchID); err != nil {
			return results.OperationResult{}, err
		}

		if err := s.scheduler.ScheduleRecapRebuild(ctx, payload.RoundID); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordRebuildScheduled(ctx, payload.RoundID)

		s.logger.InfoContext(ctx, "Match snapshot dropped after reopen",
			attr.MatchID("match_id", payload.MatchID),
			attr.RoundID("round_id", payload.RoundID),
		)

		return results.OperationResult{
			Success: &recapevents.RebuildRequestedPayloadV1{RoundID: payload.RoundID},
		}, nil
	})
}
