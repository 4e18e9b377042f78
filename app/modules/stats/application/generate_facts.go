package statsservice

import (
	"context"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// GenerateMatchFacts derives one fact per rostered player from a closed match
// snapshot and replaces any prior set for the match, then rebuilds the
// affected players' aggregates.
func (s *StatsService) GenerateMatchFacts(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	snapshot := payload.Snapshot

	return s.serviceWrapper(ctx, "GenerateMatchFacts", snapshot.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		facts := statsdomain.GenerateFacts(contextFromSnapshot(snapshot))
		if len(facts) == 0 {
			return results.OperationResult{
				Failure: &statsevents.OperationFailedPayloadV1{
					MatchID: snapshot.MatchID,
					Reason:  ReasonMatchNotClosed,
				},
			}, nil
		}

		if err := s.repo.UpsertFacts(ctx, snapshot.RoundID, snapshot.Series, facts); err != nil {
			return results.OperationResult{}, err
		}
		s.metrics.RecordFactsGenerated(ctx, snapshot.MatchID, len(facts))

		playerIDs := make([]string, 0, len(facts))
		for _, fact := range facts {
			playerIDs = append(playerIDs, fact.PlayerID)
		}

		if err := s.rebuildForPlayers(ctx, playerIDs); err != nil {
			return results.OperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Match facts regenerated",
			attr.MatchID("match_id", snapshot.MatchID),
			attr.RoundID("round_id", snapshot.RoundID),
			attr.Int("fact_count", len(facts)),
		)

		return results.OperationResult{
			Success: &FactsOutcome{
				Generated: &statsevents.FactsGeneratedPayloadV1{
					MatchID:   snapshot.MatchID,
					RoundID:   snapshot.RoundID,
					Series:    snapshot.Series,
					PlayerIDs: playerIDs,
				},
				Rebuilt: &statsevents.StatsRebuiltPayloadV1{
					PlayerIDs: playerIDs,
					Series:    snapshot.Series,
				},
			},
		}, nil
	})
}

// contextFromSnapshot maps the published match snapshot onto the fact
// generator's input. A missing result means the match is not decided, which
// GenerateFacts rejects via the status.
func contextFromSnapshot(snapshot matchevents.MatchSnapshotV1) statsdomain.MatchContext {
	m := statsdomain.MatchContext{
		MatchID:      snapshot.MatchID,
		RoundID:      snapshot.RoundID,
		Series:       snapshot.Series,
		Format:       snapshot.Format,
		CoursePar:    snapshot.CoursePar,
		TrackDrives:  snapshot.TrackDrives,
		TeamAPlayers: snapshot.TeamAPlayers,
		TeamBPlayers: snapshot.TeamBPlayers,
		Holes:        snapshot.Holes,
		Status:       snapshot.Status,
	}
	if snapshot.Result != nil {
		m.Result = *snapshot.Result
	}
	return m
}
