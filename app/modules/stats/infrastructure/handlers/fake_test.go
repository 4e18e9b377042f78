package statshandlers

import (
	"context"
	"fmt"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	statsservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/application"
	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// FakeStatsService records calls and returns canned results.
type FakeStatsService struct {
	trace []string

	GenerateMatchFactsFunc func(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error)
	DeleteMatchFactsFunc   func(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error)
	RebuildPlayerStatsFunc func(ctx context.Context, playerID string) (results.OperationResult, error)
}

var _ statsservice.Service = (*FakeStatsService)(nil)

func (f *FakeStatsService) Trace() []string { return f.trace }

func (f *FakeStatsService) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

func (f *FakeStatsService) GenerateMatchFacts(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	f.record("GenerateMatchFacts(%s)", payload.Snapshot.MatchID)
	if f.GenerateMatchFactsFunc != nil {
		return f.GenerateMatchFactsFunc(ctx, payload)
	}
	return results.OperationResult{Success: &statsservice.FactsOutcome{
		Generated: &statsevents.FactsGeneratedPayloadV1{MatchID: payload.Snapshot.MatchID},
		Rebuilt:   &statsevents.StatsRebuiltPayloadV1{},
	}}, nil
}

func (f *FakeStatsService) DeleteMatchFacts(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	f.record("DeleteMatchFacts(%s)", payload.MatchID)
	if f.DeleteMatchFactsFunc != nil {
		return f.DeleteMatchFactsFunc(ctx, payload)
	}
	return results.OperationResult{Success: &statsservice.FactsOutcome{
		Deleted: &statsevents.FactsDeletedPayloadV1{MatchID: payload.MatchID},
		Rebuilt: &statsevents.StatsRebuiltPayloadV1{},
	}}, nil
}

func (f *FakeStatsService) RebuildPlayerStats(ctx context.Context, playerID string) (results.OperationResult, error) {
	f.record("RebuildPlayerStats(%s)", playerID)
	if f.RebuildPlayerStatsFunc != nil {
		return f.RebuildPlayerStatsFunc(ctx, playerID)
	}
	return results.OperationResult{Success: &statsservice.FactsOutcome{
		Rebuilt: &statsevents.StatsRebuiltPayloadV1{PlayerIDs: []string{playerID}},
	}}, nil
}

func (f *FakeStatsService) GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error) {
	f.record("GetPlayerStats(%s,%s)", playerID, series)
	return &statsdomain.PlayerStats{PlayerID: playerID, Series: series}, nil
}
