package api

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// fakeMatchService serves one match; everything else is not found. The write
// operations are unreachable from the read-only API.
type fakeMatchService struct {
	match *matchplay.Match
	png   []byte
}

func (f *fakeMatchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error) {
	if f.match != nil && f.match.ID == matchID {
		return f.match, nil
	}
	return nil, matchdb.ErrMatchNotFound
}

func (f *fakeMatchService) RenderMomentumChart(ctx context.Context, matchID uuid.UUID) ([]byte, error) {
	if f.match != nil && f.match.ID == matchID {
		return f.png, nil
	}
	return nil, matchdb.ErrMatchNotFound
}

func (f *fakeMatchService) SubmitHoleScore(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeMatchService) SelectDrive(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeMatchService) ImportScorecard(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeMatchService) EvaluateMatch(ctx context.Context, matchID uuid.UUID) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeMatchService) LockRound(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

// fakeStatsService serves the stats of one player keyed by (player, series).
type fakeStatsService struct {
	stats *statsdomain.PlayerStats
}

func (f *fakeStatsService) GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error) {
	if f.stats != nil && f.stats.PlayerID == playerID && f.stats.Series == series {
		return f.stats, nil
	}
	return nil, statsdb.ErrStatsNotFound
}

func (f *fakeStatsService) GenerateMatchFacts(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeStatsService) DeleteMatchFacts(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeStatsService) RebuildPlayerStats(ctx context.Context, playerID string) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

// fakeRecapService serves one round recap and a canned workbook blob.
type fakeRecapService struct {
	recap    *recapdomain.RoundRecap
	workbook []byte
}

func (f *fakeRecapService) GetRoundRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error) {
	if f.recap != nil && f.recap.RoundID == roundID {
		return f.recap, nil
	}
	return nil, recapdb.ErrRecapNotFound
}

func (f *fakeRecapService) ExportRecapWorkbook(ctx context.Context, roundID uuid.UUID) ([]byte, error) {
	if f.recap != nil && f.recap.RoundID == roundID {
		return f.workbook, nil
	}
	return nil, recapdb.ErrRecapNotFound
}

func (f *fakeRecapService) RecordMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeRecapService) RecordMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}

func (f *fakeRecapService) BuildRoundRecap(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	return results.OperationResult{}, nil
}
