package matchhandlers

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// FakeMatchService provides a programmable stub for the service interface.
type FakeMatchService struct {
	trace []string

	SubmitHoleScoreFunc func(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error)
	SelectDriveFunc     func(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error)
	ImportScorecardFunc func(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error)
	EvaluateMatchFunc   func(ctx context.Context, matchID uuid.UUID) (results.OperationResult, error)
	LockRoundFunc       func(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error)
}

func NewFakeMatchService() *FakeMatchService {
	return &FakeMatchService{trace: []string{}}
}

func (f *FakeMatchService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeMatchService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeMatchService) SubmitHoleScore(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error) {
	f.record("SubmitHoleScore")
	if f.SubmitHoleScoreFunc != nil {
		return f.SubmitHoleScoreFunc(ctx, payload)
	}
	return results.OperationResult{Success: &matchservice.EvaluationOutcome{}}, nil
}

func (f *FakeMatchService) SelectDrive(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error) {
	f.record("SelectDrive")
	if f.SelectDriveFunc != nil {
		return f.SelectDriveFunc(ctx, payload)
	}
	return results.OperationResult{Success: &matchservice.EvaluationOutcome{}}, nil
}

func (f *FakeMatchService) ImportScorecard(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error) {
	f.record("ImportScorecard")
	if f.ImportScorecardFunc != nil {
		return f.ImportScorecardFunc(ctx, payload)
	}
	return results.OperationResult{Success: &matchservice.EvaluationOutcome{}}, nil
}

func (f *FakeMatchService) EvaluateMatch(ctx context.Context, matchID uuid.UUID) (results.OperationResult, error) {
	f.record("EvaluateMatch")
	if f.EvaluateMatchFunc != nil {
		return f.EvaluateMatchFunc(ctx, matchID)
	}
	return results.OperationResult{Success: &matchservice.EvaluationOutcome{}}, nil
}

func (f *FakeMatchService) LockRound(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	f.record("LockRound")
	if f.LockRoundFunc != nil {
		return f.LockRoundFunc(ctx, roundID)
	}
	return results.OperationResult{Success: &matchevents.RoundLockedPayloadV1{RoundID: roundID}}, nil
}

func (f *FakeMatchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error) {
	f.record("GetMatch")
	return nil, nil
}

func (f *FakeMatchService) RenderMomentumChart(ctx context.Context, matchID uuid.UUID) ([]byte, error) {
	f.record("RenderMomentumChart")
	return nil, nil
}

var _ matchservice.Service = (*FakeMatchService)(nil)
