package recaphandlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	recapservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/application"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// FakeRecapService records calls and returns canned results.
type FakeRecapService struct {
	trace []string

	RecordMatchClosedFunc   func(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error)
	RecordMatchReopenedFunc func(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error)
	BuildRoundRecapFunc     func(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error)
}

var _ recapservice.Service = (*FakeRecapService)(nil)

func (f *FakeRecapService) Trace() []string { return f.trace }

func (f *FakeRecapService) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

func (f *FakeRecapService) RecordMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error) {
	f.record("RecordMatchClosed(%s)", payload.Snapshot.MatchID)
	if f.RecordMatchClosedFunc != nil {
		return f.RecordMatchClosedFunc(ctx, payload)
	}
	return results.OperationResult{Success: &recapevents.RebuildRequestedPayloadV1{RoundID: payload.Snapshot.RoundID}}, nil
}

func (f *FakeRecapService) RecordMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error) {
	f.record("RecordMatchReopened(%s)", payload.MatchID)
	if f.RecordMatchReopenedFunc != nil {
		return f.RecordMatchReopenedFunc(ctx, payload)
	}
	return results.OperationResult{Success: &recapevents.RebuildRequestedPayloadV1{RoundID: payload.RoundID}}, nil
}

func (f *FakeRecapService) BuildRoundRecap(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error) {
	f.record("BuildRoundRecap(%s)", roundID)
	if f.BuildRoundRecapFunc != nil {
		return f.BuildRoundRecapFunc(ctx, roundID)
	}
	return results.OperationResult{Success: &recapevents.RecapUpdatedPayloadV1{RoundID: roundID, MatchCount: 1}}, nil
}

func (f *FakeRecapService) GetRoundRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error) {
	f.record("GetRoundRecap(%s)", roundID)
	return &recapdomain.RoundRecap{RoundID: roundID}, nil
}

func (f *FakeRecapService) ExportRecapWorkbook(ctx context.Context, roundID uuid.UUID) ([]byte, error) {
	f.record("ExportRecapWorkbook(%s)", roundID)
	return []byte{}, nil
}
