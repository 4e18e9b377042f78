package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed handlers of the match module.
type Handlers interface {
	HandleHoleScoreSubmitRequest(ctx context.Context, payload *matchevents.HoleScoreSubmitRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDriveSelectRequest(ctx context.Context, payload *matchevents.DriveSelectRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleScorecardImportRequest(ctx context.Context, payload *matchevents.ScorecardImportRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleEvaluationRequest(ctx context.Context, payload *matchevents.EvaluationRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRoundLockRequest(ctx context.Context, payload *matchevents.RoundLockRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*MatchHandlers)(nil)
