package recaphandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// Handlers defines the recap module's event handlers.
type Handlers interface {
	HandleMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRebuildRequest(ctx context.Context, payload *recapevents.RebuildRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
