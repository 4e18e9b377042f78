package statshandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// Handlers defines the typed handlers of the stats module.
type Handlers interface {
	HandleMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*StatsHandlers)(nil)
