package statshandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	statsevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleMatchReopened deletes the reopened match's facts so no stale fact
// survives a correction, then publishes the rebuild announcements.
func (h *StatsHandlers) HandleMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received match reopened",
		attr.MatchID("match_id", payload.MatchID),
		attr.RoundID("round_id", payload.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.DeleteMatchFacts(ctx, payload)
	if err != nil {
		return nil, err
	}
	return factsResults(result, statsevents.StatsRebuildFailedV1)
}
