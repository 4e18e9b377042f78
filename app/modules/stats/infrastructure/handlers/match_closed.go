package statshandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	statsevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/statsevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleMatchClosed regenerates the closed match's facts and publishes the
// fact and rebuild announcements.
func (h *StatsHandlers) HandleMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received match closed",
		attr.MatchID("match_id", payload.Snapshot.MatchID),
		attr.RoundID("round_id", payload.Snapshot.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.GenerateMatchFacts(ctx, payload)
	if err != nil {
		return nil, err
	}
	return factsResults(result, statsevents.FactsGenerationFailedV1)
}
