package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleHoleScoreSubmitRequest applies one raw hole entry and publishes the
// recomputed status, with closure transitions when they happen.
func (h *MatchHandlers) HandleHoleScoreSubmitRequest(ctx context.Context, payload *matchevents.HoleScoreSubmitRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received hole score submission",
		attr.MatchID("match_id", payload.MatchID),
		attr.Int("hole_number", payload.HoleNumber),
		attr.String("team", string(payload.Team)),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.SubmitHoleScore(ctx, *payload)
	if err != nil {
		return nil, err
	}
	return evaluationResults(result, matchevents.HoleScoreSubmitFailedV1)
}
