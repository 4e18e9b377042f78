package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleEvaluationRequest recomputes a match on demand, the reprocess path
// after out-of-band corrections.
func (h *MatchHandlers) HandleEvaluationRequest(ctx context.Context, payload *matchevents.EvaluationRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received evaluation request",
		attr.MatchID("match_id", payload.MatchID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.EvaluateMatch(ctx, payload.MatchID)
	if err != nil {
		return nil, err
	}
	return evaluationResults(result, matchevents.EvaluationFailedV1)
}
