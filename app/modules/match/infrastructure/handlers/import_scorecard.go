package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleScorecardImportRequest bulk-applies an uploaded XLSX scorecard.
func (h *MatchHandlers) HandleScorecardImportRequest(ctx context.Context, payload *matchevents.ScorecardImportRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received scorecard import",
		attr.MatchID("match_id", payload.MatchID),
		attr.String("file_name", payload.FileName),
		attr.Int("bytes", len(payload.Data)),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.ImportScorecard(ctx, *payload)
	if err != nil {
		return nil, err
	}
	return evaluationResults(result, matchevents.ScorecardImportFailedV1)
}
