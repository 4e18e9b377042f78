package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleDriveSelectRequest toggles a drive selection.
func (h *MatchHandlers) HandleDriveSelectRequest(ctx context.Context, payload *matchevents.DriveSelectRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received drive selection",
		attr.MatchID("match_id", payload.MatchID),
		attr.Int("hole_number", payload.HoleNumber),
		attr.String("team", string(payload.Team)),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.SelectDrive(ctx, *payload)
	if err != nil {
		return nil, err
	}
	return evaluationResults(result, matchevents.DriveSelectFailedV1)
}
