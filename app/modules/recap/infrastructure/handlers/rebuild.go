package recaphandlers

import (
	"context"

	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleRebuildRequest rebuilds the round recap from the stored snapshots and
// announces the fresh recap.
func (h *RecapHandlers) HandleRebuildRequest(ctx context.Context, payload *recapevents.RebuildRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received recap rebuild request",
		attr.RoundID("round_id", payload.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.BuildRoundRecap(ctx, payload.RoundID)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: recapevents.RebuildFailedV1, Payload: result.Failure}}, nil
	}
	return []handlerwrapper.Result{{Topic: recapevents.RecapUpdatedV1, Payload: result.Success}}, nil
}
