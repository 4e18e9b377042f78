package matchhandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleRoundLockRequest locks the round and announces it.
func (h *MatchHandlers) HandleRoundLockRequest(ctx context.Context, payload *matchevents.RoundLockRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received round lock request",
		attr.RoundID("round_id", payload.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.LockRound(ctx, payload.RoundID)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: matchevents.RoundLockFailedV1, Payload: result.Failure}}, nil
	}
	return []handlerwrapper.Result{{Topic: matchevents.RoundLockedV1, Payload: result.Success}}, nil
}
