package recaphandlers

import (
	"context"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/recapevents"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/attr"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// HandleMatchClosed projects the closed match into the recap store. The
// rebuild itself fires later from the queue, so success publishes nothing.
func (h *RecapHandlers) HandleMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received match closed",
		attr.MatchID("match_id", payload.Snapshot.MatchID),
		attr.RoundID("round_id", payload.Snapshot.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.RecordMatchClosed(ctx, payload)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: recapevents.RebuildFailedV1, Payload: result.Failure}}, nil
	}
	return nil, nil
}

// HandleMatchReopened drops the reopened match from the recap store.
func (h *RecapHandlers) HandleMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received match reopened",
		attr.MatchID("match_id", payload.MatchID),
		attr.RoundID("round_id", payload.RoundID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.RecordMatchReopened(ctx, payload)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return []handlerwrapper.Result{{Topic: recapevents.RebuildFailedV1, Payload: result.Failure}}, nil
	}
	return nil, nil
}
