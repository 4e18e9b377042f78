package recapservice

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// Service defines the interface for recap operations.
type Service interface {
	// RecordMatchClosed stores the closed match's snapshot and schedules a
	// debounced recap rebuild for its round.
	RecordMatchClosed(ctx context.Context, payload *matchevents.MatchClosedPayloadV1) (results.OperationResult, error)

	// RecordMatchReopened drops the match's snapshot so it no longer
	// contributes to the recap, and schedules a rebuild.
	RecordMatchReopened(ctx context.Context, payload *matchevents.MatchReopenedPayloadV1) (results.OperationResult, error)

	// BuildRoundRecap recomputes the round recap from every stored snapshot
	// and persists it.
	BuildRoundRecap(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error)

	// GetRoundRecap is the read path for the HTTP surface.
	GetRoundRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error)

	// ExportRecapWorkbook renders the stored recap as an XLSX workbook.
	ExportRecapWorkbook(ctx context.Context, roundID uuid.UUID) ([]byte, error)
}

var _ Service = (*RecapService)(nil)
