package matchservice

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
)

// Service defines the interface for the MatchService.
type Service interface {
	// SubmitHoleScore applies one raw hole entry and re-evaluates the match
	// wholesale. Writes to locked rounds fail as business failures.
	SubmitHoleScore(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error)

	// SelectDrive toggles a drive selection and re-evaluates.
	SelectDrive(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error)

	// ImportScorecard bulk-applies hole entries parsed from an XLSX scorecard.
	ImportScorecard(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error)

	// EvaluateMatch recomputes a match on demand, used after corrections.
	EvaluateMatch(ctx context.Context, matchID uuid.UUID) (results.OperationResult, error)

	// LockRound stops a round from accepting further entries.
	LockRound(ctx context.Context, roundID uuid.UUID) (results.OperationResult, error)

	// GetMatch is the read path for the HTTP surface.
	GetMatch(ctx context.Context, matchID uuid.UUID) (*matchplay.Match, error)

	// RenderMomentumChart draws the margin-history chart as a PNG.
	RenderMomentumChart(ctx context.Context, matchID uuid.UUID) ([]byte, error)
}

var _ Service = (*MatchService)(nil)
