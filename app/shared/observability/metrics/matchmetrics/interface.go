package matchmetrics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/handlerwrapper"
)

// MatchMetrics is the telemetry surface of the match module.
type MatchMetrics interface {
	handlerwrapper.Metrics

	RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)

	RecordHoleScoreSubmitted(ctx context.Context, matchID uuid.UUID, holeNumber int)
	RecordDriveSelected(ctx context.Context, matchID uuid.UUID, holeNumber int)
	RecordScorecardImported(ctx context.Context, matchID uuid.UUID, holesImported int)
	RecordMatchClosed(ctx context.Context, matchID uuid.UUID, finalThru int)
	RecordMatchReopened(ctx context.Context, matchID uuid.UUID)
}
