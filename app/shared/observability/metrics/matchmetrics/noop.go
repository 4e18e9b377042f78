package matchmetrics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoOpMetrics discards every measurement. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string)  {}
func (NoOpMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string)  {}
func (NoOpMetrics) RecordHandlerFailure(ctx context.Context, handlerName string)  {}
func (NoOpMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
}

func (NoOpMetrics) RecordOperationAttempt(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationSuccess(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationFailure(ctx context.Context, operation string, matchID uuid.UUID) {}
func (NoOpMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
}

func (NoOpMetrics) RecordHoleScoreSubmitted(ctx context.Context, matchID uuid.UUID, holeNumber int) {}
func (NoOpMetrics) RecordDriveSelected(ctx context.Context, matchID uuid.UUID, holeNumber int)     {}
func (NoOpMetrics) RecordScorecardImported(ctx context.Context, matchID uuid.UUID, holesImported int) {
}
func (NoOpMetrics) RecordMatchClosed(ctx context.Context, matchID uuid.UUID, finalThru int) {}
func (NoOpMetrics) RecordMatchReopened(ctx context.Context, matchID uuid.UUID)              {}
