package matchhandlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchservice "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/application"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/results"
	"github.com/Harbor-Links-Club/matchplay-bot/app/shared/utils"
)

func newTestHandlers(fake *FakeMatchService) *MatchHandlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewMatchHandlers(fake, logger, tracer, utils.NewHelpers(logger), &matchmetrics.NoOpMetrics{})
}

func TestHandleHoleScoreSubmitPublishesStatus(t *testing.T) {
	fake := NewFakeMatchService()
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleHoleScoreSubmitRequest(context.Background(), &matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    uuid.New(),
		HoleNumber: 1,
		Team:       matchplay.TeamA,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, matchevents.StatusUpdatedV1, out[0].Topic)
	assert.Equal(t, []string{"SubmitHoleScore"}, fake.Trace())
}

func TestHandleHoleScoreSubmitClosureTransition(t *testing.T) {
	fake := NewFakeMatchService()
	matchID := uuid.New()
	fake.SubmitHoleScoreFunc = func(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error) {
		return results.OperationResult{Success: &matchservice.EvaluationOutcome{
			Status: matchevents.StatusUpdatedPayloadV1{MatchID: matchID},
			Closed: &matchevents.MatchClosedPayloadV1{
				Snapshot: matchevents.MatchSnapshotV1{MatchID: matchID},
			},
		}}, nil
	}
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleHoleScoreSubmitRequest(context.Background(), &matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID: matchID, HoleNumber: 10, Team: matchplay.TeamA,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, matchevents.StatusUpdatedV1, out[0].Topic)
	assert.Equal(t, matchevents.MatchClosedV1, out[1].Topic)
}

func TestHandleHoleScoreSubmitBusinessFailure(t *testing.T) {
	fake := NewFakeMatchService()
	fake.SubmitHoleScoreFunc = func(ctx context.Context, payload matchevents.HoleScoreSubmitRequestedPayloadV1) (results.OperationResult, error) {
		return results.OperationResult{Failure: &matchevents.OperationFailedPayloadV1{
			MatchID: payload.MatchID,
			Reason:  "ROUND_LOCKED",
		}}, nil
	}
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleHoleScoreSubmitRequest(context.Background(), &matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID: uuid.New(), HoleNumber: 1, Team: matchplay.TeamA,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, matchevents.HoleScoreSubmitFailedV1, out[0].Topic)
}

func TestHandleEvaluationRequestReopenTransition(t *testing.T) {
	fake := NewFakeMatchService()
	matchID := uuid.New()
	fake.EvaluateMatchFunc = func(ctx context.Context, id uuid.UUID) (results.OperationResult, error) {
		return results.OperationResult{Success: &matchservice.EvaluationOutcome{
			Status:   matchevents.StatusUpdatedPayloadV1{MatchID: id},
			Reopened: &matchevents.MatchReopenedPayloadV1{MatchID: id},
		}}, nil
	}
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleEvaluationRequest(context.Background(), &matchevents.EvaluationRequestedPayloadV1{MatchID: matchID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, matchevents.StatusUpdatedV1, out[0].Topic)
	assert.Equal(t, matchevents.MatchReopenedV1, out[1].Topic)
}

func TestHandleDriveSelectServiceError(t *testing.T) {
	fake := NewFakeMatchService()
	fake.SelectDriveFunc = func(ctx context.Context, payload matchevents.DriveSelectRequestedPayloadV1) (results.OperationResult, error) {
		return results.OperationResult{}, errors.New("db down")
	}
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleDriveSelectRequest(context.Background(), &matchevents.DriveSelectRequestedPayloadV1{
		MatchID: uuid.New(), HoleNumber: 1, Team: matchplay.TeamA,
	})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestHandleScorecardImportFailure(t *testing.T) {
	fake := NewFakeMatchService()
	fake.ImportScorecardFunc = func(ctx context.Context, payload matchevents.ScorecardImportRequestedPayloadV1) (results.OperationResult, error) {
		return results.OperationResult{Failure: &matchevents.OperationFailedPayloadV1{
			MatchID: payload.MatchID,
			Reason:  "UNPARSEABLE_SCORECARD",
		}}, nil
	}
	handlers := newTestHandlers(fake)

	out, err := handlers.HandleScorecardImportRequest(context.Background(), &matchevents.ScorecardImportRequestedPayloadV1{MatchID: uuid.New()})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, matchevents.ScorecardImportFailedV1, out[0].Topic)
}

func TestHandleRoundLockRequest(t *testing.T) {
	fake := NewFakeMatchService()
	handlers := newTestHandlers(fake)

	roundID := uuid.New()
	out, err := handlers.HandleRoundLockRequest(context.Background(), &matchevents.RoundLockRequestedPayloadV1{RoundID: roundID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, matchevents.RoundLockedV1, out[0].Topic)
	assert.Equal(t, []string{"LockRound"}, fake.Trace())
}
