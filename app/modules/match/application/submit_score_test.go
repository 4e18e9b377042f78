package matchservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
	matchmetrics "github.com/Harbor-Links-Club/matchplay-bot/app/shared/observability/metrics/matchmetrics"
)

func intPtr(v int) *int { return &v }

func newTestService(fake *FakeMatchDB) *MatchService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewMatchService(fake, logger, &matchmetrics.NoOpMetrics{}, tracer)
}

// seedSinglesFixture wires a singles match with an empty card into the fake.
func seedSinglesFixture(fake *FakeMatchDB) *matchplay.Match {
	courseID := uuid.New()
	course := &matchplay.Course{ID: courseID, Name: "Harbor Links"}
	for i := range course.Holes {
		course.Holes[i] = matchplay.CourseHole{Number: i + 1, Par: 4, HcpIndex: i + 1}
	}

	round := &matchplay.Round{
		ID:        uuid.New(),
		CourseID:  courseID,
		Format:    matchplay.FormatSingles,
		Series:    "club-championship",
		CoursePar: 72,
	}

	match := &matchplay.Match{
		ID:      uuid.New(),
		RoundID: round.ID,
		Format:  matchplay.FormatSingles,
		TeamAPlayers: []matchplay.RosterEntry{
			{PlayerID: "alice", PlayerName: "Alice"},
		},
		TeamBPlayers: []matchplay.RosterEntry{
			{PlayerID: "bob", PlayerName: "Bob"},
		},
	}

	fake.Course = course
	fake.Round = round
	fake.Match = match
	return match
}

func TestSubmitHoleScoreAppliesEntryAndEvaluates(t *testing.T) {
	fake := NewFakeMatchDB()
	match := seedSinglesFixture(fake)
	svc := newTestService(fake)

	// Both balls on hole 1, then team A takes it.
	_, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    match.ID,
		HoleNumber: 1,
		Team:       matchplay.TeamB,
		Gross:      intPtr(5),
	})
	require.NoError(t, err)

	result, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    match.ID,
		HoleNumber: 1,
		Team:       matchplay.TeamA,
		Gross:      intPtr(4),
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	outcome, ok := result.Success.(*EvaluationOutcome)
	require.True(t, ok)
	assert.Equal(t, 1, outcome.Status.Status.Thru)
	assert.Equal(t, 1, outcome.Status.Status.Margin)
	require.NotNil(t, outcome.Status.Status.Leader)
	assert.Equal(t, matchplay.TeamA, *outcome.Status.Status.Leader)
	assert.Nil(t, outcome.Closed)
	assert.Nil(t, outcome.Reopened)

	require.NotNil(t, fake.LastHoles)
	require.NotNil(t, fake.LastHoles[0].TeamAPlayerGross[0])
	assert.Equal(t, 4, *fake.LastHoles[0].TeamAPlayerGross[0])
	assert.Contains(t, fake.Trace(), "UpdateHoles")
	assert.Contains(t, fake.Trace(), "UpdateEvaluation")
}

func TestSubmitHoleScoreNilGrossClearsSlot(t *testing.T) {
	fake := NewFakeMatchDB()
	match := seedSinglesFixture(fake)
	match.Holes[0].TeamAPlayerGross[0] = intPtr(4)
	match.Holes[0].TeamBPlayerGross[0] = intPtr(5)
	svc := newTestService(fake)

	result, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    match.ID,
		HoleNumber: 1,
		Team:       matchplay.TeamA,
		Gross:      nil,
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	outcome := result.Success.(*EvaluationOutcome)
	assert.Equal(t, 1, outcome.Status.Status.Thru)
	assert.False(t, outcome.Status.Status.MarginHistory[0].Complete)
	assert.Nil(t, fake.LastHoles[0].TeamAPlayerGross[0])
}

func TestSubmitHoleScoreLockedRound(t *testing.T) {
	fake := NewFakeMatchDB()
	match := seedSinglesFixture(fake)
	fake.Round.Locked = true
	svc := newTestService(fake)

	result, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    match.ID,
		HoleNumber: 1,
		Team:       matchplay.TeamA,
		Gross:      intPtr(4),
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())

	failure := result.Failure.(*matchevents.OperationFailedPayloadV1)
	assert.Equal(t, ReasonRoundLocked, failure.Reason)
	assert.NotContains(t, fake.Trace(), "UpdateHoles")
}

func TestSubmitHoleScoreValidation(t *testing.T) {
	fake := NewFakeMatchDB()
	match := seedSinglesFixture(fake)
	svc := newTestService(fake)

	tests := []struct {
		name    string
		payload matchevents.HoleScoreSubmitRequestedPayloadV1
		reason  string
	}{
		{
			name:    "hole number zero",
			payload: matchevents.HoleScoreSubmitRequestedPayloadV1{MatchID: match.ID, HoleNumber: 0, Team: matchplay.TeamA, Gross: intPtr(4)},
			reason:  ReasonInvalidHole,
		},
		{
			name:    "hole number nineteen",
			payload: matchevents.HoleScoreSubmitRequestedPayloadV1{MatchID: match.ID, HoleNumber: 19, Team: matchplay.TeamA, Gross: intPtr(4)},
			reason:  ReasonInvalidHole,
		},
		{
			name:    "bogus team",
			payload: matchevents.HoleScoreSubmitRequestedPayloadV1{MatchID: match.ID, HoleNumber: 1, Team: "team_c", Gross: intPtr(4)},
			reason:  ReasonInvalidTeam,
		},
		{
			name:    "zero gross",
			payload: matchevents.HoleScoreSubmitRequestedPayloadV1{MatchID: match.ID, HoleNumber: 1, Team: matchplay.TeamA, Gross: intPtr(0)},
			reason:  ReasonInvalidGross,
		},
		{
			name:    "slot out of range for singles",
			payload: matchevents.HoleScoreSubmitRequestedPayloadV1{MatchID: match.ID, HoleNumber: 1, Team: matchplay.TeamA, PlayerSlot: intPtr(1), Gross: intPtr(4)},
			reason:  ReasonInvalidSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SubmitHoleScore(context.Background(), tt.payload)
			require.NoError(t, err)
			require.True(t, result.IsFailure())
			failure := result.Failure.(*matchevents.OperationFailedPayloadV1)
			assert.Equal(t, tt.reason, failure.Reason)
		})
	}
}

func TestSubmitHoleScoreMatchNotFound(t *testing.T) {
	fake := NewFakeMatchDB()
	svc := newTestService(fake)

	result, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    uuid.New(),
		HoleNumber: 1,
		Team:       matchplay.TeamA,
		Gross:      intPtr(4),
	})
	require.NoError(t, err)
	require.True(t, result.IsFailure())
	failure := result.Failure.(*matchevents.OperationFailedPayloadV1)
	assert.Equal(t, ReasonMatchNotFound, failure.Reason)
}

func TestSubmitHoleScoreClosesMatch(t *testing.T) {
	fake := NewFakeMatchDB()
	match := seedSinglesFixture(fake)
	svc := newTestService(fake)

	// Team A wins holes 1-9; 10 up with 9 to play would already be closed at
	// 10&8, so stop entering once the margin can close: entering hole 10
	// makes it 10 up with 8 left, closed. Enter holes 1-10 with A winning.
	for hole := 1; hole <= 10; hole++ {
		match.Holes[hole-1].TeamAPlayerGross[0] = intPtr(4)
		match.Holes[hole-1].TeamBPlayerGross[0] = intPtr(5)
	}
	// Status for anything before hole 10 was never persisted, so the final
	// submit sees the transition into closed.
	result, err := svc.SubmitHoleScore(context.Background(), matchevents.HoleScoreSubmitRequestedPayloadV1{
		MatchID:    match.ID,
		HoleNumber: 10,
		Team:       matchplay.TeamB,
		Gross:      intPtr(5),
	})
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	outcome := result.Success.(*EvaluationOutcome)
	require.NotNil(t, outcome.Closed)
	assert.True(t, outcome.Status.Status.Closed)
	require.NotNil(t, outcome.Status.Result)
	assert.Equal(t, "10 & 8", outcome.Status.Result.DisplayMargin)

	snapshot := outcome.Closed.Snapshot
	assert.Equal(t, match.ID, snapshot.MatchID)
	assert.Equal(t, "club-championship", snapshot.Series)
	assert.Equal(t, 72, snapshot.CoursePar)
	require.NotNil(t, snapshot.Result)
	assert.Equal(t, matchplay.WinnerTeamA, snapshot.Result.Winner)
}
