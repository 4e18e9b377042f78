package matchplay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func singlesHole(a, b int) HoleInput {
	return HoleInput{
		TeamAPlayerGross: [2]*int{intPtr(a), nil},
		TeamBPlayerGross: [2]*int{intPtr(b), nil},
	}
}

func pairHole(a1, a2, b1, b2 int) HoleInput {
	return HoleInput{
		TeamAPlayerGross: [2]*int{intPtr(a1), intPtr(a2)},
		TeamBPlayerGross: [2]*int{intPtr(b1), intPtr(b2)},
	}
}

func singlesRosters() (teamA, teamB []RosterEntry) {
	return []RosterEntry{{PlayerID: "alice"}}, []RosterEntry{{PlayerID: "bob"}}
}

func pairRosters() (teamA, teamB []RosterEntry) {
	teamA = []RosterEntry{{PlayerID: "a1"}, {PlayerID: "a2"}}
	teamB = []RosterEntry{{PlayerID: "b1"}, {PlayerID: "b2"}}
	return teamA, teamB
}

func TestEvaluate_SinglesFrontNineLeadBackNineComeback(t *testing.T) {
	teamA, teamB := singlesRosters()

	var holes [Holes]HoleInput
	for i := 0; i < 9; i++ {
		holes[i] = singlesHole(4, 5) // team A wins the front nine
	}

	status := Evaluate(FormatSingles, holes, teamA, teamB)
	require.NotNil(t, status.Leader)
	assert.Equal(t, TeamA, *status.Leader)
	assert.Equal(t, 9, status.Margin)
	assert.Equal(t, 9, status.Thru)
	assert.False(t, status.Closed, "9 up with 9 to play is dormie, not closed")
	assert.True(t, status.Dormie)

	// Margin after hole 6 is 6 with 12 remaining: nowhere near closure.
	assert.Equal(t, HoleMargin{Complete: true, Margin: 6}, status.MarginHistory[5])

	// Team B storms back over holes 10-17.
	for i := 9; i < 17; i++ {
		holes[i] = singlesHole(5, 4)
	}
	status = Evaluate(FormatSingles, holes, teamA, teamB)
	assert.Equal(t, 1, status.Margin)
	assert.False(t, status.Closed, "1 up with 1 to play is not decided")
	assert.True(t, status.Dormie)

	// Team A takes the last hole: 2 UP at the 18th.
	holes[17] = singlesHole(4, 5)
	status = Evaluate(FormatSingles, holes, teamA, teamB)
	require.True(t, status.Closed)
	assert.Equal(t, 18, status.Thru)

	result, ok := Finalize(status)
	require.True(t, ok)
	assert.Equal(t, WinnerTeamA, result.Winner)
	assert.Equal(t, "2 UP", result.DisplayMargin)

	// Variant: team B also takes the 18th instead, and the match is halved.
	holes[17] = singlesHole(5, 4)
	status = Evaluate(FormatSingles, holes, teamA, teamB)
	require.True(t, status.Closed)
	assert.Equal(t, 0, status.Margin)
	assert.Nil(t, status.Leader)

	result, ok = Finalize(status)
	require.True(t, ok)
	assert.Equal(t, WinnerAllSquare, result.Winner)
	assert.Equal(t, "Halved", result.DisplayMargin)
}

func TestEvaluate_BestBallHandicapStrokeFlipsHole(t *testing.T) {
	teamA, teamB := pairRosters()
	teamA[1].StrokeHoles[0] = 1 // a2 receives a stroke on hole 1

	var holes [Holes]HoleInput
	holes[0] = pairHole(5, 5, 5, 5) // all square on gross; a2 nets 4

	status := Evaluate(FormatTwoManBestBall, holes, teamA, teamB)
	require.NotNil(t, status.Leader)
	assert.Equal(t, TeamA, *status.Leader)
	assert.Equal(t, 1, status.Margin)
}

func TestEvaluate_ClosesEarly(t *testing.T) {
	teamA, teamB := singlesRosters()

	var holes [Holes]HoleInput
	for i := 0; i < 4; i++ {
		holes[i] = singlesHole(3, 4) // team A wins the first four
	}
	for i := 4; i < 15; i++ {
		holes[i] = singlesHole(4, 4) // everything else halved
	}

	status := Evaluate(FormatSingles, holes, teamA, teamB)
	require.True(t, status.Closed, "4 up with 3 to play is decided")
	assert.Equal(t, 15, status.Thru)
	assert.Equal(t, 4, status.Margin)

	result, ok := Finalize(status)
	require.True(t, ok)
	assert.Equal(t, "4 & 3", result.DisplayMargin)
	assert.Equal(t, WinnerTeamA, result.Winner)
}

func TestEvaluate_NotClosedWhileCatchUpPossible(t *testing.T) {
	teamA, teamB := singlesRosters()

	var holes [Holes]HoleInput
	for i := 0; i < 4; i++ {
		holes[i] = singlesHole(3, 4)
	}
	for i := 4; i < 14; i++ {
		holes[i] = singlesHole(4, 4)
	}

	// 4 up with 4 remaining: the trailing side can still halve every point.
	status := Evaluate(FormatSingles, holes, teamA, teamB)
	assert.False(t, status.Closed)
	assert.True(t, status.Dormie)
	assert.Equal(t, 14, status.Thru)
}

func TestEvaluate_ShambleIgnoresStrokes(t *testing.T) {
	teamA, teamB := pairRosters()
	// Strokes present on every hole must be irrelevant in a shamble.
	for i := range teamA[0].StrokeHoles {
		teamA[0].StrokeHoles[i] = 1
		teamB[0].StrokeHoles[i] = 1
	}

	var holes [Holes]HoleInput
	holes[0] = pairHole(6, 5, 6, 6) // team A best gross 5, team B 6

	status := Evaluate(FormatTwoManShamble, holes, teamA, teamB)
	require.NotNil(t, status.Leader)
	assert.Equal(t, TeamA, *status.Leader)
	assert.Equal(t, 1, status.Margin)
}

func TestEvaluate_ScrambleUsesTeamGross(t *testing.T) {
	teamA, teamB := pairRosters()

	var holes [Holes]HoleInput
	holes[0] = HoleInput{TeamAGross: intPtr(4), TeamBGross: intPtr(5)}
	holes[1] = HoleInput{TeamAGross: intPtr(4)} // team B missing: incomplete

	status := Evaluate(FormatTwoManScramble, holes, teamA, teamB)
	assert.Equal(t, 1, status.Margin)
	assert.False(t, status.MarginHistory[1].Complete)
	assert.Equal(t, 2, status.Thru, "thru counts the last hole with any input")
}

func TestEvaluate_ReopensOnCorrection(t *testing.T) {
	teamA, teamB := singlesRosters()

	var holes [Holes]HoleInput
	for i := 0; i < 4; i++ {
		holes[i] = singlesHole(3, 4)
	}
	for i := 4; i < 15; i++ {
		holes[i] = singlesHole(4, 4)
	}

	status := Evaluate(FormatSingles, holes, teamA, teamB)
	require.True(t, status.Closed)
	require.Equal(t, 15, status.Thru)

	// A correction to hole 2 flips it to team B: margin through 15 drops to
	// 2 with 3 remaining, so the closure inequality no longer holds and the
	// recompute must report the match live again.
	holes[1] = singlesHole(5, 4)
	status = Evaluate(FormatSingles, holes, teamA, teamB)
	assert.False(t, status.Closed)
	assert.Equal(t, 2, status.Margin)
	assert.Equal(t, 15, status.Thru)

	_, ok := Finalize(status)
	assert.False(t, ok)
}

func TestEvaluate_IgnoresTrailingDataAfterClosure(t *testing.T) {
	teamA, teamB := singlesRosters()

	var holes [Holes]HoleInput
	for i := 0; i < 4; i++ {
		holes[i] = singlesHole(3, 4)
	}
	for i := 4; i < 15; i++ {
		holes[i] = singlesHole(4, 4)
	}

	closedStatus := Evaluate(FormatSingles, holes, teamA, teamB)
	require.True(t, closedStatus.Closed)

	// Data trickling in for holes past the closure point changes nothing.
	holes[15] = singlesHole(2, 6)
	holes[16] = singlesHole(9, 2)
	withTrailing := Evaluate(FormatSingles, holes, teamA, teamB)

	assert.Equal(t, closedStatus.Closed, withTrailing.Closed)
	assert.Equal(t, closedStatus.Margin, withTrailing.Margin)
	assert.Equal(t, closedStatus.Thru, withTrailing.Thru)
	assert.Equal(t, closedStatus.Leader, withTrailing.Leader)
}

func TestEvaluate_Idempotent(t *testing.T) {
	teamA, teamB := pairRosters()

	var holes [Holes]HoleInput
	holes[0] = pairHole(4, 5, 5, 5)
	holes[1] = pairHole(3, 6, 4, 4)
	holes[4] = pairHole(5, 5, 4, 6)

	first := Evaluate(FormatTwoManBestBall, holes, teamA, teamB)
	second := Evaluate(FormatTwoManBestBall, holes, teamA, teamB)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated evaluation diverged (-first +second):\n%s", diff)
	}
}

func TestEvaluate_EmptyMatch(t *testing.T) {
	teamA, teamB := singlesRosters()

	status := Evaluate(FormatSingles, [Holes]HoleInput{}, teamA, teamB)
	assert.Equal(t, 0, status.Margin)
	assert.Equal(t, 0, status.Thru)
	assert.Nil(t, status.Leader)
	assert.False(t, status.Closed)
	assert.False(t, status.Dormie)
}

func TestEvaluate_MalformedRosterDegradesToIncomplete(t *testing.T) {
	var holes [Holes]HoleInput
	holes[0] = pairHole(4, 4, 5, 5)

	// Team B roster is short a player: every hole resolves incomplete.
	teamA := []RosterEntry{{PlayerID: "a1"}, {PlayerID: "a2"}}
	teamB := []RosterEntry{{PlayerID: "b1"}}

	status := Evaluate(FormatTwoManBestBall, holes, teamA, teamB)
	assert.Equal(t, 0, status.Margin)
	assert.False(t, status.MarginHistory[0].Complete)
}

func TestEvaluate_ClosureRuleHoldsAcrossMarginSweep(t *testing.T) {
	teamA, teamB := singlesRosters()

	// Team A wins the first n holes, everything else left unplayed. Closure
	// must hold exactly when n > 18 - n.
	for n := 1; n <= Holes; n++ {
		var holes [Holes]HoleInput
		for i := 0; i < n; i++ {
			holes[i] = singlesHole(3, 5)
		}
		status := Evaluate(FormatSingles, holes, teamA, teamB)
		wantClosed := n > Holes-n
		assert.Equalf(t, wantClosed, status.Closed, "margin %d thru %d", n, n)
		if status.Closed {
			assert.Greaterf(t, status.Margin, Holes-status.Thru, "closure inequality at thru %d", status.Thru)
		}
	}
}
