package matchplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize(t *testing.T) {
	teamB := TeamB

	tests := []struct {
		name    string
		status  MatchStatus
		wantOK  bool
		want    MatchResult
	}{
		{
			name:   "not closed yields nothing",
			status: MatchStatus{Margin: 3, Thru: 8},
		},
		{
			name:   "closed early",
			status: MatchStatus{Closed: true, Margin: 3, Thru: 16, Leader: teamPtr(TeamA)},
			wantOK: true,
			want:   MatchResult{Winner: WinnerTeamA, DisplayMargin: "3 & 2"},
		},
		{
			name:   "closed at the last",
			status: MatchStatus{Closed: true, Margin: 1, Thru: 18, Leader: &teamB},
			wantOK: true,
			want:   MatchResult{Winner: WinnerTeamB, DisplayMargin: "1 UP"},
		},
		{
			name:   "halved",
			status: MatchStatus{Closed: true, Margin: 0, Thru: 18},
			wantOK: true,
			want:   MatchResult{Winner: WinnerAllSquare, DisplayMargin: "Halved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Finalize(tt.status)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestMatchResult_WinnerFor(t *testing.T) {
	win := MatchResult{Winner: WinnerTeamA}
	assert.Equal(t, OutcomeWin, win.WinnerFor(TeamA))
	assert.Equal(t, OutcomeLoss, win.WinnerFor(TeamB))

	halve := MatchResult{Winner: WinnerAllSquare}
	assert.Equal(t, OutcomeHalve, halve.WinnerFor(TeamA))
	assert.Equal(t, OutcomeHalve, halve.WinnerFor(TeamB))
}

func teamPtr(team Team) *Team { return &team }
