package matchplay

import "fmt"

// Finalize derives the human-readable result from a closed status. The
// second return is false while the match is still live.
func Finalize(status MatchStatus) (MatchResult, bool) {
	if !status.Closed {
		return MatchResult{}, false
	}

	if status.Margin == 0 {
		return MatchResult{Winner: WinnerAllSquare, DisplayMargin: "Halved"}, true
	}

	winner := WinnerTeamA
	if status.Leader != nil && *status.Leader == TeamB {
		winner = WinnerTeamB
	}

	display := fmt.Sprintf("%d UP", status.Margin)
	if status.Thru < Holes {
		display = fmt.Sprintf("%d & %d", status.Margin, Holes-status.Thru)
	}

	return MatchResult{Winner: winner, DisplayMargin: display}, true
}

// WinnerFor maps a winner tag onto a team's outcome perspective.
func (r MatchResult) WinnerFor(team Team) Outcome {
	switch {
	case r.Winner == WinnerAllSquare:
		return OutcomeHalve
	case r.Winner == WinnerTeamA && team == TeamA,
		r.Winner == WinnerTeamB && team == TeamB:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// Outcome is a single player's or team's result in a match.
type Outcome string

const (
	OutcomeWin   Outcome = "win"
	OutcomeLoss  Outcome = "loss"
	OutcomeHalve Outcome = "halve"
)
