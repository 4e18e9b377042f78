package matchplay

import "fmt"

// Format identifies the scoring format of a round. It is fixed for a round
// and decides which hole-input fields are populated and how a team score is
// resolved.
type Format string

const (
	FormatSingles        Format = "singles"
	FormatTwoManBestBall Format = "two_man_best_ball"
	FormatTwoManShamble  Format = "two_man_shamble"
	FormatTwoManScramble Format = "two_man_scramble"
)

// ParseFormat validates a raw format tag.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(raw); f {
	case FormatSingles, FormatTwoManBestBall, FormatTwoManShamble, FormatTwoManScramble:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", raw)
	}
}

// PlayersPerTeam reports how many players score for a team in this format.
func (f Format) PlayersPerTeam() int {
	if f == FormatSingles {
		return 1
	}
	return 2
}

// TracksDrives reports whether the format records which player's drive was
// taken on each hole.
func (f Format) TracksDrives() bool {
	return f == FormatTwoManShamble || f == FormatTwoManScramble
}

// TeamScored reports whether the format records a single team ball rather
// than individual player balls.
func (f Format) TeamScored() bool {
	return f == FormatTwoManScramble
}
