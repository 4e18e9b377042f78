package matchplay

import (
	"time"

	"github.com/google/uuid"
)

// Holes is the number of holes in a match.
const Holes = 18

// Team identifies one of the two sides of a match.
type Team string

const (
	TeamA Team = "team_a"
	TeamB Team = "team_b"
)

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// RosterEntry is one player's spot on a match roster. StrokeHoles carries the
// precomputed handicap allocation: 1 where the player receives a stroke, 0
// elsewhere. At most one stroke per hole.
type RosterEntry struct {
	PlayerID    string     `json:"player_id"`
	PlayerName  string     `json:"player_name,omitempty"`
	StrokeHoles [Holes]int `json:"stroke_holes"`
}

// StrokeAt reports whether the player receives a handicap stroke on the hole
// at holeIdx (0..17). Out-of-range values stored upstream are clamped, never
// rejected; anything other than 1 counts as no stroke.
func (e RosterEntry) StrokeAt(holeIdx int) int {
	if holeIdx < 0 || holeIdx >= Holes {
		return 0
	}
	if e.StrokeHoles[holeIdx] == 1 {
		return 1
	}
	return 0
}

// HoleInput is the raw entry for a single hole. Which fields are populated
// depends on the format: singles uses slot 0 of the per-player grosses, best
// ball and shamble use both slots, scramble uses the single team grosses.
// A nil field means "not entered yet".
type HoleInput struct {
	TeamAPlayerGross [2]*int `json:"team_a_player_gross"`
	TeamBPlayerGross [2]*int `json:"team_b_player_gross"`
	TeamAGross       *int    `json:"team_a_gross,omitempty"`
	TeamBGross       *int    `json:"team_b_gross,omitempty"`
	TeamADrive       *int    `json:"team_a_drive,omitempty"`
	TeamBDrive       *int    `json:"team_b_drive,omitempty"`
}

// HasAnyInput reports whether any score field has been entered for the hole.
func (h HoleInput) HasAnyInput() bool {
	for _, g := range h.TeamAPlayerGross {
		if g != nil {
			return true
		}
	}
	for _, g := range h.TeamBPlayerGross {
		if g != nil {
			return true
		}
	}
	return h.TeamAGross != nil || h.TeamBGross != nil
}

// HoleMargin is one entry of the margin history. Margin is the signed running
// differential after the hole (positive = team A ahead) and is only
// meaningful when Complete is true.
type HoleMargin struct {
	Complete bool `json:"complete"`
	Margin   int  `json:"margin"`
}

// MatchStatus is the derived live state of a match. It is recomputed
// wholesale from the full hole set on every evaluation and never patched
// incrementally.
type MatchStatus struct {
	Leader        *Team             `json:"leader,omitempty"`
	Margin        int               `json:"margin"`
	Thru          int               `json:"thru"`
	Closed        bool              `json:"closed"`
	Dormie        bool              `json:"dormie"`
	MarginHistory [Holes]HoleMargin `json:"margin_history"`
}

// SignedMargin returns the running margin signed positive toward team A.
func (s MatchStatus) SignedMargin() int {
	if s.Leader != nil && *s.Leader == TeamB {
		return -s.Margin
	}
	return s.Margin
}

// Winner identifies the decided outcome of a match.
type Winner string

const (
	WinnerTeamA     Winner = "team_a"
	WinnerTeamB     Winner = "team_b"
	WinnerAllSquare Winner = "all_square"
)

// MatchResult is the human-readable final result. Only meaningful once the
// match status reports closed.
type MatchResult struct {
	Winner        Winner `json:"winner"`
	DisplayMargin string `json:"display_margin"`
}

// Match is the match document as delivered by the store.
type Match struct {
	ID           uuid.UUID        `json:"id"`
	RoundID      uuid.UUID        `json:"round_id"`
	Format       Format           `json:"format"`
	TeamAPlayers []RosterEntry    `json:"team_a_players"`
	TeamBPlayers []RosterEntry    `json:"team_b_players"`
	Holes        [Holes]HoleInput `json:"holes"`
	Status       *MatchStatus     `json:"status,omitempty"`
	Result       *MatchResult     `json:"result,omitempty"`
}

// Round is the round document governing a set of matches.
type Round struct {
	ID          uuid.UUID  `json:"id"`
	CourseID    uuid.UUID  `json:"course_id"`
	Format      Format     `json:"format"`
	Series      string     `json:"series,omitempty"`
	CoursePar   int        `json:"course_par"`
	TrackDrives bool       `json:"track_drives"`
	Locked      bool       `json:"locked"`
	LocksAt     *time.Time `json:"locks_at,omitempty"`
}

// CourseHole describes one hole of a course.
type CourseHole struct {
	Number   int `json:"number"`
	Par      int `json:"par"`
	HcpIndex int `json:"hcp_index"`
}

// Course is the course document, used for par lookups in fact generation and
// recap building.
type Course struct {
	ID    uuid.UUID         `json:"id"`
	Name  string            `json:"name"`
	Holes [Holes]CourseHole `json:"holes"`
}

// Par returns the par of the hole at holeIdx (0..17), defaulting to 4 when
// the course data is missing or malformed.
func (c Course) Par(holeIdx int) int {
	if holeIdx < 0 || holeIdx >= Holes {
		return 4
	}
	if p := c.Holes[holeIdx].Par; p > 0 {
		return p
	}
	return 4
}

// TotalPar sums the course pars.
func (c Course) TotalPar() int {
	total := 0
	for i := 0; i < Holes; i++ {
		total += c.Par(i)
	}
	return total
}
