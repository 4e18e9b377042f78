package matchdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchplay "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/domain"
)

// Match is the match document row. Rosters, holes, status, and result are
// stored as jsonb so the document round-trips through the domain types
// without a mapping layer.
type Match struct {
	bun.BaseModel `bun:"table:matches"`

	ID           uuid.UUID                            `bun:"id,pk,type:uuid"`
	RoundID      uuid.UUID                            `bun:"round_id,notnull,type:uuid"`
	Format       matchplay.Format                     `bun:"format,notnull"`
	TeamAPlayers []matchplay.RosterEntry              `bun:"team_a_players,type:jsonb"`
	TeamBPlayers []matchplay.RosterEntry              `bun:"team_b_players,type:jsonb"`
	Holes        [matchplay.Holes]matchplay.HoleInput `bun:"holes,type:jsonb"`
	Status       *matchplay.MatchStatus               `bun:"status,type:jsonb"`
	Result       *matchplay.MatchResult               `bun:"result,type:jsonb"`
	CreatedAt    time.Time                            `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time                            `bun:"updated_at,notnull,default:current_timestamp"`
}

// Round is the round document row.
type Round struct {
	bun.BaseModel `bun:"table:rounds"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid"`
	CourseID    uuid.UUID  `bun:"course_id,notnull,type:uuid"`
	Format      string     `bun:"format,notnull"`
	Series      string     `bun:"series"`
	CoursePar   int        `bun:"course_par,notnull"`
	TrackDrives bool       `bun:"track_drives,notnull"`
	Locked      bool       `bun:"locked,notnull"`
	LocksAt     *time.Time `bun:"locks_at"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}

// Course is the course row. Hole data is a jsonb array of 18 entries.
type Course struct {
	bun.BaseModel `bun:"table:courses"`

	ID    uuid.UUID                             `bun:"id,pk,type:uuid"`
	Name  string                                `bun:"name,notnull"`
	Holes [matchplay.Holes]matchplay.CourseHole `bun:"holes,type:jsonb"`
}

func (m *Match) toDomain() *matchplay.Match {
	return &matchplay.Match{
		ID:           m.ID,
		RoundID:      m.RoundID,
		Format:       m.Format,
		TeamAPlayers: m.TeamAPlayers,
		TeamBPlayers: m.TeamBPlayers,
		Holes:        m.Holes,
		Status:       m.Status,
		Result:       m.Result,
	}
}

func (r *Round) toDomain() *matchplay.Round {
	return &matchplay.Round{
		ID:          r.ID,
		CourseID:    r.CourseID,
		Format:      matchplay.Format(r.Format),
		Series:      r.Series,
		CoursePar:   r.CoursePar,
		TrackDrives: r.TrackDrives,
		Locked:      r.Locked,
		LocksAt:     r.LocksAt,
	}
}

func (c *Course) toDomain() *matchplay.Course {
	return &matchplay.Course{
		ID:    c.ID,
		Name:  c.Name,
		Holes: c.Holes,
	}
}
