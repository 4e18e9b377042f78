package statsdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
)

// PlayerMatchFact is one player's fact row for one match. The pair
// (match_id, player_id) is unique; regeneration upserts over it so facts are
// replaced, never appended.
type PlayerMatchFact struct {
	bun.BaseModel `bun:"table:player_match_facts"`

	ID        int64                       `bun:"id,pk,autoincrement"`
	MatchID   uuid.UUID                   `bun:"match_id,notnull,type:uuid,unique:uq_fact_match_player"`
	PlayerID  string                      `bun:"player_id,notnull,unique:uq_fact_match_player"`
	RoundID   uuid.UUID                   `bun:"round_id,notnull,type:uuid"`
	Series    string                      `bun:"series"`
	Fact      statsdomain.PlayerMatchFact `bun:"fact,notnull,type:jsonb"`
	UpdatedAt time.Time                   `bun:"updated_at,notnull,default:current_timestamp"`
}

// PlayerStats is the running aggregate row, keyed player + series. Lifetime
// aggregates use the empty series.
type PlayerStats struct {
	bun.BaseModel `bun:"table:player_stats"`

	PlayerID  string                  `bun:"player_id,pk"`
	Series    string                  `bun:"series,pk"`
	Stats     statsdomain.PlayerStats `bun:"stats,notnull,type:jsonb"`
	UpdatedAt time.Time               `bun:"updated_at,notnull,default:current_timestamp"`
}
