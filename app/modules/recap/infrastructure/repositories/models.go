package recapdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
)

// MatchSnapshot is the recap module's projection of a closed match, fed by
// match lifecycle events so rebuilds never read the match module's tables.
// Reopened matches are removed, so only decided matches contribute.
type MatchSnapshot struct {
	bun.BaseModel `bun:"table:recap_match_snapshots"`

	MatchID   uuid.UUID                   `bun:"match_id,pk,type:uuid"`
	RoundID   uuid.UUID                   `bun:"round_id,notnull,type:uuid"`
	Snapshot  matchevents.MatchSnapshotV1 `bun:"snapshot,notnull,type:jsonb"`
	UpdatedAt time.Time                   `bun:"updated_at,notnull,default:current_timestamp"`
}

// RoundRecap is the stored recap document, one per round.
type RoundRecap struct {
	bun.BaseModel `bun:"table:round_recaps"`

	RoundID   uuid.UUID              `bun:"round_id,pk,type:uuid"`
	Recap     recapdomain.RoundRecap `bun:"recap,notnull,type:jsonb"`
	UpdatedAt time.Time              `bun:"updated_at,notnull,default:current_timestamp"`
}
