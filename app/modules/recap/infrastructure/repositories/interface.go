package recapdb

import (
	"context"

	"github.com/google/uuid"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
)

// RecapDB persists the closed-match projection and the derived round recaps.
type RecapDB interface {
	UpsertSnapshot(ctx context.Context, snapshot matchevents.MatchSnapshotV1) error
	DeleteSnapshot(ctx context.Context, matchID uuid.UUID) error
	GetSnapshotsForRound(ctx context.Context, roundID uuid.UUID) ([]matchevents.MatchSnapshotV1, error)
	UpsertRecap(ctx context.Context, recap recapdomain.RoundRecap) error
	GetRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error)
}
