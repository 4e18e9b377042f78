package recapdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchevents "github.com/Harbor-Links-Club/matchplay-bot/app/events/matchevents"
	recapdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/domain"
)

type RecapDBImpl struct {
	DB *bun.DB
}

var _ RecapDB = (*RecapDBImpl)(nil)

func (db *RecapDBImpl) UpsertSnapshot(ctx context.Context, snapshot matchevents.MatchSnapshotV1) error {
	row := &MatchSnapshot{
		MatchID:   snapshot.MatchID,
		RoundID:   snapshot.RoundID,
		Snapshot:  snapshot,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (match_id) DO UPDATE").
		Set("round_id = EXCLUDED.round_id").
		Set("snapshot = EXCLUDED.snapshot").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot for match %s: %w", snapshot.MatchID, err)
	}
	return nil
}

func (db *RecapDBImpl) DeleteSnapshot(ctx context.Context, matchID uuid.UUID) error {
	_, err := db.DB.NewDelete().
		Model((*MatchSnapshot)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot for match %s: %w", matchID, err)
	}
	return nil
}

func (db *RecapDBImpl) GetSnapshotsForRound(ctx context.Context, roundID uuid.UUID) ([]matchevents.MatchSnapshotV1, error) {
	var rows []*MatchSnapshot
	err := db.DB.NewSelect().
		Model(&rows).
		Where("round_id = ?", roundID).
		Order("match_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshots for round %s: %w", roundID, err)
	}

	snapshots := make([]matchevents.MatchSnapshotV1, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, row.Snapshot)
	}
	return snapshots, nil
}

func (db *RecapDBImpl) UpsertRecap(ctx context.Context, recap recapdomain.RoundRecap) error {
	row := &RoundRecap{
		RoundID:   recap.RoundID,
		Recap:     recap,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (round_id) DO UPDATE").
		Set("recap = EXCLUDED.recap").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert recap for round %s: %w", recap.RoundID, err)
	}
	return nil
}

func (db *RecapDBImpl) GetRecap(ctx context.Context, roundID uuid.UUID) (*recapdomain.RoundRecap, error) {
	row := new(RoundRecap)
	err := db.DB.NewSelect().
		Model(row).
		Where("round_id = ?", roundID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecapNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recap for round %s: %w", roundID, err)
	}
	return &row.Recap, nil
}
