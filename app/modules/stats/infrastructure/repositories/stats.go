package statsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
)

type StatsDBImpl struct {
	DB *bun.DB
}

var _ StatsDB = (*StatsDBImpl)(nil)

func (db *StatsDBImpl) UpsertFacts(ctx context.Context, roundID uuid.UUID, series string, facts []statsdomain.PlayerMatchFact) error {
	if len(facts) == 0 {
		return nil
	}

	rows := make([]*PlayerMatchFact, 0, len(facts))
	now := time.Now().UTC()
	for _, fact := range facts {
		rows = append(rows, &PlayerMatchFact{
			MatchID:   fact.MatchID,
			PlayerID:  fact.PlayerID,
			RoundID:   roundID,
			Series:    series,
			Fact:      fact,
			UpdatedAt: now,
		})
	}

	_, err := db.DB.NewInsert().
		Model(&rows).
		On("CONFLICT (match_id, player_id) DO UPDATE").
		Set("round_id = EXCLUDED.round_id").
		Set("series = EXCLUDED.series").
		Set("fact = EXCLUDED.fact").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert match facts: %w", err)
	}
	return nil
}

func (db *StatsDBImpl) DeleteFactsForMatch(ctx context.Context, matchID uuid.UUID) ([]string, error) {
	var playerIDs []string
	err := db.DB.NewSelect().
		Model((*PlayerMatchFact)(nil)).
		Column("player_id").
		Where("match_id = ?", matchID).
		Scan(ctx, &playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts for match %s: %w", matchID, err)
	}
	if len(playerIDs) == 0 {
		return nil, nil
	}

	_, err = db.DB.NewDelete().
		Model((*PlayerMatchFact)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete facts for match %s: %w", matchID, err)
	}
	return playerIDs, nil
}

func (db *StatsDBImpl) GetFactsForPlayer(ctx context.Context, playerID string) ([]statsdomain.PlayerMatchFact, error) {
	var rows []*PlayerMatchFact
	err := db.DB.NewSelect().
		Model(&rows).
		Where("player_id = ?", playerID).
		Order("updated_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facts for player %s: %w", playerID, err)
	}

	facts := make([]statsdomain.PlayerMatchFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, row.Fact)
	}
	return facts, nil
}

func (db *StatsDBImpl) GetSeriesForPlayer(ctx context.Context, playerID string) ([]string, error) {
	var series []string
	err := db.DB.NewSelect().
		Model((*PlayerMatchFact)(nil)).
		ColumnExpr("DISTINCT series").
		Where("player_id = ?", playerID).
		Where("series != ''").
		Scan(ctx, &series)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch series for player %s: %w", playerID, err)
	}
	return series, nil
}

func (db *StatsDBImpl) GetSeriesWithStats(ctx context.Context, playerID string) ([]string, error) {
	var series []string
	err := db.DB.NewSelect().
		Model((*PlayerStats)(nil)).
		ColumnExpr("DISTINCT series").
		Where("player_id = ?", playerID).
		Where("series != ''").
		Scan(ctx, &series)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats series for player %s: %w", playerID, err)
	}
	return series, nil
}

func (db *StatsDBImpl) UpsertPlayerStats(ctx context.Context, stats statsdomain.PlayerStats) error {
	row := &PlayerStats{
		PlayerID:  stats.PlayerID,
		Series:    stats.Series,
		Stats:     stats,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := db.DB.NewInsert().
		Model(row).
		On("CONFLICT (player_id, series) DO UPDATE").
		Set("stats = EXCLUDED.stats").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert stats for player %s: %w", stats.PlayerID, err)
	}
	return nil
}

func (db *StatsDBImpl) GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error) {
	row := new(PlayerStats)
	err := db.DB.NewSelect().
		Model(row).
		Where("player_id = ?", playerID).
		Where("series = ?", series).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats for player %s: %w", playerID, err)
	}
	return &row.Stats, nil
}
