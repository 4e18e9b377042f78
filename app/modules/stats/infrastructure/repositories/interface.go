package statsdb

import (
	"context"

	"github.com/google/uuid"

	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
)

// StatsDB persists player match facts and the aggregates folded from them.
type StatsDB interface {
	// UpsertFacts replaces the facts for each (match, player) pair.
	UpsertFacts(ctx context.Context, roundID uuid.UUID, series string, facts []statsdomain.PlayerMatchFact) error
	// DeleteFactsForMatch removes all facts for the match and returns the
	// player IDs that lost a fact, so their aggregates can be rebuilt.
	DeleteFactsForMatch(ctx context.Context, matchID uuid.UUID) ([]string, error)
	// GetFactsForPlayer returns every fact recorded for the player across
	// all series.
	GetFactsForPlayer(ctx context.Context, playerID string) ([]statsdomain.PlayerMatchFact, error)
	// GetSeriesForPlayer returns the distinct series the player has facts
	// in, lifetime excluded.
	GetSeriesForPlayer(ctx context.Context, playerID string) ([]string, error)
	// GetSeriesWithStats returns the distinct series the player has stored
	// aggregates for, lifetime excluded. A rebuild folds these too, so a
	// series whose facts all disappeared is written back as zeros instead
	// of keeping its stale row.
	GetSeriesWithStats(ctx context.Context, playerID string) ([]string, error)
	UpsertPlayerStats(ctx context.Context, stats statsdomain.PlayerStats) error
	GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error)
}
