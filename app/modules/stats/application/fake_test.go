package statsservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	statsdomain "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/domain"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
)

// FakeStatsDB is an in-memory StatsDB that records the calls made against it.
// Facts are keyed (match, player) so upserts replace exactly like the real
// store.
type FakeStatsDB struct {
	trace []string

	facts map[uuid.UUID]map[string]factRow
	stats map[string]statsdomain.PlayerStats

	UpsertFactsFunc         func(ctx context.Context, roundID uuid.UUID, series string, facts []statsdomain.PlayerMatchFact) error
	DeleteFactsForMatchFunc func(ctx context.Context, matchID uuid.UUID) ([]string, error)
	GetFactsForPlayerFunc   func(ctx context.Context, playerID string) ([]statsdomain.PlayerMatchFact, error)
	UpsertPlayerStatsFunc   func(ctx context.Context, stats statsdomain.PlayerStats) error
}

type factRow struct {
	series string
	fact   statsdomain.PlayerMatchFact
}

var _ statsdb.StatsDB = (*FakeStatsDB)(nil)

func NewFakeStatsDB() *FakeStatsDB {
	return &FakeStatsDB{
		facts: map[uuid.UUID]map[string]factRow{},
		stats: map[string]statsdomain.PlayerStats{},
	}
}

func (f *FakeStatsDB) Trace() []string { return f.trace }

func (f *FakeStatsDB) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

func statsKey(playerID, series string) string {
	return playerID + "|" + series
}

// StoredStats returns the aggregate last upserted for the player and series,
// or nil.
func (f *FakeStatsDB) StoredStats(playerID, series string) *statsdomain.PlayerStats {
	if s, ok := f.stats[statsKey(playerID, series)]; ok {
		return &s
	}
	return nil
}

// FactCount returns the number of facts stored for the match.
func (f *FakeStatsDB) FactCount(matchID uuid.UUID) int {
	return len(f.facts[matchID])
}

func (f *FakeStatsDB) UpsertFacts(ctx context.Context, roundID uuid.UUID, series string, facts []statsdomain.PlayerMatchFact) error {
	f.record("UpsertFacts(%d)", len(facts))
	if f.UpsertFactsFunc != nil {
		return f.UpsertFactsFunc(ctx, roundID, series, facts)
	}
	for _, fact := range facts {
		rows, ok := f.facts[fact.MatchID]
		if !ok {
			rows = map[string]factRow{}
			f.facts[fact.MatchID] = rows
		}
		rows[fact.PlayerID] = factRow{series: series, fact: fact}
	}
	return nil
}

func (f *FakeStatsDB) DeleteFactsForMatch(ctx context.Context, matchID uuid.UUID) ([]string, error) {
	f.record("DeleteFactsForMatch(%s)", matchID)
	if f.DeleteFactsForMatchFunc != nil {
		return f.DeleteFactsForMatchFunc(ctx, matchID)
	}
	rows := f.facts[matchID]
	if len(rows) == 0 {
		return nil, nil
	}
	playerIDs := make([]string, 0, len(rows))
	for playerID := range rows {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)
	delete(f.facts, matchID)
	return playerIDs, nil
}

func (f *FakeStatsDB) GetFactsForPlayer(ctx context.Context, playerID string) ([]statsdomain.PlayerMatchFact, error) {
	f.record("GetFactsForPlayer(%s)", playerID)
	if f.GetFactsForPlayerFunc != nil {
		return f.GetFactsForPlayerFunc(ctx, playerID)
	}
	var facts []statsdomain.PlayerMatchFact
	for _, rows := range f.facts {
		if row, ok := rows[playerID]; ok {
			facts = append(facts, row.fact)
		}
	}
	return facts, nil
}

func (f *FakeStatsDB) GetSeriesForPlayer(ctx context.Context, playerID string) ([]string, error) {
	f.record("GetSeriesForPlayer(%s)", playerID)
	seen := map[string]bool{}
	for _, rows := range f.facts {
		if row, ok := rows[playerID]; ok && row.series != "" {
			seen[row.series] = true
		}
	}
	series := make([]string, 0, len(seen))
	for s := range seen {
		series = append(series, s)
	}
	sort.Strings(series)
	return series, nil
}

func (f *FakeStatsDB) GetSeriesWithStats(ctx context.Context, playerID string) ([]string, error) {
	f.record("GetSeriesWithStats(%s)", playerID)
	seen := map[string]bool{}
	for _, stats := range f.stats {
		if stats.PlayerID == playerID && stats.Series != "" {
			seen[stats.Series] = true
		}
	}
	series := make([]string, 0, len(seen))
	for s := range seen {
		series = append(series, s)
	}
	sort.Strings(series)
	return series, nil
}

func (f *FakeStatsDB) UpsertPlayerStats(ctx context.Context, stats statsdomain.PlayerStats) error {
	f.record("UpsertPlayerStats(%s,%s)", stats.PlayerID, stats.Series)
	if f.UpsertPlayerStatsFunc != nil {
		return f.UpsertPlayerStatsFunc(ctx, stats)
	}
	f.stats[statsKey(stats.PlayerID, stats.Series)] = stats
	return nil
}

func (f *FakeStatsDB) GetPlayerStats(ctx context.Context, playerID string, series string) (*statsdomain.PlayerStats, error) {
	f.record("GetPlayerStats(%s,%s)", playerID, series)
	if s, ok := f.stats[statsKey(playerID, series)]; ok {
		return &s, nil
	}
	return nil, statsdb.ErrStatsNotFound
}
