package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
)

// DBService bundles the per-module repositories over one bun connection.
type DBService struct {
	MatchDB *matchdb.MatchDBImpl
	StatsDB *statsdb.StatsDBImpl
	RecapDB *recapdb.RecapDBImpl

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and builds the module repositories.
func NewBunDBService(ctx context.Context, dsn string) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		MatchDB: &matchdb.MatchDBImpl{DB: db},
		StatsDB: &statsdb.StatsDBImpl{DB: db},
		RecapDB: &recapdb.RecapDBImpl{DB: db},
		db:      db,
	}, nil
}

// Close closes the underlying connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}
