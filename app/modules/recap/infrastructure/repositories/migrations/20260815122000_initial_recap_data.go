package recapmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	recapdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/recap/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating recap module tables...")

		for _, model := range []interface{}{
			(*recapdb.MatchSnapshot)(nil),
			(*recapdb.RoundRecap)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		if _, err := db.ExecContext(ctx,
			"CREATE INDEX IF NOT EXISTS idx_recap_match_snapshots_round_id ON recap_match_snapshots (round_id)"); err != nil {
			return err
		}

		fmt.Println("Recap module tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping recap module tables...")

		for _, model := range []interface{}{
			(*recapdb.RoundRecap)(nil),
			(*recapdb.MatchSnapshot)(nil),
		} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Recap module tables dropped successfully!")
		return nil
	})
}
