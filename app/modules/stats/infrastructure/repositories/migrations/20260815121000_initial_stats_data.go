package statsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	statsdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/stats/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating stats module tables...")

		for _, model := range []interface{}{
			(*statsdb.PlayerMatchFact)(nil),
			(*statsdb.PlayerStats)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Stats module tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping stats module tables...")

		for _, model := range []interface{}{
			(*statsdb.PlayerStats)(nil),
			(*statsdb.PlayerMatchFact)(nil),
		} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Stats module tables dropped successfully!")
		return nil
	})
}
