package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	matchdb "github.com/Harbor-Links-Club/matchplay-bot/app/modules/match/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating match module tables...")

		for _, model := range []interface{}{
			(*matchdb.Course)(nil),
			(*matchdb.Round)(nil),
			(*matchdb.Match)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Match module tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping match module tables...")

		for _, model := range []interface{}{
			(*matchdb.Match)(nil),
			(*matchdb.Round)(nil),
			(*matchdb.Course)(nil),
		} {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Match module tables dropped successfully!")
		return nil
	})
}
