package statsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Adding player fact indices...")

		if _, err := db.ExecContext(ctx,
			"CREATE INDEX IF NOT EXISTS idx_player_match_facts_player_id ON player_match_facts (player_id)"); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx,
			"CREATE INDEX IF NOT EXISTS idx_player_match_facts_match_id ON player_match_facts (match_id)"); err != nil {
			return err
		}

		fmt.Println("Player fact indices added successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping player fact indices...")

		if _, err := db.ExecContext(ctx, "DROP INDEX IF EXISTS idx_player_match_facts_player_id"); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, "DROP INDEX IF EXISTS idx_player_match_facts_match_id"); err != nil {
			return err
		}

		fmt.Println("Player fact indices dropped successfully!")
		return nil
	})
}
