package system

import (
	"fmt"

	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/storage/sqlite"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		fmt.Println("The JSON store has no schema migrations. Nothing to do.")
		return nil
	}

	applied, err := store.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if applied == 0 {
		fmt.Println("Database schema is up to date.")
	} else {
		fmt.Printf("✓ Applied %d migration(s)\n", applied)
	}
	return nil
}
