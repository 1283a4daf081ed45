package system

import (
	"fmt"

	"dreambook/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	// Init applies any pending migrations against an existing database
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Migrations complete.")
	return nil
}
