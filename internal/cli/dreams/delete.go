package dreams

import (
	"fmt"

	"dreambook/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Dream ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	// Check if the dream exists first
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find dream with ID %s: %w", c.ID, err)
	}

	if err := ctx.Store.DeleteDream(c.ID); err != nil {
		return fmt.Errorf("failed to delete dream: %w", err)
	}

	fmt.Printf("Deleted dream: %s (ID: %s)\n", dream.Title, c.ID)
	return nil
}
