package dreams

import (
	"fmt"

	"dreambook/internal/cli"
)

type CompleteCmd struct {
	ID   string `arg:"" help:"Dream ID."`
	Undo bool   `help:"Mark the dream active again."`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return err
	}

	dream.Completed = !c.Undo
	if err := ctx.Store.UpdateDream(dream); err != nil {
		return fmt.Errorf("failed to update dream: %w", err)
	}

	if c.Undo {
		fmt.Printf("%q is active again.\n", dream.Title)
	} else {
		fmt.Printf("🎉 Completed: %s\n", dream.Title)
	}
	return nil
}
