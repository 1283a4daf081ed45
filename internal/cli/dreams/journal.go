package dreams

import (
	"fmt"

	"dreambook/internal/cli"
)

type JournalCmd struct {
	ID   string `arg:"" help:"Dream ID."`
	Note string `arg:"" optional:"" help:"Journal note text (omit to show the current note)."`
}

func (c *JournalCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return err
	}

	if c.Note == "" {
		if dream.JournalNote == "" {
			fmt.Printf("No journal note on %q yet.\n", dream.Title)
		} else {
			fmt.Println(dream.JournalNote)
		}
		return nil
	}

	dream.JournalNote = c.Note
	if err := ctx.Store.UpdateDream(dream); err != nil {
		return fmt.Errorf("failed to update dream: %w", err)
	}

	fmt.Printf("Journal updated for %q.\n", dream.Title)
	return nil
}
