package dreams

import (
	"fmt"

	"dreambook/internal/cli"
)

type StepCmd struct {
	ID   string `arg:"" help:"Dream ID."`
	Step int    `arg:"" help:"Step number (1-based, as shown by 'dreambook show')."`
}

func (c *StepCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return err
	}

	if !dream.ToggleStep(c.Step - 1) {
		return fmt.Errorf("no step %d on %q (it has %d steps)", c.Step, dream.Title, len(dream.Steps))
	}

	if err := ctx.Store.UpdateDream(dream); err != nil {
		return fmt.Errorf("failed to update dream: %w", err)
	}

	step := dream.Steps[c.Step-1]
	state := "pending"
	if step.Done {
		state = "done"
	}
	fmt.Printf("Step %d (%s) is now %s. %s\n", c.Step, step.Title, state, cli.FormatProgress(dream.Progress()))
	if dream.Completed {
		fmt.Printf("🎉 All steps done! %q is complete.\n", dream.Title)
	}
	return nil
}
