package dreams

import (
	"fmt"
	"time"

	"dreambook/internal/cli"
	"dreambook/internal/constants"
	"dreambook/internal/models"
	"dreambook/internal/validation"
)

type EditCmd struct {
	ID          string  `arg:"" help:"Dream ID."`
	Title       *string `help:"New title."`
	Description *string `short:"d" help:"New description."`
	Category    *string `short:"c" help:"New category (${categories})."`
	Mood        *string `short:"m" help:"New mood (${moods})."`
	Priority    *int    `short:"p" help:"New priority (1-3)."`
	Lucidity    *int    `short:"l" help:"New lucidity level (1-5)."`
	TargetDate  *string `help:"New target date (YYYY-MM-DD, empty string clears it)."`
	AddStep     *string `help:"Append a new step."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		dream.Title = *c.Title
	}
	if c.Description != nil {
		dream.Description = *c.Description
	}
	if c.Category != nil {
		category, err := cli.ParseCategory(*c.Category)
		if err != nil {
			return err
		}
		dream.Category = category
	}
	if c.Mood != nil {
		mood, err := cli.ParseMood(*c.Mood)
		if err != nil {
			return err
		}
		dream.Mood = mood
	}
	if c.Priority != nil {
		dream.Priority = *c.Priority
	}
	if c.Lucidity != nil {
		dream.Lucidity = *c.Lucidity
	}
	if c.TargetDate != nil {
		if *c.TargetDate == "" {
			dream.TargetDate = nil
		} else {
			if _, err := time.Parse(constants.DateFormat, *c.TargetDate); err != nil {
				return fmt.Errorf("invalid target date %q, expected YYYY-MM-DD", *c.TargetDate)
			}
			td := *c.TargetDate
			dream.TargetDate = &td
		}
	}
	if c.AddStep != nil {
		dream.Steps = append(dream.Steps, models.Step{Title: *c.AddStep})
	}

	if err := validation.ValidateDream(&dream); err != nil {
		return err
	}
	if err := ctx.Store.UpdateDream(dream); err != nil {
		return fmt.Errorf("failed to update dream: %w", err)
	}

	fmt.Printf("Dream updated: %s\n", dream.Title)
	return nil
}
