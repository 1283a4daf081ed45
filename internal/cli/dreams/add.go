package dreams

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dreambook/internal/cli"
	"dreambook/internal/constants"
	"dreambook/internal/models"
	"dreambook/internal/validation"
)

type AddCmd struct {
	Title       string   `arg:"" help:"Dream title."`
	Description string   `short:"d" help:"Longer description."`
	Category    string   `short:"c" default:"personal-growth" help:"Category (${categories})."`
	Mood        string   `short:"m" default:"neutral" help:"Mood (${moods})."`
	Priority    int      `short:"p" default:"2" help:"Priority (1=low, 2=medium, 3=high)."`
	Lucidity    int      `short:"l" default:"1" help:"Lucidity level (1-5)."`
	Steps       []string `short:"s" help:"Initial steps, repeat the flag for each."`
	Tags        []string `short:"t" help:"Tags, comma-separated."`
	TargetDate  string   `help:"Target date (YYYY-MM-DD)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	category, err := cli.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	mood, err := cli.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	dream := models.Dream{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Category:    category,
		Mood:        mood,
		Priority:    c.Priority,
		Lucidity:    c.Lucidity,
		Tags:        models.NormalizeTags(c.Tags),
		CreatedAt:   time.Now(),
	}
	for _, s := range c.Steps {
		dream.Steps = append(dream.Steps, models.Step{Title: s})
	}
	if c.TargetDate != "" {
		if _, err := time.Parse(constants.DateFormat, c.TargetDate); err != nil {
			return fmt.Errorf("invalid target date %q, expected YYYY-MM-DD", c.TargetDate)
		}
		td := c.TargetDate
		dream.TargetDate = &td
	}

	if err := validation.ValidateDream(&dream); err != nil {
		return err
	}
	if err := ctx.Store.AddDream(dream); err != nil {
		return fmt.Errorf("failed to add dream: %w", err)
	}

	fmt.Printf("Added dream: %s (ID: %s)\n", dream.Title, dream.ID)
	return nil
}
