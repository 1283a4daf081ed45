package dreams

import (
	"fmt"
	"strings"

	"dreambook/internal/cli"
	"dreambook/internal/engine"
)

type ShowCmd struct {
	ID string `arg:"" help:"Dream ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", dream.Category.Icon(), dream.Title)
	if dream.Description != "" {
		fmt.Printf("\n%s\n", dream.Description)
	}
	fmt.Println()
	fmt.Printf("  Category:   %s\n", dream.Category)
	fmt.Printf("  Mood:       %s %s\n", dream.Mood.Icon(), dream.Mood)
	fmt.Printf("  Priority:   %d\n", dream.Priority)
	fmt.Printf("  Lucidity:   %d/5\n", dream.Lucidity)
	fmt.Printf("  Progress:   %s\n", cli.FormatProgress(dream.Progress()))
	fmt.Printf("  Created:    %s\n", dream.CreatedAt.Format("2006-01-02"))
	if dream.TargetDate != nil {
		fmt.Printf("  Target:     %s\n", *dream.TargetDate)
	}
	if len(dream.Tags) > 0 {
		fmt.Printf("  Tags:       %s\n", strings.Join(dream.Tags, ", "))
	}
	if dream.Completed {
		fmt.Println("  Status:     ✓ completed")
	}

	if len(dream.Steps) > 0 {
		fmt.Println("\nSteps:")
		for i, s := range dream.Steps {
			mark := " "
			if s.Done {
				mark = "✓"
			}
			fmt.Printf("  %d. [%s] %s\n", i+1, mark, s.Title)
		}
	}

	if dream.JournalNote != "" {
		fmt.Printf("\nJournal:\n  %s\n", dream.JournalNote)
	}

	var insight string
	if profile, err := ctx.Store.GetProfile(); err == nil {
		insight = engine.GenerateInsight(&dream, &profile)
	} else {
		insight = engine.GenerateInsight(&dream, nil)
	}
	fmt.Printf("\n💡 %s\n", insight)
	return nil
}
