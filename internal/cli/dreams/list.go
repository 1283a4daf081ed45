package dreams

import (
	"fmt"

	"dreambook/internal/cli"
	"dreambook/internal/storage"
)

type ListCmd struct {
	Category  string `short:"c" help:"Filter by category (${categories})."`
	Active    bool   `help:"Show only active dreams."`
	Completed bool   `help:"Show only completed dreams."`
	Sort      string `default:"created" enum:"created,priority,title" help:"Sort order (created|priority|title)."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if c.Active && c.Completed {
		return fmt.Errorf("--active and --completed are mutually exclusive")
	}

	filter := storage.DreamFilter{Sort: storage.SortOrder(c.Sort)}
	if c.Category != "" {
		category, err := cli.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		filter.Category = &category
	}
	if c.Active {
		completed := false
		filter.Completed = &completed
	}
	if c.Completed {
		completed := true
		filter.Completed = &completed
	}

	dreams, err := ctx.Store.ListDreams(filter)
	if err != nil {
		return fmt.Errorf("failed to list dreams: %w", err)
	}

	if len(dreams) == 0 {
		fmt.Println("No dreams yet. Add one with 'dreambook add' or browse 'dreambook discover'.")
		return nil
	}

	fmt.Printf("Dreams (%d):\n\n", len(dreams))
	for _, d := range dreams {
		status := " "
		if d.Completed {
			status = "✓"
		}
		fmt.Printf("  [%s] %s %s\n", status, d.Category.Icon(), d.Title)
		fmt.Printf("      %s  %s  priority %d  %s\n",
			d.ID, d.Category, d.Priority, cli.FormatProgress(d.Progress()))
	}
	return nil
}
