package discover

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dreambook/internal/catalog"
	"dreambook/internal/cli"
	"dreambook/internal/constants"
	"dreambook/internal/engine"
	"dreambook/internal/models"
)

const (
	topPicksCount  = 6
	perCategoryCap = 4
)

type DiscoverCmd struct {
	Accept string `help:"Accept a suggestion by template title, adding it as a dream."`
}

func (c *DiscoverCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireProfile()
	if err != nil {
		return err
	}

	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}
	titles := make([]string, 0, len(dreams))
	for _, d := range dreams {
		titles = append(titles, d.Title)
	}

	if c.Accept != "" {
		return acceptSuggestion(ctx, c.Accept, titles)
	}

	suggestions := engine.Suggest(&profile, titles)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions right now. You've already taken on everything that fits your profile!")
		return nil
	}

	top := suggestions
	if len(top) > topPicksCount {
		top = top[:topPicksCount]
	}
	fmt.Printf("✨ Top picks for %s:\n\n", profile.Name)
	skills := profile.SkillSet()
	interests := profile.InterestSet()
	for _, t := range top {
		fmt.Printf("  %s %s (match %d)\n", t.Category.Icon(), t.Title, engine.Score(&t, skills, interests))
		fmt.Printf("      %s\n", t.Description)
	}

	groups := engine.GroupByCategory(suggestions)
	for _, category := range models.Categories {
		section := groups[category]
		if len(section) == 0 {
			continue
		}
		if len(section) > perCategoryCap {
			section = section[:perCategoryCap]
		}
		fmt.Printf("\n%s %s:\n", category.Icon(), category)
		for _, t := range section {
			fmt.Printf("  • %s\n", t.Title)
		}
	}

	fmt.Println("\nAccept one with: dreambook discover --accept \"<title>\"")
	return nil
}

func acceptSuggestion(ctx *cli.Context, title string, existingTitles []string) error {
	tmpl := catalog.FindByTitle(title)
	if tmpl == nil {
		return fmt.Errorf("no suggestion titled %q", title)
	}
	for _, t := range existingTitles {
		if t == tmpl.Title {
			return fmt.Errorf("you already have a dream titled %q", tmpl.Title)
		}
	}

	dream := models.Dream{
		ID:          uuid.NewString(),
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Category:    tmpl.Category,
		Mood:        tmpl.Mood,
		Priority:    constants.DefaultPriority,
		Lucidity:    constants.DefaultLucidity,
		CreatedAt:   time.Now(),
		Suggested:   true,
		Insight:     tmpl.Insight,
	}
	for _, s := range tmpl.SuggestedSteps {
		dream.Steps = append(dream.Steps, models.Step{Title: s})
	}

	if err := ctx.Store.AddDream(dream); err != nil {
		return fmt.Errorf("failed to add dream: %w", err)
	}

	fmt.Printf("Added %q with %d suggested steps. (ID: %s)\n", dream.Title, len(dream.Steps), dream.ID)
	return nil
}
