package insights

import (
	"fmt"

	"dreambook/internal/cli"
	"dreambook/internal/engine"
	"dreambook/internal/models"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}

	fmt.Println("Your Patterns:")
	fmt.Println()
	for _, p := range engine.Analyze(dreams) {
		fmt.Printf("%s %s\n", p.Icon, p.Title)
		fmt.Printf("   %s\n\n", p.Description)
	}

	if len(dreams) > 0 {
		active := models.ActiveDreams(dreams)
		fmt.Printf("Completion rate: %d%%\n", engine.CompletionRate(dreams))
		fmt.Printf("Average progress across %d active dreams: %d%%\n",
			len(active), int(engine.AverageActiveProgress(dreams)*100))
	}
	return nil
}
