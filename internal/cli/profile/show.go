package profile

import (
	"fmt"
	"strings"

	"dreambook/internal/cli"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	fmt.Println("Profile:")
	fmt.Printf("  Name:       %s\n", profile.Name)
	fmt.Printf("  Age:        %d\n", profile.Age)
	fmt.Printf("  Skills:     %s\n", joinOrNone(profile.Skills))
	fmt.Printf("  Interests:  %s\n", joinOrNone(profile.Interests))
	fmt.Printf("  Member since: %s\n", profile.CreatedAt.Format("2006-01-02"))

	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}
	completed := 0
	for _, d := range dreams {
		if d.Completed {
			completed++
		}
	}
	fmt.Printf("\n  Dreams:     %d total, %d completed\n", len(dreams), completed)
	return nil
}

func joinOrNone(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}
