package profile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"dreambook/internal/cli"
)

type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		fmt.Println("⚠️  WARNING: This deletes your profile AND every dream. There is no undo.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteProfile(); err != nil {
		return fmt.Errorf("failed to reset profile: %w", err)
	}

	fmt.Println("Profile and all dreams deleted. Run 'dreambook onboard' to start fresh.")
	return nil
}
