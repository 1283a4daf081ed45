package system

import (
	"encoding/json"
	"fmt"

	"dreambook/internal/cli"
)

type DebugCmd struct {
	DBPath      *DebugDBPathCmd      `cmd:"" help:"Show database path."`
	DumpDream   *DebugDumpDreamCmd   `cmd:"" help:"Dump a dream record as JSON."`
	DumpDreams  *DebugDumpDreamsCmd  `cmd:"" help:"Dump all dream records as JSON."`
	DumpProfile *DebugDumpProfileCmd `cmd:"" help:"Dump the profile as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDreamCmd struct {
	ID string `arg:"" help:"ID of the dream to dump."`
}

func (cmd *DebugDumpDreamCmd) Run(ctx *cli.Context) error {
	dream, err := ctx.Store.GetDream(cmd.ID)
	if err != nil {
		return err
	}
	jsonBytes, err := json.MarshalIndent(dream, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dream: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDreamsCmd struct{}

func (cmd *DebugDumpDreamsCmd) Run(ctx *cli.Context) error {
	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}
	jsonBytes, err := json.MarshalIndent(dreams, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dreams: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpProfileCmd struct{}

func (cmd *DebugDumpProfileCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
