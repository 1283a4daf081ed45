package system

import (
	"fmt"

	"dreambook/internal/cli"
	"dreambook/internal/keyring"
	"dreambook/internal/storage/postgres"
)

type KeyringCmd struct {
	Set   *KeyringSetCmd   `cmd:"" help:"Store a Postgres connection string in the OS keyring."`
	Clear *KeyringClearCmd `cmd:"" help:"Remove the stored connection string from the OS keyring."`
}

type KeyringSetCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string (password allowed here, it stays in the keyring)."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	if valid, err := postgres.ValidateConnString(c.ConnString); !valid && err != postgres.ErrEmbeddedCredentials {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type KeyringClearCmd struct{}

func (c *KeyringClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
