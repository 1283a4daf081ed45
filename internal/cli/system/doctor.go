package system

import (
	"fmt"
	"strings"

	"dreambook/internal/backup"
	"dreambook/internal/cli"
	"dreambook/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Profile present
	if dbReachable {
		if _, err := ctx.Store.GetProfile(); err != nil {
			fmt.Printf("⚠ Profile: not set up yet (run 'dreambook onboard')\n")
		} else {
			fmt.Printf("✓ Profile: OK\n")
		}
	} else {
		fmt.Printf("⊘ Profile: SKIPPED (database not reachable)\n")
	}

	// Check 3: Dream records decode and validate
	if dbReachable {
		if err := checkDreams(ctx); err != nil {
			fmt.Printf("❌ Dream records: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Dream records: OK\n")
		}
	} else {
		fmt.Printf("⊘ Dream records: SKIPPED (database not reachable)\n")
	}

	// Check 4: Backups present (warning only, SQLite only)
	path := ctx.Store.GetConfigPath()
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		fmt.Printf("⊘ Backups: SKIPPED (Postgres backend)\n")
	} else if err := checkBackupsPresent(path); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkDreams(ctx *cli.Context) error {
	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}
	for i := range dreams {
		if err := validation.ValidateDream(&dreams[i]); err != nil {
			return fmt.Errorf("dream %q: %w", dreams[i].Title, err)
		}
	}
	return nil
}

func checkBackupsPresent(dbPath string) error {
	mgr := backup.NewManager(dbPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, one will be created on next TUI start")
	}
	return nil
}
