package backup

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dreambook/internal/models"
	"dreambook/internal/storage/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	d := models.Dream{
		ID:        "d1",
		Title:     "Learn to sail",
		Category:  models.CategoryAdventure,
		Mood:      models.MoodExciting,
		Priority:  2,
		Lucidity:  1,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddDream(d); err != nil {
		t.Fatalf("AddDream() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(backupPath), "dreambook-") {
		t.Errorf("unexpected backup filename: %s", backupPath)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "test.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	// Mutate the live database after the backup was taken
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.DeleteDream("d1"); err != nil {
		t.Fatalf("DeleteDream() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	restored := sqlite.NewStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load() after restore error = %v", err)
	}
	defer restored.Close()
	if _, err := restored.GetDream("d1"); err != nil {
		t.Errorf("dream missing after restore: %v", err)
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "test.db"))
	if err := mgr.RestoreBackup("/nonexistent/backup.db"); err == nil {
		t.Error("expected error for missing backup file")
	}
}
