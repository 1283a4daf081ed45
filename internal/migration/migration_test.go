package migration

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestReadMigrationFiles(t *testing.T) {
	t.Run("parses and sorts by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_add_index.sql": {Data: []byte("CREATE INDEX i ON t(c);")},
			"001_init.sql":      {Data: []byte("CREATE TABLE t (c TEXT);")},
			"README.md":         {Data: []byte("ignored")},
		}

		r := NewRunner(nil, fsys)
		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error = %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("got %d migrations, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "init" {
			t.Errorf("first migration = %d %q", migrations[0].Version, migrations[0].Name)
		}
		if migrations[1].Version != 2 || migrations[1].Name != "add_index" {
			t.Errorf("second migration = %d %q", migrations[1].Version, migrations[1].Name)
		}
		if !strings.Contains(migrations[0].SQL, "CREATE TABLE") {
			t.Error("migration SQL not loaded")
		}
	})

	t.Run("rejects bad filenames", func(t *testing.T) {
		fsys := fstest.MapFS{
			"noversion.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(nil, fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("expected error for missing version prefix")
		}
	})

	t.Run("rejects version zero", func(t *testing.T) {
		fsys := fstest.MapFS{
			"000_bad.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(nil, fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("expected error for version below 1")
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_one.sql": {Data: []byte("SELECT 1;")},
			"001_two.sql": {Data: []byte("SELECT 2;")},
		}
		r := NewRunner(nil, fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("expected error for duplicate version")
		}
	})
}

func TestGetLatestVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("SELECT 1;")},
		"003_late.sql": {Data: []byte("SELECT 3;")},
	}
	r := NewRunner(nil, fsys)
	latest, err := r.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion() error = %v", err)
	}
	if latest != 3 {
		t.Errorf("GetLatestVersion() = %d, want 3", latest)
	}

	empty := NewRunner(nil, fstest.MapFS{})
	latest, err = empty.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion() error = %v", err)
	}
	if latest != 0 {
		t.Errorf("GetLatestVersion() on empty fs = %d, want 0", latest)
	}
}
