package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunner_ReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
			"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
			"README.md":      {Data: []byte("not a migration")},
		}
		r := NewRunner(newTestDB(t), fsys)

		migrations, err := r.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error = %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("len(migrations) = %d, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "first" {
			t.Errorf("first migration = %+v", migrations[0])
		}
		if migrations[1].Version != 2 {
			t.Errorf("second migration version = %d, want 2", migrations[1].Version)
		}
	})

	t.Run("duplicate versions rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_a.sql": {Data: []byte("SELECT 1;")},
			"001_b.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(newTestDB(t), fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("expected duplicate version error")
		}
	})

	t.Run("malformed filename rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"init.sql": {Data: []byte("SELECT 1;")},
		}
		r := NewRunner(newTestDB(t), fsys)
		if _, err := r.ReadMigrationFiles(); err == nil {
			t.Error("expected filename format error")
		}
	})
}

func TestRunner_ApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT);")},
		"002_more.sql": {Data: []byte("ALTER TABLE items ADD COLUMN done INTEGER NOT NULL DEFAULT 0;")},
	}
	db := newTestDB(t)
	r := NewRunner(db, fsys)

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("fresh database version = %d, want 0", version)
	}

	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err = r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version after apply = %d, want 2", version)
	}

	// Migrated schema is usable
	if _, err := db.Exec("INSERT INTO items (name, done) VALUES ('x', 1)"); err != nil {
		t.Errorf("migrated schema rejected insert: %v", err)
	}

	// A second run is a no-op
	applied, err = r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}

	pending, err := r.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount() error = %v", err)
	}
	if pending != 0 {
		t.Errorf("PendingCount() = %d, want 0", pending)
	}
}

func TestRunner_NewerSchemaRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY);")},
	}
	db := newTestDB(t)
	r := NewRunner(db, fsys)

	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}

	// Simulate a database touched by a newer release
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := r.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should reject a newer schema")
	}
	if _, err := r.ApplyMigrations(nil); err == nil {
		t.Error("ApplyMigrations() should reject a newer schema")
	}
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}
	db := newTestDB(t)
	r := NewRunner(db, fsys)

	applied, err := r.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected the bad migration to fail")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 before the failure", applied)
	}

	version, verr := r.CurrentVersion()
	if verr != nil {
		t.Fatalf("CurrentVersion() error = %v", verr)
	}
	if version != 1 {
		t.Errorf("version after failed migration = %d, want 1", version)
	}
}
