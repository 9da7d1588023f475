package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB creates a small sqlite database to back up.
func newTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO items (name) VALUES ('original')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	return dbPath
}

func TestManager_CreateAndListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	// The backup is a valid database containing the source data
	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup: %v", err)
	}
	defer db.Close()
	var name string
	if err := db.QueryRow("SELECT name FROM items").Scan(&name); err != nil {
		t.Fatalf("backup query error = %v", err)
	}
	if name != "original" {
		t.Errorf("backup content = %q, want %q", name, "original")
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("len(backups) = %d, want 1", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("listed path = %s, want %s", backups[0].Path, backupPath)
	}
	if backups[0].Size == 0 {
		t.Error("listed backup size = 0")
	}
}

func TestManager_CreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestManager_ListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "tally.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("len(backups) = %d, want 0", len(backups))
	}
}

func TestManager_RestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	// Change the live database after the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("UPDATE items SET name = 'changed'"); err != nil {
		t.Fatalf("failed to update row: %v", err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()
	var name string
	if err := db.QueryRow("SELECT name FROM items").Scan(&name); err != nil {
		t.Fatalf("restored query error = %v", err)
	}
	if name != "original" {
		t.Errorf("restored content = %q, want %q", name, "original")
	}

	// A safety backup of the pre-restore state was taken
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("len(backups) = %d, want the original and the safety backup", len(backups))
	}
}

func TestManager_RestoreRejectsInvalidBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	badPath := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(badPath, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write bad file: %v", err)
	}

	if err := mgr.RestoreBackup(badPath); err == nil {
		t.Error("expected restore of invalid backup to fail")
	}
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected restore of missing backup to fail")
	}
}
