package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_initial.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);"),
		},
		"002_add_name.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;"),
		},
	}
}

func TestApply(t *testing.T) {
	t.Run("applies all pending migrations in order", func(t *testing.T) {
		db := setupTestDB(t)
		runner := NewRunner(db, testFS())

		var applied []string
		n, err := runner.Apply(func(msg string) { applied = append(applied, msg) })
		if err != nil {
			t.Fatalf("Apply() failed: %v", err)
		}
		if n != 2 {
			t.Errorf("Apply() = %d, want 2", n)
		}
		if len(applied) != 2 {
			t.Errorf("log messages = %d, want 2", len(applied))
		}

		version, err := runner.CurrentVersion()
		if err != nil {
			t.Fatal(err)
		}
		if version != 2 {
			t.Errorf("CurrentVersion() = %d, want 2", version)
		}

		if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('a', 'b')"); err != nil {
			t.Errorf("schema incomplete after migrations: %v", err)
		}
	})

	t.Run("second apply is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		runner := NewRunner(db, testFS())

		if _, err := runner.Apply(nil); err != nil {
			t.Fatal(err)
		}
		n, err := runner.Apply(nil)
		if err != nil {
			t.Fatalf("second Apply() failed: %v", err)
		}
		if n != 0 {
			t.Errorf("second Apply() = %d, want 0", n)
		}
	})

	t.Run("failed migration rolls back and keeps version", func(t *testing.T) {
		db := setupTestDB(t)
		fsys := testFS()
		fsys["003_broken.sql"] = &fstest.MapFile{Data: []byte("NOT VALID SQL;")}
		runner := NewRunner(db, fsys)

		n, err := runner.Apply(nil)
		if err == nil {
			t.Fatal("Apply() with broken migration should fail")
		}
		if n != 2 {
			t.Errorf("applied = %d, want 2 before failure", n)
		}

		version, _ := runner.CurrentVersion()
		if version != 2 {
			t.Errorf("CurrentVersion() = %d, want 2 after rollback", version)
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		db := setupTestDB(t)
		fsys := testFS()
		fsys["002_duplicate.sql"] = &fstest.MapFile{Data: []byte("SELECT 1;")}
		runner := NewRunner(db, fsys)

		if _, err := runner.Apply(nil); err == nil {
			t.Error("Apply() with duplicate versions should fail")
		}
	})

	t.Run("rejects invalid filenames", func(t *testing.T) {
		db := setupTestDB(t)
		fsys := fstest.MapFS{
			"initial.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		}
		runner := NewRunner(db, fsys)

		if _, err := runner.Apply(nil); err == nil {
			t.Error("Apply() with unversioned filename should fail")
		}
	})
}

func TestValidateVersion(t *testing.T) {
	t.Run("out of date schema fails with migrate hint", func(t *testing.T) {
		db := setupTestDB(t)
		runner := NewRunner(db, testFS())

		if err := runner.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() on fresh database should fail")
		}
	})

	t.Run("current schema passes", func(t *testing.T) {
		db := setupTestDB(t)
		runner := NewRunner(db, testFS())

		if _, err := runner.Apply(nil); err != nil {
			t.Fatal(err)
		}
		if err := runner.ValidateVersion(); err != nil {
			t.Errorf("ValidateVersion() failed on current schema: %v", err)
		}
	})

	t.Run("newer schema than binary fails", func(t *testing.T) {
		db := setupTestDB(t)
		runner := NewRunner(db, testFS())

		if _, err := runner.Apply(nil); err != nil {
			t.Fatal(err)
		}
		if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
			t.Fatal(err)
		}
		if err := runner.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() should fail when schema is newer than supported")
		}
	})
}
