package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V10__add_messages.sql", "CREATE TABLE messages ();")
	writeMigration(t, dir, "V2__add_skills.sql", "CREATE TABLE skills ();")
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE users ();")
	writeMigration(t, dir, "README.md", "not a migration")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("loadMigrations failed: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}

	wantVersions := []int64{1, 2, 10}
	wantNames := []string{"init", "add_skills", "add_messages"}
	for i, m := range migs {
		if m.Version != wantVersions[i] || m.Name != wantNames[i] {
			t.Fatalf("migration %d: got version=%d name=%s", i, m.Version, m.Name)
		}
		if m.Checksum == "" || m.SQL == "" {
			t.Fatalf("migration %d missing checksum or body", i)
		}
	}
}

func TestLoadMigrations_RejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE users ();")
	writeMigration(t, dir, "V1__init_again.sql", "CREATE TABLE users2 ();")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_MissingDirIsEmpty(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}

func TestLoadMigrations_ChecksumTracksContent(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeMigration(t, a, "V1__init.sql", "CREATE TABLE users ();")
	writeMigration(t, b, "V1__init.sql", "CREATE TABLE users (id UUID);")

	ma, err := loadMigrations(a)
	if err != nil {
		t.Fatalf("loadMigrations failed: %v", err)
	}
	mb, err := loadMigrations(b)
	if err != nil {
		t.Fatalf("loadMigrations failed: %v", err)
	}
	if ma[0].Checksum == mb[0].Checksum {
		t.Fatalf("different bodies must not share a checksum")
	}
}
