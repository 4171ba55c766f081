package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)

	path := filepath.Join(t.TempDir(), "ptprov.db")
	SetPath(path)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != path {
		t.Fatalf("DefaultPath = %q, want %q", got, path)
	}
}

func TestDefaultPath_UnderAppDir(t *testing.T) {
	ResetPath()

	got, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir on this machine: %v", err)
	}
	want := filepath.Join("ptprov", "ptprov.db")
	if !strings.HasSuffix(got, want) {
		t.Errorf("DefaultPath = %q, want suffix %q", got, want)
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ptprov.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := db.Exec(`CREATE TABLE probe (id INTEGER)`); err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file at %s: %v", path, err)
	}
}
