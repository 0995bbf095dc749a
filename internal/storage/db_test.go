package storage

import (
	"io/fs"
	"strings"
	"testing"

	swimdeck "github.com/claude/swimdeck"
)

// TestEmbeddedMigrations verifies the embedded migration set is well formed:
// at least one migration, and every up file has a matching down file.
func TestEmbeddedMigrations(t *testing.T) {
	ups, err := fs.Glob(swimdeck.MigrationsFS, "migrations/*.up.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}

	for _, up := range ups {
		down := strings.Replace(up, ".up.sql", ".down.sql", 1)
		if _, err := fs.Stat(swimdeck.MigrationsFS, down); err != nil {
			t.Errorf("migration %s has no matching down file", up)
		}

		data, err := fs.ReadFile(swimdeck.MigrationsFS, up)
		if err != nil {
			t.Fatalf("reading %s: %v", up, err)
		}
		if len(data) == 0 {
			t.Errorf("migration %s is empty", up)
		}
	}
}
