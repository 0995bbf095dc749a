package importer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/claude/swimdeck/internal/models"
)

// fakeStore records inserted templates in memory.
type fakeStore struct {
	inserted []models.Template
}

func (f *fakeStore) InsertTemplate(_ context.Context, tpl models.Template) error {
	f.inserted = append(f.inserted, tpl)
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestImportDirectory verifies the walker picks up .txt and .md files, tags
// them by subdirectory, and skips other extensions.
func TestImportDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tuesday_threshold.txt"), "Main Set\n10x100 free @ 1:25")
	writeFile(t, filepath.Join(dir, "sprint", "friday.md"), "Warmup\n400 easy\n\nMain Set\n8x25 fly sprint")
	writeFile(t, filepath.Join(dir, "notes.pdf"), "not a workout")

	store := &fakeStore{}
	imp := New(store, slog.New(slog.DiscardHandler), false)

	stats, err := imp.Import(context.Background(), dir)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", stats.FilesProcessed)
	}
	if stats.TemplatesInserted != 2 {
		t.Errorf("TemplatesInserted = %d, want 2", stats.TemplatesInserted)
	}
	if len(store.inserted) != 2 {
		t.Fatalf("inserted = %d templates, want 2", len(store.inserted))
	}

	byName := map[string]models.Template{}
	for _, tpl := range store.inserted {
		byName[tpl.Name] = tpl
	}
	threshold, ok := byName["tuesday threshold"]
	if !ok {
		t.Fatalf("missing template %q, have %v", "tuesday threshold", store.inserted)
	}
	if threshold.Tag != "" {
		t.Errorf("root file tag = %q, want empty", threshold.Tag)
	}
	if threshold.TotalYards() != 1000 {
		t.Errorf("threshold TotalYards = %d, want 1000", threshold.TotalYards())
	}
	friday, ok := byName["friday"]
	if !ok {
		t.Fatalf("missing template %q", "friday")
	}
	if friday.Tag != "sprint" {
		t.Errorf("friday tag = %q, want %q", friday.Tag, "sprint")
	}
	if len(friday.Sections) != 2 {
		t.Errorf("friday sections = %d, want 2", len(friday.Sections))
	}
}

// TestImportSkipsEmptyFiles verifies files with no parseable content are
// counted as skipped, not inserted.
func TestImportSkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.txt"), "\n\n  \n")

	store := &fakeStore{}
	imp := New(store, slog.New(slog.DiscardHandler), false)

	stats, err := imp.Import(context.Background(), dir)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", stats.FilesSkipped)
	}
	if len(store.inserted) != 0 {
		t.Errorf("inserted = %d templates, want 0", len(store.inserted))
	}
}

// TestImportDryRun verifies dry-run counts templates without inserting.
func TestImportDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "workout.txt"), "4x100 free @ 1:30")

	store := &fakeStore{}
	imp := New(store, slog.New(slog.DiscardHandler), true)

	stats, err := imp.Import(context.Background(), dir)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if stats.TemplatesInserted != 1 {
		t.Errorf("TemplatesInserted = %d, want 1", stats.TemplatesInserted)
	}
	if len(store.inserted) != 0 {
		t.Errorf("dry run inserted %d templates, want 0", len(store.inserted))
	}
}

// TestTemplateName converts filenames to readable names.
func TestTemplateName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"tuesday_threshold.txt", "tuesday threshold"},
		{"friday-sprint.md", "friday sprint"},
		{"simple.txt", "simple"},
		{"double__underscore.txt", "double underscore"},
	}
	for _, tt := range tests {
		if got := TemplateName(tt.filename); got != tt.want {
			t.Errorf("TemplateName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
