package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/parse"
	"github.com/google/uuid"
)

// templateStore is the slice of the storage layer the importer needs.
type templateStore interface {
	InsertTemplate(ctx context.Context, tpl models.Template) error
}

// Stats tracks import progress.
type Stats struct {
	FilesProcessed    int
	FilesSkipped      int
	FilesErrored      int
	TemplatesInserted int
	ParseWarnings     int
}

// Importer reads workout text files from a directory tree and inserts
// parsed templates into the DB.
type Importer struct {
	db     templateStore
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db templateStore, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, log: log, dryRun: dryRun}
}

// Import processes all .txt and .md files under dir. Files in a subdirectory
// are tagged with the subdirectory name, so a tree like sprint/tuesday.txt
// becomes a template named "tuesday" tagged "sprint".
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		imp.importFile(ctx, dir, path)
		return nil
	})
	if err != nil {
		return &imp.stats, fmt.Errorf("walking %s: %w", dir, err)
	}
	return &imp.stats, nil
}

// importFile parses a single workout file and inserts the template. Parse
// never fails, so the only error paths are unreadable files and empty output.
func (imp *Importer) importFile(ctx context.Context, root, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		imp.log.Warn("read failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return
	}

	parsed := parse.Parse(string(data))
	if len(parsed.Sections) == 0 {
		imp.log.Info("skipping file with no workout content", "file", path)
		imp.stats.FilesSkipped++
		return
	}
	imp.stats.ParseWarnings += len(parsed.Warnings)
	for _, w := range parsed.Warnings {
		imp.log.Warn("parse warning", "file", path, "warning", w)
	}

	tpl := models.Template{
		ID:            uuid.New(),
		UserID:        1,
		Name:          TemplateName(filepath.Base(path)),
		Title:         parsed.Title,
		PoolLength:    25,
		PoolUnits:     "yards",
		Tag:           tagFor(root, path),
		SchemaVersion: models.TemplateSchemaVersion,
		Sections:      parsed.Sections,
	}
	if info, err := os.Stat(path); err == nil {
		tpl.CreatedAt = info.ModTime().UTC()
	}

	imp.stats.FilesProcessed++
	if imp.dryRun {
		imp.stats.TemplatesInserted++
		return
	}

	if err := imp.db.InsertTemplate(ctx, tpl); err != nil {
		imp.log.Warn("insert failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		imp.stats.FilesProcessed--
		return
	}
	imp.stats.TemplatesInserted++
}

// tagFor derives a tag from the file's first path segment under the import
// root. Files directly under the root get no tag.
func tagFor(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if i := strings.Index(rel, "/"); i > 0 {
		return rel[:i]
	}
	return ""
}

// TemplateName converts a workout filename like "tuesday_threshold.txt" into
// a template name ("tuesday threshold").
func TemplateName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.Join(strings.Fields(base), " ")
}
