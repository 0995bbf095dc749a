package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Library is a local SQLite store of workout templates for offline CLI use.
// The server keeps its own Postgres store; this one lives under the user's
// home directory and needs no daemon.
type Library struct {
	db *sql.DB
}

// Open opens (or creates) the library database at dir/swimdeck.db.
func Open(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "swimdeck.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening library db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS templates (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		tag         TEXT NOT NULL DEFAULT '',
		total_yards INTEGER NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		body        TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating templates table: %w", err)
	}

	return &Library{db: db}, nil
}

// Save stores a template, replacing any existing row with the same ID.
func (l *Library) Save(tpl models.Template) error {
	body, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}

	_, err = l.db.Exec(
		`INSERT OR REPLACE INTO templates (id, name, tag, total_yards, created_at, body) VALUES (?, ?, ?, ?, ?, ?)`,
		tpl.ID.String(), tpl.Name, tpl.Tag, tpl.TotalYards(), tpl.CreatedAt.Format(time.RFC3339), string(body),
	)
	return err
}

// Entry is a library listing row without the full template body.
type Entry struct {
	ID         uuid.UUID
	Name       string
	Tag        string
	TotalYards int
	CreatedAt  time.Time
}

// List returns all stored templates, newest first.
func (l *Library) List() ([]Entry, error) {
	rows, err := l.db.Query(`SELECT id, name, tag, total_yards, created_at FROM templates ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var id, created string
		if err := rows.Scan(&id, &e.Name, &e.Tag, &e.TotalYards, &created); err != nil {
			return nil, err
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("bad template id %q: %w", id, err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", created, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads a full template by ID. Returns nil when not found. Older rows are
// migrated to the current schema version on load.
func (l *Library) Get(id uuid.UUID) (*models.Template, error) {
	var body string
	err := l.db.QueryRow(`SELECT body FROM templates WHERE id = ?`, id.String()).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tpl models.Template
	if err := json.Unmarshal([]byte(body), &tpl); err != nil {
		return nil, fmt.Errorf("decoding template %s: %w", id, err)
	}
	tpl.Migrate()
	return &tpl, nil
}

// Close closes the library database.
func (l *Library) Close() error {
	return l.db.Close()
}
