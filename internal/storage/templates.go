package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertTemplate stores a workout template. Sections are serialized as
// JSONB; totals are always derived on read, never stored.
func (db *DB) InsertTemplate(ctx context.Context, tpl models.Template) error {
	sections, err := json.Marshal(tpl.Sections)
	if err != nil {
		return fmt.Errorf("marshaling sections: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO templates (id, user_id, name, title, pool_length, pool_units, tag, schema_version, created_at, sections)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		tpl.ID, tpl.UserID, tpl.Name, tpl.Title, tpl.PoolLength, tpl.PoolUnits,
		tpl.Tag, tpl.SchemaVersion, tpl.CreatedAt, sections)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

// QueryTemplates lists templates created in a time range, newest first.
// An empty tag matches everything.
func (db *DB) QueryTemplates(ctx context.Context, start, end time.Time, tag string, userID int) ([]models.Template, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, title, pool_length, pool_units, tag, schema_version, created_at, sections
		 FROM templates
		 WHERE created_at >= $1 AND created_at < $2 AND user_id = $3
		   AND ($4 = '' OR tag = $4)
		 ORDER BY created_at DESC`,
		start, end, userID, tag)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	return scanTemplateRows(rows)
}

// GetTemplate retrieves one template by ID, or nil when no row matches. The
// schema migration runs here so callers only ever see current-version
// templates.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID, userID int) (*models.Template, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, title, pool_length, pool_units, tag, schema_version, created_at, sections
		 FROM templates
		 WHERE id = $1 AND user_id = $2`,
		id, userID)

	tpl, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}
	tpl.Migrate()
	return tpl, nil
}

// DeleteTemplate removes a template. Returns true if a row was deleted.
func (db *DB) DeleteTemplate(ctx context.Context, id uuid.UUID, userID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting template: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTemplate(row scannable) (*models.Template, error) {
	var tpl models.Template
	var sections []byte
	err := row.Scan(&tpl.ID, &tpl.UserID, &tpl.Name, &tpl.Title, &tpl.PoolLength,
		&tpl.PoolUnits, &tpl.Tag, &tpl.SchemaVersion, &tpl.CreatedAt, &sections)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sections, &tpl.Sections); err != nil {
		return nil, fmt.Errorf("unmarshaling sections: %w", err)
	}
	return &tpl, nil
}

func scanTemplateRows(rows pgx.Rows) ([]models.Template, error) {
	var templates []models.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		tpl.Migrate()
		templates = append(templates, *tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
