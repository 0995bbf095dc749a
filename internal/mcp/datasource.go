package mcp

import (
	"context"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the template store for MCP tools, so tools can be
// tested without a live database.
type DataSource interface {
	InsertTemplate(ctx context.Context, tpl models.Template) error
	QueryTemplates(ctx context.Context, start, end time.Time, tag string, userID int) ([]models.Template, error)
	GetTemplate(ctx context.Context, id uuid.UUID, userID int) (*models.Template, error)
	GetYardageSummary(ctx context.Context, start, end time.Time, userID int) (*storage.YardageSummary, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
