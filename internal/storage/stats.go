package storage

import (
	"context"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/render"
)

// YardageSummary is the aggregate yardage over a set of templates. Totals
// are computed from the section trees at query time.
type YardageSummary struct {
	Templates   int            `json:"templates"`
	TotalYards  int            `json:"total_yards"`
	StrokeYards map[string]int `json:"stroke_yards"`
}

// GetYardageSummary aggregates total and per-stroke yardage over the
// templates created in a time range.
func (db *DB) GetYardageSummary(ctx context.Context, start, end time.Time, userID int) (*YardageSummary, error) {
	templates, err := db.QueryTemplates(ctx, start, end, "", userID)
	if err != nil {
		return nil, err
	}

	return summarizeYardage(templates), nil
}

func summarizeYardage(templates []models.Template) *YardageSummary {
	summary := &YardageSummary{
		Templates:   len(templates),
		StrokeYards: make(map[string]int),
	}
	for _, tpl := range templates {
		r := models.ParseResult{Sections: tpl.Sections}
		summary.TotalYards += r.TotalYards()
		for stroke, yards := range render.StrokeYards(r) {
			summary.StrokeYards[stroke] += yards
		}
	}
	return summary
}
