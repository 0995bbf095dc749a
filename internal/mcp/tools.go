package mcp

import (
	"context"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/parse"
	"github.com/claude/swimdeck/internal/render"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolParseWorkout = mcp.NewTool("parse_workout",
	mcp.WithDescription("Parse freeform swim workout notation into structured sections, sets, and lines. Returns the parsed structure plus total yardage and a per-stroke breakdown. Never fails on messy input; unrecognized lines are kept as free text."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw workout text, e.g. '4x100 free @ 1:30 descend'")),
)

var toolRenderWorkout = mcp.NewTool("render_workout",
	mcp.WithDescription("Render a workout in canonical form: section headers, aligned repeat blocks, and normalized intervals. Takes either raw workout text (parsed first) or the ID of a saved template."),
	mcp.WithString("text", mcp.Description("Raw workout text to parse and render")),
	mcp.WithString("id", mcp.Description("Saved template UUID to render instead of raw text")),
)

var toolSaveTemplate = mcp.NewTool("save_template",
	mcp.WithDescription("Parse workout notation and save the result as a named template."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Template name (e.g. 'Tuesday Threshold')")),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw workout text to parse and store")),
	mcp.WithString("tag", mcp.Description("Optional tag for grouping (e.g. 'sprint', 'distance')")),
	mcp.WithNumber("pool_length", mcp.Description("Pool length (e.g. 25). Defaults to 25.")),
	mcp.WithString("pool_units", mcp.Description("Pool units: 'yards' or 'meters'. Defaults to 'yards'."), mcp.Enum("yards", "meters")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List saved workout templates, newest first, with optional tag filter."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("tag", mcp.Description("Filter by tag (exact match)")),
)

var toolGetTemplate = mcp.NewTool("get_template",
	mcp.WithDescription("Fetch a single template by ID, including its full section/set/line structure."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Template UUID")),
)

var toolGetYardageSummary = mcp.NewTool("get_yardage_summary",
	mcp.WithDescription("Aggregate yardage across saved templates in a time range: template count, total yards, and yards per stroke."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

// parseResult is the JSON shape returned by parse_workout.
type parseResult struct {
	Title       string           `json:"title,omitempty"`
	Sections    []models.Section `json:"sections"`
	Warnings    []string         `json:"warnings,omitempty"`
	TotalYards  int              `json:"total_yards"`
	StrokeYards map[string]int   `json:"stroke_yards"`
}

func (h *handlers) parseWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	parsed := parse.Parse(text)
	out := parseResult{
		Title:       parsed.Title,
		Sections:    parsed.Sections,
		Warnings:    parsed.Warnings,
		TotalYards:  parsed.TotalYards(),
		StrokeYards: render.StrokeYards(parsed),
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) renderWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if idStr := req.GetString("id", ""); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return mcp.NewToolResultError("invalid template id: " + err.Error()), nil
		}
		tpl, err := h.ds.GetTemplate(ctx, id, UserIDFromContext(ctx))
		if err != nil {
			h.log.Error("mcp render_workout", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		if tpl == nil {
			return mcp.NewToolResultError("template not found"), nil
		}
		r := models.ParseResult{Title: tpl.Title, Sections: tpl.Sections}
		return mcp.NewToolResultText(render.Text(r)), nil
	}

	text := req.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("either text or id is required"), nil
	}
	return mcp.NewToolResultText(render.Text(parse.Parse(text))), nil
}

func (h *handlers) saveTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	parsed := parse.Parse(text)
	tpl := models.Template{
		ID:            uuid.New(),
		UserID:        UserIDFromContext(ctx),
		Name:          name,
		Title:         parsed.Title,
		PoolLength:    req.GetInt("pool_length", 25),
		PoolUnits:     req.GetString("pool_units", "yards"),
		Tag:           req.GetString("tag", ""),
		SchemaVersion: models.TemplateSchemaVersion,
		CreatedAt:     time.Now().UTC(),
		Sections:      parsed.Sections,
	}

	if err := h.ds.InsertTemplate(ctx, tpl); err != nil {
		h.log.Error("mcp save_template", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"id":          tpl.ID,
		"name":        tpl.Name,
		"total_yards": tpl.TotalYards(),
		"warnings":    parsed.Warnings,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	tag := req.GetString("tag", "")
	uid := UserIDFromContext(ctx)

	templates, err := h.ds.QueryTemplates(ctx, start, end, tag, uid)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	// Summarize; full section structure is available via get_template.
	type templateSummary struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		Title      string    `json:"title,omitempty"`
		Tag        string    `json:"tag,omitempty"`
		TotalYards int       `json:"total_yards"`
		CreatedAt  time.Time `json:"created_at"`
	}
	summaries := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, templateSummary{
			ID:         t.ID,
			Name:       t.Name,
			Title:      t.Title,
			Tag:        t.Tag,
			TotalYards: t.TotalYards(),
			CreatedAt:  t.CreatedAt,
		})
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid template id: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	tpl, err := h.ds.GetTemplate(ctx, id, uid)
	if err != nil {
		h.log.Error("mcp get_template", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if tpl == nil {
		return mcp.NewToolResultError("template not found"), nil
	}

	result, err := mcp.NewToolResultJSON(tpl)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getYardageSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	summary, err := h.ds.GetYardageSummary(ctx, start, end, uid)
	if err != nil {
		h.log.Error("mcp get_yardage_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
