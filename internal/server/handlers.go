package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/parse"
	"github.com/claude/swimdeck/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type parseRequest struct {
	Text string `json:"text"`
}

// parseResponse wraps a ParseResult with derived totals for the UI. Totals
// live in the envelope, not in the result itself.
type parseResponse struct {
	models.ParseResult
	TotalYards  int            `json:"total_yards"`
	StrokeYards map[string]int `json:"stroke_yards"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result := parse.Parse(req.Text)
	writeJSON(w, http.StatusOK, parseResponse{
		ParseResult: result,
		TotalYards:  result.TotalYards(),
		StrokeYards: render.StrokeYards(result),
	})
}

type createTemplateRequest struct {
	Text       string `json:"text"`
	Name       string `json:"name"`
	PoolLength int    `json:"pool_length"`
	PoolUnits  string `json:"pool_units"`
	Tag        string `json:"tag"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	result := parse.Parse(req.Text)
	tpl := models.Template{
		ID:            uuid.New(),
		UserID:        userIDFromContext(r),
		Name:          req.Name,
		Title:         result.Title,
		PoolLength:    req.PoolLength,
		PoolUnits:     req.PoolUnits,
		Tag:           req.Tag,
		SchemaVersion: models.TemplateSchemaVersion,
		CreatedAt:     time.Now().UTC(),
		Sections:      result.Sections,
	}

	if err := s.db.InsertTemplate(r.Context(), tpl); err != nil {
		s.log.Error("insert template", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":          tpl.ID,
		"total_yards": tpl.TotalYards(),
		"warnings":    result.Warnings,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	templates, err := s.db.QueryTemplates(r.Context(), start, end, r.URL.Query().Get("tag"), userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid template ID"})
		return
	}

	tpl, err := s.db.GetTemplate(r.Context(), id, userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if tpl == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) handleTemplateText(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid template ID"})
		return
	}

	tpl, err := s.db.GetTemplate(r.Context(), id, userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if tpl == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}

	text := render.Text(models.ParseResult{Sections: tpl.Sections, Title: tpl.Title})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid template ID"})
		return
	}

	deleted, err := s.db.DeleteTemplate(r.Context(), id, userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleYardageStats(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summary, err := s.db.GetYardageSummary(r.Context(), start, end, userIDFromContext(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseTimeRange reads start/end query params. Either may be omitted: end
// defaults to now, start to 30 days before end.
func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}

	if startStr == "" {
		start = end.AddDate(0, 0, -30)
	} else {
		start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			start, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
		}
	}
	return
}
