package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// TemplateSchemaVersion is the current on-disk schema for Template rows.
// Version 1 predates the per-line mode field.
const TemplateSchemaVersion = 2

// Template is the long-lived entity a ParseResult is persisted into, plus
// caller-supplied metadata (title override, pool info, tag).
type Template struct {
	ID            uuid.UUID `json:"id"`
	UserID        int       `json:"user_id"`
	Name          string    `json:"name"`
	Title         string    `json:"title,omitempty"`
	PoolLength    int       `json:"pool_length,omitempty"`
	PoolUnits     string    `json:"pool_units,omitempty"`
	Tag           string    `json:"tag,omitempty"`
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	Sections      []Section `json:"sections"`
}

// TotalYards sums yardage across the template's sections.
func (t Template) TotalYards() int {
	total := 0
	for _, s := range t.Sections {
		total += s.Yards()
	}
	return total
}

// Checked in order; the first match wins when a line mentions several modes.
var modeInferRules = []struct {
	mode Mode
	re   *regexp.Regexp
}{
	{ModeKick, regexp.MustCompile(`(?i)\bkick\b`)},
	{ModePull, regexp.MustCompile(`(?i)\bpull\b`)},
	{ModeDrill, regexp.MustCompile(`(?i)\bdrill\b`)},
	{ModeScull, regexp.MustCompile(`(?i)\bscull\b`)},
	{ModeTechnique, regexp.MustCompile(`(?i)\btechnique\b`)},
}

// Migrate upgrades a template loaded from storage to the current schema
// version. Applied once at load time. Version 1 rows have no mode field, so
// a mode is inferred from whole-word keywords left in the line text.
func (t *Template) Migrate() {
	if t.SchemaVersion >= TemplateSchemaVersion {
		return
	}
	for si := range t.Sections {
		for seti := range t.Sections[si].Sets {
			for li := range t.Sections[si].Sets[seti].Lines {
				line := &t.Sections[si].Sets[seti].Lines[li]
				if line.Mode != "" {
					continue
				}
				for _, rule := range modeInferRules {
					if rule.re.MatchString(line.Text) {
						line.Mode = rule.mode
						break
					}
				}
				if line.IntervalKind == "" {
					line.IntervalKind = IntervalNone
				}
			}
		}
	}
	t.SchemaVersion = TemplateSchemaVersion
}
