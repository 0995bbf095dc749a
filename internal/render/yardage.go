package render

import "github.com/claude/swimdeck/internal/models"

// StrokeOther buckets yardage for lines with no stroke.
const StrokeOther = "other"

// StrokeYards rolls up yardage per stroke across the whole result. Lines
// without a stroke fall into the "other" bucket.
func StrokeYards(r models.ParseResult) map[string]int {
	totals := make(map[string]int)
	for _, section := range r.Sections {
		for _, set := range section.Sets {
			for _, line := range set.Lines {
				yards := line.Yards() * set.RepeatCount
				if yards == 0 {
					continue
				}
				key := StrokeOther
				if line.Stroke != "" {
					key = string(line.Stroke)
				}
				totals[key] += yards
			}
		}
	}
	return totals
}

// SectionTotal is one section's yardage contribution.
type SectionTotal struct {
	Label string `json:"label"`
	Yards int    `json:"yards"`
}

// SectionTotals lists each section with its yardage, preserving order.
func SectionTotals(r models.ParseResult) []SectionTotal {
	totals := make([]SectionTotal, 0, len(r.Sections))
	for _, section := range r.Sections {
		totals = append(totals, SectionTotal{Label: section.Label, Yards: section.Yards()})
	}
	return totals
}
