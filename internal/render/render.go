// Package render derives presentational values from a parsed workout:
// commit-style text and yardage rollups. It only reads the model tree.
package render

import (
	"fmt"
	"strings"

	"github.com/claude/swimdeck/internal/models"
)

// Text renders a ParseResult as commit-style workout text. The output uses
// only canonical tokens, so feeding it back through the parser keeps the
// total yardage intact.
func Text(r models.ParseResult) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteString("\n\n")
	}
	for i, section := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.Label)
		b.WriteString("\n")
		for _, set := range section.Sets {
			writeSet(&b, set)
		}
	}
	return b.String()
}

func writeSet(b *strings.Builder, set models.Set) {
	if set.RepeatCount > 1 {
		fmt.Fprintf(b, "%dx rounds:\n", set.RepeatCount)
		for _, line := range set.Lines {
			b.WriteString("   ")
			b.WriteString(LineText(line))
			b.WriteString("\n")
		}
		return
	}
	for _, line := range set.Lines {
		b.WriteString(LineText(line))
		b.WriteString("\n")
	}
}

// LineText renders a single line in canonical notation, e.g.
// "4x100 freestyle drill @ 1:30 easy".
func LineText(line models.Line) string {
	var parts []string

	switch {
	case line.Reps != nil && line.Distance != nil && *line.Reps > 1:
		parts = append(parts, fmt.Sprintf("%dx%d", *line.Reps, *line.Distance))
	case line.Distance != nil:
		parts = append(parts, fmt.Sprintf("%d", *line.Distance))
	}

	if line.Stroke != "" {
		parts = append(parts, string(line.Stroke))
	}
	if line.Mode != "" && line.Mode != models.ModeSwim {
		parts = append(parts, string(line.Mode))
	}

	switch line.IntervalKind {
	case models.IntervalSendoff:
		parts = append(parts, "@ "+Clock(line.IntervalSeconds))
	case models.IntervalRest:
		parts = append(parts, Clock(line.IntervalSeconds)+" rest")
	}

	if line.Effort != "" {
		parts = append(parts, string(line.Effort))
	}
	if line.Text != "" {
		parts = append(parts, line.Text)
	}

	return strings.Join(parts, " ")
}

// Clock formats seconds as swim notation: 90 -> "1:30", 25 -> ":25".
func Clock(seconds int) string {
	min := seconds / 60
	sec := seconds % 60
	if min == 0 {
		return fmt.Sprintf(":%02d", sec)
	}
	return fmt.Sprintf("%d:%02d", min, sec)
}
