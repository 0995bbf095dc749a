package parse

import (
	"strings"

	"github.com/claude/swimdeck/internal/models"
	"github.com/google/uuid"
)

// lineMeta carries the facts the orchestrator needs to dispatch a parsed
// line: whether any numeric data was found (reps or distance) and whether
// the line began with a dash. A dash prefix with no numeric data marks a
// descriptor, which merges into the previous line instead of becoming a new
// set.
type lineMeta struct {
	hasNumeric bool
	dashPrefix bool
	// descriptorText is the line text with the dash prefix removed, ready
	// to append to the previous line.
	descriptorText string
}

// parseLine turns one physical line into a single-line Set. The Set's
// repeat count is always 1 at this layer; grouping is applied by the
// caller. Extraction steps consume matched text from a remainder buffer so
// each extractor sees the previous one's leftover.
func parseLine(raw string) (models.Set, lineMeta) {
	trimmed := strings.TrimSpace(raw)

	rest, dash := stripDashPrefix(trimmed)
	rest = stripLabel(rest)
	notes, rest := extractNotes(rest)

	line := models.Line{
		ID:           uuid.New(),
		IntervalKind: models.IntervalNone,
	}

	reps, distance, rest := extractRepsDistance(rest)
	if reps != nil || distance != nil {
		line.Reps = reps
		line.Distance = distance
		line.Stroke, rest = extractStroke(rest)
		line.Mode, rest = extractMode(rest)
		line.IntervalSeconds, line.IntervalKind, rest = extractInterval(rest)
		line.Effort, rest = extractEffort(rest)
		rest = cleanRemainder(rest)
		if isStrokeEcho(rest, line.Stroke) {
			rest = ""
		}
		line.Text = appendNotes(rest, notes)
		return singleSet(line), lineMeta{hasNumeric: true, dashPrefix: dash}
	}

	if total, after, ok := extractTotalOnly(rest); ok {
		one := 1
		line.Reps = &one
		line.Distance = &total
		line.Text = appendNotes(cleanRemainder(after), notes)
		return singleSet(line), lineMeta{hasNumeric: true, dashPrefix: dash}
	}

	// Permissive fallback: the line becomes free text, never dropped.
	line.Text = trimmed
	descriptor, _ := stripDashPrefix(trimmed)
	return singleSet(line), lineMeta{
		hasNumeric:     false,
		dashPrefix:     dash,
		descriptorText: descriptor,
	}
}

func singleSet(line models.Line) models.Set {
	return models.Set{
		ID:          uuid.New(),
		RepeatCount: 1,
		Lines:       []models.Line{line},
	}
}

// appendNotes re-attaches parenthetical notes held aside during extraction.
func appendNotes(text string, notes []string) string {
	for _, n := range notes {
		if text != "" {
			text += " "
		}
		text += "(" + n + ")"
	}
	return text
}
