package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/swimdeck/internal/models"
	"github.com/google/uuid"
)

// roundHeaderRe matches repeat-block headers: a leading integer, optional
// "x"/"×", then a rounds keyword or a colon. "2x thru", "3 rounds", "4x:".
// Plain set lines like "4x100 free" do not match: after the x comes a digit,
// not a keyword. The bare-colon form must end the line, so clock times
// ("1:30 easy") and labeled lines ("12: 4x50") stay ordinary content lines.
var roundHeaderRe = regexp.MustCompile(`(?i)^(\d+)\s*[x×]?\s*(?:rounds?\b|through\b|thru\b|:\s*$)`)

// extractRoundCount returns the repeat count if the line is a round header.
func extractRoundCount(line string) (int, bool) {
	m := roundHeaderRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// roundGroup accumulates indented member lines under a round header until a
// boundary (dedent, blank line, new header, new section, end of input)
// flushes them as one repeated Set.
type roundGroup struct {
	repeatCount int
	lines       []models.Line
}

func newRoundGroup(repeatCount int) *roundGroup {
	return &roundGroup{repeatCount: repeatCount}
}

func (g *roundGroup) add(line models.Line) {
	g.lines = append(g.lines, line)
}

// lastLine returns the most recently buffered line, for descriptor merging.
func (g *roundGroup) lastLine() *models.Line {
	if len(g.lines) == 0 {
		return nil
	}
	return &g.lines[len(g.lines)-1]
}

// flush emits the buffered lines as a single Set. An empty buffer flushes to
// nothing.
func (g *roundGroup) flush() (models.Set, bool) {
	if g == nil || len(g.lines) == 0 {
		return models.Set{}, false
	}
	return models.Set{
		ID:          uuid.New(),
		RepeatCount: g.repeatCount,
		Lines:       g.lines,
	}, true
}

// isIndented reports whether the original, untrimmed line starts with
// whitespace. Indentation is checked before any trimming.
func isIndented(raw string) bool {
	return raw != "" && (raw[0] == ' ' || raw[0] == '\t')
}
