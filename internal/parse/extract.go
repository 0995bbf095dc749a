package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/swimdeck/internal/models"
)

// Each extractor takes the remaining text of a line and returns what it
// found plus the remainder with the match removed, so later extractors see
// clean text.

var (
	// nestedRepeatRe matches "3x (4x25" — outer count, inner count, distance.
	nestedRepeatRe = regexp.MustCompile(`^(\d+)\s*[x×]\s*\(\s*(\d+)\s*[x×]\s*(\d+)`)

	// repsDistRe matches "4x100", "4 x 100".
	repsDistRe = regexp.MustCompile(`^(\d+)\s*[x×]\s*(\d+)`)

	// distOnlyRe matches a standalone leading integer: "400 pull", "200".
	distOnlyRe = regexp.MustCompile(`^(\d+)(\s|$)`)

	// labelRe matches prefixes like "A. " or "1-2: ". Single-number colon
	// labels ("4:") are claimed earlier by the round-header detector.
	labelRe = regexp.MustCompile(`^(?:[A-Za-z][.:]|\d{1,2}\s*-\s*\d{1,2}[.:]|\d{1,2}\.)\s+`)

	// totalOnlyRe matches summary lines like "total: 2400".
	totalOnlyRe = regexp.MustCompile(`(?i)^(?:total|preset|warmup|cooldown):\s*(\d+)`)

	// bareTotalRe matches a bare 3+ digit number standing alone.
	bareTotalRe = regexp.MustCompile(`^(\d{3,})$`)

	// restRe matches "1:30 rest" or ":15 rest".
	restRe = regexp.MustCompile(`(?i)(\d+)?:(\d{2})\s*rest\b`)

	// sendoffRe matches "@ 1:30", "@ :25", "@ :55-1:05" (ranges keep the
	// lower bound only).
	sendoffRe = regexp.MustCompile(`@\s*((?:\d+)?:\d{2}|\d+)(?:\s*[-–]\s*((?:\d+)?:\d{2}|\d+))?`)

	parenRe = regexp.MustCompile(`\(([^)]*)\)`)

	innerRepeatRe = regexp.MustCompile(`\d+\s*[x×]\s*\d+`)
)

// stripDashPrefix removes a leading dash or en-dash. Whether a line started
// with a dash feeds the descriptor-vs-set disambiguation.
func stripDashPrefix(s string) (string, bool) {
	for _, prefix := range []string{"-", "–", "—"} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSpace(s[len(prefix):]), true
		}
	}
	return s, false
}

// stripLabel removes an ordering label like "A. " or "1-2: ".
func stripLabel(s string) string {
	return labelRe.ReplaceAllString(s, "")
}

// extractNotes pulls out parenthetical notes to be re-appended after field
// extraction. Groups that look like a nested repeat ("(4x25 @ :25)") are
// left in place for the reps extractor.
func extractNotes(s string) ([]string, string) {
	var notes []string
	out := parenRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[1 : len(m)-1]
		if innerRepeatRe.MatchString(inner) {
			return m
		}
		if trimmed := strings.TrimSpace(inner); trimmed != "" {
			notes = append(notes, trimmed)
		}
		return ""
	})
	return notes, out
}

// extractRepsDistance tries, in priority order: nested repeat collapsing,
// simple reps×distance, then a standalone leading distance.
func extractRepsDistance(s string) (reps, distance *int, remainder string) {
	s = strings.TrimSpace(s)

	if m := nestedRepeatRe.FindStringSubmatch(s); m != nil {
		outer, _ := strconv.Atoi(m[1])
		inner, _ := strconv.Atoi(m[2])
		dist, _ := strconv.Atoi(m[3])
		r := outer * inner
		rest := s[len(m[0]):]
		// Drop the close paren matching the consumed open paren.
		if i := strings.Index(rest, ")"); i >= 0 {
			rest = rest[:i] + rest[i+1:]
		}
		return &r, &dist, rest
	}

	if m := repsDistRe.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		return &r, &d, s[len(m[0]):]
	}

	if m := distOnlyRe.FindStringSubmatch(s); m != nil {
		one := 1
		d, _ := strconv.Atoi(m[1])
		return &one, &d, s[len(m[1]):]
	}

	return nil, nil, s
}

// extractTotalOnly handles summary lines: "total: 2400" or a bare 3+ digit
// number.
func extractTotalOnly(s string) (int, string, bool) {
	s = strings.TrimSpace(s)
	if m := totalOnlyRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v, s[len(m[0]):], true
	}
	if m := bareTotalRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v, "", true
	}
	return 0, s, false
}

// strokeAliases is ordered so the first alias of each stroke is its
// canonical rendering.
var strokeAliases = []struct {
	word   string
	stroke models.Stroke
}{
	{"freestyle", models.StrokeFreestyle},
	{"free", models.StrokeFreestyle},
	{"fr", models.StrokeFreestyle},
	{"backstroke", models.StrokeBackstroke},
	{"back", models.StrokeBackstroke},
	{"bk", models.StrokeBackstroke},
	{"breaststroke", models.StrokeBreaststroke},
	{"breast", models.StrokeBreaststroke},
	{"br", models.StrokeBreaststroke},
	{"butterfly", models.StrokeButterfly},
	{"fly", models.StrokeButterfly},
	{"fl", models.StrokeButterfly},
	{"im", models.StrokeIM},
	{"choice", models.StrokeChoice},
}

var modeAliases = []struct {
	word string
	mode models.Mode
}{
	{"swim", models.ModeSwim},
	{"kick", models.ModeKick},
	{"pull", models.ModePull},
	{"drill", models.ModeDrill},
	{"scull", models.ModeScull},
	{"technique", models.ModeTechnique},
}

var effortAliases = []struct {
	word   string
	effort models.Effort
}{
	{"easy", models.EffortEasy},
	{"moderate", models.EffortModerate},
	{"strong", models.EffortStrong},
	{"fast", models.EffortFast},
	{"sprint", models.EffortSprint},
	{"build", models.EffortBuild},
	{"descend", models.EffortDescend},
	{"desc", models.EffortDescend},
	{"cruise", models.EffortCruise},
	{"smooth", models.EffortSmooth},
	{"max", models.EffortMax},
	{"race pace", models.EffortRacePace},
	{"all out", models.EffortAllOut},
	{"negative split", models.EffortNegSplit},
	{"neg split", models.EffortNegSplit},
}

var wordRes = map[string]*regexp.Regexp{}

func init() {
	for _, a := range strokeAliases {
		wordRes[a.word] = wholeWordRe(a.word)
	}
	for _, a := range modeAliases {
		wordRes[a.word] = wholeWordRe(a.word)
	}
	for _, a := range effortAliases {
		wordRes[a.word] = wholeWordRe(a.word)
	}
}

// wholeWordRe builds a case-insensitive whole-word matcher. Word boundaries
// keep "swimmer" from matching "swim" and "free" from matching "fr".
func wholeWordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// removeFirst deletes the earliest occurrence of re in s.
func removeFirst(s string, re *regexp.Regexp) (string, int) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, -1
	}
	return s[:loc[0]] + s[loc[1]:], loc[0]
}

// extractStroke finds the earliest stroke keyword and removes its first
// occurrence.
func extractStroke(s string) (models.Stroke, string) {
	best := -1
	var stroke models.Stroke
	var result string
	for _, a := range strokeAliases {
		candidate, pos := removeFirst(s, wordRes[a.word])
		if pos >= 0 && (best < 0 || pos < best) {
			best = pos
			stroke = a.stroke
			result = candidate
		}
	}
	if best < 0 {
		return "", s
	}
	return stroke, result
}

// extractMode finds the earliest mode keyword and removes its first
// occurrence.
func extractMode(s string) (models.Mode, string) {
	best := -1
	var mode models.Mode
	var result string
	for _, a := range modeAliases {
		candidate, pos := removeFirst(s, wordRes[a.word])
		if pos >= 0 && (best < 0 || pos < best) {
			best = pos
			mode = a.mode
			result = candidate
		}
	}
	if best < 0 {
		return "", s
	}
	return mode, result
}

// extractEffort finds the earliest recognized pace keyword and removes its
// first occurrence; anything after it stays in the line text.
func extractEffort(s string) (models.Effort, string) {
	best := -1
	var effort models.Effort
	var result string
	for _, a := range effortAliases {
		candidate, pos := removeFirst(s, wordRes[a.word])
		if pos >= 0 && (best < 0 || pos < best) {
			best = pos
			effort = a.effort
			result = candidate
		}
	}
	if best < 0 {
		return "", s
	}
	return effort, result
}

// extractInterval pulls a rest interval ("1:30 rest") or a sendoff
// ("@ 1:30", "@ :25"). For a sendoff range only the lower bound is kept.
func extractInterval(s string) (int, models.IntervalKind, string) {
	if loc := restRe.FindStringSubmatchIndex(s); loc != nil {
		m := restRe.FindStringSubmatch(s)
		secs := clockSeconds(m[1], m[2])
		return secs, models.IntervalRest, s[:loc[0]] + s[loc[1]:]
	}
	if loc := sendoffRe.FindStringSubmatchIndex(s); loc != nil {
		m := sendoffRe.FindStringSubmatch(s)
		secs := parseClockToken(m[1])
		return secs, models.IntervalSendoff, s[:loc[0]] + s[loc[1]:]
	}
	return 0, models.IntervalNone, s
}

// parseClockToken converts "1:30" to 90, ":25" to 25, "50" to 50.
func parseClockToken(tok string) int {
	if i := strings.Index(tok, ":"); i >= 0 {
		return clockSeconds(tok[:i], tok[i+1:])
	}
	n, _ := strconv.Atoi(tok)
	return n
}

func clockSeconds(min, sec string) int {
	m := 0
	if min != "" {
		m, _ = strconv.Atoi(min)
	}
	s, _ := strconv.Atoi(sec)
	return m*60 + s
}

// cleanRemainder normalizes whitespace and trims separator characters left
// behind by extraction.
func cleanRemainder(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " -–,")
	return s
}

// isStrokeEcho reports whether the remainder is just another spelling of the
// stroke already extracted ("free free" keeps one, not two).
func isStrokeEcho(s string, stroke models.Stroke) bool {
	if stroke == "" {
		return false
	}
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, a := range strokeAliases {
		if a.stroke == stroke && a.word == norm {
			return true
		}
	}
	return false
}
