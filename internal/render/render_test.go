package render

import (
	"strings"
	"testing"

	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/parse"
)

// TestLineText verifies canonical line rendering.
func TestLineText(t *testing.T) {
	four, hundred := 4, 100
	tests := []struct {
		line models.Line
		want string
	}{
		{
			models.Line{Reps: &four, Distance: &hundred, Stroke: models.StrokeFreestyle,
				IntervalKind: models.IntervalSendoff, IntervalSeconds: 90},
			"4x100 freestyle @ 1:30",
		},
		{
			models.Line{Reps: &four, Distance: &hundred, Mode: models.ModeKick,
				IntervalKind: models.IntervalRest, IntervalSeconds: 15},
			"4x100 kick :15 rest",
		},
		{
			models.Line{IntervalKind: models.IntervalNone, Text: "grab fins"},
			"grab fins",
		},
	}
	for _, tt := range tests {
		if got := LineText(tt.line); got != tt.want {
			t.Errorf("LineText = %q, want %q", got, tt.want)
		}
	}
}

// TestClock verifies swim clock notation.
func TestClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{90, "1:30"},
		{25, ":25"},
		{165, "2:45"},
		{60, "1:00"},
		{0, ":00"},
	}
	for _, tt := range tests {
		if got := Clock(tt.secs); got != tt.want {
			t.Errorf("Clock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

const roundTripInput = `Thursday sprint day

WU
400 free
4x50 kick @ 1:00

MS
2x thru:
   4x200 fr @ 2:45
   8x100 @ 1:20
8x50 @ :50 easy
3x (4x25 @ :25)

CD
200 choice
`

// TestTextRoundTrip verifies the serialization property: re-parsing rendered
// text never reduces total yardage.
func TestTextRoundTrip(t *testing.T) {
	first := parse.Parse(roundTripInput)
	rendered := Text(first)
	second := parse.Parse(rendered)

	if got, want := second.TotalYards(), first.TotalYards(); got < want {
		t.Errorf("round-trip yards = %d, want >= %d\nrendered:\n%s", got, want, rendered)
	}
	if len(second.Sections) != len(first.Sections) {
		t.Errorf("round-trip sections = %d, want %d\nrendered:\n%s",
			len(second.Sections), len(first.Sections), rendered)
	}
	if second.Title != first.Title {
		t.Errorf("round-trip title = %q, want %q", second.Title, first.Title)
	}
}

// TestTextRepeatBlock verifies repeated sets render as an indented block
// under a rounds header.
func TestTextRepeatBlock(t *testing.T) {
	r := parse.Parse("MS\n2x thru:\n   4x100 free @ 1:30\n")
	out := Text(r)

	if !strings.Contains(out, "2x rounds:\n") {
		t.Errorf("output missing rounds header:\n%s", out)
	}
	if !strings.Contains(out, "\n   4x100 freestyle @ 1:30\n") {
		t.Errorf("output missing indented member line:\n%s", out)
	}
}

// TestStrokeYards verifies the per-stroke rollup, including the repeat
// multiplier and the "other" bucket.
func TestStrokeYards(t *testing.T) {
	r := parse.Parse("MS\n2x thru:\n   4x100 free\n   4x50 back\n8x25\n")

	totals := StrokeYards(r)
	if totals[string(models.StrokeFreestyle)] != 800 {
		t.Errorf("freestyle = %d, want 800", totals[string(models.StrokeFreestyle)])
	}
	if totals[string(models.StrokeBackstroke)] != 400 {
		t.Errorf("backstroke = %d, want 400", totals[string(models.StrokeBackstroke)])
	}
	if totals[StrokeOther] != 200 {
		t.Errorf("other = %d, want 200", totals[StrokeOther])
	}
}

// TestSectionTotals verifies per-section yardage preserves document order.
func TestSectionTotals(t *testing.T) {
	r := parse.Parse("WU\n400 free\nMS\n10x100 @ 1:30\n")

	totals := SectionTotals(r)
	if len(totals) != 2 {
		t.Fatalf("totals = %d entries, want 2", len(totals))
	}
	if totals[0].Label != models.SectionWarmup || totals[0].Yards != 400 {
		t.Errorf("totals[0] = %+v, want Warmup/400", totals[0])
	}
	if totals[1].Label != models.SectionMainSet || totals[1].Yards != 1000 {
		t.Errorf("totals[1] = %+v, want Main Set/1000", totals[1])
	}
}
