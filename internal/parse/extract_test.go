package parse

import (
	"testing"

	"github.com/claude/swimdeck/internal/models"
)

// TestExtractRepsDistance covers the three extraction priorities: nested
// repeat collapsing, simple reps×distance, and standalone distance.
func TestExtractRepsDistance(t *testing.T) {
	tests := []struct {
		in       string
		reps     int
		distance int
		ok       bool
	}{
		{"4x100 free", 4, 100, true},
		{"4 x 100", 4, 100, true},
		{"10×50", 10, 50, true},
		{"3x (4x25 @ :25)", 12, 25, true},
		{"2x(3x100)", 6, 100, true},
		{"400 pull", 1, 400, true},
		{"200", 1, 200, true},
		{"easy swimming", 0, 0, false},
		{"x100", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		reps, dist, _ := extractRepsDistance(tt.in)
		if !tt.ok {
			if reps != nil || dist != nil {
				t.Errorf("extractRepsDistance(%q) = %v/%v, want none", tt.in, reps, dist)
			}
			continue
		}
		if reps == nil || dist == nil {
			t.Errorf("extractRepsDistance(%q) found nothing, want %d/%d", tt.in, tt.reps, tt.distance)
			continue
		}
		if *reps != tt.reps || *dist != tt.distance {
			t.Errorf("extractRepsDistance(%q) = %d/%d, want %d/%d", tt.in, *reps, *dist, tt.reps, tt.distance)
		}
	}
}

// TestExtractStroke verifies whole-word stroke matching, including short
// aliases and the guard against matching inside longer words.
func TestExtractStroke(t *testing.T) {
	tests := []struct {
		in     string
		stroke models.Stroke
	}{
		{"free", models.StrokeFreestyle},
		{"fr easy", models.StrokeFreestyle},
		{"freestyle build", models.StrokeFreestyle},
		{"back", models.StrokeBackstroke},
		{"bk", models.StrokeBackstroke},
		{"breast", models.StrokeBreaststroke},
		{"fly sprint", models.StrokeButterfly},
		{"IM order", models.StrokeIM},
		{"choice", models.StrokeChoice},
		{"swimmer notes", ""}, // "im" inside "swimmer" must not match
		{"frequent turns", ""},
		{"", ""},
	}
	for _, tt := range tests {
		stroke, _ := extractStroke(tt.in)
		if stroke != tt.stroke {
			t.Errorf("extractStroke(%q) = %q, want %q", tt.in, stroke, tt.stroke)
		}
	}
}

// TestExtractStrokeRemovesFirstOnly verifies only the first occurrence is
// consumed.
func TestExtractStrokeRemovesFirstOnly(t *testing.T) {
	stroke, rest := extractStroke("free then free again")
	if stroke != models.StrokeFreestyle {
		t.Fatalf("stroke = %q, want freestyle", stroke)
	}
	if rest != " then free again" {
		t.Errorf("rest = %q, want second occurrence kept", rest)
	}
}

// TestExtractMode verifies mode keywords and the whole-word guard.
func TestExtractMode(t *testing.T) {
	tests := []struct {
		in   string
		mode models.Mode
	}{
		{"kick", models.ModeKick},
		{"pull with buoy", models.ModePull},
		{"drill", models.ModeDrill},
		{"scull", models.ModeScull},
		{"swim", models.ModeSwim},
		{"technique", models.ModeTechnique},
		{"kicking", ""},
		{"pulling hard", ""},
	}
	for _, tt := range tests {
		mode, _ := extractMode(tt.in)
		if mode != tt.mode {
			t.Errorf("extractMode(%q) = %q, want %q", tt.in, mode, tt.mode)
		}
	}
}

// TestExtractInterval verifies sendoff, rest and range extraction.
func TestExtractInterval(t *testing.T) {
	tests := []struct {
		in   string
		secs int
		kind models.IntervalKind
	}{
		{"@ 1:30", 90, models.IntervalSendoff},
		{"@1:30", 90, models.IntervalSendoff},
		{"@ :25", 25, models.IntervalSendoff},
		{"@ 2:45 strong", 165, models.IntervalSendoff},
		{"@ :55-1:05", 55, models.IntervalSendoff},
		{"1:30 rest", 90, models.IntervalRest},
		{":15 rest", 15, models.IntervalRest},
		{"no interval here", 0, models.IntervalNone},
		{"", 0, models.IntervalNone},
	}
	for _, tt := range tests {
		secs, kind, _ := extractInterval(tt.in)
		if secs != tt.secs || kind != tt.kind {
			t.Errorf("extractInterval(%q) = %d/%s, want %d/%s", tt.in, secs, kind, tt.secs, tt.kind)
		}
	}
}

// TestExtractEffort verifies the earliest keyword wins and its first
// occurrence is removed.
func TestExtractEffort(t *testing.T) {
	effort, rest := extractEffort(" easy/fast by 25")
	if effort != models.EffortEasy {
		t.Errorf("effort = %q, want easy", effort)
	}
	if rest != " /fast by 25" {
		t.Errorf("rest = %q, want %q", rest, " /fast by 25")
	}

	effort, _ = extractEffort(" descend 1-4")
	if effort != models.EffortDescend {
		t.Errorf("effort = %q, want descend", effort)
	}

	effort, _ = extractEffort("race pace 100s")
	if effort != models.EffortRacePace {
		t.Errorf("effort = %q, want race pace", effort)
	}

	if effort, _ := extractEffort("nothing here"); effort != "" {
		t.Errorf("effort = %q, want none", effort)
	}
}

// TestExtractNotes verifies parenthetical notes are held aside while
// nested-repeat parens stay in place.
func TestExtractNotes(t *testing.T) {
	notes, rest := extractNotes("4x100 (with fins) free")
	if len(notes) != 1 || notes[0] != "with fins" {
		t.Errorf("notes = %v, want [with fins]", notes)
	}
	if rest != "4x100  free" {
		t.Errorf("rest = %q", rest)
	}

	notes, rest = extractNotes("3x (4x25 @ :25)")
	if len(notes) != 0 {
		t.Errorf("notes = %v, want none (nested repeat must stay)", notes)
	}
	if rest != "3x (4x25 @ :25)" {
		t.Errorf("rest = %q, want input unchanged", rest)
	}
}

// TestStripDashPrefix verifies dash and en-dash prefixes.
func TestStripDashPrefix(t *testing.T) {
	tests := []struct {
		in   string
		out  string
		dash bool
	}{
		{"- notes here", "notes here", true},
		{"– en-dash notes", "en-dash notes", true},
		{"4x100 free", "4x100 free", false},
		{"", "", false},
	}
	for _, tt := range tests {
		out, dash := stripDashPrefix(tt.in)
		if out != tt.out || dash != tt.dash {
			t.Errorf("stripDashPrefix(%q) = %q/%v, want %q/%v", tt.in, out, dash, tt.out, tt.dash)
		}
	}
}

// TestStripLabel verifies ordering-label prefixes are removed.
func TestStripLabel(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"A. 4x100 free", "4x100 free"},
		{"b: 200 kick", "200 kick"},
		{"1-2: 8x50", "8x50"},
		{"1. 400 swim", "400 swim"},
		{"4x100 free", "4x100 free"},
		{"400 free", "400 free"},
	}
	for _, tt := range tests {
		if got := stripLabel(tt.in); got != tt.out {
			t.Errorf("stripLabel(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

// TestExtractTotalOnly verifies summary-line extraction.
func TestExtractTotalOnly(t *testing.T) {
	v, _, ok := extractTotalOnly("total: 2400")
	if !ok || v != 2400 {
		t.Errorf("total: 2400 = %d/%v, want 2400/true", v, ok)
	}
	v, _, ok = extractTotalOnly("1500")
	if !ok || v != 1500 {
		t.Errorf("1500 = %d/%v, want 1500/true", v, ok)
	}
	if _, _, ok := extractTotalOnly("50"); ok {
		t.Error("two-digit bare number must not match as a total")
	}
	if _, _, ok := extractTotalOnly("some words"); ok {
		t.Error("prose must not match as a total")
	}
}
