package models

import "github.com/google/uuid"

// Stroke is the swimming stroke for a line. Empty means unspecified.
type Stroke string

const (
	StrokeFreestyle    Stroke = "freestyle"
	StrokeBackstroke   Stroke = "backstroke"
	StrokeBreaststroke Stroke = "breaststroke"
	StrokeButterfly    Stroke = "butterfly"
	StrokeIM           Stroke = "im"
	StrokeChoice       Stroke = "choice"
)

// Mode is the activity modifier (kick, pull, ...), orthogonal to stroke.
// Empty means unspecified.
type Mode string

const (
	ModeSwim      Mode = "swim"
	ModeKick      Mode = "kick"
	ModePull      Mode = "pull"
	ModeDrill     Mode = "drill"
	ModeScull     Mode = "scull"
	ModeTechnique Mode = "technique"
)

// IntervalKind distinguishes a sendoff (total elapsed time per repeat) from
// a fixed rest between repeats.
type IntervalKind string

const (
	IntervalNone    IntervalKind = "none"
	IntervalSendoff IntervalKind = "sendoff"
	IntervalRest    IntervalKind = "rest"
)

// Effort is a named pace pattern. Empty means unspecified.
type Effort string

const (
	EffortEasy     Effort = "easy"
	EffortModerate Effort = "moderate"
	EffortStrong   Effort = "strong"
	EffortFast     Effort = "fast"
	EffortSprint   Effort = "sprint"
	EffortBuild    Effort = "build"
	EffortDescend  Effort = "descend"
	EffortCruise   Effort = "cruise"
	EffortSmooth   Effort = "smooth"
	EffortMax      Effort = "max"
	EffortRacePace Effort = "race pace"
	EffortAllOut   Effort = "all out"
	EffortNegSplit Effort = "negative split"
)

// Line is one typed instruction within a set. Reps and Distance are pointers
// because absence is meaningful: a line with both nil is a text-only line
// whose yardage is zero.
type Line struct {
	ID              uuid.UUID    `json:"id"`
	Reps            *int         `json:"reps,omitempty"`
	Distance        *int         `json:"distance,omitempty"`
	Stroke          Stroke       `json:"stroke,omitempty"`
	Mode            Mode         `json:"mode,omitempty"`
	IntervalSeconds int          `json:"interval_seconds,omitempty"`
	IntervalKind    IntervalKind `json:"interval_kind"`
	Effort          Effort       `json:"effort,omitempty"`
	Text            string       `json:"text,omitempty"`
}

// Yards returns the line's yardage contribution: distance x reps, zero when
// distance is absent.
func (l Line) Yards() int {
	if l.Distance == nil {
		return 0
	}
	reps := 1
	if l.Reps != nil {
		reps = *l.Reps
	}
	return *l.Distance * reps
}

// Set is one block of the page: a group of lines repeated RepeatCount times.
// A single ungrouped line is still a Set with one Line and RepeatCount 1.
type Set struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	RepeatCount int       `json:"repeat_count"`
	Lines       []Line    `json:"lines"`
}

// Yards returns the set's yardage: sum of line yardage times RepeatCount.
func (s Set) Yards() int {
	total := 0
	for _, l := range s.Lines {
		total += l.Yards()
	}
	return total * s.RepeatCount
}

// Section is an ordered group of sets under a canonical label.
type Section struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	Sets  []Set     `json:"sets"`
}

// Yards returns the section's total yardage.
func (s Section) Yards() int {
	total := 0
	for _, set := range s.Sets {
		total += set.Yards()
	}
	return total
}

// Canonical section labels. Content before any header falls into
// DefaultSectionLabel.
const (
	SectionWarmup   = "Warmup"
	SectionPreSet   = "Pre-Set"
	SectionMainSet  = "Main Set"
	SectionPostSet  = "Post-Set / Technique"
	SectionCooldown = "Cooldown"
)

// DefaultSectionLabel is used when content appears before any section header.
const DefaultSectionLabel = SectionMainSet

// ParseResult is the output of parsing one workout text. Total yardage is
// derived via TotalYards, never stored.
type ParseResult struct {
	Sections []Section `json:"sections"`
	Title    string    `json:"title,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

// TotalYards sums yardage across all sections.
func (r ParseResult) TotalYards() int {
	total := 0
	for _, s := range r.Sections {
		total += s.Yards()
	}
	return total
}
