package parse

import (
	"strings"

	"github.com/claude/swimdeck/internal/models"
	"github.com/google/uuid"
)

// WarningNoSections is surfaced when non-empty input produced no sections.
const WarningNoSections = "No sections found. Try adding 'Main Set' or 'Warmup'."

// stepContext is the carried state of the line-by-line fold: the sections
// accumulated so far, the open section, the pending repeat group, the title,
// and whether a section header has been seen yet.
type stepContext struct {
	sections  []models.Section
	current   *models.Section
	group     *roundGroup
	title     string
	sawHeader bool
	sawTitle  bool
}

// Parse converts freeform workout text into a structured ParseResult. It is
// pure and never fails: malformed lines degrade to text-only lines and the
// only diagnostics are advisory warnings.
func Parse(text string) models.ParseResult {
	ctx := stepContext{}
	for _, raw := range strings.Split(text, "\n") {
		ctx = step(ctx, raw)
	}
	ctx = ctx.flushGroup()
	ctx = ctx.closeSection()

	result := models.ParseResult{
		Sections: ctx.sections,
		Title:    ctx.title,
	}
	if len(result.Sections) == 0 && strings.TrimSpace(text) != "" {
		result.Warnings = append(result.Warnings, WarningNoSections)
	}
	return result
}

// step processes one physical line and returns the next context.
func step(ctx stepContext, raw string) stepContext {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return ctx.flushGroup()
	}

	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
		return ctx
	}

	if label, ok := detectSection(trimmed); ok {
		ctx = ctx.flushGroup().closeSection()
		ctx.current = &models.Section{ID: uuid.New(), Label: label}
		ctx.sawHeader = true
		return ctx
	}

	if count, ok := extractRoundCount(trimmed); ok {
		ctx = ctx.flushGroup()
		ctx.group = newRoundGroup(count)
		return ctx
	}

	set, meta := parseLine(raw)

	// Before the first section header, non-numeric prose is title material:
	// the first such line becomes the title, later ones are dropped.
	if !meta.hasNumeric && !ctx.sawHeader && ctx.current == nil && ctx.group == nil {
		if !ctx.sawTitle {
			ctx.title = trimmed
			ctx.sawTitle = true
		}
		return ctx
	}

	if meta.dashPrefix && !meta.hasNumeric {
		if next, ok := ctx.mergeDescriptor(meta.descriptorText); ok {
			return next
		}
	}

	if ctx.group != nil {
		if isIndented(raw) {
			ctx.group.add(set.Lines[0])
			return ctx
		}
		ctx = ctx.flushGroup()
	}

	return ctx.appendSet(set)
}

// mergeDescriptor appends descriptor text to the most recent line: the last
// buffered group line if a group is open, otherwise the last line of the
// last set in the current section.
func (ctx stepContext) mergeDescriptor(text string) (stepContext, bool) {
	if ctx.group != nil {
		if last := ctx.group.lastLine(); last != nil {
			appendText(last, text)
			return ctx, true
		}
	}
	if ctx.current != nil && len(ctx.current.Sets) > 0 {
		lastSet := &ctx.current.Sets[len(ctx.current.Sets)-1]
		if len(lastSet.Lines) > 0 {
			appendText(&lastSet.Lines[len(lastSet.Lines)-1], text)
			return ctx, true
		}
	}
	return ctx, false
}

func appendText(line *models.Line, text string) {
	if line.Text == "" {
		line.Text = text
		return
	}
	line.Text += " " + text
}

// appendSet adds a set to the current section, opening a default section
// first when content appears before any header.
func (ctx stepContext) appendSet(set models.Set) stepContext {
	ctx = ctx.ensureSection()
	ctx.current.Sets = append(ctx.current.Sets, set)
	return ctx
}

func (ctx stepContext) ensureSection() stepContext {
	if ctx.current == nil {
		ctx.current = &models.Section{ID: uuid.New(), Label: models.DefaultSectionLabel}
	}
	return ctx
}

// flushGroup emits the pending repeat group, if any, into the current
// section. Flushing an empty group is a no-op.
func (ctx stepContext) flushGroup() stepContext {
	if ctx.group == nil {
		return ctx
	}
	set, ok := ctx.group.flush()
	ctx.group = nil
	if !ok {
		return ctx
	}
	return ctx.appendSet(set)
}

// closeSection pushes the open section onto the accumulated list if it has
// any sets; empty sections are dropped.
func (ctx stepContext) closeSection() stepContext {
	if ctx.current != nil && len(ctx.current.Sets) > 0 {
		ctx.sections = append(ctx.sections, *ctx.current)
	}
	ctx.current = nil
	return ctx
}
