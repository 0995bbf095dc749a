// Package parse converts freeform coach's workout notation into the
// structured Section/Set/Line model. Parsing is permissive: every non-blank,
// non-comment input line produces some output, never a hard failure.
package parse

import (
	"strings"

	"github.com/claude/swimdeck/internal/models"
)

// sectionAliases maps normalized header spellings to canonical labels.
// Several spellings collapse onto the same label on purpose: "reset",
// "technique" and "drills" are all the post-main recovery block.
var sectionAliases = map[string]string{
	"wu":        models.SectionWarmup,
	"warmup":    models.SectionWarmup,
	"warm-up":   models.SectionWarmup,
	"warm up":   models.SectionWarmup,
	"pre":       models.SectionPreSet,
	"preset":    models.SectionPreSet,
	"pre-set":   models.SectionPreSet,
	"pre set":   models.SectionPreSet,
	"ms":        models.SectionMainSet,
	"main":      models.SectionMainSet,
	"main set":  models.SectionMainSet,
	"mainset":   models.SectionMainSet,
	"post":      models.SectionPostSet,
	"post-set":  models.SectionPostSet,
	"post set":  models.SectionPostSet,
	"reset":     models.SectionPostSet,
	"recovery":  models.SectionPostSet,
	"technique": models.SectionPostSet,
	"drills":    models.SectionPostSet,
	"cd":        models.SectionCooldown,
	"cooldown":  models.SectionCooldown,
	"cool-down": models.SectionCooldown,
	"cool down": models.SectionCooldown,
	"warmdown":  models.SectionCooldown,
	"warm down": models.SectionCooldown,
	"wd":        models.SectionCooldown,
}

// detectSection classifies a line as a section header, returning the
// canonical label. Exact match is tried first, then a guarded prefix match:
// the character after the alias must be end-of-line, space, dash, colon or
// en-dash, never another alphanumeric. That keeps "mslowly" from matching
// "ms" and "warmdownstuff" from matching "warmdown".
func detectSection(line string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(line))
	if norm == "" {
		return "", false
	}

	if label, ok := sectionAliases[norm]; ok {
		return label, true
	}

	for alias, label := range sectionAliases {
		if !strings.HasPrefix(norm, alias) {
			continue
		}
		rest := norm[len(alias):]
		if rest == "" {
			return label, true
		}
		switch {
		case strings.HasPrefix(rest, " "),
			strings.HasPrefix(rest, "-"),
			strings.HasPrefix(rest, ":"),
			strings.HasPrefix(rest, "–"):
			return label, true
		}
	}
	return "", false
}
