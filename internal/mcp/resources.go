package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) recentTemplates(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	templates, err := h.ds.QueryTemplates(ctx, start, end, "", uid)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(templates)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

const notationGuide = `# SwimDeck Notation

## Lines
- ` + "`4x100 free @ 1:30 descend`" + ` — reps x distance, stroke, sendoff, effort
- ` + "`200 kick`" + ` — single swim (reps default to 1)
- ` + "`8x50 @ :50`" + ` — sendoff under a minute
- ` + "`4x75 free :15 rest`" + ` — rest interval instead of sendoff
- ` + "`3x(4x25) fly`" + ` — nested repeat, counts as 12x25

## Structure
- Section headers: Warmup, Pre-Set, Main Set, Post-Set, Cooldown (aliases like WU, MS, CD work)
- Repeat blocks: ` + "`3 rounds:`" + ` or ` + "`2x through`" + ` followed by indented lines
- Lines starting with a dash and no numbers attach as notes to the previous line
- ` + "`// comment`" + ` and ` + "`# comment`" + ` lines are ignored

## Strokes and modes
- Strokes: free, back, breast, fly, IM, choice
- Modes: kick, pull, drill, scull, swim, technique
- Efforts: easy, moderate, strong, fast, sprint, build, descend, cruise, max, race pace
`

func (h *handlers) notationGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     notationGuide,
		},
	}, nil
}
