package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SwimDeck", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("SwimDeck swim workout server. Parse coach workout notation into structured sets, save and query workout templates, and summarize yardage by stroke. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolParseWorkout, Handler: h.parseWorkout},
		server.ServerTool{Tool: toolRenderWorkout, Handler: h.renderWorkout},
		server.ServerTool{Tool: toolSaveTemplate, Handler: h.saveTemplate},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolGetTemplate, Handler: h.getTemplate},
		server.ServerTool{Tool: toolGetYardageSummary, Handler: h.getYardageSummary},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentTemplates, Handler: h.recentTemplates},
		server.ServerResource{Resource: resNotationGuide, Handler: h.notationGuide},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentTemplates = mcp.NewResource(
	"swimdeck://recent_templates",
	"Recent Templates",
	mcp.WithResourceDescription("Workout templates saved in the last 30 days"),
	mcp.WithMIMEType("application/json"),
)

var resNotationGuide = mcp.NewResource(
	"swimdeck://notation_guide",
	"Notation Guide",
	mcp.WithResourceDescription("Cheat sheet for the workout notation the parser understands"),
	mcp.WithMIMEType("text/markdown"),
)
