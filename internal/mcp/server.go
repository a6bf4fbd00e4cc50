// Package mcp exposes the workout store to LLM tooling over the Model
// Context Protocol. All tools are read-only; mutations go through the HTTP
// surface so the sync protocol is never bypassed.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/waytrack/internal/models"
	"github.com/meltforce/waytrack/internal/tracker"
)

// DataSource abstracts the data layer for MCP tools.
type DataSource interface {
	Workouts() []*models.Workout
	Workout(id string) (*models.Workout, error)
}

// Compile-time check: *tracker.App satisfies DataSource.
var _ DataSource = (*tracker.App)(nil)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Waytrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Waytrack workout tracker. Query geo-tagged running and cycling workouts, their metrics and derived pace/speed. Read-only."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolWorkoutTotals, Handler: h.getTotals},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkouts, Handler: h.allWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resWorkouts = mcp.NewResource(
	"waytrack://workouts",
	"All Workouts",
	mcp.WithResourceDescription("Every recorded workout in creation order, with position, metrics and derived fields"),
	mcp.WithMIMEType("application/json"),
)
