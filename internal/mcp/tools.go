package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/waytrack/internal/models"
)

// --- Tool definitions ---

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List recorded workouts in creation order. Returns id, type, position, distance, duration and derived pace/speed per workout."),
	mcp.WithString("type", mcp.Description("Filter by workout type"), mcp.Enum("running", "cycling")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Fetch a single workout by id, derived fields included."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id")),
)

var toolWorkoutTotals = mcp.NewTool("workout_totals",
	mcp.WithDescription("Aggregate totals per workout type: count, total distance (km) and total duration (min)."),
)

// --- Tool handlers ---

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := models.Type(req.GetString("type", ""))

	snaps := []models.Snapshot{}
	for _, w := range h.ds.Workouts() {
		if filter != "" && w.Type != filter {
			continue
		}
		snaps = append(snaps, w.ToSnapshot())
	}

	result, err := mcp.NewToolResultJSON(snaps)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	w, err := h.ds.Workout(id)
	if err != nil {
		return mcp.NewToolResultError("workout not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(w.ToSnapshot())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// Totals summarizes one workout type.
type Totals struct {
	Count       int     `json:"count"`
	DistanceKm  float64 `json:"distanceKm"`
	DurationMin float64 `json:"durationMin"`
}

func (h *handlers) getTotals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(workoutTotals(h.ds.Workouts()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func workoutTotals(ws []*models.Workout) map[models.Type]Totals {
	totals := make(map[models.Type]Totals)
	for _, w := range ws {
		t := totals[w.Type]
		t.Count++
		t.DistanceKm += w.DistanceKm
		t.DurationMin += w.DurationMin
		totals[w.Type] = t
	}
	return totals
}

// --- Resource handlers ---

func (h *handlers) allWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snaps := []models.Snapshot{}
	for _, w := range h.ds.Workouts() {
		snaps = append(snaps, w.ToSnapshot())
	}

	data, err := json.Marshal(snaps)
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
