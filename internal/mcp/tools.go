package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/ftracker/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// toFloats converts a decoded JSON array argument to []float64.
func toFloats(raw []any) ([]float64, error) {
	out := make([]float64, 0, len(raw))
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("data[%d] is not a number", i)
		}
		out = append(out, f)
	}
	return out, nil
}

// --- Tool definitions ---

var toolComputeTraining = mcp.NewTool("compute_training",
	mcp.WithDescription("Compute workout statistics (distance, mean speed, calories) from one raw sensor package without storing it. Returns the metrics and the formatted summary message."),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Sensor workout code"), mcp.Enum("RUN", "WLK", "SWM")),
	mcp.WithArray("data", mcp.Required(),
		mcp.Description("Positional numeric payload: RUN = [action, duration_h, weight_kg]; WLK adds height_cm; SWM adds pool_length_m and pool_count"),
		mcp.Items(map[string]any{"type": "number"})),
)

var toolGetSessions = mcp.NewTool("get_sessions",
	mcp.WithDescription("Query stored training sessions with optional type filter. Returns computed distance, speed and calories per session."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("type", mcp.Description("Filter by training type"), mcp.Enum("Running", "SportsWalking", "Swimming")),
)

var toolGetSessionStats = mcp.NewTool("get_session_stats",
	mcp.WithDescription("Per-training-type aggregates over a time range: session count, total distance, total calories, average speed."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

func (h *handlers) computeTraining(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutType, err := req.RequireString("workout_type")
	if err != nil {
		return mcp.NewToolResultError("workout_type parameter is required"), nil
	}

	raw, ok := req.GetArguments()["data"].([]any)
	if !ok {
		return mcp.NewToolResultError("data parameter is required and must be a numeric array"), nil
	}
	data, err := toFloats(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tr, err := training.ReadPackage(workoutType, data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := training.ShowTrainingInfo(tr)
	if err != nil {
		h.log.Error("mcp compute_training", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"training_type": info.TrainingType,
		"duration":      info.Duration,
		"distance":      info.Distance,
		"speed":         info.Speed,
		"calories":      info.Calories,
		"message":       info.Message(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	sessions, err := h.ds.QuerySessions(ctx, start, end, req.GetString("type", ""))
	if err != nil {
		h.log.Error("mcp get_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	stats, err := h.ds.SessionStats(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_session_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
