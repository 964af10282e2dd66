package mcptools

import (
	"context"

	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/chris-regnier/echoctl/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MoodTrendHandler returns the handler function for the mood_trend MCP tool.
func MoodTrendHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input MoodTrendInput) (*mcp.CallToolResult, MoodTrendOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MoodTrendInput) (*mcp.CallToolResult, MoodTrendOutput, error) {
		points, err := trend.Build(store)
		if err != nil {
			return nil, MoodTrendOutput{}, err
		}
		if input.Last > 0 {
			points = trend.Last(points, input.Last)
		}

		out := MoodTrendOutput{Points: make([]TrendPoint, 0, len(points))}
		for _, p := range points {
			out.Points = append(out.Points, TrendPoint{Date: p.Date, Level: p.Level})
		}
		return nil, out, nil
	}
}
