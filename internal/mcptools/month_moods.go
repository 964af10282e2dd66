package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/echoctl/internal/calendar"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MonthMoodsHandler returns the handler function for the month_moods MCP tool.
func MonthMoodsHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input MonthMoodsInput) (*mcp.CallToolResult, MonthMoodsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MonthMoodsInput) (*mcp.CallToolResult, MonthMoodsOutput, error) {
		month := time.Month(input.Month)

		moods, err := calendar.MonthMoods(store, input.Year, month)
		if err != nil {
			return nil, MonthMoodsOutput{}, err
		}

		out := MonthMoodsOutput{
			Moods:        make(map[string]string, len(moods)),
			FirstWeekday: calendar.FirstWeekday(input.Year, month),
			Days:         calendar.DaysIn(input.Year, month),
		}
		for date, mood := range moods {
			out.Moods[date] = string(mood)
		}
		return nil, out, nil
	}
}
