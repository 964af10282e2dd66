package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetEntryHandler returns the handler function for the get_entry MCP tool.
func GetEntryHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input GetEntryInput) (*mcp.CallToolResult, GetEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetEntryInput) (*mcp.CallToolResult, GetEntryOutput, error) {
		date := input.Date
		if date == "" {
			date = journal.DateKey(time.Now())
		}

		e, found, err := daily.GetByDate(store, date)
		if err != nil {
			return nil, GetEntryOutput{}, err
		}
		if !found {
			// A missing entry is normal data, not a tool error.
			return nil, GetEntryOutput{Found: false, Date: date}, nil
		}

		return nil, GetEntryOutput{
			Found:   true,
			Date:    e.Date,
			Content: e.Content,
			Mood:    string(e.Mood),
		}, nil
	}
}
