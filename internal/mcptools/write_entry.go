package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WriteEntryHandler returns the handler function for the write_entry
// MCP tool. It replaces today's entry outright; use append_today to
// add to an existing one.
func WriteEntryHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input WriteEntryInput) (*mcp.CallToolResult, WriteEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WriteEntryInput) (*mcp.CallToolResult, WriteEntryOutput, error) {
		mood := journal.MoodNone
		if input.Mood != "" {
			var err error
			mood, err = journal.ParseMood(input.Mood)
			if err != nil {
				return nil, WriteEntryOutput{}, err
			}
		}

		entry, err := daily.UpsertToday(store, time.Now(), input.Content, mood)
		if err != nil {
			return nil, WriteEntryOutput{}, err
		}
		return nil, WriteEntryOutput{Date: entry.Date}, nil
	}
}

// AppendTodayHandler returns the handler function for the append_today MCP tool.
func AppendTodayHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input AppendTodayInput) (*mcp.CallToolResult, AppendTodayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AppendTodayInput) (*mcp.CallToolResult, AppendTodayOutput, error) {
		entry, err := daily.AppendToday(store, time.Now(), input.Text)
		if err != nil {
			return nil, AppendTodayOutput{}, err
		}
		return nil, AppendTodayOutput{Date: entry.Date, Content: entry.Content}, nil
	}
}
