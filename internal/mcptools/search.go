package mcptools

import (
	"context"
	"strings"

	"github.com/chris-regnier/echoctl/internal/search"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchHandler returns the handler function for the search_entries MCP tool.
func SearchHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		query := strings.TrimSpace(input.Query)
		results, err := search.Search(store, query)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		out := SearchOutput{Entries: []SearchResult{}}
		for _, r := range results {
			out.Entries = append(out.Entries, SearchResult{
				Date:        r.Entry.Date,
				Highlighted: search.Highlight(r.Entry.Content, query, "<mark>", "</mark>"),
			})
		}
		return nil, out, nil
	}
}
