package mcptools

import (
	"context"

	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewJournalMCPServer creates an in-memory MCP server exposing journal
// tools. Returns the server and a client transport for connecting to it.
func NewJournalMCPServer(store storage.Storage) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered journal tools.
func CreateMCPServer(store storage.Storage) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "echoctl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entry",
		Description: "Get the journal entry for a date (or today)",
	}, GetEntryHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Literal substring search over journal entry content",
	}, SearchHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_moods",
		Description: "Date-to-mood map for a calendar month",
	}, MonthMoodsHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_trend",
		Description: "Chronological (date, mood level) series for charting",
	}, MoodTrendHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "write_entry",
		Description: "Write or overwrite today's journal entry and mood",
	}, WriteEntryHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_today",
		Description: "Append text to today's journal entry",
	}, AppendTodayHandler(store))

	return server
}
