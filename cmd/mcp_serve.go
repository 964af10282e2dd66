package cmd

import (
	"context"
	"log"
	"os"

	"github.com/chris-regnier/echoctl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes journal tools
over stdio transport. This allows MCP clients like Claude Desktop to interact
with your journal.

Available tools:
  - get_entry: Get the entry for a date (or today)
  - search_entries: Literal substring search over entry content
  - month_moods: Date-to-mood map for a calendar month
  - mood_trend: Chronological (date, mood level) series
  - write_entry: Write or overwrite today's entry
  - append_today: Append text to today's entry

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "echoctl": {
        "command": "/path/to/echoctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting echoctl MCP server (stdio transport)")
	log.Printf("Storage backend: %s", appConfig.Storage)
	log.Printf("Data directory: %s", appConfig.DataDir)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
