package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chris-regnier/echoctl/internal/search"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search journal entries",
	Long:  "Case-insensitive literal text search over entry content, with matches highlighted.",
	Example: `  echoctl search "coffee"
  echoctl search long walk
  echoctl search "rainy day" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results, err := search.Search(store, query)
		if err != nil {
			return fmt.Errorf("searching entries: %w", err)
		}

		if jsonOutput {
			type jsonResult struct {
				Date    string        `json:"date"`
				Content string        `json:"content"`
				Mood    string        `json:"mood,omitempty"`
				Spans   []search.Span `json:"spans"`
			}
			out := make([]jsonResult, 0, len(results))
			for _, r := range results {
				out = append(out, jsonResult{
					Date:    r.Entry.Date,
					Content: r.Entry.Content,
					Mood:    string(r.Entry.Mood),
					Spans:   r.Spans,
				})
			}
			return ui.FormatJSON(os.Stdout, out)
		}

		ui.FormatSearchResults(os.Stdout, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
