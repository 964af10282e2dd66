package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var jotCmd = &cobra.Command{
	Use:   "jot [text...]",
	Short: "Append a note to today's entry",
	Long: `Append text to today's daily entry, keeping its mood intact.

If no entry exists for today, one is created automatically.`,
	Example: `  echoctl jot "bought groceries"
  echoctl jot meeting went well
  echo "note from pipe" | echoctl jot -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := contentFromArgs(args)
		if err != nil {
			return err
		}
		return jotRun(content)
	},
}

func jotRun(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("jot: empty content")
	}

	e, err := daily.AppendToday(store, time.Now(), content)
	if err != nil {
		return fmt.Errorf("appending to today's entry: %w", err)
	}

	if jsonOutput {
		return ui.FormatJSON(os.Stdout, e)
	}
	ui.FormatEntryAppended(os.Stdout, e)
	return nil
}

func init() {
	rootCmd.AddCommand(jotCmd)
}
