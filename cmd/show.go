package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day's journal entry",
	Long:  "Display the entry for a date (YYYY-MM-DD), or today's entry when no date is given.",
	Example: `  echoctl show
  echoctl show 2024-03-15
  echoctl show 2024-03-15 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) > 0 {
			date = args[0]
		}
		return showRun(os.Stdout, date, showContentOnly)
	},
}

func showRun(w io.Writer, date string, contentOnly bool) error {
	if date == "" {
		date = journal.DateKey(time.Now())
	}

	e, found, err := daily.GetByDate(store, date)
	if err != nil {
		return fmt.Errorf("looking up entry: %w", err)
	}

	if !found {
		if jsonOutput {
			return ui.FormatJSON(w, map[string]interface{}{"date": date, "found": false})
		}
		ui.FormatNoEntry(w, date)
		return nil
	}

	if contentOnly {
		fmt.Fprintln(w, e.Content)
		return nil
	}

	if jsonOutput {
		return ui.FormatJSON(w, e)
	}

	var buf bytes.Buffer
	ui.FormatEntryFull(&buf, e, appConfig.Theme.MarkdownStyle)
	return ui.OutputOrPage(w, buf.String(), false)
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the entry content")
	rootCmd.AddCommand(showCmd)
}
