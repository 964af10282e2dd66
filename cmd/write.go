package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chris-regnier/echoctl/internal/daily"
	"github.com/chris-regnier/echoctl/internal/editor"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	writeMood string
	writeEdit bool
)

var writeCmd = &cobra.Command{
	Use:   "write [text...]",
	Short: "Write or overwrite today's entry",
	Long: `Write today's daily entry, replacing any existing content and mood.

Use jot instead to add to today's entry without replacing it.`,
	Example: `  echoctl write "Long walk in the rain. Loved it."
  echoctl write --mood happy "Great day overall"
  echoctl write --edit
  echo "note from pipe" | echoctl write -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := journal.ParseMood(writeMood)
		if err != nil {
			return err
		}

		var content string
		if writeEdit {
			content, err = contentFromEditor()
		} else {
			content, err = contentFromArgs(args)
		}
		if err != nil {
			return err
		}

		e, err := daily.UpsertToday(store, time.Now(), content, mood)
		if err != nil {
			return fmt.Errorf("writing today's entry: %w", err)
		}

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, e)
		}
		ui.FormatEntrySaved(os.Stdout, e)
		return nil
	},
}

// contentFromEditor opens today's current content in the configured
// editor and returns whatever the user saved.
func contentFromEditor() (string, error) {
	today := journal.DateKey(time.Now())
	existing, _, err := daily.GetByDate(store, today)
	if err != nil {
		return "", err
	}

	content, changed, err := editor.Edit(editor.Resolve(appConfig.Editor), existing.Content)
	if err != nil {
		return "", fmt.Errorf("editing entry: %w", err)
	}
	if !changed && existing.Content == "" {
		return "", fmt.Errorf("write: empty entry, nothing saved")
	}
	return content, nil
}

// contentFromArgs resolves entry text from positional args, reading
// stdin when the single arg is "-".
func contentFromArgs(args []string) (string, error) {
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", fmt.Errorf("write requires text: echoctl write \"some text\"")
}

func init() {
	writeCmd.Flags().StringVarP(&writeMood, "mood", "m", "", "mood for the day (sad|normal|happy|cheerful)")
	writeCmd.Flags().BoolVarP(&writeEdit, "edit", "e", false, "compose the entry in your editor")
	rootCmd.AddCommand(writeCmd)
}
