package cmd

import (
	"fmt"
	"os"

	"github.com/chris-regnier/echoctl/internal/trend"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var trendLast int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the mood trend over time",
	Long:  "Print the chronological mood series (sad=1, normal=2, happy=3, cheerful=4). Days without a mood are skipped.",
	Example: `  echoctl trend
  echoctl trend --last 30
  echoctl trend --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := trend.Build(store)
		if err != nil {
			return fmt.Errorf("building mood trend: %w", err)
		}
		if trendLast > 0 {
			points = trend.Last(points, trendLast)
		}

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, points)
		}

		ui.FormatTrend(os.Stdout, points)
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&trendLast, "last", 0, "show only the most recent N points")
	rootCmd.AddCommand(trendCmd)
}
