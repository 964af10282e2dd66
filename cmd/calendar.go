package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chris-regnier/echoctl/internal/calendar"
	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/spf13/cobra"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month calendar with mood markers",
	Long:  "Render a Sunday-first month grid with each journaled day's mood marker.",
	Example: `  echoctl calendar
  echoctl calendar --month 2024-02
  echoctl calendar --month 2024-02 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()

		if calendarMonth != "" {
			t, err := time.Parse("2006-01", calendarMonth)
			if err != nil {
				return fmt.Errorf("invalid month %q (want YYYY-MM): %v", calendarMonth, err)
			}
			year, month = t.Year(), t.Month()
		}

		moods, err := calendar.MonthMoods(store, year, month)
		if err != nil {
			return fmt.Errorf("loading month: %w", err)
		}

		if jsonOutput {
			return ui.FormatJSON(os.Stdout, map[string]interface{}{
				"year":          year,
				"month":         int(month),
				"moods":         moods,
				"first_weekday": calendar.FirstWeekday(year, month),
				"days":          calendar.DaysIn(year, month),
			})
		}

		ui.FormatCalendar(os.Stdout, year, month, moods, journal.DateKey(now))
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "month to show as YYYY-MM (default: current)")
	rootCmd.AddCommand(calendarCmd)
}
