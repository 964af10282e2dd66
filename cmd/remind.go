package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chris-regnier/echoctl/internal/config"
	"github.com/chris-regnier/echoctl/internal/notify"
	"github.com/chris-regnier/echoctl/internal/reminder"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage the daily write reminder",
	Long: `Manage the daily reminder that prompts you to write.

A single HH:MM time is stored in the config; setting a new time
replaces the old one. "remind run" polls the clock and fires a desktop
notification when the reminder time arrives.`,
	Example: `  echoctl remind set 21:30
  echoctl remind show
  echoctl remind run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remindShowRun()
	},
}

var remindSetCmd = &cobra.Command{
	Use:   "set <HH:MM>",
	Short: "Set the daily reminder time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hhmm := args[0]
		if err := reminder.ValidateTime(hhmm); err != nil {
			return err
		}
		if err := config.SaveReminderTime(cfgFile, hhmm); err != nil {
			return fmt.Errorf("saving reminder time: %w", err)
		}
		appConfig.Reminder.Time = hhmm
		fmt.Fprintf(os.Stdout, "Reminder set for %s daily\n", hhmm)
		return nil
	},
}

var remindShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured reminder time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return remindShowRun()
	},
}

func remindShowRun() error {
	if appConfig.Reminder.Time == "" {
		fmt.Fprintln(os.Stdout, "No reminder set. Use 'echoctl remind set HH:MM'.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Daily reminder at %s\n", appConfig.Reminder.Time)
	return nil
}

var remindRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reminder loop in the foreground",
	Long:  "Poll the clock once a minute and send a desktop notification when the reminder time arrives. Runs until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := appConfig.Reminder.Time
		if target == "" {
			return fmt.Errorf("no reminder set: use 'echoctl remind set HH:MM' first")
		}
		if err := reminder.ValidateTime(target); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Reminder loop running (daily at %s). Ctrl-C to stop.\n", target)

		p := &reminder.Poller{
			Target: target,
			Notify: notify.WritePrompt,
		}
		p.Run(ctx)
		return nil
	},
}

func init() {
	remindCmd.AddCommand(remindSetCmd)
	remindCmd.AddCommand(remindShowCmd)
	remindCmd.AddCommand(remindRunCmd)
	rootCmd.AddCommand(remindCmd)
}
