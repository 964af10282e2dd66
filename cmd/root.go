package cmd

import (
	"fmt"
	"os"

	"github.com/chris-regnier/echoctl/internal/config"
	"github.com/chris-regnier/echoctl/internal/storage"
	"github.com/chris-regnier/echoctl/internal/storage/markdown"
	"github.com/chris-regnier/echoctl/internal/storage/sqlite"
	"github.com/chris-regnier/echoctl/internal/ui"
	"github.com/chris-regnier/echoctl/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage
)

var rootCmd = &cobra.Command{
	Use:   "echoctl",
	Short: "A daily journaling CLI tool",
	Long:  "echoctl is a command-line journal: one entry per calendar day with an optional mood, plus calendar, search, and trend views.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		// Initialize storage backend
		switch appConfig.Storage {
		case "markdown":
			store, err = markdown.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing markdown storage: %w", err)
			}
		case "sqlite":
			store, err = sqlite.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing sqlite storage: %w", err)
			}
		default:
			return fmt.Errorf("unknown storage backend: %s", appConfig.Storage)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to today's entry
			return showRun(os.Stdout, "", false)
		}
		return ui.RunTUI(store, ui.TUIConfig{
			Theme: ui.ResolveTheme(appConfig.Theme),
		})
	},
}

// Execute runs the root command.
func Execute() error {
	// Resolved here so link-time build metadata is already in place.
	rootCmd.Version = version.Info()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
