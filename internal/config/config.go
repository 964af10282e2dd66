package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig holds theme configuration with optional overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ReminderConfig holds the daily reminder state: a single HH:MM slot,
// empty until set, overwritten by each set, never cleared.
type ReminderConfig struct {
	Time string `mapstructure:"time"`
}

// Config holds the application configuration.
type Config struct {
	Storage  string         `mapstructure:"storage"`
	DataDir  string         `mapstructure:"data_dir"`
	Editor   string         `mapstructure:"editor"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// DefaultDataDir returns the default data directory (~/.echoctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".echoctl")
	}
	return filepath.Join(home, ".echoctl")
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "sqlite")
	v.SetDefault("editor", "")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("reminder.time", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "echoctl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: ECHOCTL_STORAGE, ECHOCTL_DATA_DIR, etc.
	v.SetEnvPrefix("ECHOCTL")
	v.AutomaticEnv()

	return v
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveReminderTime persists the reminder time-of-day, creating the
// config file if none exists yet. configPath may be empty to target
// the default location.
func SaveReminderTime(configPath string, hhmm string) error {
	v := newViper(configPath)
	_ = v.ReadInConfig() // keep existing settings if a file is present

	v.Set("reminder.time", hhmm)

	if configPath == "" {
		if err := os.MkdirAll(DefaultDataDir(), 0755); err != nil {
			return err
		}
		configPath = filepath.Join(DefaultDataDir(), "config.toml")
	}
	return v.WriteConfigAs(configPath)
}
