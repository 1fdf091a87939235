package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// SettingsFileName is the TOML settings file looked up in the home
// directory and in the current directory during load.
const SettingsFileName = ".checkmarks.toml"

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User settings file (~/.checkmarks.toml)
// 3. Project settings file (.checkmarks.toml in current directory)
// 4. Environment variables (CHECKMARKS_*)
// 5. CLI flags
//
// The fs flag set is parsed against args; remaining arguments stay available
// via fs.Args() for subcommand dispatch.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, err
	}

	finalizeConfig(cfg)
	return cfg, nil
}

// findUserConfigFile returns the user settings file path, or "" if absent.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, SettingsFileName)
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path
	}
	return ""
}

// findProjectConfigFile returns the project settings file path, or "" if absent.
func findProjectConfigFile() string {
	if fi, err := os.Stat(SettingsFileName); err == nil && !fi.IsDir() {
		return SettingsFileName
	}
	return ""
}

// loadConfigFile loads TOML settings from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("CHECKMARKS_CONFIG"); v != "" {
		cfg.ConfigFile = v
	}
	if v := os.Getenv("CHECKMARKS_BAR_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BarWidth = n
		}
	}
	if v := os.Getenv("CHECKMARKS_RENDERER"); v != "" {
		cfg.Renderer = v
	}
	if v := os.Getenv("CHECKMARKS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CHECKMARKS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CHECKMARKS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

// parseFlags defines and parses CLI flags. Flags override everything.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("checkmarks", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Path to tracked-list JSON file")
	fs.IntVar(&cfg.BarWidth, "bar-width", cfg.BarWidth, "Progress bar width in characters")
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "Dashboard renderer (plain|table|progress)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	return fs.Parse(args)
}

// finalizeConfig computes derived values.
func finalizeConfig(cfg *Config) {
	cfg.ConfigFile = ExpandPath(cfg.ConfigFile)
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = DefaultBarWidth
	}
	if !ValidRenderer(cfg.Renderer) {
		cfg.Renderer = DefaultRenderer
	}
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}
