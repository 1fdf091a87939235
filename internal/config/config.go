// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultConfigFile = "~/.checkmarks_config.json"
	DefaultBarWidth   = 20
	DefaultRenderer   = "plain"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Renderer names accepted by the dashboard.
const (
	RendererPlain    = "plain"
	RendererTable    = "table"
	RendererProgress = "progress"
)

// Config holds the full configuration for checkmarks.
type Config struct {
	// ConfigFile is the tracked-list JSON file (supports ~ expansion).
	ConfigFile string `toml:"config_file"`

	// BarWidth is the width of ASCII progress bars in characters.
	BarWidth int `toml:"bar_width"`

	// Renderer selects the default dashboard renderer (plain|table|progress).
	Renderer string `toml:"renderer"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// setDefaults fills cfg with default values.
func setDefaults(cfg *Config) {
	cfg.ConfigFile = DefaultConfigFile
	cfg.BarWidth = DefaultBarWidth
	cfg.Renderer = DefaultRenderer
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// ValidRenderer reports whether name is a known renderer.
func ValidRenderer(name string) bool {
	switch name {
	case RendererPlain, RendererTable, RendererProgress:
		return true
	}
	return false
}
