package config

// ExampleConfig returns an example settings file showing all available options.
func ExampleConfig() string {
	return `# Checkmarks settings file
# Values can be overridden by environment variables or CLI flags

# Tracked-list JSON file (supports ~ expansion)
config_file = "~/.checkmarks_config.json"

# Progress bar width in characters
bar_width = 20

# Default dashboard renderer: plain, table, or progress
renderer = "plain"

# Logging
log_level = "info"
log_format = "text"
log_timestamps = false
`
}
