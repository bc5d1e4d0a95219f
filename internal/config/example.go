package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by environment variables (TASKLIST_*) or CLI flags

# Task file (supports ~ expansion and $VAR)
tasks_file = "tasks.json"

# Logging: level is debug, info, warn or error; format is text, json or logfmt
log_level = "warn"
log_format = "text"
log_timestamps = false
log_caller = false

# Write logs to a file instead of stderr (the TUI discards logs unless set)
# log_file = "~/.tasklist/tasklist.log"

# Ask before deleting or clearing tasks
confirm = true
`
}
