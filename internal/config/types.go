package config

import (
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/task"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Config files that were read, empty when absent.
	UserFile    string
	ProjectFile string
}

// Default values.
const (
	DefaultTasksFile = task.DefaultFile
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultConfirm   = true
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Task file backing the store.
	TasksFile string `toml:"tasks_file"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"`

	// Ask before destructive actions in the CLI and TUI.
	Confirm bool `toml:"confirm"`
}

// LogSettings returns the logging portion of the config.
func (c *Config) LogSettings() logging.Settings {
	return logging.Settings{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		Timestamps: c.LogTimestamps,
		Caller:     c.LogCaller,
		File:       c.LogFile,
	}
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"tasks_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_file",
		"confirm",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Value returns the display value of a field by its TOML name.
func (c *Config) Value(field string) string {
	switch field {
	case "tasks_file":
		return c.TasksFile
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return formatBool(c.LogTimestamps)
	case "log_caller":
		return formatBool(c.LogCaller)
	case "log_file":
		return c.LogFile
	case "confirm":
		return formatBool(c.Confirm)
	}
	return ""
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
