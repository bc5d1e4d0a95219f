package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvTasksFile     = "TASKLIST_FILE"
	EnvLogLevel      = "TASKLIST_LOG_LEVEL"
	EnvLogFormat     = "TASKLIST_LOG_FORMAT"
	EnvLogTimestamps = "TASKLIST_LOG_TIMESTAMPS"
	EnvLogCaller     = "TASKLIST_LOG_CALLER"
	EnvLogFile       = "TASKLIST_LOG_FILE"
	EnvConfirm       = "TASKLIST_CONFIRM"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	track := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv(EnvTasksFile); v != "" {
		cfg.TasksFile = v
		track("tasks_file")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		track("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		track("log_format")
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		track("log_timestamps")
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		track("log_caller")
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
		track("log_file")
	}
	if v := os.Getenv(EnvConfirm); v != "" {
		cfg.Confirm = boolFromString(v)
		track("confirm")
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
