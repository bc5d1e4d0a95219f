package config

import "flag"

// flagFields maps flag names to config field names.
var flagFields = map[string]string{
	"file":           "tasks_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"log-file":       "log_file",
	"confirm":        "confirm",
}

// parseFlags defines the global flags on fs and parses args.
// Only flags that were set on the command line override cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	var (
		tasksFile, logLevel, logFormat, logFile string
		logTimestamps, logCaller, confirm      bool
	)
	fs.StringVar(&tasksFile, "file", cfg.TasksFile, "Path to the task file")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.StringVar(&logFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	fs.BoolVar(&confirm, "confirm", cfg.Confirm, "Ask before deleting or clearing tasks")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.TasksFile = tasksFile
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "log-timestamps":
			cfg.LogTimestamps = logTimestamps
		case "log-caller":
			cfg.LogCaller = logCaller
		case "log-file":
			cfg.LogFile = logFile
		case "confirm":
			cfg.Confirm = confirm
		}
		if field, ok := flagFields[f.Name]; ok && sources != nil {
			sources[field] = SourceFlag
		}
	})

	return nil
}
