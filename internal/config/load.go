package config

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/tasklist/internal/logging"
)

// LoadWithSources loads configuration from multiple sources in priority order
// and tracks the source of each value:
// 1. Defaults
// 2. User config file (~/.tasklist/tasklist.toml or OS-specific config dir)
// 3. Project config file (tasklist.toml or .tasklist.toml in current directory)
// 4. Environment variables
// 5. CLI flags
//
// Flags are parsed from args with fs; positional arguments remain in fs.Args().
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.UserFile = userConfigFile
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.ProjectFile = projectConfigFile
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// loadConfigFile decodes TOML from path over cfg. Only keys present in the
// file change cfg; those keys are attributed to source.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if sources != nil {
		for _, field := range configFields() {
			if md.IsDefined(field) {
				sources[field] = source
			}
		}
	}
	return nil
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	expandPaths(cfg)

	if cfg.TasksFile == "" {
		return errors.New("tasks_file is empty")
	}
	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, error or fatal)", cfg.LogLevel)
	}
	if !logging.ValidFormat(cfg.LogFormat) {
		return fmt.Errorf("invalid log_format %q (want text, json or logfmt)", cfg.LogFormat)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return nil
}
