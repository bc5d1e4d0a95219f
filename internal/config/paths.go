package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPaths resolves ~ and environment variables in the file settings.
func expandPaths(cfg *Config) {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	cfg.LogFile = expandPath(cfg.LogFile)
}

// expandPath trims p, expands $VAR and ${VAR}, and replaces a leading ~ with
// the home directory. Paths stay unchanged when the home directory is unknown.
func expandPath(p string) string {
	p = os.ExpandEnv(strings.TrimSpace(p))
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
