// Package config resolves runtime settings from flags, environment variables
// and XDG directories, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	LogLevelDebug   string = "debug"
	LogLevelInfo    string = "info"
	LogLevelWarning string = "warn"
	LogLevelError   string = "error"

	EnvDB       = "LIMITZ_DB"
	EnvLogLevel = "LIMITZ_LOG_LEVEL"
	EnvLogFile  = "LIMITZ_LOG_FILE"

	appDir = "limitz"
)

// Version is set via -ldflags at build time.
var Version = "(devel)"

// DBPath resolves the database file path in priority order:
// 1. flag value
// 2. LIMITZ_DB environment variable
// 3. $XDG_DATA_HOME/limitz/limitz.db
// 4. ~/.local/share/limitz/limitz.db
//
// The parent directory is created if missing.
func DBPath(flag string) (string, error) {
	p, err := resolve(flag, EnvDB, "XDG_DATA_HOME", filepath.Join(".local", "share"), "limitz.db")
	if err != nil {
		return "", err
	}
	return p, EnsureDir(p)
}

// LogFilePath resolves the log file path the same way as DBPath, falling back
// to $XDG_STATE_HOME/limitz/limitz.log.
func LogFilePath(flag string) (string, error) {
	p, err := resolve(flag, EnvLogFile, "XDG_STATE_HOME", filepath.Join(".local", "state"), "limitz.log")
	if err != nil {
		return "", err
	}
	return p, EnsureDir(p)
}

// LogLevel returns flag, then LIMITZ_LOG_LEVEL, then "info".
func LogLevel(flag string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		return v
	}
	return LogLevelInfo
}

func resolve(flag, env, xdgVar, homeFallback, file string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv(env); p != "" {
		return p, nil
	}

	base := os.Getenv(xdgVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, homeFallback)
	}
	return filepath.Join(base, appDir, file), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
