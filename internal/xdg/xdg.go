// Package xdg resolves the XDG Base Directory paths buildsync writes to:
// the config directory for the workspace registry and the state directory
// for the sync history database. Both resolve through the matching XDG
// environment variable with the conventional home-relative fallback, and
// are created with private permissions on first use.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the buildsync config directory,
// $XDG_CONFIG_HOME/buildsync or ~/.config/buildsync.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the buildsync state directory,
// $XDG_STATE_HOME/buildsync or ~/.local/state/buildsync.
func StateDir() (string, error) {
	return appDir("XDG_STATE_HOME", ".local", "state")
}

// appDir resolves <base>/buildsync for the given XDG variable, falling back
// to the home-relative path when the variable is unset, and creates the
// directory with private permissions (0700) if missing.
func appDir(envVar string, fallback ...string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	dir := filepath.Join(base, "buildsync")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
