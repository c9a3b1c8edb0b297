// Package config loads and stores CLI configuration in the XDG config dir.
// Besides daemon connection settings it holds the workspace registry: the
// client-known projects whose open/closed state is sent to the daemon as
// runtime info.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"buildsync/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel  string          `json:"log_level"`
	Daemon    DaemonConfig    `json:"daemon"`
	Workspace WorkspaceConfig `json:"workspace"`
}

// DaemonConfig holds build daemon connection settings.
type DaemonConfig struct {
	Addr string `json:"addr"`
}

// WorkspaceConfig is the client-side project registry.
type WorkspaceConfig struct {
	Root     string         `json:"root"`
	Projects []ProjectEntry `json:"projects"`
}

// ProjectEntry is one registered workspace project.
type ProjectEntry struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
	Open bool   `json:"open"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Defaults (daemon address may also come from flag or env)
			c.LogLevel = "info"
			c.Daemon = DaemonConfig{}
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// FindProject returns the index of the named project in the registry, or -1.
func (w WorkspaceConfig) FindProject(name string) int {
	for i, p := range w.Projects {
		if p.Name == name {
			return i
		}
	}
	return -1
}
