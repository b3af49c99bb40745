// ABOUTME: Contratempo configuration with storage backend selection.
// ABOUTME: JSON config under XDG paths plus a Store factory function.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/contratempo/internal/storage"
)

// Config stores tool configuration.
type Config struct {
	// Backend selects the storage backend: "kv" (default, Charm KV with
	// cloud sync), "sqlite", or "file".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for sqlite and file backends.
	// Supports ~ expansion. Defaults to the XDG data directory.
	DataDir string `json:"data_dir,omitempty"`

	// DeviceID identifies this install in export snapshots. Minted on
	// first save.
	DeviceID string `json:"device_id,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "kv".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "kv"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "contratempo")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured
// backend.
func (c *Config) OpenStore() (storage.Store, error) {
	switch c.GetBackend() {
	case "kv":
		return storage.OpenKV()
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(c.GetDataDir(), "contratempo.db"))
	case "file":
		return storage.OpenFile(c.GetDataDir())
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "contratempo", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk, minting a device ID if none exists.
func (c *Config) Save() error {
	if c.DeviceID == "" {
		c.DeviceID = ulid.Make().String()
	}

	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
