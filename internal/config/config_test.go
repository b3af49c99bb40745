// ABOUTME: Tests for configuration loading, saving, and backend selection.
// ABOUTME: Uses XDG env overrides pointed at temp directories.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDGConfig(t *testing.T, dir string) {
	t.Helper()
	orig := os.Getenv("XDG_CONFIG_HOME")
	t.Cleanup(func() {
		if orig != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", orig)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	})
	_ = os.Setenv("XDG_CONFIG_HOME", dir)
}

func TestLoadNoFile(t *testing.T) {
	setXDGConfig(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kv", cfg.GetBackend())
	assert.Empty(t, cfg.DeviceID)
}

func TestSaveAndLoad(t *testing.T) {
	setXDGConfig(t, t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "/tmp/contratempo-test"}
	require.NoError(t, cfg.Save())

	// Save mints a device ID on first write.
	assert.NotEmpty(t, cfg.DeviceID)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", loaded.Backend)
	assert.Equal(t, "/tmp/contratempo-test", loaded.DataDir)
	assert.Equal(t, cfg.DeviceID, loaded.DeviceID)
}

func TestSaveKeepsExistingDeviceID(t *testing.T) {
	setXDGConfig(t, t.TempDir())

	cfg := &Config{DeviceID: "existing"}
	require.NoError(t, cfg.Save())
	assert.Equal(t, "existing", cfg.DeviceID)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Tilde", "~", home},
		{"TildeSlash", "~/data", filepath.Join(home, "data")},
		{"Absolute", "/var/data", "/var/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()

	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			cfg := &Config{Backend: backend, DataDir: filepath.Join(dir, backend)}
			store, err := cfg.OpenStore()
			require.NoError(t, err)
			require.NoError(t, store.Close())
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "cloud9"}
	_, err := cfg.OpenStore()
	assert.Error(t, err)
}
