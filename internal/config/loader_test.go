package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
target: ubuntu
scriptDir: /custom/scripts
shebang: true
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "ubuntu", cfg.Target)
		assert.Equal(t, "/custom/scripts", cfg.ScriptDir)
		assert.True(t, cfg.Shebang)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Target)
		assert.Empty(t, cfg.ScriptDir)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("INSTGEN_TARGET", "fedora")
		t.Setenv("INSTGEN_SCRIPT_DIR", "/env/scripts")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "fedora", cfg.Target)
		assert.Equal(t, "/env/scripts", cfg.ScriptDir)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("INSTGEN_TARGET", "debian")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("target: fedora"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "debian", cfg.Target)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nonexistent.yaml")

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.ScriptDir)
	assert.Empty(t, cfg.Target)
	assert.False(t, cfg.Shebang)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, ".", cfg.ScriptDir)

	cfg = (&Config{ScriptDir: "/keep"}).WithDefaults()
	assert.Equal(t, "/keep", cfg.ScriptDir)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("INSTGEN_CONFIG", "/env/config.yaml")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", path)
	})

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("INSTGEN_CONFIG", "")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Contains(t, path, filepath.Join(".instgen", "config.yaml"))
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/instgen.yaml", "/etc/instgen.yaml"},
		{"tilde only", "~", home},
		{"tilde slash", "~/cfg.yaml", filepath.Join(home, "cfg.yaml")},
		{"tilde user", "~other/cfg.yaml", "~other/cfg.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
