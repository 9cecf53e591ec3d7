package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/locko/rtools/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
templates: /srv/templates
editor: code --wait
log:
  timestamps: false
`)
		loader, err := NewLoader()
		require.NoError(t, err)

		cfg, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/templates", cfg.Templates)
		assert.Equal(t, "code --wait", cfg.Editor)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)

		cfg, err := loader.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Templates)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("empty file is valid", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)

		cfg, err := loader.Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Empty(t, cfg.Editor)
	})

	t.Run("generated default file loads", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)

		cfg, err := loader.Load(writeConfig(t, DefaultConfigYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)

		_, err = loader.Load(writeConfig(t, "registry: example.com\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		loader, err := NewLoader()
		require.NoError(t, err)

		_, err = loader.Load(writeConfig(t, "log:\n  timestamps: sometimes\n"))
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})
}

func TestConfigFileExists(t *testing.T) {
	exists, err := ConfigFileExists(writeConfig(t, ""))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}
