package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "react", cfg.Module)
	assert.Equal(t, "useState", cfg.StateHook)
	assert.Equal(t, "useEffect", cfg.EffectHook)
	assert.Equal(t, "console.log", cfg.LogFunction)
	assert.Equal(t, UnlistedIgnore, cfg.Unlisted)
	assert.ElementsMatch(t, []string{"node_modules", "build", "dist"}, cfg.SkipDirs)
	assert.Equal(t, "__tests__", cfg.TestDir)
}

func TestLoad(t *testing.T) {
	t.Run("explicit file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("module: preact/hooks\nunlisted: report\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "preact/hooks", cfg.Module)
		assert.Equal(t, UnlistedReport, cfg.Unlisted)
		assert.Equal(t, "useState", cfg.StateHook, "unset keys keep their defaults")
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid policy is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unlisted: sometimes\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unlisted")
	})

	t.Run("blank required key is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank.yaml")
		require.NoError(t, os.WriteFile(path, []byte("state_hook: \"\"\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "state_hook")
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("module: [unterminated\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}
