package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "x-tobira-user-roles", cfg.Server.RolesHeader)
	assert.Equal(t, "http://localhost:7700", cfg.Search.Host)
	assert.Equal(t, "tobira_", cfg.Search.IndexPrefix)
	assert.Equal(t, 60, cfg.Search.TaskTimeoutSeconds)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SEARCH_HOST", "http://meili:7700")
	t.Setenv("SEARCH_INDEX_PREFIX", "test_")
	t.Setenv("SERVER_API_KEY", "secret")
	t.Setenv("DATABASE_PORT", "3307")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://meili:7700", cfg.Search.Host)
	assert.Equal(t, "test_", cfg.Search.IndexPrefix)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.Equal(t, 3307, cfg.Database.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
}
