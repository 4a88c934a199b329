package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER: sqlite\nDB_PATH: yaml.db\nMATCHING_ALLOW_UNPROVEN: true\n"), 0o600))

	LoadConfigFile(path)
	t.Cleanup(func() { LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")) })

	assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"))
	assert.Equal(t, "yaml.db", GetConfig("DB_PATH"))
	assert.True(t, GetConfigBool("MATCHING_ALLOW_UNPROVEN"))
	assert.False(t, GetConfigBool("MATCHING_RESTRICT_AREA"))

	t.Setenv("DB_PATH", "env.db")
	t.Setenv("MATCHING_RESTRICT_AREA", "true")
	assert.Equal(t, "env.db", GetConfig("DB_PATH"))
	assert.True(t, GetConfigBool("MATCHING_RESTRICT_AREA"))
}

func TestGetConfig_Defaults(t *testing.T) {
	LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "./logs/app.log", GetConfig("LOG_FILE"))
	assert.Empty(t, GetConfig("UNKNOWN_KEY"))
}
