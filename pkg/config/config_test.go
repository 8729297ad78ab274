package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "shareit", cfg.ServiceName)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 0, cfg.GatewayRateLimit)
}

func TestLoadEnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORAGE=memory\nPORT=7000\nGATEWAY_RATE_LIMIT=30\n"), 0o600))
	t.Setenv("PORT", "7100")

	cfg, err := load(viper.New(), envFile)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "7100", cfg.Port)
	assert.Equal(t, 30, cfg.GatewayRateLimit)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "redis")

	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
