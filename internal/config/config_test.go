package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		OutDir:          ".",
		LogLevel:        "info",
		RedisDB:         0,
		RedisPrefix:     "fixtures:",
		TokenExpireTime: "never",
	}, cfg)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"FIXTURES_OUT_DIR":      "testdata/out",
		"FIXTURES_LOG_LEVEL":    "debug",
		"FIXTURES_REDIS_ADDR":   "localhost:6379",
		"FIXTURES_REDIS_DB":     "3",
		"FIXTURES_DATABASE_URL": "postgres://fiaro@localhost/fiaro",
		"TOKEN_EXPIRE_TIME":     "72h",

		"FIXTURES_KEY_PRIVATE_PATH": "keys/player",
		"FIXTURES_KEY_PUBLIC_PATH":  "keys/player.pub",
	})
	require.NoError(t, err)

	assert.Equal(t, "testdata/out", cfg.OutDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "postgres://fiaro@localhost/fiaro", cfg.DatabaseURL)
	assert.Equal(t, "72h", cfg.TokenExpireTime)
	assert.Equal(t, "keys/player", cfg.KeyPrivatePath)
	assert.Equal(t, "keys/player.pub", cfg.KeyPublicPath)
}

func TestLoadFrom_BadInt(t *testing.T) {
	_, err := LoadFrom(map[string]string{"FIXTURES_REDIS_DB": "first"})
	assert.Error(t, err)
}
