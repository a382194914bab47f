// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from FIXTURES_* environment variables. A .env file in the
// working directory is loaded first by the command.
type Config struct {
	// OutDir is where fixture files are written.
	OutDir string `env:"FIXTURES_OUT_DIR" envDefault:"."`

	LogLevel string `env:"FIXTURES_LOG_LEVEL" envDefault:"info"`

	// RedisAddr enables the redis sink when set.
	RedisAddr   string `env:"FIXTURES_REDIS_ADDR"`
	RedisDB     int    `env:"FIXTURES_REDIS_DB" envDefault:"0"`
	RedisPrefix string `env:"FIXTURES_REDIS_PREFIX" envDefault:"fixtures:"`

	// DatabaseURL enables the postgres sink when set.
	DatabaseURL string `env:"FIXTURES_DATABASE_URL"`

	// TokenExpireTime is a duration for issued player keys, or "never".
	TokenExpireTime string `env:"TOKEN_EXPIRE_TIME" envDefault:"never"`

	// KeyPrivatePath and KeyPublicPath hold a raw ed25519 key pair used to
	// sign issued player keys. A fresh pair is generated when either is unset.
	KeyPrivatePath string `env:"FIXTURES_KEY_PRIVATE_PATH"`
	KeyPublicPath  string `env:"FIXTURES_KEY_PUBLIC_PATH"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
