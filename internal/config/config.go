package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	DBPath   string `env:"QKITTY_DB" envDefault:"qkitty.db"`
	Addr     string `env:"QKITTY_ADDR" envDefault:"localhost:50051"`
	LogLevel string `env:"QKITTY_LOG_LEVEL" envDefault:"info"`
	Persist  bool   `env:"QKITTY_PERSIST" envDefault:"true"`

	// RateLimit caps served RPCs per second; 0 disables limiting.
	RateLimit float64 `env:"QKITTY_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"QKITTY_RATE_BURST" envDefault:"20"`
}

// Load reads .env files (if any) and then the process environment. A
// missing .env is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
