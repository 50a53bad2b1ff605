// Package config loads slicecube settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults for the command-line tool.
// Command flags override these values.
type Config struct {
	LogLevel     string        `env:"SLICECUBE_LOG_LEVEL" envDefault:"info"`
	Color        bool          `env:"SLICECUBE_COLOR" envDefault:"true"`
	PlayInterval time.Duration `env:"SLICECUBE_PLAY_INTERVAL" envDefault:"600ms"`
	Scenario     string        `env:"SLICECUBE_SCENARIO"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PlayInterval <= 0 {
		return Config{}, fmt.Errorf("SLICECUBE_PLAY_INTERVAL must be positive, got %s", cfg.PlayInterval)
	}
	return cfg, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
