// Package config reads runtime settings from the environment and optional
// tuning overrides for the starting state from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are read from ROADSAGA_* environment variables.
type Settings struct {
	LogLevel  string `env:"ROADSAGA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ROADSAGA_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"ROADSAGA_LOG_FILE"`
	Seed      int64  `env:"ROADSAGA_SEED"` // 0 picks a random seed
	Tuning    string `env:"ROADSAGA_TUNING"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return Settings{}, fmt.Errorf("ROADSAGA_LOG_FORMAT must be text or json, got %q", s.LogFormat)
	}
	return s, nil
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
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
