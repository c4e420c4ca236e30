// Package config loads telemetry settings from the environment (and an
// optional .env file) and turns them into a ready store backend.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hupe1980/telemetry/core"
	"github.com/hupe1980/telemetry/logging"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config is the complete runtime configuration.
type Config struct {
	APIKey string      `env:"TELEMETRY_API_KEY"`
	Store  StoreConfig
	Log    LogConfig
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `env:"TELEMETRY_LOG_LEVEL" envDefault:"info"`
	Format string `env:"TELEMETRY_LOG_FORMAT" envDefault:"text"`
}

// Logger builds a RecorderLogger from the log settings.
func (c LogConfig) Logger() *logging.RecorderLogger {
	return logging.NewSlogLogger(logging.ParseLevel(c.Level), strings.ToLower(c.Format), false)
}

var dotenvLoaded sync.Once

// Load reads a .env file from the working directory if present, then parses
// the environment into a Config.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	return Parse(env.Options{})
}

// Parse parses a Config with explicit env options; tests use
// Options.Environment to avoid touching the process environment.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate checks the settings the SDK cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: TELEMETRY_API_KEY is required", core.ErrInvalidConfiguration)
	}
	return nil
}
