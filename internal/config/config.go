// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
)

type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DatabaseURL enables persistence when set.
	DatabaseURL string `env:"DATABASE_URL"`

	SeasonOracle   string `env:"SEASON_ORACLE"`
	SeasonRotation bool   `env:"SEASON_ROTATION" envDefault:"true"`

	HubBuffer int `env:"HUB_BUFFER" envDefault:"64"`
}

// Load reads an optional .env file, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SeasonOracle == "" {
		cfg.SeasonOracle = engine.SeasonOracle
	}
	if cfg.HubBuffer <= 0 {
		return Config{}, fmt.Errorf("HUB_BUFFER must be positive, got %d", cfg.HubBuffer)
	}
	return cfg, nil
}
