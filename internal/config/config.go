package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vytor/chronoquest/internal/logger"
)

type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	DBPath          string        `env:"DB_PATH" envDefault:"file:chronoquest.db"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"INFO"`
	LogColors       bool          `env:"LOG_COLORS" envDefault:"true"`
	PuzzlesPath     string        `env:"PUZZLES_PATH"`
	Timezone        string        `env:"TIMEZONE" envDefault:"Local"`
	ShareResetDelay time.Duration `env:"SHARE_RESET_DELAY" envDefault:"2s"`
	DevTools        bool          `env:"DEV_TOOLS" envDefault:"false"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults for anything unset.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.ShareResetDelay <= 0 {
		errs = append(errs, fmt.Errorf("SHARE_RESET_DELAY must be positive, got %s", c.ShareResetDelay))
	}
	return errors.Join(errs...)
}

// Location resolves the zone used to decide which calendar day it is.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
