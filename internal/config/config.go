package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	BackendFixture = "fixture"
	BackendRemote  = "remote"

	SourceEmbedded = "embedded"
	SourceMySQL    = "mysql"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the directory server and CLI.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"APP_PORT" envDefault:"8080"`

	// Catalog backend strategy
	Backend    string `env:"CATALOG_BACKEND" envDefault:"fixture"`
	BackendURL string `env:"BACKEND_URL"`

	// Fixture backend
	SimulateLatency bool   `env:"FIXTURE_SIMULATE_LATENCY" envDefault:"true"`
	FixtureSource   string `env:"FIXTURE_SOURCE" envDefault:"embedded"`
	FixtureDSN      string `env:"FIXTURE_DSN"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@sector17.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// Admin tokens
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	// Login throttling, per client IP
	LoginRateRPS   float64 `env:"LOGIN_RATE_RPS" envDefault:"5"`
	LoginRateBurst int     `env:"LOGIN_RATE_BURST" envDefault:"10"`
}

// Load reads an optional .env file, then configuration from environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	switch c.Backend {
	case BackendFixture:
	case BackendRemote:
		if c.BackendURL == "" {
			return errors.New("BACKEND_URL is required when CATALOG_BACKEND=remote")
		}
	default:
		return fmt.Errorf("invalid CATALOG_BACKEND %q: want fixture or remote", c.Backend)
	}

	switch c.FixtureSource {
	case SourceEmbedded:
	case SourceMySQL, SourcePostgres:
		if c.FixtureDSN == "" {
			return fmt.Errorf("FIXTURE_DSN is required when FIXTURE_SOURCE=%s", c.FixtureSource)
		}
	default:
		return fmt.Errorf("invalid FIXTURE_SOURCE %q: want embedded, mysql or postgres", c.FixtureSource)
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must not be empty")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWTExpiration)
	}
	if c.IsProduction() && c.JWTSecret == "change-me-in-production" {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.LoginRateRPS <= 0 || c.LoginRateBurst < 1 {
		return errors.New("LOGIN_RATE_RPS must be positive and LOGIN_RATE_BURST at least 1")
	}
	return nil
}
