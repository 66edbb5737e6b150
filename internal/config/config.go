package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vaultpass/passgen/internal/crypto"
)

var (
	ErrJWTSecretRequired    = errors.New("JWT_SECRET must be set in production environment")
	ErrInvalidDefaultLength = fmt.Errorf("DEFAULT_LENGTH must be between 0 and %d", crypto.MaxLength)
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	DefaultLength  int           `env:"DEFAULT_LENGTH" envDefault:"16"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the configuration from environment variables. Callers load
// any .env file beforehand.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	if c.DefaultLength < 0 || c.DefaultLength > crypto.MaxLength {
		return ErrInvalidDefaultLength
	}
	if c.Env == "production" && c.JWTSecret == "" {
		return ErrJWTSecretRequired
	}
	return nil
}

// AuthEnabled reports whether the generate API requires a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
