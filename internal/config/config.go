package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/andyle182810/easybill/easybill"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// easybill API
	APIKey     string        `env:"EASYBILL_API_KEY"`
	BaseURL    string        `env:"EASYBILL_BASE_URL"`
	Locale     string        `env:"EASYBILL_LOCALE"      envDefault:"de"`
	Timeout    time.Duration `env:"EASYBILL_TIMEOUT"     envDefault:"30s"`
	RetryDelay time.Duration `env:"EASYBILL_RETRY_DELAY" envDefault:"60s"`
	MaxRetries int           `env:"EASYBILL_MAX_RETRIES" envDefault:"9"`

	// Client side throttling, requests per second. Zero disables it.
	RateLimit float64 `env:"EASYBILL_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"EASYBILL_RATE_BURST" envDefault:"1"`

	// Batching
	BatchSize     int           `env:"EASYBILL_BATCH_SIZE"     envDefault:"50"`
	BatchInterval time.Duration `env:"EASYBILL_BATCH_INTERVAL" envDefault:"1s"`
}

func New() (*Config, error) {
	return parse(env.Options{}) //nolint:exhaustruct
}

// FromMap parses the configuration from environ instead of the process
// environment.
func FromMap(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ}) //nolint:exhaustruct
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = easybill.DefaultBaseURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.MaxRetries < 0:
		return fmt.Errorf("%w: EASYBILL_MAX_RETRIES must not be negative", ErrInvalidConfig)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: EASYBILL_RETRY_DELAY must not be negative", ErrInvalidConfig)
	case c.RateLimit < 0:
		return fmt.Errorf("%w: EASYBILL_RATE_LIMIT must not be negative", ErrInvalidConfig)
	case c.BatchInterval < 0:
		return fmt.Errorf("%w: EASYBILL_BATCH_INTERVAL must not be negative", ErrInvalidConfig)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: EASYBILL_LOCALE %q: %w", ErrInvalidConfig, c.Locale, err)
	}

	return nil
}

// Language is the parsed EASYBILL_LOCALE.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.German
	}

	return tag
}
