// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/progression"
)

// Config holds runtime settings. Command-line flags are applied on top by the
// cmd package.
type Config struct {
	// Seed fixes the round generator's randomness. Zero means a fresh seed.
	Seed uint64 `env:"CIPHER_SEED" envDefault:"0"`

	// LogFile is where the debug log goes. Empty disables logging.
	LogFile string `env:"CIPHER_LOG_FILE"`
	Debug   bool   `env:"CIPHER_DEBUG" envDefault:"false"`

	StartLevel   int           `env:"CIPHER_START_LEVEL" envDefault:"1"`
	SuccessDelay time.Duration `env:"CIPHER_SUCCESS_DELAY" envDefault:"2500ms"`
	LevelUpDelay time.Duration `env:"CIPHER_LEVELUP_DELAY" envDefault:"1500ms"`
	RetryDelay   time.Duration `env:"CIPHER_RETRY_DELAY" envDefault:"1500ms"`
}

// Parse loads Config from environment variables and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if l := cipher.Level(c.StartLevel); l < cipher.MinLevel || l > cipher.MaxLevel {
		return fmt.Errorf("start level %d outside %d..%d", c.StartLevel, cipher.MinLevel, cipher.MaxLevel)
	}
	for name, d := range map[string]time.Duration{
		"success delay":  c.SuccessDelay,
		"level-up delay": c.LevelUpDelay,
		"retry delay":    c.RetryDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative: %s", name, d)
		}
	}
	return nil
}

// ProgressionOptions converts the pacing settings for the controller.
func (c Config) ProgressionOptions(logger *zap.Logger) progression.Options {
	opts := progression.DefaultOptions()
	opts.StartLevel = cipher.Level(c.StartLevel)
	opts.SuccessDelay = c.SuccessDelay
	opts.LevelUpDelay = c.LevelUpDelay
	opts.RetryDelay = c.RetryDelay
	opts.Logger = logger
	return opts
}
