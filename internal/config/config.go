package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/randsample/internal/sampler"
)

// Config holds run settings that can come from the environment. Command
// line flags take precedence when set.
type Config struct {
	// HeaderLine is the zero-based line of the word list holding field names.
	HeaderLine int `env:"RANDOM_SAMPLE_HEADER_LINE" envDefault:"0"`

	// Field is the column shown in quiz prompts.
	Field string `env:"RANDOM_SAMPLE_FIELD" envDefault:"lemma"`

	// Seed fixes the random source. Zero picks a random seed.
	Seed uint64 `env:"RANDOM_SAMPLE_SEED" envDefault:"0"`

	// LegacyBounds gives the remainder only to the stratum at index 99.
	LegacyBounds bool `env:"RANDOM_SAMPLE_LEGACY_BOUNDS" envDefault:"false"`
}

// FromEnv parses Config from environment variables, applying defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c Config) Validate() error {
	if c.HeaderLine < 0 {
		return fmt.Errorf("header line must be >= 0, got %d", c.HeaderLine)
	}
	if c.Field == "" {
		return fmt.Errorf("field must not be empty")
	}
	return nil
}

// RemainderPolicy returns the sampler policy selected by LegacyBounds.
func (c Config) RemainderPolicy() sampler.RemainderPolicy {
	if c.LegacyBounds {
		return sampler.RemainderLegacy
	}
	return sampler.RemainderLast
}
