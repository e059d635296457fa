// Package config provides configuration loading and validation for the
// resume tailor service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	Port               int
	DatabaseURL        string
	SummarizerProvider string
	SummarizerAPIKey   string
}

// Load reads the service configuration from the environment. DATABASE_URL
// and SUMMARIZER_API_KEY are required; PORT defaults to 8080 and
// SUMMARIZER_PROVIDER to "hf".
func Load() (*Config, error) {
	cfg := &Config{
		Port:               8080,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SummarizerProvider: os.Getenv("SUMMARIZER_PROVIDER"),
		SummarizerAPIKey:   os.Getenv("SUMMARIZER_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if cfg.SummarizerProvider == "" {
		cfg.SummarizerProvider = "hf"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.SummarizerAPIKey == "" {
		return fmt.Errorf("SUMMARIZER_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	return nil
}
