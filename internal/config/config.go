package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config aggregates all service configuration, populated from the
// environment with struct-tag defaults.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Display   DisplayConfig
}

// ServerConfig holds the HTTP listen address.
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"8090"`
}

// LoggingConfig selects log level and encoder.
type LoggingConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig bounds per-IP request rates.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// DisplayConfig selects the advertised rendering of symbolic values. ASCII
// picks the plain fallback forms (H, eps, undef) for clients on terminals
// without Unicode support; the API always returns both renderings.
type DisplayConfig struct {
	ASCII bool `envconfig:"DISPLAY_ASCII" default:"false"`
}

// Load reads configuration from the environment, applying defaults for
// unset variables.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load with a fallback to Default on malformed input.
func LoadOrDefault() *Config {
	if cfg, err := Load(); err == nil {
		return cfg
	}
	return Default()
}

// Default returns the built-in configuration, ignoring the environment.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "0.0.0.0", Port: "8090"},
		Logging:   LoggingConfig{Level: "info"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
	}
}
