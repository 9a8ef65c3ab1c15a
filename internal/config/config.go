// Package config loads library defaults from the environment.
package config

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all tunable library defaults.
type Config struct {
	// DirMode is the octal permission string for created directories.
	DirMode string `envconfig:"FILETS_DIR_MODE" default:"0755"`
	// FileMode is the octal permission string for created files.
	FileMode string `envconfig:"FILETS_FILE_MODE" default:"0644"`
	// ProbePrefix names the temporary marker used by writability checks.
	ProbePrefix string `envconfig:"FILETS_PROBE_PREFIX" default:".filets-probe-"`

	Logging LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FILETS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"FILETS_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		DirMode:     "0755",
		FileMode:    "0644",
		ProbePrefix: ".filets-probe-",
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// DirPerm parses DirMode, falling back to 0755 on a malformed value.
func (c *Config) DirPerm() fs.FileMode {
	return parseMode(c.DirMode, 0o755)
}

// FilePerm parses FileMode, falling back to 0644 on a malformed value.
func (c *Config) FilePerm() fs.FileMode {
	return parseMode(c.FileMode, 0o644)
}

func parseMode(s string, fallback fs.FileMode) fs.FileMode {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return fallback
	}
	return fs.FileMode(v)
}
