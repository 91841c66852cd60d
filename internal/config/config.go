package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	// EnvConfigFile names an optional YAML file overriding the defaults
	EnvConfigFile = "PRIMETABLE_CONFIG"

	// EnvLogLevel overrides the log level (debug, info, warn, error)
	EnvLogLevel = "PRIMETABLE_LOG_LEVEL"
)

// Config controls rendering and diagnostics
type Config struct {
	// Lower is the exclusive lower bound of rendered values
	Lower int `yaml:"lower"`

	// Upper is the exclusive upper bound of rendered values
	Upper int `yaml:"upper"`

	// Columns is the number of values per table row or literal line
	Columns int `yaml:"columns"`

	// LogLevel for diagnostics written to stderr
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Lower:    2,
		Upper:    2048,
		Columns:  10,
		LogLevel: "warn",
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}

	if c.Lower >= c.Upper {
		return fmt.Errorf("lower bound %d must be below upper bound %d", c.Lower, c.Upper)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", c.LogLevel)
	}

	return nil
}

// Load builds the configuration from defaults, the optional config file and the environment
func Load(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path := getenv(EnvConfigFile); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	// An empty file keeps the defaults.
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %q: %w", path, err)
	}

	return nil
}
