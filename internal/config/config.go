// Package config loads application settings from an optional YAML file
// with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"contact-manager/internal/logger"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "contacts.yaml"

// Config holds all contact manager configuration.
type Config struct {
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Window   Window   `yaml:"window"`
}

// Database holds the SQLite location.
type Database struct {
	Path string `yaml:"path"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // debug | info | warn | error
	JSON  bool   `yaml:"json"`
}

// Window holds the initial main window size.
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Database: Database{Path: "contacts.db"},
		Log:      Log{Level: "info"},
		Window:   Window{Width: 800, Height: 500},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing or
// empty file yields the defaults; unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyEnv applies environment variable overrides.
// Supported variables: CONTACTS_DB_PATH, CONTACTS_LOG_LEVEL, LOG_LEVEL, DEBUG=1.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTACTS_DB_PATH"); v != "" {
		c.Database.Path = v
	}

	switch {
	case os.Getenv("CONTACTS_LOG_LEVEL") != "":
		c.Log.Level = os.Getenv("CONTACTS_LOG_LEVEL")
	case os.Getenv("LOG_LEVEL") != "":
		c.Log.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") == "1":
		c.Log.Level = "debug"
	}
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("config: database.path cannot be empty")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() logger.LogLevel {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return logger.InfoLevel
	}
	return level
}
