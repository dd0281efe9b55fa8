// Package config loads devhub settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Name      string          `toml:"name"`
	Tick      string          `toml:"tick"` // clock refresh interval, e.g. "1s"
	DataFile  string          `toml:"data_file"`
	LogFile   string          `toml:"log_file"`
	LogLevel  string          `toml:"log_level"`
	Habit     HabitSettings   `toml:"habit"`
	Lists     ListSettings    `toml:"lists"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// HabitSettings configures the habit tracker.
type HabitSettings struct {
	Goal int `toml:"goal"`
}

// ListSettings configures the sample lists.
type ListSettings struct {
	Fuzzy bool `toml:"fuzzy"` // fuzzy instead of substring search for skills
}

// TelemetryConfig configures trace export. An empty endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Name:     "Developer",
		Tick:     "1s",
		LogFile:  "devhub.log",
		LogLevel: "info",
		Habit:    HabitSettings{Goal: 100},
		Telemetry: TelemetryConfig{
			ServiceName: "devhub",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "devhub", "config.toml")
}

// Load reads the config at path on top of Default. When path is empty the
// DefaultPath is tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets the standard OpenTelemetry variables override the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Telemetry.ServiceName = v
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("config: name must not be empty")
	}
	if _, err := c.TickInterval(); err != nil {
		return err
	}
	if c.Habit.Goal < 1 {
		return fmt.Errorf("config: habit.goal must be at least 1, got %d", c.Habit.Goal)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// TickInterval parses Tick.
func (c *Config) TickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Tick)
	if err != nil {
		return 0, fmt.Errorf("config: tick: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: tick must be positive, got %s", d)
	}
	return d, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
