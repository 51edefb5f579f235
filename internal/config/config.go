package config

import (
	"fmt"
	"strings"
)

// DriversConfig controls driver selection.
type DriversConfig struct {
	// Order lists drivers to try first, in order. Drivers not listed are
	// tried afterwards by priority.
	Order    []string `yaml:"order" toml:"order"`
	Disabled []string `yaml:"disabled" toml:"disabled"`
}

// WindowConfig holds defaults for windows created by the command line tools.
type WindowConfig struct {
	Title     string `yaml:"title" toml:"title"`
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Resizable bool   `yaml:"resizable" toml:"resizable"`
	Decorated bool   `yaml:"decorated" toml:"decorated"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Config is the effective configuration after defaults and all files are
// merged.
type Config struct {
	Drivers    DriversConfig `yaml:"drivers" toml:"drivers"`
	Display    string        `yaml:"display" toml:"display"`
	XAuthority string        `yaml:"xauthority" toml:"xauthority"`
	Window     WindowConfig  `yaml:"window" toml:"window"`
	Logging    LoggingConfig `yaml:"logging" toml:"logging"`
}

// Logging levels and formats accepted by Validate.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"console", "json", "text"}
)

// MaxWindowDimension bounds window.width and window.height.
const MaxWindowDimension = 1 << 15

func DefaultConfig() *Config {
	return &Config{
		Drivers: DriversConfig{
			Order:    []string{},
			Disabled: []string{},
		},
		Window: WindowConfig{
			Title:     "winkit",
			Width:     640,
			Height:    480,
			Resizable: true,
			Decorated: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks value ranges. Driver names are not checked against the
// registry here; selection reports unknown names.
func (c *Config) Validate() error {
	if err := validateNames("drivers.order", c.Drivers.Order); err != nil {
		return err
	}
	if err := validateNames("drivers.disabled", c.Drivers.Disabled); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Width > MaxWindowDimension {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be between 1 and %d", MaxWindowDimension)}
	}
	if c.Window.Height <= 0 || c.Window.Height > MaxWindowDimension {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be between 1 and %d", MaxWindowDimension)}
	}
	if !contains(LogLevels, c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: %s", strings.Join(LogLevels, ", "))}
	}
	if !contains(LogFormats, c.Logging.Format) {
		return &ValidationError{Path: "logging.format", Err: fmt.Errorf("format must be one of: %s", strings.Join(LogFormats, ", "))}
	}
	return nil
}

func validateNames(path string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: path, Err: fmt.Errorf("driver names must not be empty")}
		}
		if seen[name] {
			return &ValidationError{Path: path, Err: fmt.Errorf("driver %q listed twice", name)}
		}
		seen[name] = true
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
