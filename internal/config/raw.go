package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
//
// TOML files accept the same two shapes.
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

func (l *IncludeList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = []string{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, s)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawDriversConfig struct {
	Order    []string `yaml:"order" toml:"order"`
	Disabled []string `yaml:"disabled" toml:"disabled"`
}

type RawWindowConfig struct {
	Title     *string `yaml:"title" toml:"title"`
	Width     *int    `yaml:"width" toml:"width"`
	Height    *int    `yaml:"height" toml:"height"`
	Resizable *bool   `yaml:"resizable" toml:"resizable"`
	Decorated *bool   `yaml:"decorated" toml:"decorated"`
}

type RawLoggingConfig struct {
	Level  *string `yaml:"level" toml:"level"`
	Format *string `yaml:"format" toml:"format"`
}

// RawConfig mirrors one configuration file. Nil fields were not set.
type RawConfig struct {
	Include    IncludeList       `yaml:"include" toml:"include"`
	Drivers    *RawDriversConfig `yaml:"drivers" toml:"drivers"`
	Display    *string           `yaml:"display" toml:"display"`
	XAuthority *string           `yaml:"xauthority" toml:"xauthority"`
	Window     *RawWindowConfig  `yaml:"window" toml:"window"`
	Logging    *RawLoggingConfig `yaml:"logging" toml:"logging"`
}

// merge overlays other onto r. Lists replace rather than append.
func (r RawConfig) merge(other RawConfig) RawConfig {
	out := r
	if other.Drivers != nil {
		d := RawDriversConfig{}
		if out.Drivers != nil {
			d = *out.Drivers
		}
		if other.Drivers.Order != nil {
			d.Order = append([]string(nil), other.Drivers.Order...)
		}
		if other.Drivers.Disabled != nil {
			d.Disabled = append([]string(nil), other.Drivers.Disabled...)
		}
		out.Drivers = &d
	}
	if other.Display != nil {
		out.Display = other.Display
	}
	if other.XAuthority != nil {
		out.XAuthority = other.XAuthority
	}
	if other.Window != nil {
		w := RawWindowConfig{}
		if out.Window != nil {
			w = *out.Window
		}
		if other.Window.Title != nil {
			w.Title = other.Window.Title
		}
		if other.Window.Width != nil {
			w.Width = other.Window.Width
		}
		if other.Window.Height != nil {
			w.Height = other.Window.Height
		}
		if other.Window.Resizable != nil {
			w.Resizable = other.Window.Resizable
		}
		if other.Window.Decorated != nil {
			w.Decorated = other.Window.Decorated
		}
		out.Window = &w
	}
	if other.Logging != nil {
		l := RawLoggingConfig{}
		if out.Logging != nil {
			l = *out.Logging
		}
		if other.Logging.Level != nil {
			l.Level = other.Logging.Level
		}
		if other.Logging.Format != nil {
			l.Format = other.Logging.Format
		}
		out.Logging = &l
	}
	return out
}
