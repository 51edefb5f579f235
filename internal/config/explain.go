package config

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Paths lists every path accepted by Explain.
var Paths = []string{
	"drivers.order",
	"drivers.disabled",
	"display",
	"xauthority",
	"window.title",
	"window.width",
	"window.height",
	"window.resizable",
	"window.decorated",
	"logging.level",
	"logging.format",
}

// Explain returns the effective value at a dotted path and where it came
// from.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "drivers.order":
		return cfg.Drivers.Order, nil
	case "drivers.disabled":
		return cfg.Drivers.Disabled, nil
	case "display":
		return cfg.Display, nil
	case "xauthority":
		return cfg.XAuthority, nil
	case "window.title":
		return cfg.Window.Title, nil
	case "window.width":
		return cfg.Window.Width, nil
	case "window.height":
		return cfg.Window.Height, nil
	case "window.resizable":
		return cfg.Window.Resizable, nil
	case "window.decorated":
		return cfg.Window.Decorated, nil
	case "logging.level":
		return cfg.Logging.Level, nil
	case "logging.format":
		return cfg.Logging.Format, nil
	}
	return nil, fmt.Errorf("unknown path: %s", path)
}

// Entry is one line of an explained configuration.
type Entry struct {
	Path   string
	Value  any
	Source Source
}

// ExplainAll explains every known path, sorted by path.
func ExplainAll(res *LoadResult) ([]Entry, error) {
	out := make([]Entry, 0, len(Paths))
	for _, p := range Paths {
		v, src, err := Explain(res, p)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Path: p, Value: v, Source: src})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Encode writes cfg as "yaml" or "toml".
func Encode(w io.Writer, cfg *Config, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	}
	return fmt.Errorf("unknown format %q (want yaml or toml)", format)
}
