package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source records where a value came from. Line and Column are zero for TOML
// files.
type Source struct {
	Kind   SourceKind
	File   string
	Line   int
	Column int
}

func (s Source) String() string {
	switch {
	case s.Kind != SourceFile:
		return string(s.Kind)
	case s.Line > 0:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return s.File
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // dotted path -> last writer
	Files   []string          // all loaded files, in load order
}

// DefaultConfigPath returns config.yaml under the user configuration
// directory ($XDG_CONFIG_HOME/winkit on Unix).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "winkit", "config.yaml"), nil
}

// Load reads the configuration from the default location. A missing file
// yields the defaults.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads path and its includes, applies them onto the defaults
// and validates the result. A missing file yields the defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	l := &loader{
		visited: map[string]bool{},
		sources: map[string]Source{},
	}

	var raw RawConfig
	if _, err := os.Stat(path); err == nil {
		if raw, err = l.load(path); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := BuildEffectiveConfig(raw)
	if err := cfg.Validate(); err != nil {
		return nil, l.withSource(err)
	}
	return &LoadResult{Config: cfg, Sources: l.sources, Files: l.files}, nil
}

// loader walks a configuration file and its includes depth first. Included
// files are applied before the file that includes them, so the includer
// wins.
type loader struct {
	visited map[string]bool
	chain   []string
	sources map[string]Source
	files   []string
}

func (l *loader) load(path string) (RawConfig, error) {
	file, err := resolveFile(path)
	if err != nil {
		return RawConfig{}, err
	}
	if i := slices.Index(l.chain, file); i >= 0 {
		cycle := append(slices.Clone(l.chain[i:]), file)
		return RawConfig{}, fmt.Errorf("include cycle detected: %s", strings.Join(cycle, " -> "))
	}
	if l.visited[file] {
		return RawConfig{}, nil
	}
	l.visited[file] = true

	data, err := os.ReadFile(file)
	if err != nil {
		return RawConfig{}, fmt.Errorf("%s: failed to read: %w", file, err)
	}
	own, ownSources, err := decodeFile(file, data)
	if err != nil {
		return RawConfig{}, err
	}

	l.chain = append(l.chain, file)
	defer func() { l.chain = l.chain[:len(l.chain)-1] }()

	var merged RawConfig
	for _, inc := range own.Include {
		targets, err := includeTargets(file, inc)
		if err != nil {
			where := file
			if src, ok := ownSources["include"]; ok {
				where = src.String()
			}
			return RawConfig{}, fmt.Errorf("%s: include %q: %w", where, inc, err)
		}
		for _, target := range targets {
			sub, err := l.load(target)
			if err != nil {
				return RawConfig{}, err
			}
			merged = merged.merge(sub)
		}
	}

	maps.Copy(l.sources, ownSources)
	l.files = append(l.files, file)
	return merged.merge(own), nil
}

// withSource points a validation error at the file position of the
// offending value.
func (l *loader) withSource(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Path != "" {
		if src, ok := l.sources[verr.Path]; ok {
			verr.Source = src
		}
	}
	return err
}

// resolveFile returns the absolute path of file with symlinks resolved
// where possible.
func resolveFile(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", file, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}

func decodeFile(file string, data []byte) (RawConfig, map[string]Source, error) {
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		return decodeTOML(file, data)
	}
	return decodeYAML(file, data)
}

func decodeTOML(file string, data []byte) (RawConfig, map[string]Source, error) {
	var raw RawConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return RawConfig{}, nil, fmt.Errorf("%s: failed to parse toml: %w", file, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return RawConfig{}, nil, fmt.Errorf("%s: unknown field %q", file, extra[0].String())
	}
	sources := make(map[string]Source, len(md.Keys()))
	for _, key := range md.Keys() {
		sources[key.String()] = Source{Kind: SourceFile, File: file}
	}
	return raw, sources, nil
}

func decodeYAML(file string, data []byte) (RawConfig, map[string]Source, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return RawConfig{}, nil, fmt.Errorf("%s: failed to parse yaml: %w", file, err)
	}

	var raw RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return RawConfig{}, nil, fmt.Errorf("%s: %w", file, err)
	}

	sources := make(map[string]Source)
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	walkMapping(node, "", func(path string, value *yaml.Node) {
		sources[path] = Source{Kind: SourceFile, File: file, Line: value.Line, Column: value.Column}
	})
	return raw, sources, nil
}

// walkMapping calls fn for every key of a mapping node and its nested
// mappings, with dotted paths.
func walkMapping(node *yaml.Node, prefix string, fn func(path string, value *yaml.Node)) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		path := node.Content[i].Value
		if prefix != "" {
			path = prefix + "." + path
		}
		value := node.Content[i+1]
		fn(path, value)
		walkMapping(value, path, fn)
	}
}

// includeTargets resolves an include entry relative to the including file.
// A directory expands to its .yaml, .yml and .toml files in name order.
func includeTargets(from, include string) ([]string, error) {
	if include == "" {
		return nil, fmt.Errorf("path is empty")
	}
	if include == "~" || strings.HasPrefix(include, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		include = filepath.Join(home, strings.TrimPrefix(include, "~"))
	}
	if !filepath.IsAbs(include) {
		include = filepath.Join(filepath.Dir(from), include)
	}

	info, err := os.Stat(include)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{include}, nil
	}

	entries, err := os.ReadDir(include)
	if err != nil {
		return nil, err
	}
	var targets []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".toml":
			targets = append(targets, filepath.Join(include, e.Name()))
		}
	}
	// ReadDir already sorts by name.
	return targets, nil
}
