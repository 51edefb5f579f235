package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), res.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if len(res.Files) != 0 {
		t.Errorf("Files = %v, want none", res.Files)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "# empty\n")
	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), res.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromPath_YAML(t *testing.T) {
	data := strings.Join([]string{
		"drivers:",
		"  order: [glfw, x11]",
		"  disabled: [headless]",
		"display: \":1\"",
		"xauthority: /tmp/test-xauth",
		"window:",
		"  title: demo",
		"  width: 800",
		"  resizable: false",
		"logging:",
		"  level: debug",
		"  format: json",
		"",
	}, "\n")
	path := writeFile(t, t.TempDir(), "config.yaml", data)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultConfig()
	want.Drivers = DriversConfig{Order: []string{"glfw", "x11"}, Disabled: []string{"headless"}}
	want.Display = ":1"
	want.XAuthority = "/tmp/test-xauth"
	want.Window.Title = "demo"
	want.Window.Width = 800
	want.Window.Resizable = false
	want.Logging = LoggingConfig{Level: "debug", Format: "json"}
	if diff := cmp.Diff(want, res.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	val, src, err := Explain(res, "window.width")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if val != 800 {
		t.Errorf("explain value = %v, want 800", val)
	}
	if src.Kind != SourceFile || src.Line != 8 {
		t.Errorf("explain source = %+v, want file line 8", src)
	}

	_, src, err = Explain(res, "window.height")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceDefault {
		t.Errorf("window.height source = %+v, want default", src)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	data := strings.Join([]string{
		"display = \":2\"",
		"",
		"[drivers]",
		"order = [\"x11\"]",
		"",
		"[window]",
		"height = 300",
		"decorated = false",
		"",
	}, "\n")
	path := writeFile(t, t.TempDir(), "config.toml", data)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":2" || cfg.Window.Height != 300 || cfg.Window.Decorated {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"x11"}, cfg.Drivers.Order); diff != "" {
		t.Errorf("drivers.order mismatch (-want +got):\n%s", diff)
	}
	if _, src, _ := Explain(res, "window.height"); src.Kind != SourceFile {
		t.Errorf("window.height source = %+v, want file", src)
	}
}

func TestLoadFromPath_UnknownFieldRejected(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"yaml", "config.yaml", "window:\n  colour: red\n"},
		{"toml", "config.toml", "[window]\ncolour = \"red\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.data)
			if _, err := LoadFromPath(path); err == nil {
				t.Fatal("expected unknown field to be rejected")
			}
		})
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "window:\n  width: 0\n")
	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Path != "window.width" {
		t.Errorf("Path = %q, want window.width", verr.Path)
	}
	if verr.Source.Line != 2 {
		t.Errorf("Source.Line = %d, want 2", verr.Source.Line)
	}
	if !strings.Contains(err.Error(), "config.yaml:2:10") {
		t.Errorf("error %q lacks file position", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"empty driver name", func(c *Config) { c.Drivers.Order = []string{"x11", " "} }, "drivers.order"},
		{"duplicate driver", func(c *Config) { c.Drivers.Disabled = []string{"glfw", "glfw"} }, "drivers.disabled"},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "window.height"},
		{"huge width", func(c *Config) { c.Window.Width = MaxWindowDimension + 1 }, "window.width"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestLoadFromPath_IncludesMergeInOrder(t *testing.T) {
	dir := t.TempDir()
	incDir := filepath.Join(dir, "conf.d")
	if err := os.Mkdir(incDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, incDir, "10-base.yaml", "window:\n  title: base\n  width: 100\n")
	writeFile(t, incDir, "20-more.toml", "[window]\nwidth = 200\n")
	writeFile(t, incDir, "notes.txt", "ignored")
	path := writeFile(t, dir, "config.yaml", "include: conf.d\nwindow:\n  height: 50\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := res.Config.Window
	if w.Title != "base" || w.Width != 200 || w.Height != 50 {
		t.Errorf("window = %+v, want title base, width 200, height 50", w)
	}
	if len(res.Files) != 3 {
		t.Errorf("Files = %v, want 3 files", res.Files)
	}
	if got := filepath.Base(res.Files[len(res.Files)-1]); got != "config.yaml" {
		t.Errorf("last file = %s, want config.yaml", got)
	}
}

func TestLoadFromPath_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "include: b.yaml\n")
	writeFile(t, dir, "b.yaml", "include: a.yaml\n")
	_, err := LoadFromPath(filepath.Join(dir, "a.yaml"))
	if err == nil || !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected include cycle error, got %v", err)
	}
}

func TestExplainAll(t *testing.T) {
	res := &LoadResult{Config: DefaultConfig(), Sources: map[string]Source{}}
	entries, err := ExplainAll(res)
	if err != nil {
		t.Fatalf("ExplainAll: %v", err)
	}
	if len(entries) != len(Paths) {
		t.Fatalf("got %d entries, want %d", len(entries), len(Paths))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Path > entries[i].Path {
			t.Fatalf("entries not sorted: %s before %s", entries[i-1].Path, entries[i].Path)
		}
	}
	if _, _, err := Explain(res, "window.colour"); err == nil {
		t.Error("expected unknown path error")
	}
}

func TestEncode(t *testing.T) {
	cfg := DefaultConfig()
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, cfg, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			path := writeFile(t, t.TempDir(), "config."+format, buf.String())
			res, err := LoadFromPath(path)
			if err != nil {
				t.Fatalf("reload: %v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(cfg, res.Config, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("reloaded config mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if err := Encode(&bytes.Buffer{}, cfg, "xml"); err == nil {
		t.Error("expected unknown format error")
	}
}
