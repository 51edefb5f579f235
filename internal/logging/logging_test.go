package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, sync, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithName("x11").Info("connected", "screens", 2)
	log.V(1).Info("hidden")
	if err := sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "connected" || entry["logger"] != "x11" || entry["screens"] != float64(2) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level     string
		formats   []string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", []string{"console", "json", "text"}, true, true},
		{"info", []string{"console", "json", "text"}, false, true},
		// The text logger has no severity threshold.
		{"error", []string{"console", "json"}, false, false},
	}
	for _, tt := range tests {
		for _, format := range tt.formats {
			t.Run(tt.level+"/"+format, func(t *testing.T) {
				var buf bytes.Buffer
				log, sync, err := New(Options{Level: tt.level, Format: format, Output: &buf})
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				log.V(1).Info("debug message")
				log.Info("info message")
				log.Error(errors.New("boom"), "error message")
				sync()

				out := buf.String()
				if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
					t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
				}
				if got := strings.Contains(out, "info message"); got != tt.wantInfo {
					t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
				}
				if !strings.Contains(out, "error message") {
					t.Error("error not logged")
				}
			})
		}
	}
}

func TestNewRejects(t *testing.T) {
	if _, _, err := New(Options{Level: "loud", Format: "json"}); err == nil {
		t.Error("expected unknown level error")
	}
	if _, _, err := New(Options{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected unknown format error")
	}
}
