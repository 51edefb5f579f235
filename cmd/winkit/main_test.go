package main

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/internal/config"
)

func TestWindowStyle(t *testing.T) {
	tests := []struct {
		name string
		wc   config.WindowConfig
		want driver.Style
	}{
		{"defaults", config.DefaultConfig().Window, driver.StyleDefault},
		{"fixed", config.WindowConfig{Decorated: true}, driver.StyleDecorated | driver.StyleClosable},
		{"bare", config.WindowConfig{}, driver.StyleClosable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowStyle(tt.wc); got != tt.want {
				t.Errorf("windowStyle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttemptReason(t *testing.T) {
	single := &driver.NoDriverError{Attempts: []driver.Attempt{{Driver: "x11", Err: errors.New("cannot connect")}}}
	if got := attemptReason(single); got != "cannot connect" {
		t.Errorf("single attempt = %q", got)
	}
	other := errors.New("boom")
	if got := attemptReason(other); got != "boom" {
		t.Errorf("plain error = %q", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Drivers.Order = []string{"glfw"}
	cfg.Drivers.Disabled = []string{"headless"}
	cfg.Display = ":1"

	got := optionsFromConfig(cfg, logr.Discard())
	want := winkit.Options{
		Order:    []string{"glfw"},
		Disabled: []string{"headless"},
		Display:  ":1",
		Logger:   logr.Discard(),
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(winkit.Options{}, "Logger")); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainStyles(t *testing.T) {
	st := styles{}
	if got := st.pad(st.name, "x11", 6); got != "x11   " {
		t.Errorf("pad = %q", got)
	}
	if got := st.OK("ok"); got != "ok" {
		t.Errorf("OK = %q", got)
	}
}
