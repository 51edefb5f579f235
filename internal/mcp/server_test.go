package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/driver/headless"
)

func testServer(t *testing.T, disabled ...string) *Server {
	t.Helper()
	t.Setenv(winkit.EnvDriver, "")
	reg := driver.NewRegistry()
	reg.Register(headless.Info())
	reg.Register(driver.Info{
		Name:     "broken",
		Priority: 5,
		Open: func(driver.Config) (driver.Context, error) {
			return nil, errors.New("no display")
		},
	})
	reg.Register(driver.Info{
		Name:     "off",
		Priority: 1,
		Open: func(driver.Config) (driver.Context, error) {
			t.Fatal("disabled driver opened")
			return nil, nil
		},
	})
	return NewServer(winkit.Options{
		Registry: reg,
		Disabled: append([]string{"off"}, disabled...),
		Order:    []string{headless.Name},
		Logger:   logr.Discard(),
	})
}

func boolPtr(b bool) *bool { return &b }

func TestListDrivers(t *testing.T) {
	s := testServer(t)

	_, out, err := s.handleListDrivers(context.Background(), nil, ListDriversInput{})
	if err != nil {
		t.Fatalf("list_drivers: %v", err)
	}
	want := []DriverInfo{
		{Name: "off", Priority: 1, Disabled: true},
		{Name: "broken", Priority: 5},
		{Name: headless.Name, Priority: headless.Priority},
	}
	if diff := cmp.Diff(want, out.Drivers); diff != "" {
		t.Errorf("drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestListDriversProbe(t *testing.T) {
	s := testServer(t)

	_, out, err := s.handleListDrivers(context.Background(), nil, ListDriversInput{Probe: true})
	if err != nil {
		t.Fatalf("list_drivers: %v", err)
	}
	got := map[string]DriverInfo{}
	for _, d := range out.Drivers {
		got[d.Name] = d
	}

	if d := got["off"]; d.Available != nil {
		t.Errorf("disabled driver probed: %+v", d)
	}
	if d := got["broken"]; d.Available == nil || *d.Available || !strings.Contains(d.Error, "no display") {
		t.Errorf("broken = %+v, want unavailable with cause", d)
	}
	if d := got[headless.Name]; d.Available == nil || !*d.Available || d.Error != "" {
		t.Errorf("headless = %+v, want available", d)
	}
}

func TestListDevices(t *testing.T) {
	s := testServer(t)

	_, out, err := s.handleListDevices(context.Background(), nil, ListDevicesInput{})
	if err != nil {
		t.Fatalf("list_devices: %v", err)
	}
	want := ListDevicesOutput{
		Driver: headless.Name,
		Devices: []DeviceInfo{{
			Index:        0,
			Name:         headless.DefaultDevice.Name,
			Width:        headless.DefaultDevice.Bounds.Dx(),
			Height:       headless.DefaultDevice.Bounds.Dy(),
			Default:      true,
			PixelFormats: len(headless.DefaultDevice.Formats),
		}},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("list_devices mismatch (-want +got):\n%s", diff)
	}
}

func TestListDevicesUnknownDriver(t *testing.T) {
	s := testServer(t)

	_, _, err := s.handleListDevices(context.Background(), nil, ListDevicesInput{Driver: "nope"})
	if !errors.Is(err, driver.ErrNoDriverAvailable) {
		t.Fatalf("err = %v, want ErrNoDriverAvailable", err)
	}
}

func TestListPixelFormats(t *testing.T) {
	s := testServer(t)

	_, out, err := s.handleListPixelFormats(context.Background(), nil, ListPixelFormatsInput{})
	if err != nil {
		t.Fatalf("list_pixel_formats: %v", err)
	}
	if out.Device != headless.DefaultDevice.Name {
		t.Errorf("device = %q", out.Device)
	}
	if len(out.Formats) != 3 {
		t.Fatalf("got %d formats, want 3", len(out.Formats))
	}

	first := out.Formats[0]
	if !first.Default || !first.DoubleBuffered || !first.Alpha {
		t.Errorf("first format = %+v, want default double-buffered with alpha", first)
	}
	if first.TextureFormat != "RGBA8Unorm" {
		t.Errorf("texture format = %q, want RGBA8Unorm", first.TextureFormat)
	}
	if first.Depth != 32 || first.BitsPerPixel != 32 {
		t.Errorf("depth/bpp = %d/%d", first.Depth, first.BitsPerPixel)
	}
	for _, f := range out.Formats[1:] {
		if f.Default {
			t.Errorf("format %d marked default", f.Index)
		}
		if f.TextureFormat != "BGRA8Unorm" {
			t.Errorf("format %d texture = %q, want BGRA8Unorm", f.Index, f.TextureFormat)
		}
	}
	if out.Formats[2].Alpha {
		t.Errorf("BGRX format reports alpha")
	}
}

func TestListPixelFormatsDeviceIndex(t *testing.T) {
	s := testServer(t)

	_, out, err := s.handleListPixelFormats(context.Background(), nil, ListPixelFormatsInput{Device: intPtr(0)})
	if err != nil {
		t.Fatalf("device 0: %v", err)
	}
	if len(out.Formats) == 0 {
		t.Error("no formats for device 0")
	}

	_, _, err = s.handleListPixelFormats(context.Background(), nil, ListPixelFormatsInput{Device: intPtr(4)})
	if err == nil || !strings.Contains(err.Error(), "no device with index 4") {
		t.Errorf("err = %v, want missing device", err)
	}
}

func TestDisabledDriverRefused(t *testing.T) {
	s := testServer(t, headless.Name)

	_, _, err := s.handleListDevices(context.Background(), nil, ListDevicesInput{Driver: headless.Name})
	if !errors.Is(err, driver.ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
}

func intPtr(i int) *int { return &i }
