package driver

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/winkit/event"
)

type stubContext struct{ name string }

func (c *stubContext) Name() string                               { return c.name }
func (c *stubContext) Devices() ([]Device, error)                 { return nil, nil }
func (c *stubContext) DefaultDevice() (Device, error)             { return nil, ErrUnsupported }
func (c *stubContext) PixelFormats(Device) ([]PixelFormat, error) { return nil, nil }
func (c *stubContext) NewWindowBuilder(Device) (WindowBuilder, error) {
	return nil, ErrUnsupported
}
func (c *stubContext) PollEvent() (event.Event, bool, error) { return nil, false, nil }
func (c *stubContext) WaitEvent(time.Duration) (event.Event, bool, error) {
	return nil, false, nil
}
func (c *stubContext) Close() error { return nil }

func opener(name string, err error, calls *[]string) Info {
	return Info{
		Name: name,
		Open: func(Config) (Context, error) {
			*calls = append(*calls, name)
			if err != nil {
				return nil, err
			}
			return &stubContext{name: name}, nil
		},
	}
}

func TestSelectByPriority(t *testing.T) {
	var calls []string
	errNoDisplay := errors.New("no display")

	x11 := opener("x11", errNoDisplay, &calls)
	x11.Priority = 20
	glfw := opener("glfw", nil, &calls)
	glfw.Priority = 50
	headless := opener("headless", nil, &calls)
	headless.Priority = 1000

	ctx, info, err := Select([]Info{headless, glfw, x11}, Selection{}, Config{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if info.Name != "glfw" || ctx.Name() != "glfw" {
		t.Fatalf("selected %q, want glfw", info.Name)
	}
	if diff := cmp.Diff([]string{"x11", "glfw"}, calls); diff != "" {
		t.Fatalf("open order mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectExplicitOrder(t *testing.T) {
	var calls []string
	a := opener("a", nil, &calls)
	a.Priority = 1
	b := opener("b", nil, &calls)
	b.Priority = 2

	_, info, err := Select([]Info{a, b}, Selection{Order: []string{"b", "missing"}}, Config{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if info.Name != "b" {
		t.Fatalf("selected %q, want b", info.Name)
	}
}

func TestSelectAllDisabled(t *testing.T) {
	var calls []string
	candidates := []Info{
		opener("win32", nil, &calls),
		opener("x11", nil, &calls),
		opener("headless", nil, &calls),
	}
	candidates[0].Priority, candidates[1].Priority, candidates[2].Priority = 10, 20, 1000

	_, _, err := Select(candidates, Selection{Disabled: []string{"win32", "x11", "headless"}}, Config{})
	if !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("expected ErrNoDriverAvailable, got %v", err)
	}
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected attempt errors to match ErrDisabled, got %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("disabled drivers were opened: %v", calls)
	}

	var nde *NoDriverError
	if !errors.As(err, &nde) {
		t.Fatalf("expected *NoDriverError, got %T", err)
	}
	if diff := cmp.Diff([]string{"win32", "x11", "headless"}, nde.Drivers()); diff != "" {
		t.Fatalf("attempt list mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectCollectsFailures(t *testing.T) {
	var calls []string
	errA := errors.New("boom a")
	errB := errors.New("boom b")
	_, _, err := Select([]Info{opener("a", errA, &calls), opener("b", errB, &calls)}, Selection{}, Config{})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both causes in %v", err)
	}
	want := "no driver available (a: boom a; b: boom b)"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSelectNoCandidates(t *testing.T) {
	_, _, err := Select(nil, Selection{}, Config{})
	if !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("expected ErrNoDriverAvailable, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	var calls []string
	r := NewRegistry()
	late := opener("late", nil, &calls)
	late.Priority = 5
	early := opener("early", nil, &calls)
	early.Priority = 1
	r.Register(late)
	r.Register(early)

	var names []string
	for _, info := range r.Drivers() {
		names = append(names, info.Name)
	}
	if diff := cmp.Diff([]string{"early", "late"}, names); diff != "" {
		t.Fatalf("Drivers() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := r.Lookup("early"); !ok {
		t.Fatalf("Lookup(early) failed")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate Register did not panic")
		}
	}()
	r.Register(early)
}

func TestConfigError(t *testing.T) {
	err := error(&ConfigError{Field: "size", Reason: "width must be positive"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("ConfigError does not match ErrInvalidConfiguration")
	}
	if got, want := err.Error(), "invalid configuration: size: width must be positive"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestPositionResolve(t *testing.T) {
	bounds := image.Rect(100, 0, 1100, 800)
	tests := []struct {
		name   string
		pos    Position
		want   image.Point
		wantOK bool
	}{
		{"default", Position{}, image.Point{}, false},
		{"centered", Position{Mode: PosCentered}, image.Pt(300, 100), true},
		{"point", At(-5, 7), image.Pt(-5, 7), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.pos.Resolve(bounds, image.Pt(600, 600))
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Resolve() = %v, %t; want %v, %t", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
