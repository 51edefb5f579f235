package winkit_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/driver/headless"
)

func failing(name string, priority int) driver.Info {
	return driver.Info{
		Name:     name,
		Priority: priority,
		Open: func(driver.Config) (driver.Context, error) {
			return nil, errors.New("unavailable")
		},
	}
}

func TestOpenFallsBackToHeadless(t *testing.T) {
	t.Setenv(winkit.EnvDriver, "")
	reg := driver.NewRegistry()
	reg.Register(failing("x11", 20))
	reg.Register(headless.Info())

	ctx, err := winkit.Open(winkit.Options{Registry: reg})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ctx.Close()
	if ctx.Driver() != headless.Name {
		t.Fatalf("Driver() = %q, want %q", ctx.Driver(), headless.Name)
	}
}

func TestOpenAllDisabled(t *testing.T) {
	t.Setenv(winkit.EnvDriver, "")
	reg := driver.NewRegistry()
	reg.Register(failing("win32", 10))
	reg.Register(failing("x11", 20))
	reg.Register(headless.Info())

	ctx, err := winkit.Open(winkit.Options{
		Registry: reg,
		Disabled: []string{"win32", "x11", headless.Name},
	})
	if ctx != nil {
		t.Fatalf("Open returned a context alongside error %v", err)
	}
	if !errors.Is(err, winkit.ErrNoDriverAvailable) {
		t.Fatalf("Open = %v, want ErrNoDriverAvailable", err)
	}
	var nde *driver.NoDriverError
	if !errors.As(err, &nde) {
		t.Fatalf("Open error is %T, want *driver.NoDriverError", err)
	}
	if diff := cmp.Diff([]string{"win32", "x11", headless.Name}, nde.Drivers()); diff != "" {
		t.Fatalf("attempted drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenDriverByEnvironment(t *testing.T) {
	reg := driver.NewRegistry()
	reg.Register(failing("x11", 20))
	reg.Register(headless.Info())

	t.Setenv(winkit.EnvDriver, headless.Name)
	ctx, err := winkit.Open(winkit.Options{Registry: reg})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx.Close()

	t.Setenv(winkit.EnvDriver, "x11")
	if _, err := winkit.Open(winkit.Options{Registry: reg}); !errors.Is(err, winkit.ErrNoDriverAvailable) {
		t.Fatalf("forced failing driver = %v, want ErrNoDriverAvailable", err)
	}
}

func TestOpenDriverUnknown(t *testing.T) {
	_, err := winkit.OpenDriver("nope", winkit.Options{Registry: driver.NewRegistry()})
	if !errors.Is(err, winkit.ErrNoDriverAvailable) {
		t.Fatalf("OpenDriver(nope) = %v, want ErrNoDriverAvailable", err)
	}
}
