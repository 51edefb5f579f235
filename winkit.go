// Package winkit creates native windows and delivers their input through one
// portable event model.
//
// A program opens a Context, which selects the highest priority driver that
// works on the current machine, enumerates Devices and PixelFormats, builds
// Windows and polls events:
//
//	ctx, err := winkit.Open(winkit.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	w, err := ctx.NewWindowBuilder(nil).Title("demo").Size(800, 600).Build()
//	...
//	for {
//		e, ok, err := ctx.WaitEvent(-1)
//		...
//	}
//
// Drivers are registered by importing them, usually through
// github.com/1broseidon/winkit/driver/all. A Context and everything obtained
// from it must be used from a single goroutine.
package winkit

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/1broseidon/winkit/driver"
)

// EnvDriver names the environment variable that forces a driver.
const EnvDriver = "WINKIT_DRIVER"

// Options controls how a context is opened.
type Options struct {
	// Driver forces a single driver by name. When empty, WINKIT_DRIVER is
	// consulted, then every registered driver is tried.
	Driver string
	// Order lists drivers to try before the others.
	Order []string
	// Disabled lists drivers that must never be opened.
	Disabled []string

	Display    string
	Xauthority string

	// Registry defaults to driver.Default.
	Registry *driver.Registry
	// Logger defaults to the package logger set with SetLogger.
	Logger logr.Logger
}

func (o Options) logger() logr.Logger {
	if o.Logger.GetSink() == nil {
		return Logger()
	}
	return o.Logger
}

func (o Options) registry() *driver.Registry {
	if o.Registry == nil {
		return driver.Default
	}
	return o.Registry
}

func (o Options) driverConfig() driver.Config {
	return driver.Config{
		Display:    o.Display,
		Xauthority: o.Xauthority,
		Logger:     o.logger(),
	}
}

// Open opens a context on the best available driver.
func Open(opts Options) (*Context, error) {
	name := opts.Driver
	if name == "" {
		name = os.Getenv(EnvDriver)
	}
	if name != "" {
		return OpenDriver(name, opts)
	}

	log := opts.logger()
	drv, info, err := driver.Select(opts.registry().Drivers(), driver.Selection{
		Order:    opts.Order,
		Disabled: opts.Disabled,
	}, opts.driverConfig())
	if err != nil {
		return nil, err
	}
	log.V(1).Info("driver selected", "driver", info.Name, "priority", info.Priority)
	return newContext(drv, log), nil
}

// OpenDriver opens the named driver. Disabled drivers are refused.
func OpenDriver(name string, opts Options) (*Context, error) {
	info, ok := opts.registry().Lookup(name)
	if !ok {
		return nil, &driver.NoDriverError{Attempts: []driver.Attempt{{
			Driver: name,
			Err:    fmt.Errorf("not registered"),
		}}}
	}
	drv, _, err := driver.Select([]driver.Info{info}, driver.Selection{Disabled: opts.Disabled}, opts.driverConfig())
	if err != nil {
		return nil, err
	}
	return newContext(drv, opts.logger()), nil
}

// Wrap returns a context around an already opened driver context. It lets
// programs use drivers that are not registered, and tests drive a context
// they keep a handle to.
func Wrap(drv driver.Context, opts Options) *Context {
	return newContext(drv, opts.logger())
}
