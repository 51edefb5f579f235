// Package headless implements an in-memory driver. It has no native window
// system behind it: windows are plain records and events come from the
// driver's own bookkeeping or from Inject.
//
// Importing the package registers it with the lowest priority, making it the
// fallback when no platform driver can open. Tests use New directly.
package headless

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/go-logr/logr"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

const (
	Name     = "headless"
	Priority = 1000
)

// ErrNoEventSource is returned by WaitEvent with a negative timeout on an
// empty queue; nothing could ever wake the caller.
var ErrNoEventSource = errors.New("no event source")

func init() {
	driver.Register(Info())
}

// Info returns the registration record for the headless driver.
func Info() driver.Info {
	return driver.Info{
		Name:     Name,
		Priority: Priority,
		Open: func(cfg driver.Config) (driver.Context, error) {
			return New(Options{Logger: cfg.Logger}), nil
		},
	}
}

// DeviceSpec describes one simulated device.
type DeviceSpec struct {
	Name    string
	Bounds  image.Rectangle
	Formats []driver.Layout
}

// DefaultDevice is used when Options.Devices is empty.
var DefaultDevice = DeviceSpec{
	Name:   "headless-0",
	Bounds: image.Rect(0, 0, 1920, 1080),
	Formats: []driver.Layout{
		withDoubleBuffer(driver.LayoutRGBA8888),
		driver.LayoutBGRA8888,
		driver.LayoutBGRX8888,
	},
}

func withDoubleBuffer(l driver.Layout) driver.Layout {
	l.DoubleBuffered = true
	return l
}

// Options configures a headless context.
type Options struct {
	Devices []DeviceSpec
	// FailCreate, when set, makes every window build fail with this cause.
	FailCreate error
	Logger     logr.Logger
}

// Stats counts native operations performed by a context.
type Stats struct {
	BuildCalls       int
	WindowsCreated   int
	WindowsDestroyed int
}

// Context is a headless driver context.
type Context struct {
	devices     []*device
	queue       *event.Queue
	windows     map[event.WindowID]*window
	failCreate  error
	failDestroy error
	stats       Stats
	closed      bool
	log         logr.Logger
}

var _ driver.Context = (*Context)(nil)

// New returns an open headless context.
func New(opts Options) *Context {
	specs := opts.Devices
	if len(specs) == 0 {
		specs = []DeviceSpec{DefaultDevice}
	}
	c := &Context{
		queue:      event.NewQueue(),
		windows:    make(map[event.WindowID]*window),
		failCreate: opts.FailCreate,
		log:        opts.Logger,
	}
	for i, spec := range specs {
		d := &device{ctx: c, index: i, name: spec.Name, bounds: spec.Bounds}
		for _, l := range spec.Formats {
			d.formats = append(d.formats, &pixelFormat{layout: l, device: i})
		}
		c.devices = append(c.devices, d)
	}
	return c
}

func (c *Context) Name() string { return Name }

// Stats returns counters for native operations performed so far.
func (c *Context) Stats() Stats { return c.stats }

// Pending returns the number of queued events not yet polled.
func (c *Context) Pending() int { return c.queue.Len() }

// SetFailDestroy makes every window destroy fail with err until it is
// called again with nil.
func (c *Context) SetFailDestroy(err error) { c.failDestroy = err }

// SetClock sets the clock used to stamp generated events.
func (c *Context) SetClock(now func() time.Time) { c.queue.SetClock(now) }

// Header returns an event header for id stamped by the context clock.
func (c *Context) Header(id event.WindowID) event.Header { return c.queue.Header(id) }

// Inject queues e as if the platform had produced it. Injecting a Destroy
// removes the window, as a window manager killing it would.
func (c *Context) Inject(e event.Event) error {
	if c.closed {
		return driver.ErrContextClosed
	}
	// Native changes reach the simulated window before the event is queued,
	// as they would on a real window system.
	switch e := e.(type) {
	case event.Destroy:
		if w := c.windows[e.Window]; w != nil {
			c.forget(w)
		}
	case event.Visibility:
		if w := c.windows[e.Window]; w != nil {
			w.visible = e.Visible
		}
	}
	c.queue.Push(e)
	return nil
}

func (c *Context) Devices() ([]driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	out := make([]driver.Device, len(c.devices))
	for i, d := range c.devices {
		out[i] = d
	}
	return out, nil
}

func (c *Context) DefaultDevice() (driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	if len(c.devices) == 0 {
		return nil, driver.Errorf(Name, "default device", "no devices")
	}
	return c.devices[0], nil
}

func (c *Context) PixelFormats(d driver.Device) ([]driver.PixelFormat, error) {
	hd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	out := make([]driver.PixelFormat, len(hd.formats))
	for i, pf := range hd.formats {
		out[i] = pf
	}
	return out, nil
}

func (c *Context) NewWindowBuilder(d driver.Device) (driver.WindowBuilder, error) {
	hd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	return &builder{
		ctx:     c,
		device:  hd,
		size:    driver.DefaultSize,
		style:   driver.StyleDefault,
		visible: true,
	}, nil
}

func (c *Context) own(d driver.Device) (*device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	hd, ok := d.(*device)
	if !ok || hd.ctx != c {
		return nil, &driver.ConfigError{Field: "device", Reason: "not a device of this context"}
	}
	return hd, nil
}

func (c *Context) PollEvent() (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

// WaitEvent returns a queued event immediately. With an empty queue it sleeps
// for timeout, since no other goroutine can add events to a headless context.
func (c *Context) WaitEvent(timeout time.Duration) (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	if e, ok := c.queue.Pop(); ok {
		return e, true, nil
	}
	if timeout < 0 {
		return nil, false, &driver.Error{Driver: Name, Op: "wait event", Err: ErrNoEventSource}
	}
	time.Sleep(timeout)
	return nil, false, nil
}

func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	for _, w := range c.windows {
		c.forget(w)
	}
	c.closed = true
	c.log.V(1).Info("headless context closed", "stats", fmt.Sprintf("%+v", c.stats))
	return nil
}

func (c *Context) forget(w *window) {
	if w.destroyed {
		return
	}
	w.destroyed = true
	delete(c.windows, w.id)
	c.stats.WindowsDestroyed++
}

type device struct {
	ctx     *Context
	index   int
	name    string
	bounds  image.Rectangle
	formats []*pixelFormat
}

func (d *device) Name() string            { return d.name }
func (d *device) Index() int              { return d.index }
func (d *device) Bounds() image.Rectangle { return d.bounds }

func (d *device) DefaultPixelFormat() (driver.PixelFormat, error) {
	if len(d.formats) == 0 {
		return nil, driver.Errorf(Name, "default pixel format", "device %q has no formats", d.name)
	}
	return d.formats[0], nil
}

func (d *device) SupportsPixelFormat(pf driver.PixelFormat) bool {
	for _, f := range d.formats {
		if f.Equal(pf) {
			return true
		}
	}
	return false
}

type pixelFormat struct {
	layout driver.Layout
	device int
}

func (pf *pixelFormat) Layout() driver.Layout { return pf.layout }

func (pf *pixelFormat) Equal(other driver.PixelFormat) bool {
	o, ok := other.(*pixelFormat)
	return ok && o.device == pf.device && o.layout == pf.layout
}
