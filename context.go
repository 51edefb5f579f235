package winkit

import (
	"sort"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

// Context is an open driver instance. It owns all devices, pixel formats and
// windows obtained through it; closing it invalidates them all.
type Context struct {
	drv     driver.Context
	log     logr.Logger
	nextID  event.WindowID
	windows map[event.WindowID]*Window
	closed  bool
}

func newContext(drv driver.Context, log logr.Logger) *Context {
	return &Context{
		drv:     drv,
		log:     log.WithValues("driver", drv.Name()),
		windows: make(map[event.WindowID]*Window),
	}
}

// Driver returns the name of the driver backing c.
func (c *Context) Driver() string { return c.drv.Name() }

func (c *Context) alive() error {
	if c.closed {
		return ErrContextClosed
	}
	return nil
}

// Devices enumerates the display devices available now.
func (c *Context) Devices() ([]*Device, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	devs, err := c.drv.Devices()
	if err != nil {
		return nil, err
	}
	out := make([]*Device, len(devs))
	for i, d := range devs {
		out[i] = &Device{ctx: c, drv: d}
	}
	return out, nil
}

// DefaultDevice returns the device new windows use when none is given.
func (c *Context) DefaultDevice() (*Device, error) {
	if err := c.alive(); err != nil {
		return nil, err
	}
	d, err := c.drv.DefaultDevice()
	if err != nil {
		return nil, err
	}
	return &Device{ctx: c, drv: d}, nil
}

// NewWindowBuilder starts describing a window on d. A nil d selects the
// default device when the window is built.
func (c *Context) NewWindowBuilder(d *Device) *WindowBuilder {
	return &WindowBuilder{
		ctx:     c,
		device:  d,
		size:    driver.DefaultSize,
		style:   driver.StyleDefault,
		visible: true,
	}
}

// Window returns the live window with the given id.
func (c *Context) Window(id event.WindowID) (*Window, bool) {
	w, ok := c.windows[id]
	return w, ok
}

// Windows returns the live windows ordered by creation.
func (c *Context) Windows() []*Window {
	out := make([]*Window, 0, len(c.windows))
	for _, w := range c.windows {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// PollEvent returns the next pending event without blocking. ok is false
// when no event is pending.
func (c *Context) PollEvent() (e event.Event, ok bool, err error) {
	if err := c.alive(); err != nil {
		return nil, false, err
	}
	for {
		e, ok, err = c.drv.PollEvent()
		if err != nil || !ok {
			return nil, false, err
		}
		if c.dispatch(e) {
			return e, true, nil
		}
	}
}

// WaitEvent blocks until an event is available or timeout elapses. A
// negative timeout waits indefinitely.
func (c *Context) WaitEvent(timeout time.Duration) (event.Event, bool, error) {
	if err := c.alive(); err != nil {
		return nil, false, err
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		remaining := time.Duration(-1)
		if !deadline.IsZero() {
			if remaining = time.Until(deadline); remaining < 0 {
				remaining = 0
			}
		}
		e, ok, err := c.drv.WaitEvent(remaining)
		if err != nil || !ok {
			return nil, false, err
		}
		if c.dispatch(e) {
			return e, true, nil
		}
		if remaining == 0 {
			return c.PollEvent()
		}
	}
}

// dispatch applies e to the window it belongs to and reports whether it
// should be delivered. Events for unknown or destroyed windows are dropped.
func (c *Context) dispatch(e event.Event) bool {
	w, ok := c.windows[e.WindowID()]
	if !ok {
		c.log.V(2).Info("dropping event for unknown window", "event", event.Describe(e))
		return false
	}
	c.log.V(1).Info("event", "event", event.Describe(e))

	switch e := e.(type) {
	case event.Close:
		w.closeRequested = true
	case event.Destroy:
		w.expire()
	case event.Visibility:
		w.visibilityChanged(e.Visible)
	case event.Focus:
		w.focused = e.Focused
	}
	return true
}

// Close destroys every live window, then closes the driver. Calling Close
// again is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	var err error
	for _, w := range c.Windows() {
		err = multierr.Append(err, w.Destroy())
	}
	c.closed = true
	return multierr.Append(err, c.drv.Close())
}
