//go:build glfw

package glfw

import (
	"errors"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

const (
	Name     = "glfw"
	Priority = 50
)

// ErrAlreadyOpen is returned by Open while another glfw context is open.
var ErrAlreadyOpen = errors.New("glfw context already open")

var (
	openMu sync.Mutex
	isOpen bool
)

func init() {
	driver.Register(driver.Info{Name: Name, Priority: Priority, Open: Open})
}

// Open initializes GLFW on the calling goroutine's OS thread.
func Open(cfg driver.Config) (driver.Context, error) {
	openMu.Lock()
	defer openMu.Unlock()
	if isOpen {
		return nil, &driver.Error{Driver: Name, Op: "init", Err: ErrAlreadyOpen}
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, &driver.Error{Driver: Name, Op: "init", Err: err}
	}
	isOpen = true

	c := &context{
		log:     cfg.Logger.WithName(Name),
		queue:   event.NewQueue(),
		windows: make(map[*glfw.Window]*window),
	}
	c.log.V(1).Info("initialized", "version", glfw.GetVersionString())
	return c, nil
}

type context struct {
	log     logr.Logger
	queue   *event.Queue
	windows map[*glfw.Window]*window
	closed  bool
}

func (c *context) Name() string { return Name }

func (c *context) Devices() ([]driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	monitors := glfw.GetMonitors()
	out := make([]driver.Device, 0, len(monitors))
	for i, m := range monitors {
		if d := c.newDevice(i, m); d != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

func (c *context) DefaultDevice() (driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	primary := glfw.GetPrimaryMonitor()
	if primary == nil {
		return nil, driver.Errorf(Name, "default device", "no monitors attached")
	}
	for i, m := range glfw.GetMonitors() {
		if m == primary {
			if d := c.newDevice(i, m); d != nil {
				return d, nil
			}
		}
	}
	return nil, driver.Errorf(Name, "default device", "primary monitor has no video mode")
}

func (c *context) newDevice(index int, m *glfw.Monitor) *device {
	mode := m.GetVideoMode()
	if mode == nil {
		return nil
	}
	x, y := m.GetPos()
	d := &device{
		ctx:     c,
		index:   index,
		monitor: m,
		name:    m.GetName(),
		bounds:  image.Rect(x, y, x+mode.Width, y+mode.Height),
	}
	for _, alpha := range []uint8{8, 0} {
		d.formats = append(d.formats, &pixelFormat{
			layout: modeLayout(uint8(mode.RedBits), uint8(mode.GreenBits), uint8(mode.BlueBits), alpha),
		})
	}
	return d
}

// modeLayout packs channels red first, as GLFW framebuffers are reported.
func modeLayout(r, g, b, a uint8) driver.Layout {
	depth := int(r) + int(g) + int(b) + int(a)
	bpp := 16
	if depth > 16 {
		bpp = 32
	}
	return driver.Layout{
		Model:          driver.TrueColor,
		Depth:          depth,
		BitsPerPixel:   bpp,
		Red:            driver.Channel{Bits: r},
		Green:          driver.Channel{Bits: g, Shift: r},
		Blue:           driver.Channel{Bits: b, Shift: r + g},
		Alpha:          channelIf(a, r+g+b),
		DoubleBuffered: true,
	}
}

func channelIf(bits, shift uint8) driver.Channel {
	if bits == 0 {
		return driver.Channel{}
	}
	return driver.Channel{Bits: bits, Shift: shift}
}

func (c *context) PixelFormats(d driver.Device) ([]driver.PixelFormat, error) {
	gd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	out := make([]driver.PixelFormat, len(gd.formats))
	for i, pf := range gd.formats {
		out[i] = pf
	}
	return out, nil
}

func (c *context) NewWindowBuilder(d driver.Device) (driver.WindowBuilder, error) {
	gd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	return &builder{
		ctx:     c,
		device:  gd,
		size:    driver.DefaultSize,
		style:   driver.StyleDefault,
		visible: true,
	}, nil
}

func (c *context) own(d driver.Device) (*device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	gd, ok := d.(*device)
	if !ok || gd.ctx != c {
		return nil, &driver.ConfigError{Field: "device", Reason: "not a device of this context"}
	}
	return gd, nil
}

func (c *context) PollEvent() (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	if c.queue.Len() == 0 {
		glfw.PollEvents()
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

func (c *context) WaitEvent(timeout time.Duration) (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	deadline := time.Now().Add(timeout)
	for c.queue.Len() == 0 {
		if timeout < 0 {
			glfw.WaitEvents()
			continue
		}
		left := time.Until(deadline)
		if left <= 0 {
			glfw.PollEvents()
			break
		}
		glfw.WaitEventsTimeout(left.Seconds())
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

func (c *context) Close() error {
	if c.closed {
		return nil
	}
	var err error
	for _, w := range c.windows {
		err = multierr.Append(err, w.release())
	}
	c.closed = true
	glfw.Terminate()
	runtime.UnlockOSThread()

	openMu.Lock()
	isOpen = false
	openMu.Unlock()
	c.log.V(1).Info("terminated")
	return err
}

type device struct {
	ctx     *context
	index   int
	monitor *glfw.Monitor
	name    string
	bounds  image.Rectangle
	formats []*pixelFormat
}

func (d *device) Name() string            { return d.name }
func (d *device) Index() int              { return d.index }
func (d *device) Bounds() image.Rectangle { return d.bounds }

func (d *device) DefaultPixelFormat() (driver.PixelFormat, error) {
	if len(d.formats) == 0 {
		return nil, driver.Errorf(Name, "default pixel format", "%s has no pixel format", d.name)
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
}

func (pf *pixelFormat) Layout() driver.Layout { return pf.layout }

func (pf *pixelFormat) Equal(other driver.PixelFormat) bool {
	o, ok := other.(*pixelFormat)
	return ok && o.layout == pf.layout
}
