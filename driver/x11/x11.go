//go:build linux || freebsd || openbsd || netbsd || dragonfly

package x11

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/go-logr/logr"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
	xconn "github.com/1broseidon/winkit/internal/x11"
)

const (
	Name     = "x11"
	Priority = 20
)

func init() {
	driver.Register(driver.Info{Name: Name, Priority: Priority, Open: Open})
}

// Open connects to the X server named by cfg.Display.
func Open(cfg driver.Config) (driver.Context, error) {
	conn, err := xconn.NewConnection(cfg.Display, cfg.Xauthority)
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "connect", Err: err}
	}

	c := &context{
		conn:    conn,
		log:     cfg.Logger.WithName(Name),
		queue:   event.NewQueue(),
		windows: make(map[xproto.Window]*window),
	}
	if c.wmProtocols, err = conn.Atom("WM_PROTOCOLS"); err == nil {
		c.wmDeleteWindow, err = conn.Atom("WM_DELETE_WINDOW")
	}
	if err != nil {
		conn.Close()
		return nil, &driver.Error{Driver: Name, Op: "connect", Err: err}
	}

	c.log.V(1).Info("connected", "display", cfg.Display, "screens", len(conn.Screens()))
	return c, nil
}

type waitResult struct {
	ev  xgb.Event
	err xgb.Error
}

type context struct {
	conn    *xconn.Connection
	log     logr.Logger
	queue   *event.Queue
	windows map[xproto.Window]*window

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	// pending is the result channel of the goroutine parked in
	// WaitForEvent, or nil when none is running.
	pending chan waitResult
	closed  bool
}

func (c *context) Name() string { return Name }

func (c *context) Devices() ([]driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	screens := c.conn.Screens()
	out := make([]driver.Device, len(screens))
	for i, s := range screens {
		out[i] = c.newDevice(s)
	}
	return out, nil
}

func (c *context) DefaultDevice() (driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	return c.newDevice(c.conn.DefaultScreen()), nil
}

func (c *context) newDevice(s xconn.Screen) *device {
	d := &device{
		ctx:    c,
		screen: s,
		name:   fmt.Sprintf("screen %d", s.Index),
		bounds: s.Bounds(),
	}
	if monitors, err := c.conn.Monitors(s.Info.Root); err == nil && len(monitors) > 0 {
		names := make([]string, len(monitors))
		for i, m := range monitors {
			names[i] = m.Name
		}
		d.name += " (" + strings.Join(names, ", ") + ")"
	} else if err != nil {
		c.log.V(1).Info("randr unavailable", "screen", s.Index, "error", err.Error())
	}
	for _, v := range c.conn.ColorVisuals(s) {
		d.formats = append(d.formats, newPixelFormat(s.Index, v))
	}
	return d
}

func (c *context) PixelFormats(d driver.Device) ([]driver.PixelFormat, error) {
	xd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	out := make([]driver.PixelFormat, len(xd.formats))
	for i, pf := range xd.formats {
		out[i] = pf
	}
	return out, nil
}

func (c *context) NewWindowBuilder(d driver.Device) (driver.WindowBuilder, error) {
	xd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	return &builder{
		ctx:     c,
		device:  xd,
		size:    driver.DefaultSize,
		style:   driver.StyleDefault,
		visible: true,
	}, nil
}

func (c *context) own(d driver.Device) (*device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	xd, ok := d.(*device)
	if !ok || xd.ctx != c {
		return nil, &driver.ConfigError{Field: "device", Reason: "not a device of this context"}
	}
	return xd, nil
}

func (c *context) PollEvent() (event.Event, bool, error) {
	return c.next(0)
}

func (c *context) WaitEvent(timeout time.Duration) (event.Event, bool, error) {
	return c.next(timeout)
}

func (c *context) next(timeout time.Duration) (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	if err := c.fill(timeout); err != nil {
		return nil, false, err
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

func (c *context) Close() error {
	if c.closed {
		return nil
	}
	for _, w := range c.windows {
		w.release()
	}
	c.closed = true
	c.conn.Close()
	c.log.V(1).Info("disconnected")
	return nil
}

type device struct {
	ctx     *context
	screen  xconn.Screen
	name    string
	bounds  image.Rectangle
	formats []*pixelFormat
}

func (d *device) Name() string            { return d.name }
func (d *device) Index() int              { return d.screen.Index }
func (d *device) Bounds() image.Rectangle { return d.bounds }

func (d *device) DefaultPixelFormat() (driver.PixelFormat, error) {
	if len(d.formats) == 0 {
		return nil, driver.Errorf(Name, "default pixel format", "%s has no TrueColor visual", d.name)
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
	screen int
	visual xconn.Visual
	layout driver.Layout
}

func newPixelFormat(screen int, v xconn.Visual) *pixelFormat {
	model := driver.TrueColor
	if v.Class == xproto.VisualClassDirectColor {
		model = driver.DirectColor
	}
	return &pixelFormat{
		screen: screen,
		visual: v,
		layout: driver.Layout{
			Model:        model,
			Depth:        int(v.Depth),
			BitsPerPixel: int(v.BitsPerPixel),
			Red:          driver.ChannelFromMask(v.RedMask),
			Green:        driver.ChannelFromMask(v.GreenMask),
			Blue:         driver.ChannelFromMask(v.BlueMask),
			Alpha:        driver.ChannelFromMask(v.AlphaMask()),
		},
	}
}

func (pf *pixelFormat) Layout() driver.Layout { return pf.layout }

func (pf *pixelFormat) Equal(other driver.PixelFormat) bool {
	o, ok := other.(*pixelFormat)
	return ok && o.screen == pf.screen && o.visual.ID == pf.visual.ID && o.visual.Depth == pf.visual.Depth
}
