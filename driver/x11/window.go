//go:build linux || freebsd || openbsd || netbsd || dragonfly

package x11

import (
	"fmt"
	"image"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

const eventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskFocusChange

type builder struct {
	ctx     *context
	device  *device
	title   string
	size    image.Point
	pos     driver.Position
	style   driver.Style
	visible bool
	format  driver.PixelFormat
}

func (b *builder) SetTitle(title string)                { b.title = title }
func (b *builder) SetSize(size image.Point)             { b.size = size }
func (b *builder) SetPosition(pos driver.Position)      { b.pos = pos }
func (b *builder) SetStyle(style driver.Style)          { b.style = style }
func (b *builder) SetVisible(visible bool)              { b.visible = visible }
func (b *builder) SetPixelFormat(pf driver.PixelFormat) { b.format = pf }

func (b *builder) Build(id event.WindowID) (driver.Window, error) {
	c := b.ctx
	if c.closed {
		return nil, driver.ErrContextClosed
	}

	pf, err := b.pixelFormat()
	if err != nil {
		return nil, err
	}
	scr := b.device.screen.Info
	size := clampSize(b.size)
	pos, explicit := b.pos.Resolve(b.device.bounds, size)
	pos = clampPos(pos)

	conn := c.conn.Conn()
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}

	// Windows on a visual other than the root visual need their own
	// colormap and an explicit border pixel, or the server replies BadMatch.
	var cmap xproto.Colormap
	if pf.visual.ID != scr.RootVisual || pf.visual.Depth != scr.RootDepth {
		if cmap, err = xproto.NewColormapId(conn); err != nil {
			return nil, &driver.Error{Driver: Name, Op: "create colormap", Err: err}
		}
		err = xproto.CreateColormapChecked(conn, xproto.ColormapAllocNone, cmap, scr.Root, pf.visual.ID).Check()
		if err != nil {
			return nil, &driver.Error{Driver: Name, Op: "create colormap", Err: err}
		}
	}

	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwEventMask)
	values := []uint32{scr.BlackPixel, 0, eventMask}
	if cmap != 0 {
		mask |= xproto.CwColormap
		values = append(values, uint32(cmap))
	}
	err = xproto.CreateWindowChecked(
		conn,
		pf.visual.Depth,
		wid,
		scr.Root,
		int16(pos.X), int16(pos.Y),
		uint16(size.X), uint16(size.Y),
		0,
		xproto.WindowClassInputOutput,
		pf.visual.ID,
		mask,
		values,
	).Check()
	if err != nil {
		if cmap != 0 {
			xproto.FreeColormap(conn, cmap)
		}
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}

	w := &window{
		ctx:       c,
		id:        id,
		xwin:      xwindow.New(c.conn.XUtil, wid),
		cmap:      cmap,
		root:      scr.Root,
		parent:    scr.Root,
		size:      size,
		pos:       pos,
		resizable: b.style.Has(driver.StyleResizable),
	}
	if err := w.setup(b.title, explicit, b.style); err != nil {
		w.release()
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}
	c.windows[wid] = w

	if b.visible {
		w.xwin.Map()
	}
	c.log.V(1).Info("window created", "window", id, "xid", wid, "depth", pf.visual.Depth)
	return w, nil
}

func (b *builder) pixelFormat() (*pixelFormat, error) {
	if b.format == nil {
		pf, err := b.device.DefaultPixelFormat()
		if err != nil {
			return nil, err
		}
		return pf.(*pixelFormat), nil
	}
	pf, ok := b.format.(*pixelFormat)
	if !ok || !b.device.SupportsPixelFormat(pf) {
		return nil, &driver.ConfigError{Field: "pixel format", Reason: "not a format of this device"}
	}
	return pf, nil
}

// X11 geometry is 16 bits wide.
func clampSize(p image.Point) image.Point {
	return image.Pt(clamp(p.X, 1, math.MaxUint16), clamp(p.Y, 1, math.MaxUint16))
}

func clampPos(p image.Point) image.Point {
	return image.Pt(clamp(p.X, math.MinInt16, math.MaxInt16), clamp(p.Y, math.MinInt16, math.MaxInt16))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

type window struct {
	ctx  *context
	id   event.WindowID
	xwin *xwindow.Window
	cmap xproto.Colormap
	root xproto.Window
	// parent changes when a window manager reparents the window into a
	// frame.
	parent xproto.Window

	size      image.Point
	pos       image.Point
	mapped    bool
	resizable bool
	destroyed bool
}

func (w *window) setup(title string, explicit bool, style driver.Style) error {
	conn := w.ctx.conn
	wid := w.xwin.Id
	if err := conn.SetTitle(wid, title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}
	if err := conn.EnableDeleteWindow(wid); err != nil {
		return fmt.Errorf("set WM_PROTOCOLS: %w", err)
	}
	if err := conn.SetSizeHints(wid, w.pos, w.size, explicit, !w.resizable); err != nil {
		return fmt.Errorf("set size hints: %w", err)
	}
	if !style.Has(driver.StyleDecorated) {
		if err := conn.SetDecorated(wid, false); err != nil {
			return fmt.Errorf("set decorations: %w", err)
		}
	}
	return nil
}

func (w *window) check() error {
	if w.ctx.closed {
		return driver.ErrContextClosed
	}
	if w.destroyed {
		return driver.ErrWindowClosed
	}
	return nil
}

func (w *window) ID() event.WindowID { return w.id }

func (w *window) Size() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	_, size, err := w.ctx.conn.Geometry(w.xwin.Id)
	if err != nil {
		return image.Point{}, &driver.Error{Driver: Name, Op: "get geometry", Err: err}
	}
	return size, nil
}

func (w *window) SetSize(size image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	size = clampSize(size)
	if !w.resizable {
		if err := w.ctx.conn.SetSizeHints(w.xwin.Id, w.pos, size, false, true); err != nil {
			return &driver.Error{Driver: Name, Op: "set size hints", Err: err}
		}
	}
	w.xwin.Resize(size.X, size.Y)
	return nil
}

func (w *window) Position() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	pos, err := w.ctx.conn.RootPosition(w.xwin.Id)
	if err != nil {
		return image.Point{}, &driver.Error{Driver: Name, Op: "translate coordinates", Err: err}
	}
	return pos, nil
}

func (w *window) SetPosition(pos image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	pos = clampPos(pos)
	w.xwin.Move(pos.X, pos.Y)
	return nil
}

func (w *window) Title() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	title, err := w.ctx.conn.Title(w.xwin.Id)
	if err != nil {
		return "", &driver.Error{Driver: Name, Op: "get title", Err: err}
	}
	return title, nil
}

func (w *window) SetTitle(title string) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.ctx.conn.SetTitle(w.xwin.Id, title); err != nil {
		return &driver.Error{Driver: Name, Op: "set title", Err: err}
	}
	return nil
}

func (w *window) SetVisible(visible bool) error {
	if err := w.check(); err != nil {
		return err
	}
	if visible {
		w.xwin.Map()
	} else {
		w.xwin.Unmap()
	}
	return nil
}

func (w *window) RequestClose() error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.ctx.conn.SendDeleteWindow(w.xwin.Id); err != nil {
		return &driver.Error{Driver: Name, Op: "request close", Err: err}
	}
	return nil
}

func (w *window) Destroy() error {
	if err := w.check(); err != nil {
		return err
	}
	w.release()
	return nil
}

// release destroys the native window and its colormap.
func (w *window) release() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	delete(w.ctx.windows, w.xwin.Id)
	w.ctx.queue.Purge(w.id)
	w.xwin.Destroy()
	if w.cmap != 0 {
		xproto.FreeColormap(w.ctx.conn.Conn(), w.cmap)
	}
}
