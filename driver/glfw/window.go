//go:build glfw

package glfw

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

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

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (b *builder) Build(id event.WindowID) (driver.Window, error) {
	c := b.ctx
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	pf := b.device.formats[0]
	if b.format != nil {
		p, ok := b.format.(*pixelFormat)
		if !ok || !b.device.SupportsPixelFormat(p) {
			return nil, &driver.ConfigError{Field: "pixel format", Reason: "not a format of this device"}
		}
		pf = p
	}

	l := pf.layout
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(b.style.Has(driver.StyleResizable)))
	glfw.WindowHint(glfw.Decorated, boolHint(b.style.Has(driver.StyleDecorated)))
	glfw.WindowHint(glfw.RedBits, int(l.Red.Bits))
	glfw.WindowHint(glfw.GreenBits, int(l.Green.Bits))
	glfw.WindowHint(glfw.BlueBits, int(l.Blue.Bits))
	glfw.WindowHint(glfw.AlphaBits, int(l.Alpha.Bits))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(l.HasAlpha()))

	gw, err := glfw.CreateWindow(b.size.X, b.size.Y, b.title, nil, nil)
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}
	w := &window{ctx: c, id: id, gw: gw, title: b.title, size: b.size}
	if pos, ok := b.pos.Resolve(b.device.bounds, b.size); ok {
		gw.SetPos(pos.X, pos.Y)
	}
	w.pos = image.Pt(gw.GetPos())
	w.install()
	c.windows[gw] = w

	if b.visible {
		w.show(true)
	}
	c.log.V(1).Info("window created", "window", id, "title", b.title)
	return w, nil
}

type window struct {
	ctx   *context
	id    event.WindowID
	gw    *glfw.Window
	title string

	size      image.Point
	pos       image.Point
	cursor    image.Point
	visible   bool
	destroyed bool
}

func (w *window) push(e func(h event.Header) event.Event) {
	q := w.ctx.queue
	q.Push(e(q.Header(w.id)))
}

// install routes GLFW callbacks into the context queue.
func (w *window) install() {
	w.gw.SetCloseCallback(func(gw *glfw.Window) {
		// Closing is up to the application.
		gw.SetShouldClose(false)
		w.push(func(h event.Header) event.Event { return event.Close{Header: h} })
	})
	w.gw.SetPosCallback(func(_ *glfw.Window, x, y int) {
		if pos := image.Pt(x, y); pos != w.pos {
			w.pos = pos
			w.push(func(h event.Header) event.Event { return event.Move{Header: h, Position: pos} })
		}
	})
	w.gw.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if size := image.Pt(width, height); size != w.size && width > 0 && height > 0 {
			w.size = size
			w.push(func(h event.Header) event.Event { return event.Resize{Header: h, Size: size} })
		}
	})
	w.gw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.push(func(h event.Header) event.Event { return event.Focus{Header: h, Focused: focused} })
	})
	w.gw.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		dir := key.DirPress
		switch action {
		case glfw.Release:
			dir = key.DirRelease
		case glfw.Repeat:
			dir = key.DirNone
		}
		w.push(func(h event.Header) event.Event {
			return event.Key{Header: h, Event: key.Event{
				Rune:      -1,
				Code:      keyCode(k),
				Modifiers: modifiers(mods),
				Direction: dir,
			}}
		})
	})
	w.gw.SetCharModsCallback(func(_ *glfw.Window, r rune, mods glfw.ModifierKey) {
		w.push(func(h event.Header) event.Event {
			return event.Key{Header: h, Event: key.Event{
				Rune:      r,
				Code:      key.CodeUnknown,
				Modifiers: modifiers(mods),
				Direction: key.DirNone,
			}}
		})
	})
	w.gw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursor = image.Pt(int(x), int(y))
		w.pushMouse(mouse.ButtonNone, 0, mouse.DirNone)
	})
	w.gw.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		dir := mouse.DirPress
		if action == glfw.Release {
			dir = mouse.DirRelease
		}
		w.pushMouse(mouseButton(b), mods, dir)
	})
	w.gw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		for _, b := range scrollButtons(xoff, yoff) {
			w.pushMouse(b, 0, mouse.DirStep)
		}
	})
}

func (w *window) pushMouse(b mouse.Button, mods glfw.ModifierKey, dir mouse.Direction) {
	w.push(func(h event.Header) event.Event {
		return event.Mouse{Header: h, Event: mouse.Event{
			X:         float32(w.cursor.X),
			Y:         float32(w.cursor.Y),
			Button:    b,
			Modifiers: modifiers(mods),
			Direction: dir,
		}}
	})
}

// show changes visibility. GLFW has no visibility callback, so the event is
// queued here.
func (w *window) show(visible bool) {
	if visible == w.visible {
		return
	}
	if visible {
		w.gw.Show()
	} else {
		w.gw.Hide()
	}
	w.visible = visible
	w.push(func(h event.Header) event.Event { return event.Visibility{Header: h, Visible: visible} })
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
	return image.Pt(w.gw.GetSize()), nil
}

func (w *window) SetSize(size image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	w.gw.SetSize(size.X, size.Y)
	return nil
}

func (w *window) Position() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	return image.Pt(w.gw.GetPos()), nil
}

func (w *window) SetPosition(pos image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	w.gw.SetPos(pos.X, pos.Y)
	return nil
}

// Title returns the last title set; GLFW 3.3 cannot read it back.
func (w *window) Title() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	return w.title, nil
}

func (w *window) SetTitle(title string) error {
	if err := w.check(); err != nil {
		return err
	}
	w.gw.SetTitle(title)
	w.title = title
	return nil
}

func (w *window) SetVisible(visible bool) error {
	if err := w.check(); err != nil {
		return err
	}
	w.show(visible)
	return nil
}

func (w *window) RequestClose() error {
	if err := w.check(); err != nil {
		return err
	}
	w.push(func(h event.Header) event.Event { return event.Close{Header: h} })
	glfw.PostEmptyEvent()
	return nil
}

func (w *window) Destroy() error {
	if err := w.check(); err != nil {
		return err
	}
	return w.release()
}

func (w *window) release() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	delete(w.ctx.windows, w.gw)
	w.ctx.queue.Purge(w.id)
	w.gw.Destroy()
	return nil
}
