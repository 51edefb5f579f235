package headless

import (
	"image"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

type builder struct {
	ctx     *Context
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
	c.stats.BuildCalls++
	if c.failCreate != nil {
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: c.failCreate}
	}

	format := b.format
	if format == nil {
		var err error
		if format, err = b.device.DefaultPixelFormat(); err != nil {
			return nil, err
		}
	}
	pos, ok := b.pos.Resolve(b.device.bounds, b.size)
	if !ok {
		pos = b.device.bounds.Min
	}

	w := &window{
		ctx:    c,
		id:     id,
		title:  b.title,
		size:   b.size,
		pos:    pos,
		style:  b.style,
		format: format,
	}
	c.windows[id] = w
	c.stats.WindowsCreated++
	c.log.V(1).Info("window created", "window", id, "size", b.size, "title", b.title)

	if b.visible {
		if err := w.SetVisible(true); err != nil {
			return nil, err
		}
	}
	return w, nil
}

type window struct {
	ctx       *Context
	id        event.WindowID
	title     string
	size      image.Point
	pos       image.Point
	style     driver.Style
	format    driver.PixelFormat
	visible   bool
	destroyed bool
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
	return w.size, nil
}

func (w *window) SetSize(size image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	if size != w.size {
		w.size = size
		w.ctx.queue.Push(event.Resize{Header: w.ctx.queue.Header(w.id), Size: size})
	}
	return nil
}

func (w *window) Position() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	return w.pos, nil
}

func (w *window) SetPosition(pos image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	if pos != w.pos {
		w.pos = pos
		w.ctx.queue.Push(event.Move{Header: w.ctx.queue.Header(w.id), Position: pos})
	}
	return nil
}

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
	w.title = title
	return nil
}

func (w *window) SetVisible(visible bool) error {
	if err := w.check(); err != nil {
		return err
	}
	if visible != w.visible {
		w.visible = visible
		w.ctx.queue.Push(event.Visibility{Header: w.ctx.queue.Header(w.id), Visible: visible})
	}
	return nil
}

func (w *window) RequestClose() error {
	if err := w.check(); err != nil {
		return err
	}
	w.ctx.queue.Push(event.Close{Header: w.ctx.queue.Header(w.id)})
	return nil
}

func (w *window) Destroy() error {
	if err := w.check(); err != nil {
		return err
	}
	if w.ctx.failDestroy != nil {
		return &driver.Error{Driver: Name, Op: "destroy window", Err: w.ctx.failDestroy}
	}
	w.ctx.forget(w)
	w.ctx.queue.Purge(w.id)
	return nil
}
