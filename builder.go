package winkit

import (
	"fmt"
	"image"
	"strings"

	"github.com/1broseidon/winkit/driver"
)

// WindowBuilder describes a window before it is created. Setters return the
// builder so calls can be chained. Nothing native happens until Build, and
// a builder can create at most one window.
type WindowBuilder struct {
	ctx     *Context
	device  *Device
	title   string
	size    image.Point
	pos     driver.Position
	style   driver.Style
	visible bool
	format  *PixelFormat
	spent   bool
}

// Title sets the window title. Titles must not contain NUL.
func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.title = title
	return b
}

// Size sets the client area size. The default is 640x480.
func (b *WindowBuilder) Size(width, height int) *WindowBuilder {
	b.size = image.Pt(width, height)
	return b
}

// Position places the window at x, y in screen coordinates.
func (b *WindowBuilder) Position(x, y int) *WindowBuilder {
	b.pos = driver.At(x, y)
	return b
}

// Centered centers the window on its device.
func (b *WindowBuilder) Centered() *WindowBuilder {
	b.pos = driver.Position{Mode: driver.PosCentered}
	return b
}

// Style sets the decoration flags. The default is driver.StyleDefault.
func (b *WindowBuilder) Style(style driver.Style) *WindowBuilder {
	b.style = style
	return b
}

// Visible sets whether the window is shown once created. The default is
// true.
func (b *WindowBuilder) Visible(visible bool) *WindowBuilder {
	b.visible = visible
	return b
}

// PixelFormat selects the surface format. It must come from the builder's
// device. The default is the device's default format.
func (b *WindowBuilder) PixelFormat(pf *PixelFormat) *WindowBuilder {
	b.format = pf
	return b
}

// Build validates the description and creates the window. Invalid
// descriptions fail with an error matching ErrInvalidConfiguration before
// the driver is involved; the builder may then be corrected and reused.
func (b *WindowBuilder) Build() (*Window, error) {
	c := b.ctx
	if b.spent {
		return nil, ErrBuilderSpent
	}
	if err := c.alive(); err != nil {
		return nil, err
	}
	if err := validateSize(b.size.X, b.size.Y); err != nil {
		return nil, err
	}
	if err := validateTitle(b.title); err != nil {
		return nil, err
	}

	dev := b.device
	if dev == nil {
		var err error
		if dev, err = c.DefaultDevice(); err != nil {
			return nil, err
		}
	} else if dev.ctx != c {
		return nil, &driver.ConfigError{Field: "device", Reason: "belongs to another context"}
	}
	if b.format != nil {
		if b.format.ctx != c {
			return nil, &driver.ConfigError{Field: "pixel format", Reason: "belongs to another context"}
		}
		if !dev.drv.SupportsPixelFormat(b.format.drv) {
			return nil, &driver.ConfigError{
				Field:  "pixel format",
				Reason: fmt.Sprintf("%s not supported by device %q", b.format, dev.Name()),
			}
		}
	}

	nb, err := c.drv.NewWindowBuilder(dev.drv)
	if err != nil {
		return nil, err
	}
	nb.SetTitle(b.title)
	nb.SetSize(b.size)
	nb.SetPosition(b.pos)
	nb.SetStyle(b.style)
	nb.SetVisible(b.visible)
	if b.format != nil {
		nb.SetPixelFormat(b.format.drv)
	}

	b.spent = true
	c.nextID++
	id := c.nextID
	nw, err := nb.Build(id)
	if err != nil {
		return nil, err
	}
	w := &Window{ctx: c, drv: nw, id: id}
	if b.visible {
		// Drivers report the initial map as a Visibility event.
		w.echoes = 1
		w.setVisible(true)
	}
	c.windows[id] = w
	c.log.V(1).Info("window created", "window", id, "title", b.title, "size", b.size)
	return w, nil
}

func validateTitle(title string) error {
	if strings.ContainsRune(title, 0) {
		return &driver.ConfigError{Field: "title", Reason: "contains NUL"}
	}
	return nil
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return &driver.ConfigError{
			Field:  "size",
			Reason: fmt.Sprintf("%dx%d: width and height must be positive", width, height),
		}
	}
	return nil
}
