//go:build windows

package win32

import (
	"image"

	"golang.org/x/sys/windows"

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

func windowStyle(s driver.Style) uint32 {
	if !s.Has(driver.StyleDecorated) {
		return _WS_POPUP
	}
	style := uint32(_WS_OVERLAPPED | _WS_CAPTION | _WS_MINIMIZEBOX)
	if s.Has(driver.StyleClosable) {
		style |= _WS_SYSMENU
	}
	if s.Has(driver.StyleResizable) {
		style |= _WS_THICKFRAME | _WS_MAXIMIZEBOX
	}
	return style
}

// frame returns the window rectangle for a client rectangle.
func frame(client image.Rectangle, style, exStyle uint32) (image.Rectangle, error) {
	r := _RECT{
		Left:   int32(client.Min.X),
		Top:    int32(client.Min.Y),
		Right:  int32(client.Max.X),
		Bottom: int32(client.Max.Y),
	}
	if err := _AdjustWindowRectEx(&r, style, false, exStyle); err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

func (b *builder) Build(id event.WindowID) (driver.Window, error) {
	c := b.ctx
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	pf, err := b.pixelFormat()
	if err != nil {
		return nil, err
	}

	style := windowStyle(b.style)
	exStyle := uint32(_WS_EX_APPWINDOW)
	pos, explicit := b.pos.Resolve(b.device.monitor.bounds, b.size)
	outer, err := frame(image.Rectangle{Min: pos, Max: pos.Add(b.size)}, style, exStyle)
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}
	x, y := int32(_CW_USEDEFAULT), int32(_CW_USEDEFAULT)
	if explicit {
		x, y = int32(outer.Min.X), int32(outer.Min.Y)
	}

	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}
	title, err := windows.UTF16PtrFromString(b.title)
	if err != nil {
		return nil, &driver.ConfigError{Field: "title", Reason: "contains NUL"}
	}

	w := &window{
		ctx:     c,
		id:      id,
		style:   style,
		exStyle: exStyle,
		size:    b.size,
		pos:     pos,
	}
	windowsMu.Lock()
	creating[c.thread] = w
	windowsMu.Unlock()
	hwnd, err := _CreateWindowEx(exStyle, cls, title, style,
		x, y, int32(outer.Dx()), int32(outer.Dy()), 0, hInstance)
	windowsMu.Lock()
	delete(creating, c.thread)
	windowsMu.Unlock()
	if err != nil {
		if w.hwnd != 0 {
			untrack(w.hwnd)
		}
		return nil, &driver.Error{Driver: Name, Op: "create window", Err: err}
	}
	w.hwnd = hwnd
	track(w)
	c.windows[hwnd] = w

	if err := w.setPixelFormat(pf); err != nil {
		w.release()
		return nil, &driver.Error{Driver: Name, Op: "set pixel format", Err: err}
	}
	if b.visible {
		_ShowWindow(hwnd, _SW_SHOW)
	}
	c.log.V(1).Info("window created", "window", id, "hwnd", uintptr(hwnd), "pixelFormat", pf.index)
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

func track(w *window) {
	windowsMu.Lock()
	hwnds[w.hwnd] = w
	windowsMu.Unlock()
}

func untrack(hwnd windows.HWND) {
	windowsMu.Lock()
	delete(hwnds, hwnd)
	windowsMu.Unlock()
}

// lookup finds the window for hwnd. During CreateWindowEx the handle is not
// known yet, so the window being created on this thread claims it.
func lookup(hwnd windows.HWND) *window {
	windowsMu.Lock()
	defer windowsMu.Unlock()
	if w := hwnds[hwnd]; w != nil {
		return w
	}
	tid := windows.GetCurrentThreadId()
	if w := creating[tid]; w != nil {
		w.hwnd = hwnd
		hwnds[hwnd] = w
		delete(creating, tid)
		return w
	}
	return nil
}

type window struct {
	ctx     *context
	id      event.WindowID
	hwnd    windows.HWND
	style   uint32
	exStyle uint32

	size      image.Point
	pos       image.Point
	visible   bool
	destroyed bool
}

func (w *window) setPixelFormat(pf *pixelFormat) error {
	dc, err := _GetDC(w.hwnd)
	if err != nil {
		return err
	}
	defer _ReleaseDC(w.hwnd, dc)
	var pfd _PIXELFORMATDESCRIPTOR
	if _, err := _DescribePixelFormat(dc, pf.index, &pfd); err != nil {
		return err
	}
	return _SetPixelFormat(dc, pf.index, &pfd)
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
	var r _RECT
	if err := _GetClientRect(w.hwnd, &r); err != nil {
		return image.Point{}, &driver.Error{Driver: Name, Op: "get client rect", Err: err}
	}
	return image.Pt(int(r.Right-r.Left), int(r.Bottom-r.Top)), nil
}

func (w *window) SetSize(size image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	outer, err := frame(image.Rectangle{Max: size}, w.style, w.exStyle)
	if err == nil {
		err = _SetWindowPos(w.hwnd, 0, 0, int32(outer.Dx()), int32(outer.Dy()),
			_SWP_NOMOVE|_SWP_NOZORDER|_SWP_NOACTIVATE)
	}
	if err != nil {
		return &driver.Error{Driver: Name, Op: "set size", Err: err}
	}
	return nil
}

// Position returns the screen position of the client area.
func (w *window) Position() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	var pt _POINT
	if err := _ClientToScreen(w.hwnd, &pt); err != nil {
		return image.Point{}, &driver.Error{Driver: Name, Op: "client to screen", Err: err}
	}
	return image.Pt(int(pt.X), int(pt.Y)), nil
}

func (w *window) SetPosition(pos image.Point) error {
	if err := w.check(); err != nil {
		return err
	}
	outer, err := frame(image.Rectangle{Min: pos, Max: pos.Add(image.Pt(1, 1))}, w.style, w.exStyle)
	if err == nil {
		err = _SetWindowPos(w.hwnd, int32(outer.Min.X), int32(outer.Min.Y), 0, 0,
			_SWP_NOSIZE|_SWP_NOZORDER|_SWP_NOACTIVATE)
	}
	if err != nil {
		return &driver.Error{Driver: Name, Op: "set position", Err: err}
	}
	return nil
}

func (w *window) Title() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	title, err := _GetWindowText(w.hwnd)
	if err != nil {
		return "", &driver.Error{Driver: Name, Op: "get title", Err: err}
	}
	return title, nil
}

func (w *window) SetTitle(title string) error {
	if err := w.check(); err != nil {
		return err
	}
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return &driver.ConfigError{Field: "title", Reason: "contains NUL"}
	}
	if err := _SetWindowText(w.hwnd, p); err != nil {
		return &driver.Error{Driver: Name, Op: "set title", Err: err}
	}
	return nil
}

func (w *window) SetVisible(visible bool) error {
	if err := w.check(); err != nil {
		return err
	}
	cmd := int32(_SW_HIDE)
	if visible {
		cmd = _SW_SHOW
	}
	// The result is the previous visibility, not an error.
	_ShowWindow(w.hwnd, cmd)
	return nil
}

func (w *window) RequestClose() error {
	if err := w.check(); err != nil {
		return err
	}
	if err := _PostMessage(w.hwnd, _WM_CLOSE, 0, 0); err != nil {
		return &driver.Error{Driver: Name, Op: "request close", Err: err}
	}
	return nil
}

func (w *window) Destroy() error {
	if err := w.check(); err != nil {
		return err
	}
	return w.release()
}

// release destroys the native window without queuing an event.Destroy.
func (w *window) release() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	delete(w.ctx.windows, w.hwnd)
	untrack(w.hwnd)
	w.ctx.queue.Purge(w.id)
	if err := _DestroyWindow(w.hwnd); err != nil {
		return &driver.Error{Driver: Name, Op: "destroy window", Err: err}
	}
	return nil
}
