//go:build windows

package win32

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

const (
	Name     = "win32"
	Priority = 10
)

const className = "winkit"

func init() {
	driver.Register(driver.Info{Name: Name, Priority: Priority, Open: Open})
}

var (
	registerOnce sync.Once
	registerErr  error
	hInstance    windows.Handle

	// windowsMu guards hwnds and creating. Messages for a window are
	// delivered on its creating thread, but contexts on different threads
	// share the window class and its procedure.
	windowsMu sync.Mutex
	hwnds     = make(map[windows.HWND]*window)
	// creating holds the window being built on each thread. CreateWindowEx
	// sends messages before it returns the handle.
	creating = make(map[uint32]*window)
)

func registerClass() error {
	registerOnce.Do(func() {
		var err error
		if hInstance, err = _GetModuleHandle(); err != nil {
			registerErr = fmt.Errorf("GetModuleHandle: %w", err)
			return
		}
		cursor, err := _LoadCursor(_IDC_ARROW)
		if err != nil {
			registerErr = fmt.Errorf("LoadCursor: %w", err)
			return
		}
		name, err := windows.UTF16PtrFromString(className)
		if err != nil {
			registerErr = err
			return
		}
		wc := _WNDCLASSEX{
			Style:         _CS_HREDRAW | _CS_VREDRAW | _CS_OWNDC,
			LpfnWndProc:   windows.NewCallback(windowProc),
			HInstance:     hInstance,
			HCursor:       cursor,
			HbrBackground: windows.Handle(_COLOR_WINDOW + 1),
			LpszClassName: name,
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		_, err = _RegisterClassEx(&wc)
		if err != nil && !errors.Is(err, windows.Errno(_ERROR_CLASS_ALREADY_EXISTS)) {
			registerErr = fmt.Errorf("RegisterClassEx: %w", err)
		}
	})
	return registerErr
}

// Open registers the window class and locks the calling goroutine to its OS
// thread.
func Open(cfg driver.Config) (driver.Context, error) {
	if err := registerClass(); err != nil {
		return nil, &driver.Error{Driver: Name, Op: "register class", Err: err}
	}
	runtime.LockOSThread()

	formats, err := desktopPixelFormats()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, &driver.Error{Driver: Name, Op: "pixel formats", Err: err}
	}
	c := &context{
		log:     cfg.Logger.WithName(Name),
		queue:   event.NewQueue(),
		windows: make(map[windows.HWND]*window),
		formats: formats,
		thread:  windows.GetCurrentThreadId(),
	}
	c.log.V(1).Info("opened", "pixelFormats", len(formats))
	return c, nil
}

type context struct {
	log     logr.Logger
	queue   *event.Queue
	windows map[windows.HWND]*window
	formats []*pixelFormat
	thread  uint32
	closed  bool
}

func (c *context) Name() string { return Name }

func (c *context) Devices() ([]driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	monitors, err := enumMonitors()
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "enumerate monitors", Err: err}
	}
	out := make([]driver.Device, len(monitors))
	for i, m := range monitors {
		out[i] = &device{ctx: c, index: i, monitor: m}
	}
	return out, nil
}

func (c *context) DefaultDevice() (driver.Device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	monitors, err := enumMonitors()
	if err != nil {
		return nil, &driver.Error{Driver: Name, Op: "enumerate monitors", Err: err}
	}
	if len(monitors) == 0 {
		return nil, driver.Errorf(Name, "default device", "no monitors attached")
	}
	for i, m := range monitors {
		if m.primary {
			return &device{ctx: c, index: i, monitor: m}, nil
		}
	}
	return &device{ctx: c, monitor: monitors[0]}, nil
}

func (c *context) PixelFormats(d driver.Device) ([]driver.PixelFormat, error) {
	if _, err := c.own(d); err != nil {
		return nil, err
	}
	out := make([]driver.PixelFormat, len(c.formats))
	for i, pf := range c.formats {
		out[i] = pf
	}
	return out, nil
}

func (c *context) NewWindowBuilder(d driver.Device) (driver.WindowBuilder, error) {
	wd, err := c.own(d)
	if err != nil {
		return nil, err
	}
	return &builder{
		ctx:     c,
		device:  wd,
		size:    driver.DefaultSize,
		style:   driver.StyleDefault,
		visible: true,
	}, nil
}

func (c *context) own(d driver.Device) (*device, error) {
	if c.closed {
		return nil, driver.ErrContextClosed
	}
	wd, ok := d.(*device)
	if !ok || wd.ctx != c {
		return nil, &driver.ConfigError{Field: "device", Reason: "not a device of this context"}
	}
	return wd, nil
}

func (c *context) PollEvent() (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	if c.queue.Len() == 0 {
		c.pump()
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

func (c *context) WaitEvent(timeout time.Duration) (event.Event, bool, error) {
	if c.closed {
		return nil, false, driver.ErrContextClosed
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for c.queue.Len() == 0 {
		c.pump()
		if c.queue.Len() > 0 {
			break
		}
		wait := uint32(_INFINITE)
		if timeout >= 0 {
			left := time.Until(deadline)
			if left <= 0 {
				return nil, false, nil
			}
			wait = uint32((left + time.Millisecond - 1) / time.Millisecond)
		}
		r, err := _MsgWaitForMultipleObjectsEx(wait, _QS_ALLINPUT, _MWMO_INPUTAVAILABLE)
		if err != nil {
			return nil, false, &driver.Error{Driver: Name, Op: "wait event", Err: err}
		}
		if r == _WAIT_TIMEOUT {
			return nil, false, nil
		}
	}
	e, ok := c.queue.Pop()
	return e, ok, nil
}

// pump dispatches every pending message of the calling thread. The window
// procedure queues the resulting events.
func (c *context) pump() {
	var msg _MSG
	for _PeekMessage(&msg, 0, 0, 0, _PM_REMOVE) {
		_TranslateMessage(&msg)
		_DispatchMessage(&msg)
	}
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
	runtime.UnlockOSThread()
	c.log.V(1).Info("closed")
	return err
}

type monitor struct {
	name    string
	bounds  image.Rectangle
	primary bool
}

var (
	enumMu     sync.Mutex
	enumResult []monitor
	enumErr    error

	monitorEnumProc = windows.NewCallback(func(hmon, hdc, rect, data uintptr) uintptr {
		info := _MONITORINFOEX{}
		info.CbSize = uint32(unsafe.Sizeof(info))
		if err := _GetMonitorInfo(windows.Handle(hmon), &info); err != nil {
			enumErr = err
			return 0
		}
		r := info.RcMonitor
		enumResult = append(enumResult, monitor{
			name:    windows.UTF16ToString(info.SzDevice[:]),
			bounds:  image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)),
			primary: info.DwFlags&_MONITORINFOF_PRIMARY != 0,
		})
		return 1
	})
)

func enumMonitors() ([]monitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumResult, enumErr = nil, nil
	if err := _EnumDisplayMonitors(monitorEnumProc); err != nil && enumErr == nil {
		enumErr = err
	}
	return enumResult, enumErr
}

// desktopPixelFormats lists the distinct window formats of the screen DC.
func desktopPixelFormats() ([]*pixelFormat, error) {
	dc, err := _GetDC(0)
	if err != nil {
		return nil, fmt.Errorf("GetDC: %w", err)
	}
	defer _ReleaseDC(0, dc)

	var pfd _PIXELFORMATDESCRIPTOR
	n, err := _DescribePixelFormat(dc, 1, &pfd)
	if err != nil {
		return nil, fmt.Errorf("DescribePixelFormat: %w", err)
	}
	var formats []*pixelFormat
	for i := int32(1); i <= n; i++ {
		if _, err := _DescribePixelFormat(dc, i, &pfd); err != nil {
			continue
		}
		if l, ok := descriptorLayout(&pfd); ok {
			formats = append(formats, &pixelFormat{index: i, layout: l})
		}
	}
	return dedupeFormats(formats), nil
}

type device struct {
	ctx     *context
	index   int
	monitor monitor
}

func (d *device) Name() string            { return d.monitor.name }
func (d *device) Index() int              { return d.index }
func (d *device) Bounds() image.Rectangle { return d.monitor.bounds }

// DefaultPixelFormat prefers a double-buffered 32 bit format with 8 bit
// color channels.
func (d *device) DefaultPixelFormat() (driver.PixelFormat, error) {
	var best *pixelFormat
	for _, pf := range d.ctx.formats {
		l := pf.layout
		if l.BitsPerPixel != 32 || l.Red.Bits != 8 || l.Green.Bits != 8 || l.Blue.Bits != 8 {
			continue
		}
		if best == nil || (l.DoubleBuffered && !best.layout.DoubleBuffered) {
			best = pf
		}
	}
	if best == nil && len(d.ctx.formats) > 0 {
		best = d.ctx.formats[0]
	}
	if best == nil {
		return nil, driver.Errorf(Name, "default pixel format", "%s has no window pixel format", d.monitor.name)
	}
	return best, nil
}

func (d *device) SupportsPixelFormat(pf driver.PixelFormat) bool {
	for _, f := range d.ctx.formats {
		if f.Equal(pf) {
			return true
		}
	}
	return false
}
