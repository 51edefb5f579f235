// Package driver defines the contract between winkit and a native windowing
// backend.
//
// A backend implements Context, Device, PixelFormat, WindowBuilder and Window
// and registers an Info with Register from an init function. Applications do
// not use these interfaces directly; the winkit package wraps them, tracks
// window lifecycle and enforces ownership rules before anything reaches a
// driver.
package driver

import (
	"image"
	"time"

	"github.com/go-logr/logr"

	"github.com/1broseidon/winkit/event"
)

// Context is one open instance of a driver, such as a display connection.
// It owns every device, pixel format and window obtained through it.
type Context interface {
	// Name returns the registered driver name.
	Name() string
	Devices() ([]Device, error)
	DefaultDevice() (Device, error)
	// PixelFormats lists the formats a window on d can be created with.
	PixelFormats(d Device) ([]PixelFormat, error)
	NewWindowBuilder(d Device) (WindowBuilder, error)
	// PollEvent returns the next pending event without blocking.
	PollEvent() (event.Event, bool, error)
	// WaitEvent blocks until an event is available or timeout elapses. A
	// negative timeout waits indefinitely.
	WaitEvent(timeout time.Duration) (event.Event, bool, error)
	// Close destroys all remaining native windows and releases the context.
	Close() error
}

// Device is a display output enumerated from a Context.
type Device interface {
	Name() string
	Index() int
	// Bounds is the device area in screen coordinates.
	Bounds() image.Rectangle
	DefaultPixelFormat() (PixelFormat, error)
	SupportsPixelFormat(pf PixelFormat) bool
}

// PixelFormat describes a renderable surface configuration.
type PixelFormat interface {
	Layout() Layout
	Equal(other PixelFormat) bool
}

// WindowBuilder collects window attributes ahead of native creation. The
// winkit package validates every value before calling a setter.
type WindowBuilder interface {
	SetTitle(title string)
	SetSize(size image.Point)
	SetPosition(pos Position)
	SetStyle(style Style)
	SetVisible(visible bool)
	SetPixelFormat(pf PixelFormat)
	// Build creates the native window. Events for it must carry id.
	Build(id event.WindowID) (Window, error)
}

// Window is a native window created by a driver.
type Window interface {
	ID() event.WindowID
	Size() (image.Point, error)
	SetSize(size image.Point) error
	Position() (image.Point, error)
	SetPosition(pos image.Point) error
	Title() (string, error)
	SetTitle(title string) error
	SetVisible(visible bool) error
	// RequestClose asks the window to close as if the user had clicked its
	// close button. The driver delivers an event.Close.
	RequestClose() error
	Destroy() error
}

// PositionMode selects how a new window is placed.
type PositionMode int

const (
	// PosDefault lets the platform or window manager choose.
	PosDefault PositionMode = iota
	// PosCentered centers the window on its device.
	PosCentered
	// PosPoint places the window at Position.Point.
	PosPoint
)

// Position is the initial placement of a window.
type Position struct {
	Mode  PositionMode
	Point image.Point
}

// At returns an explicit position.
func At(x, y int) Position {
	return Position{Mode: PosPoint, Point: image.Pt(x, y)}
}

// Resolve returns the top-left corner for a window of the given size on a
// device with the given bounds. ok is false for PosDefault.
func (p Position) Resolve(bounds image.Rectangle, size image.Point) (pt image.Point, ok bool) {
	switch p.Mode {
	case PosCentered:
		return image.Pt(
			bounds.Min.X+(bounds.Dx()-size.X)/2,
			bounds.Min.Y+(bounds.Dy()-size.Y)/2,
		), true
	case PosPoint:
		return p.Point, true
	}
	return image.Point{}, false
}

// Style holds window decoration flags.
type Style uint32

const (
	StyleDecorated Style = 1 << iota
	StyleResizable
	StyleClosable

	StyleDefault = StyleDecorated | StyleResizable | StyleClosable
)

func (s Style) Has(f Style) bool { return s&f == f }

// DefaultSize is used when a window is built without an explicit size.
var DefaultSize = image.Pt(640, 480)

// Config is passed to a driver's OpenFunc.
type Config struct {
	// Display names the display to connect to, for drivers that have such a
	// notion. Empty means the platform default.
	Display string
	// Xauthority overrides the X authority file.
	Xauthority string
	Logger     logr.Logger
}
