// Package event defines the portable events produced by winkit drivers.
//
// Every event carries the WindowID of the window it belongs to and the time
// at which the driver observed it. Keyboard and pointer payloads reuse the
// golang.org/x/mobile/event types so applications can share input handling
// code with other x/mobile and shiny based programs.
package event

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// WindowID identifies a window within one context. IDs are never reused
// while the context is open.
type WindowID uint64

// Event is implemented by every event type in this package.
type Event interface {
	WindowID() WindowID
	Timestamp() time.Time
	isEvent()
}

// Header is embedded in every event.
type Header struct {
	Window WindowID
	Time   time.Time
}

func (h Header) WindowID() WindowID   { return h.Window }
func (h Header) Timestamp() time.Time { return h.Time }
func (Header) isEvent()               {}

// Close is a request to close a window, typically because the user clicked
// the title bar close button. It is advisory: the window stays open until it
// is destroyed.
type Close struct {
	Header
}

// Destroy reports that a window no longer exists. It is the last event
// delivered for that window.
type Destroy struct {
	Header
}

// Move reports a new window position in screen coordinates.
type Move struct {
	Header
	Position image.Point
}

// Resize reports a new client area size.
type Resize struct {
	Header
	Size image.Point
}

// Visibility reports that a window was shown or hidden.
type Visibility struct {
	Header
	Visible bool
}

// Focus reports that a window gained or lost keyboard focus.
type Focus struct {
	Header
	Focused bool
}

// Key is a keyboard event.
type Key struct {
	Header
	key.Event
}

// Mouse is a pointer event. Motion has Direction mouse.DirNone; wheel
// scrolling uses the mouse.ButtonWheel buttons with mouse.DirStep.
type Mouse struct {
	Header
	mouse.Event
}

// UpdateKind selects when a run loop delivers Update events.
type UpdateKind int

const (
	// UpdatePassive delivers one Update each time the queue drains, then
	// blocks until the next event.
	UpdatePassive UpdateKind = iota
	// UpdateActive delivers an Update every time the queue is found empty,
	// so the loop never blocks.
	UpdateActive
	// UpdateVBlank asks for updates paced by the display refresh. No driver
	// can pace them yet, so it behaves like UpdateActive and the delivered
	// events carry UpdateActive.
	UpdateVBlank
)

func (k UpdateKind) String() string {
	switch k {
	case UpdatePassive:
		return "passive"
	case UpdateActive:
		return "active"
	case UpdateVBlank:
		return "vblank"
	}
	return fmt.Sprintf("UpdateKind(%d)", int(k))
}

// Update tells a run loop callback that pending events have been handled
// and it is a good time to redraw. It belongs to no window; its WindowID is
// zero, which no window ever has.
type Update struct {
	Header
	Kind UpdateKind
}

// Describe returns a one line description of e, used by the event debugger
// and in log output.
func Describe(e Event) string {
	switch e := e.(type) {
	case Close:
		return fmt.Sprintf("close window=%d", e.Window)
	case Destroy:
		return fmt.Sprintf("destroy window=%d", e.Window)
	case Move:
		return fmt.Sprintf("move window=%d pos=%v", e.Window, e.Position)
	case Resize:
		return fmt.Sprintf("resize window=%d size=%v", e.Window, e.Size)
	case Visibility:
		return fmt.Sprintf("visibility window=%d visible=%t", e.Window, e.Visible)
	case Focus:
		return fmt.Sprintf("focus window=%d focused=%t", e.Window, e.Focused)
	case Key:
		return fmt.Sprintf("key window=%d %v", e.Window, e.Event)
	case Mouse:
		return fmt.Sprintf("mouse window=%d %v", e.Window, e.Event)
	case Update:
		return fmt.Sprintf("update kind=%s", e.Kind)
	}
	return fmt.Sprintf("%T window=%d", e, e.WindowID())
}
