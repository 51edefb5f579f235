package winkit

import (
	"fmt"
	"image"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

// State is the lifecycle state of a window.
type State int

const (
	// StateCreated is a window that has never been shown.
	StateCreated State = iota
	StateVisible
	StateHidden
	// StateCloseRequested is a window the user or program asked to close.
	// The window remains usable until it is destroyed.
	StateCloseRequested
	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	case StateCloseRequested:
		return "close-requested"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Window is a native window. Its events arrive through the owning Context.
type Window struct {
	ctx *Context
	drv driver.Window
	id  event.WindowID

	visible bool
	shown   bool
	// echoes counts visibility changes requested through SetVisible whose
	// Visibility event has not been dispatched yet. While it is non-zero,
	// Visibility events describe superseded states and are not applied.
	echoes         int
	focused        bool
	closeRequested bool
	destroyed      bool
}

// ID returns the identifier carried by the window's events.
func (w *Window) ID() event.WindowID { return w.id }

// State returns the current lifecycle state.
func (w *Window) State() State {
	switch {
	case w.destroyed:
		return StateDestroyed
	case w.closeRequested:
		return StateCloseRequested
	case w.visible:
		return StateVisible
	case w.shown:
		return StateHidden
	}
	return StateCreated
}

// Visible reports the visibility set by the last Show or Hide, or by the
// window system when it changed it since.
func (w *Window) Visible() bool { return w.visible && !w.destroyed }

// Focused reports whether the window last reported keyboard focus.
func (w *Window) Focused() bool { return w.focused && !w.destroyed }

// CloseRequested reports whether a close event has been delivered.
func (w *Window) CloseRequested() bool { return w.closeRequested }

func (w *Window) check() error {
	if w.destroyed {
		return ErrWindowClosed
	}
	return w.ctx.alive()
}

// Size returns the client area size.
func (w *Window) Size() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	return w.drv.Size()
}

// SetSize resizes the client area. Both dimensions must be positive.
func (w *Window) SetSize(width, height int) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := validateSize(width, height); err != nil {
		return err
	}
	return w.drv.SetSize(image.Pt(width, height))
}

// Position returns the top-left corner in screen coordinates.
func (w *Window) Position() (image.Point, error) {
	if err := w.check(); err != nil {
		return image.Point{}, err
	}
	return w.drv.Position()
}

// SetPosition moves the window's top-left corner to x, y in screen
// coordinates.
func (w *Window) SetPosition(x, y int) error {
	if err := w.check(); err != nil {
		return err
	}
	return w.drv.SetPosition(image.Pt(x, y))
}

// Title returns the window title as the window system reports it.
func (w *Window) Title() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	return w.drv.Title()
}

// SetTitle changes the window title. Titles must not contain NUL.
func (w *Window) SetTitle(title string) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	return w.drv.SetTitle(title)
}

// Show makes the window visible. Showing a visible window does nothing.
func (w *Window) Show() error { return w.SetVisible(true) }

// Hide hides the window. Hiding a hidden window does nothing.
func (w *Window) Hide() error { return w.SetVisible(false) }

// SetVisible shows or hides the window. The new visibility is reported
// immediately, regardless of events still queued for earlier changes.
func (w *Window) SetVisible(visible bool) error {
	if err := w.check(); err != nil {
		return err
	}
	if w.visible == visible {
		return nil
	}
	if err := w.drv.SetVisible(visible); err != nil {
		return err
	}
	w.echoes++
	w.setVisible(visible)
	return nil
}

// visibilityChanged applies a Visibility event from the driver.
func (w *Window) visibilityChanged(visible bool) {
	if w.echoes > 0 {
		w.echoes--
		return
	}
	w.setVisible(visible)
}

func (w *Window) setVisible(visible bool) {
	w.visible = visible
	if visible {
		w.shown = true
	}
}

// RequestClose asks the window to close. The request is delivered as an
// event.Close like one coming from the user.
func (w *Window) RequestClose() error {
	if err := w.check(); err != nil {
		return err
	}
	return w.drv.RequestClose()
}

// Destroy destroys the native window. Pending and future events for it are
// discarded and every later operation returns ErrWindowClosed. When the
// driver fails the window stays usable and Destroy may be retried.
func (w *Window) Destroy() error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.drv.Destroy(); err != nil {
		return err
	}
	w.expire()
	w.ctx.log.V(1).Info("window destroyed", "window", w.id)
	return nil
}

func (w *Window) expire() {
	w.destroyed = true
	w.visible = false
	w.focused = false
	delete(w.ctx.windows, w.id)
}
