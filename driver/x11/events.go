//go:build linux || freebsd || openbsd || netbsd || dragonfly

package x11

import (
	"image"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
	xconn "github.com/1broseidon/winkit/internal/x11"
)

// fill reads X events until at least one portable event is queued or the
// timeout expires. A zero timeout never blocks; a negative one blocks until
// an event arrives.
//
// Blocking reads happen on a helper goroutine parked in WaitForEvent. Only
// one such goroutine exists at a time and nothing else reads from the
// connection while it is outstanding, so server order is preserved.
func (c *context) fill(timeout time.Duration) error {
	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	for c.queue.Len() == 0 {
		r, ok := c.poll()
		if !ok {
			if timeout == 0 {
				return nil
			}
			if c.pending == nil {
				c.startWaiter()
			}
			select {
			case r = <-c.pending:
				c.pending = nil
			case <-expired:
				return nil
			}
		}
		if err := c.handle(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *context) poll() (waitResult, bool) {
	if c.pending != nil {
		select {
		case r := <-c.pending:
			c.pending = nil
			return r, true
		default:
			return waitResult{}, false
		}
	}
	ev, err := c.conn.Conn().PollForEvent()
	if ev == nil && err == nil {
		return waitResult{}, false
	}
	return waitResult{ev: ev, err: err}, true
}

func (c *context) startWaiter() {
	ch := make(chan waitResult, 1)
	conn := c.conn.Conn()
	go func() {
		ev, err := conn.WaitForEvent()
		ch <- waitResult{ev: ev, err: err}
	}()
	c.pending = ch
}

func (c *context) handle(r waitResult) error {
	switch {
	case r.ev == nil && r.err == nil:
		return &driver.Error{Driver: Name, Op: "wait event", Err: driver.ErrConnectionLost}
	case r.err != nil:
		// Asynchronous errors from unchecked requests, typically on windows
		// the server already destroyed.
		c.log.V(1).Info("X error", "error", r.err.Error())
		return nil
	}
	c.translate(r.ev)
	return nil
}

func (c *context) header(w *window) event.Header {
	return c.queue.Header(w.id)
}

// translate converts one X event and queues the result, if any.
func (c *context) translate(xev xgb.Event) {
	switch ev := xev.(type) {
	case xproto.ClientMessageEvent:
		w := c.windows[ev.Window]
		if w == nil || ev.Type != c.wmProtocols || ev.Format != 32 {
			return
		}
		if xproto.Atom(ev.Data.Data32[0]) == c.wmDeleteWindow {
			c.queue.Push(event.Close{Header: c.header(w)})
		}

	case xproto.ConfigureNotifyEvent:
		w := c.windows[ev.Window]
		if w == nil {
			return
		}
		if size := image.Pt(int(ev.Width), int(ev.Height)); size != w.size {
			w.size = size
			c.queue.Push(event.Resize{Header: c.header(w), Size: size})
		}
		pos := image.Pt(int(ev.X), int(ev.Y))
		if w.parent != w.root {
			// Coordinates are relative to the window manager's frame.
			p, err := c.conn.RootPosition(ev.Window)
			if err != nil {
				return
			}
			pos = p
		}
		if pos != w.pos {
			w.pos = pos
			c.queue.Push(event.Move{Header: c.header(w), Position: pos})
		}

	case xproto.ReparentNotifyEvent:
		if w := c.windows[ev.Window]; w != nil {
			w.parent = ev.Parent
		}

	case xproto.MapNotifyEvent:
		c.setMapped(ev.Window, true)

	case xproto.UnmapNotifyEvent:
		c.setMapped(ev.Window, false)

	case xproto.DestroyNotifyEvent:
		w := c.windows[ev.Window]
		if w == nil {
			return
		}
		w.destroyed = true
		delete(c.windows, ev.Window)
		if w.cmap != 0 {
			xproto.FreeColormap(c.conn.Conn(), w.cmap)
		}
		c.queue.Push(event.Destroy{Header: c.header(w)})

	case xproto.FocusInEvent:
		c.focus(ev.Event, ev.Detail, true)

	case xproto.FocusOutEvent:
		c.focus(ev.Event, ev.Detail, false)

	case xproto.KeyPressEvent:
		c.key(ev.Event, ev.Detail, ev.State, key.DirPress)

	case xproto.KeyReleaseEvent:
		c.key(ev.Event, ev.Detail, ev.State, key.DirRelease)

	case xproto.ButtonPressEvent:
		c.button(ev.Event, ev.Detail, ev.State, ev.EventX, ev.EventY, mouse.DirPress)

	case xproto.ButtonReleaseEvent:
		c.button(ev.Event, ev.Detail, ev.State, ev.EventX, ev.EventY, mouse.DirRelease)

	case xproto.MotionNotifyEvent:
		w := c.windows[ev.Event]
		if w == nil {
			return
		}
		c.queue.Push(event.Mouse{Header: c.header(w), Event: mouse.Event{
			X:         float32(ev.EventX),
			Y:         float32(ev.EventY),
			Modifiers: xconn.Modifiers(ev.State),
		}})

	case xproto.MappingNotifyEvent:
		if ev.Request == xproto.MappingKeyboard || ev.Request == xproto.MappingModifier {
			c.conn.RefreshKeyboard()
		}
	}
}

func (c *context) setMapped(xid xproto.Window, mapped bool) {
	w := c.windows[xid]
	if w == nil || w.mapped == mapped {
		return
	}
	w.mapped = mapped
	c.queue.Push(event.Visibility{Header: c.header(w), Visible: mapped})
}

func (c *context) focus(xid xproto.Window, detail byte, focused bool) {
	w := c.windows[xid]
	if w == nil || detail == xproto.NotifyDetailPointer {
		return
	}
	c.queue.Push(event.Focus{Header: c.header(w), Focused: focused})
}

func (c *context) key(xid xproto.Window, code xproto.Keycode, state uint16, dir key.Direction) {
	w := c.windows[xid]
	if w == nil {
		return
	}
	r, kc := c.conn.LookupKey(code, state)
	c.queue.Push(event.Key{Header: c.header(w), Event: key.Event{
		Rune:      r,
		Code:      kc,
		Modifiers: xconn.Modifiers(state),
		Direction: dir,
	}})
}

func (c *context) button(xid xproto.Window, detail xproto.Button, state uint16, x, y int16, dir mouse.Direction) {
	w := c.windows[xid]
	if w == nil {
		return
	}
	b := pointerButton(detail)
	if b == mouse.ButtonNone {
		return
	}
	if b < 0 {
		// Wheel buttons arrive as press/release pairs; one step per press.
		if dir != mouse.DirPress {
			return
		}
		dir = mouse.DirStep
	}
	c.queue.Push(event.Mouse{Header: c.header(w), Event: mouse.Event{
		X:         float32(x),
		Y:         float32(y),
		Button:    b,
		Modifiers: xconn.Modifiers(state),
		Direction: dir,
	}})
}

func pointerButton(detail xproto.Button) mouse.Button {
	switch detail {
	case xproto.ButtonIndex1:
		return mouse.ButtonLeft
	case xproto.ButtonIndex2:
		return mouse.ButtonMiddle
	case xproto.ButtonIndex3:
		return mouse.ButtonRight
	case xproto.ButtonIndex4:
		return mouse.ButtonWheelUp
	case xproto.ButtonIndex5:
		return mouse.ButtonWheelDown
	case 6:
		return mouse.ButtonWheelLeft
	case 7:
		return mouse.ButtonWheelRight
	}
	return mouse.ButtonNone
}
