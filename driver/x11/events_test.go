//go:build linux || freebsd || openbsd || netbsd || dragonfly

package x11

import (
	"errors"
	"image"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/go-logr/logr"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
)

const (
	testRoot     xproto.Window = 0x100
	testXID      xproto.Window = 0x200
	testProtoAtm xproto.Atom   = 40
	testDelAtm   xproto.Atom   = 41
)

// newTestContext returns a context without a server connection. Only the
// translations that do not query the server can be exercised with it.
func newTestContext() (*context, *window) {
	c := &context{
		log:            logr.Discard(),
		queue:          event.NewQueue(),
		windows:        make(map[xproto.Window]*window),
		wmProtocols:    testProtoAtm,
		wmDeleteWindow: testDelAtm,
	}
	w := &window{
		ctx:    c,
		id:     9,
		root:   testRoot,
		parent: testRoot,
		size:   image.Pt(640, 480),
	}
	c.windows[testXID] = w
	return c, w
}

func drainQueue(c *context) []event.Event {
	var out []event.Event
	for {
		e, ok := c.queue.Pop()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestTranslateClientMessage(t *testing.T) {
	c, _ := newTestContext()
	msg := func(typ, proto xproto.Atom) xproto.ClientMessageEvent {
		return xproto.ClientMessageEvent{
			Format: 32,
			Window: testXID,
			Type:   typ,
			Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(proto), 0, 0, 0, 0}),
		}
	}
	c.translate(msg(testProtoAtm, 99))
	c.translate(msg(77, testDelAtm))
	c.translate(msg(testProtoAtm, testDelAtm))

	got := drainQueue(c)
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if _, ok := got[0].(event.Close); !ok || got[0].WindowID() != 9 {
		t.Fatalf("got %s, want close for window 9", event.Describe(got[0]))
	}
}

func TestTranslateConfigureOnlyOnChange(t *testing.T) {
	c, w := newTestContext()
	c.translate(xproto.ConfigureNotifyEvent{Event: testXID, Window: testXID, X: 0, Y: 0, Width: 640, Height: 480})
	if n := c.queue.Len(); n != 0 {
		t.Fatalf("unchanged geometry produced %d events", n)
	}

	c.translate(xproto.ConfigureNotifyEvent{Event: testXID, Window: testXID, X: 10, Y: 20, Width: 800, Height: 600})
	got := drainQueue(c)
	if len(got) != 2 {
		t.Fatalf("got %d events, want resize and move", len(got))
	}
	if r, ok := got[0].(event.Resize); !ok || r.Size != image.Pt(800, 600) {
		t.Fatalf("first event = %s, want resize to 800x600", event.Describe(got[0]))
	}
	if m, ok := got[1].(event.Move); !ok || m.Position != image.Pt(10, 20) {
		t.Fatalf("second event = %s, want move to (10,20)", event.Describe(got[1]))
	}
	if w.size != image.Pt(800, 600) || w.pos != image.Pt(10, 20) {
		t.Fatalf("cached geometry not updated: size=%v pos=%v", w.size, w.pos)
	}
}

func TestTranslateVisibility(t *testing.T) {
	c, _ := newTestContext()
	c.translate(xproto.MapNotifyEvent{Event: testXID, Window: testXID})
	c.translate(xproto.MapNotifyEvent{Event: testXID, Window: testXID})
	c.translate(xproto.UnmapNotifyEvent{Event: testXID, Window: testXID})

	got := drainQueue(c)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if v := got[0].(event.Visibility); !v.Visible {
		t.Fatalf("first visibility event should be visible")
	}
	if v := got[1].(event.Visibility); v.Visible {
		t.Fatalf("second visibility event should be hidden")
	}
}

func TestTranslateDestroyExpiresWindow(t *testing.T) {
	c, w := newTestContext()
	c.translate(xproto.DestroyNotifyEvent{Event: testXID, Window: testXID})
	c.translate(xproto.MapNotifyEvent{Event: testXID, Window: testXID})

	got := drainQueue(c)
	if len(got) != 1 {
		t.Fatalf("got %d events, want only the destroy", len(got))
	}
	if _, ok := got[0].(event.Destroy); !ok {
		t.Fatalf("got %s, want destroy", event.Describe(got[0]))
	}
	if !w.destroyed {
		t.Fatalf("window not marked destroyed")
	}
	if _, ok := c.windows[testXID]; ok {
		t.Fatalf("window still tracked after destroy")
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		result   waitResult
		lost     bool
		wantSize int
	}{
		{name: "closed connection", result: waitResult{}, lost: true},
		{name: "x error", result: waitResult{err: xproto.WindowError{NiceName: "Window", BadValue: uint32(testXID)}}},
		{name: "event", result: waitResult{ev: xproto.MapNotifyEvent{Event: testXID, Window: testXID}}, wantSize: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext()
			err := c.handle(tt.result)
			if !tt.lost {
				if err != nil {
					t.Fatalf("handle = %v, want nil", err)
				}
				if n := c.queue.Len(); n != tt.wantSize {
					t.Fatalf("queued %d events, want %d", n, tt.wantSize)
				}
				return
			}

			var derr *driver.Error
			if !errors.As(err, &derr) {
				t.Fatalf("handle = %v, want *driver.Error", err)
			}
			if derr.Driver != Name {
				t.Errorf("Driver = %q, want %q", derr.Driver, Name)
			}
			if !errors.Is(err, driver.ErrConnectionLost) {
				t.Errorf("handle = %v, want ErrConnectionLost", err)
			}
			if c.queue.Len() != 0 {
				t.Errorf("lost connection queued events")
			}
		})
	}
}

func TestTranslateFocus(t *testing.T) {
	c, _ := newTestContext()
	c.translate(xproto.FocusInEvent{Event: testXID, Detail: xproto.NotifyDetailPointer})
	c.translate(xproto.FocusInEvent{Event: testXID, Detail: xproto.NotifyDetailNonlinear})
	c.translate(xproto.FocusOutEvent{Event: testXID, Detail: xproto.NotifyDetailNonlinear})

	got := drainQueue(c)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if f := got[0].(event.Focus); !f.Focused {
		t.Fatalf("expected focus in first")
	}
	if f := got[1].(event.Focus); f.Focused {
		t.Fatalf("expected focus out second")
	}
}

func TestTranslateButtons(t *testing.T) {
	tests := []struct {
		name    string
		ev      xproto.ButtonPressEvent
		release bool
		want    []mouse.Event
	}{
		{
			name: "left press",
			ev:   xproto.ButtonPressEvent{Event: testXID, Detail: 1, EventX: 3, EventY: 4, State: xproto.ModMaskShift},
			want: []mouse.Event{{X: 3, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirPress, Modifiers: key.ModShift}},
		},
		{
			name:    "right release",
			ev:      xproto.ButtonPressEvent{Event: testXID, Detail: 3},
			release: true,
			want:    []mouse.Event{{Button: mouse.ButtonRight, Direction: mouse.DirRelease}},
		},
		{
			name: "wheel down press steps",
			ev:   xproto.ButtonPressEvent{Event: testXID, Detail: 5},
			want: []mouse.Event{{Button: mouse.ButtonWheelDown, Direction: mouse.DirStep}},
		},
		{
			name:    "wheel release ignored",
			ev:      xproto.ButtonPressEvent{Event: testXID, Detail: 4},
			release: true,
		},
		{
			name: "unknown button ignored",
			ev:   xproto.ButtonPressEvent{Event: testXID, Detail: 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext()
			if tt.release {
				c.translate(xproto.ButtonReleaseEvent(tt.ev))
			} else {
				c.translate(tt.ev)
			}
			got := drainQueue(c)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				m := e.(event.Mouse)
				if m.Event != tt.want[i] {
					t.Fatalf("event %d = %+v, want %+v", i, m.Event, tt.want[i])
				}
			}
		})
	}
}

func TestTranslateIgnoresUnknownWindows(t *testing.T) {
	c, _ := newTestContext()
	other := testXID + 1
	c.translate(xproto.MapNotifyEvent{Event: other, Window: other})
	c.translate(xproto.DestroyNotifyEvent{Event: other, Window: other})
	c.translate(xproto.MotionNotifyEvent{Event: other})
	if n := c.queue.Len(); n != 0 {
		t.Fatalf("events for unknown window produced %d events", n)
	}
}

func TestClamp(t *testing.T) {
	if got := clampSize(image.Pt(0, 70000)); got != image.Pt(1, 65535) {
		t.Fatalf("clampSize = %v", got)
	}
	if got := clampPos(image.Pt(-40000, 40000)); got != image.Pt(-32768, 32767) {
		t.Fatalf("clampPos = %v", got)
	}
}
