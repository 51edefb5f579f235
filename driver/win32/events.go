//go:build windows

package win32

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/winkit/event"
)

const wheelDelta = 120

func windowProc(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	w := lookup(hwnd)
	if w == nil {
		return _DefWindowProc(hwnd, msg, wParam, lParam)
	}
	q := w.ctx.queue

	switch msg {
	case _WM_CLOSE:
		// Closing is up to the application.
		q.Push(event.Close{Header: q.Header(w.id)})
		return 0

	case _WM_DESTROY:
		if w.destroyed {
			break
		}
		w.destroyed = true
		delete(w.ctx.windows, hwnd)
		untrack(hwnd)
		q.Push(event.Destroy{Header: q.Header(w.id)})
		return 0

	case _WM_MOVE:
		pos := image.Pt(int(_GET_X_LPARAM(lParam)), int(_GET_Y_LPARAM(lParam)))
		if pos != w.pos {
			w.pos = pos
			q.Push(event.Move{Header: q.Header(w.id), Position: pos})
		}
		return 0

	case _WM_SIZE:
		if wParam == _SIZE_MINIMIZED {
			break
		}
		size := image.Pt(int(_LOWORD(lParam)), int(_HIWORD(lParam)))
		if size != w.size {
			w.size = size
			q.Push(event.Resize{Header: q.Header(w.id), Size: size})
		}
		return 0

	case _WM_SHOWWINDOW:
		if visible := wParam != 0; visible != w.visible {
			w.visible = visible
			q.Push(event.Visibility{Header: q.Header(w.id), Visible: visible})
		}

	case _WM_SETFOCUS, _WM_KILLFOCUS:
		q.Push(event.Focus{Header: q.Header(w.id), Focused: msg == _WM_SETFOCUS})

	case _WM_KEYDOWN, _WM_SYSKEYDOWN:
		w.key(wParam, lParam, key.DirPress)
		if msg == _WM_KEYDOWN {
			return 0
		}

	case _WM_KEYUP, _WM_SYSKEYUP:
		w.key(wParam, lParam, key.DirRelease)
		if msg == _WM_KEYUP {
			return 0
		}

	case _WM_LBUTTONDOWN:
		w.button(lParam, mouse.ButtonLeft, mouse.DirPress)
	case _WM_LBUTTONUP:
		w.button(lParam, mouse.ButtonLeft, mouse.DirRelease)
	case _WM_MBUTTONDOWN:
		w.button(lParam, mouse.ButtonMiddle, mouse.DirPress)
	case _WM_MBUTTONUP:
		w.button(lParam, mouse.ButtonMiddle, mouse.DirRelease)
	case _WM_RBUTTONDOWN:
		w.button(lParam, mouse.ButtonRight, mouse.DirPress)
	case _WM_RBUTTONUP:
		w.button(lParam, mouse.ButtonRight, mouse.DirRelease)
	case _WM_MOUSEMOVE:
		w.button(lParam, mouse.ButtonNone, mouse.DirNone)

	case _WM_MOUSEWHEEL, _WM_MOUSEHWHEEL:
		w.wheel(msg, wParam, lParam)
		return 0
	}
	return _DefWindowProc(hwnd, msg, wParam, lParam)
}

func (w *window) key(wParam, lParam uintptr, dir key.Direction) {
	vk := uint32(wParam)
	scan := uint32(lParam>>16) & 0xff
	r := rune(-1)
	var state [256]byte
	if _GetKeyboardState(&state) == nil {
		var buf [4]uint16
		if n := _ToUnicode(vk, scan, &state, buf[:]); n == 1 {
			r = rune(buf[0])
		}
	}
	q := w.ctx.queue
	q.Push(event.Key{Header: q.Header(w.id), Event: key.Event{
		Rune:      r,
		Code:      virtualKeyCode(vk),
		Modifiers: keyModifiers(_GetKeyState),
		Direction: dir,
	}})
}

func (w *window) button(lParam uintptr, b mouse.Button, dir mouse.Direction) {
	q := w.ctx.queue
	q.Push(event.Mouse{Header: q.Header(w.id), Event: mouse.Event{
		X:         float32(_GET_X_LPARAM(lParam)),
		Y:         float32(_GET_Y_LPARAM(lParam)),
		Button:    b,
		Modifiers: keyModifiers(_GetKeyState),
		Direction: dir,
	}})
}

// wheel reports one step per notch. Wheel coordinates are in screen space.
func (w *window) wheel(msg uint32, wParam, lParam uintptr) {
	delta := int16(_HIWORD(wParam))
	var b mouse.Button
	switch {
	case msg == _WM_MOUSEWHEEL && delta > 0:
		b = mouse.ButtonWheelUp
	case msg == _WM_MOUSEWHEEL:
		b = mouse.ButtonWheelDown
	case delta > 0:
		b = mouse.ButtonWheelRight
	default:
		b = mouse.ButtonWheelLeft
	}
	pt := _POINT{X: _GET_X_LPARAM(lParam), Y: _GET_Y_LPARAM(lParam)}
	_ScreenToClient(w.hwnd, &pt)

	steps := int(delta) / wheelDelta
	if steps < 0 {
		steps = -steps
	}
	q := w.ctx.queue
	for range max(steps, 1) {
		q.Push(event.Mouse{Header: q.Header(w.id), Event: mouse.Event{
			X:         float32(pt.X),
			Y:         float32(pt.Y),
			Button:    b,
			Modifiers: keyModifiers(_GetKeyState),
			Direction: mouse.DirStep,
		}})
	}
}
