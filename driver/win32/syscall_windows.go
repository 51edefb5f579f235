//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type _POINT struct {
	X int32
	Y int32
}

type _RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type _MSG struct {
	Hwnd     windows.HWND
	Message  uint32
	Wparam   uintptr
	Lparam   uintptr
	Time     uint32
	Pt       _POINT
	LPrivate uint32
}

type _WNDCLASSEX struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}

type _MONITORINFOEX struct {
	CbSize    uint32
	RcMonitor _RECT
	RcWork    _RECT
	DwFlags   uint32
	SzDevice  [32]uint16
}

const (
	_WM_DESTROY     = 0x0002
	_WM_MOVE        = 0x0003
	_WM_SIZE        = 0x0005
	_WM_SETFOCUS    = 0x0007
	_WM_KILLFOCUS   = 0x0008
	_WM_CLOSE       = 0x0010
	_WM_SHOWWINDOW  = 0x0018
	_WM_KEYDOWN     = 0x0100
	_WM_KEYUP       = 0x0101
	_WM_SYSKEYDOWN  = 0x0104
	_WM_SYSKEYUP    = 0x0105
	_WM_MOUSEMOVE   = 0x0200
	_WM_LBUTTONDOWN = 0x0201
	_WM_LBUTTONUP   = 0x0202
	_WM_RBUTTONDOWN = 0x0204
	_WM_RBUTTONUP   = 0x0205
	_WM_MBUTTONDOWN = 0x0207
	_WM_MBUTTONUP   = 0x0208
	_WM_MOUSEWHEEL  = 0x020A
	_WM_MOUSEHWHEEL = 0x020E

	_SIZE_MINIMIZED = 1
)

const (
	_WS_OVERLAPPED  = 0x00000000
	_WS_POPUP       = 0x80000000
	_WS_CAPTION     = 0x00C00000
	_WS_SYSMENU     = 0x00080000
	_WS_THICKFRAME  = 0x00040000
	_WS_MINIMIZEBOX = 0x00020000
	_WS_MAXIMIZEBOX = 0x00010000

	_WS_EX_APPWINDOW = 0x00040000

	_CS_HREDRAW = 0x0002
	_CS_VREDRAW = 0x0001
	_CS_OWNDC   = 0x0020

	_CW_USEDEFAULT = -0x80000000

	_SW_HIDE = 0
	_SW_SHOW = 5

	_SWP_NOSIZE     = 0x0001
	_SWP_NOMOVE     = 0x0002
	_SWP_NOZORDER   = 0x0004
	_SWP_NOACTIVATE = 0x0010

	_PM_REMOVE = 0x0001

	_QS_ALLINPUT          = 0x04FF
	_MWMO_INPUTAVAILABLE  = 0x0004
	_WAIT_TIMEOUT         = 0x00000102
	_INFINITE             = 0xFFFFFFFF
	_MONITORINFOF_PRIMARY = 0x00000001

	_IDC_ARROW    = 32512
	_COLOR_WINDOW = 5

	_ERROR_CLASS_ALREADY_EXISTS = 1410
)

func _LOWORD(l uintptr) uint16 { return uint16(uint32(l)) }
func _HIWORD(l uintptr) uint16 { return uint16(uint32(l >> 16)) }

func _GET_X_LPARAM(lp uintptr) int32 { return int32(int16(_LOWORD(lp))) }
func _GET_Y_LPARAM(lp uintptr) int32 { return int32(int16(_HIWORD(lp))) }

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modgdi32    = windows.NewLazySystemDLL("gdi32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW            = moduser32.NewProc("RegisterClassExW")
	procCreateWindowExW             = moduser32.NewProc("CreateWindowExW")
	procDestroyWindow               = moduser32.NewProc("DestroyWindow")
	procDefWindowProcW              = moduser32.NewProc("DefWindowProcW")
	procAdjustWindowRectEx          = moduser32.NewProc("AdjustWindowRectEx")
	procShowWindow                  = moduser32.NewProc("ShowWindow")
	procSetWindowPos                = moduser32.NewProc("SetWindowPos")
	procGetClientRect               = moduser32.NewProc("GetClientRect")
	procClientToScreen              = moduser32.NewProc("ClientToScreen")
	procScreenToClient              = moduser32.NewProc("ScreenToClient")
	procSetWindowTextW              = moduser32.NewProc("SetWindowTextW")
	procGetWindowTextW              = moduser32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW        = moduser32.NewProc("GetWindowTextLengthW")
	procPeekMessageW                = moduser32.NewProc("PeekMessageW")
	procTranslateMessage            = moduser32.NewProc("TranslateMessage")
	procDispatchMessageW            = moduser32.NewProc("DispatchMessageW")
	procPostMessageW                = moduser32.NewProc("PostMessageW")
	procMsgWaitForMultipleObjectsEx = moduser32.NewProc("MsgWaitForMultipleObjectsEx")
	procEnumDisplayMonitors         = moduser32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW             = moduser32.NewProc("GetMonitorInfoW")
	procLoadCursorW                 = moduser32.NewProc("LoadCursorW")
	procGetDC                       = moduser32.NewProc("GetDC")
	procReleaseDC                   = moduser32.NewProc("ReleaseDC")
	procGetKeyboardState            = moduser32.NewProc("GetKeyboardState")
	procGetKeyState                 = moduser32.NewProc("GetKeyState")
	procToUnicode                   = moduser32.NewProc("ToUnicode")

	procDescribePixelFormat = modgdi32.NewProc("DescribePixelFormat")
	procSetPixelFormat      = modgdi32.NewProc("SetPixelFormat")

	procGetModuleHandleW = modkernel32.NewProc("GetModuleHandleW")
)

func _RegisterClassEx(wc *_WNDCLASSEX) (uint16, error) {
	r1, _, e1 := procRegisterClassExW.Call(uintptr(unsafe.Pointer(wc)))
	if r1 == 0 {
		return 0, e1
	}
	return uint16(r1), nil
}

func _CreateWindowEx(exstyle uint32, className, windowText *uint16, style uint32, x, y, width, height int32, parent windows.HWND, hInstance windows.Handle) (windows.HWND, error) {
	r1, _, e1 := procCreateWindowExW.Call(
		uintptr(exstyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowText)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(parent),
		0,
		uintptr(hInstance),
		0,
	)
	if r1 == 0 {
		return 0, e1
	}
	return windows.HWND(r1), nil
}

func _DestroyWindow(hwnd windows.HWND) error {
	r1, _, e1 := procDestroyWindow.Call(uintptr(hwnd))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _DefWindowProc(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	r1, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r1
}

func _AdjustWindowRectEx(rect *_RECT, style uint32, menu bool, exstyle uint32) error {
	var m uintptr
	if menu {
		m = 1
	}
	r1, _, e1 := procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(rect)), uintptr(style), m, uintptr(exstyle))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _ShowWindow(hwnd windows.HWND, cmd int32) bool {
	r1, _, _ := procShowWindow.Call(uintptr(hwnd), uintptr(cmd))
	return r1 != 0
}

func _SetWindowPos(hwnd windows.HWND, x, y, cx, cy int32, flags uint32) error {
	r1, _, e1 := procSetWindowPos.Call(uintptr(hwnd), 0, uintptr(x), uintptr(y), uintptr(cx), uintptr(cy), uintptr(flags))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _GetClientRect(hwnd windows.HWND, rect *_RECT) error {
	r1, _, e1 := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(rect)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _ClientToScreen(hwnd windows.HWND, pt *_POINT) error {
	r1, _, e1 := procClientToScreen.Call(uintptr(hwnd), uintptr(unsafe.Pointer(pt)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _ScreenToClient(hwnd windows.HWND, pt *_POINT) error {
	r1, _, e1 := procScreenToClient.Call(uintptr(hwnd), uintptr(unsafe.Pointer(pt)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _SetWindowText(hwnd windows.HWND, text *uint16) error {
	r1, _, e1 := procSetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(text)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _GetWindowText(hwnd windows.HWND) (string, error) {
	n, _, e1 := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		if e1 != windows.ERROR_SUCCESS {
			return "", e1
		}
		return "", nil
	}
	buf := make([]uint16, n+1)
	r1, _, e1 := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r1 == 0 && e1 != windows.ERROR_SUCCESS {
		return "", e1
	}
	return windows.UTF16ToString(buf[:r1]), nil
}

func _PeekMessage(msg *_MSG, hwnd windows.HWND, filterMin, filterMax, remove uint32) bool {
	r1, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(msg)), uintptr(hwnd), uintptr(filterMin), uintptr(filterMax), uintptr(remove))
	return r1 != 0
}

func _TranslateMessage(msg *_MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

func _DispatchMessage(msg *_MSG) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

func _PostMessage(hwnd windows.HWND, msg uint32, wParam, lParam uintptr) error {
	r1, _, e1 := procPostMessageW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	if r1 == 0 {
		return e1
	}
	return nil
}

func _MsgWaitForMultipleObjectsEx(millis uint32, wakeMask, flags uint32) (uint32, error) {
	r1, _, e1 := procMsgWaitForMultipleObjectsEx.Call(0, 0, uintptr(millis), uintptr(wakeMask), uintptr(flags))
	if uint32(r1) == 0xFFFFFFFF {
		return 0, e1
	}
	return uint32(r1), nil
}

func _EnumDisplayMonitors(callback uintptr) error {
	r1, _, e1 := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if r1 == 0 {
		return e1
	}
	return nil
}

func _GetMonitorInfo(monitor windows.Handle, info *_MONITORINFOEX) error {
	r1, _, e1 := procGetMonitorInfoW.Call(uintptr(monitor), uintptr(unsafe.Pointer(info)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _LoadCursor(name uintptr) (windows.Handle, error) {
	r1, _, e1 := procLoadCursorW.Call(0, name)
	if r1 == 0 {
		return 0, e1
	}
	return windows.Handle(r1), nil
}

func _GetDC(hwnd windows.HWND) (windows.Handle, error) {
	r1, _, e1 := procGetDC.Call(uintptr(hwnd))
	if r1 == 0 {
		return 0, e1
	}
	return windows.Handle(r1), nil
}

func _ReleaseDC(hwnd windows.HWND, dc windows.Handle) {
	procReleaseDC.Call(uintptr(hwnd), uintptr(dc))
}

func _GetKeyboardState(state *[256]byte) error {
	r1, _, e1 := procGetKeyboardState.Call(uintptr(unsafe.Pointer(&state[0])))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _GetKeyState(vk int32) int16 {
	r1, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(r1)
}

func _ToUnicode(vk, scan uint32, state *[256]byte, buf []uint16) int32 {
	r1, _, _ := procToUnicode.Call(
		uintptr(vk), uintptr(scan),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
		0,
	)
	return int32(r1)
}

func _DescribePixelFormat(dc windows.Handle, index int32, pfd *_PIXELFORMATDESCRIPTOR) (int32, error) {
	r1, _, e1 := procDescribePixelFormat.Call(uintptr(dc), uintptr(index), unsafe.Sizeof(*pfd), uintptr(unsafe.Pointer(pfd)))
	if r1 == 0 {
		return 0, e1
	}
	return int32(r1), nil
}

func _SetPixelFormat(dc windows.Handle, index int32, pfd *_PIXELFORMATDESCRIPTOR) error {
	r1, _, e1 := procSetPixelFormat.Call(uintptr(dc), uintptr(index), uintptr(unsafe.Pointer(pfd)))
	if r1 == 0 {
		return e1
	}
	return nil
}

func _GetModuleHandle() (windows.Handle, error) {
	r1, _, e1 := procGetModuleHandleW.Call(0)
	if r1 == 0 {
		return 0, e1
	}
	return windows.Handle(r1), nil
}
