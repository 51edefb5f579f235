// Package win32 is the Windows driver. It calls user32 and gdi32 through
// golang.org/x/sys/windows without cgo.
//
// Windows receive messages on the OS thread that created them, so Open locks
// the calling goroutine to its thread until the context is closed. All calls
// on a context must come from that goroutine.
//
// Each monitor is a device. Pixel formats are the window-drawable RGBA
// formats of the desktop device context and are shared by all monitors.
package win32
