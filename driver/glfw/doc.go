// Package glfw is a portable driver built on GLFW 3.3 through
// github.com/go-gl/glfw. It needs cgo and is compiled only with the glfw
// build tag.
//
// GLFW is process global: only one context can be open at a time and it must
// be used from the goroutine that opened it, which Open locks to its OS
// thread. Each monitor is a device; its pixel formats follow the bit depths
// of the monitor's current video mode.
package glfw
