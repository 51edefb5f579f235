package driver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDriverAvailable is matched by the error returned when driver
	// selection finds nothing that opens.
	ErrNoDriverAvailable = errors.New("no driver available")
	// ErrInvalidConfiguration is matched by every *ConfigError.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrWindowClosed is returned by operations on a destroyed window.
	ErrWindowClosed = errors.New("window closed")
	// ErrContextClosed is returned by operations on objects whose context
	// has been closed.
	ErrContextClosed = errors.New("context closed")

	ErrConnectionLost = errors.New("connection lost")
	ErrUnsupported    = errors.New("not supported on this platform")
	ErrDisabled       = errors.New("disabled")
)

// Error is a failure reported by a native windowing system.
type Error struct {
	Driver string
	Op     string
	Err    error
}

func (e *Error) Error() string {
	return e.Driver + ": " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error whose cause is formatted like fmt.Errorf.
func Errorf(driver, op, format string, args ...any) error {
	return &Error{Driver: driver, Op: op, Err: fmt.Errorf(format, args...)}
}

// ConfigError rejects a value before any native resource is touched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfiguration }

// Attempt records why one candidate driver was not selected.
type Attempt struct {
	Driver string
	Err    error
}

// NoDriverError lists every driver that was considered and failed.
type NoDriverError struct {
	Attempts []Attempt
	// err combines the attempt errors.
	err error
}

func (e *NoDriverError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrNoDriverAvailable.Error() + ": no drivers registered"
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Driver+": "+a.Err.Error())
	}
	return ErrNoDriverAvailable.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *NoDriverError) Is(target error) bool { return target == ErrNoDriverAvailable }

func (e *NoDriverError) Unwrap() error { return e.err }

// Drivers returns the names of every attempted driver in order.
func (e *NoDriverError) Drivers() []string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Driver
	}
	return names
}
