package winkit

import "github.com/1broseidon/winkit/driver"

// Errors returned by winkit. They are the driver package sentinels, so
// errors.Is works regardless of which package a caller imports.
var (
	ErrNoDriverAvailable    = driver.ErrNoDriverAvailable
	ErrInvalidConfiguration = driver.ErrInvalidConfiguration
	ErrWindowClosed         = driver.ErrWindowClosed
	ErrContextClosed        = driver.ErrContextClosed
)

// ErrBuilderSpent is returned by Build on a builder that already created a
// window or failed natively.
var ErrBuilderSpent error = &driver.ConfigError{Field: "builder", Reason: "already used"}
