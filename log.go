package winkit

import (
	"sync/atomic"

	"github.com/go-logr/logr"
)

var loggerPtr atomic.Pointer[logr.Logger]

func init() {
	l := logr.Discard()
	loggerPtr.Store(&l)
}

// SetLogger sets the logger used by contexts opened without Options.Logger.
// By default winkit logs nothing. Verbosity 1 traces every delivered event.
func SetLogger(l logr.Logger) {
	if l.GetSink() == nil {
		l = logr.Discard()
	}
	loggerPtr.Store(&l)
}

// Logger returns the package default logger.
func Logger() logr.Logger {
	return *loggerPtr.Load()
}
