// Package logging builds the logr.Logger used by the winkit command.
package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Level is one of debug, info, warn or error.
	Level string
	// Format is console or json for zap, or text for the standard library
	// logger.
	Format string
	Output io.Writer
}

// New returns a logger and a function that flushes buffered output.
func New(opts Options) (logr.Logger, func() error, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), nil, err
	}

	switch opts.Format {
	case "text":
		// stdr has no severity threshold; only debug enables V(1).
		if level <= zapcore.DebugLevel {
			stdr.SetVerbosity(1)
		} else {
			stdr.SetVerbosity(0)
		}
		l := stdr.New(log.New(opts.Output, "", log.LstdFlags))
		return l, func() error { return nil }, nil

	case "json", "console", "":
		var enc zapcore.Encoder
		if opts.Format == "json" {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		} else {
			ec := zap.NewDevelopmentEncoderConfig()
			ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
			enc = zapcore.NewConsoleEncoder(ec)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), level)
		zl := zap.New(core)
		return zapr.NewLogger(zl), zl.Sync, nil
	}
	return logr.Discard(), nil, fmt.Errorf("unknown log format %q", opts.Format)
}

func parseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
