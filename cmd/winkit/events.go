package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
	"github.com/1broseidon/winkit/event"
	"github.com/1broseidon/winkit/internal/config"
)

func runEvents(args []string) int {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	common.register(fs)
	title := fs.String("title", "", "Window title (default from config)")
	width := fs.Int("width", 0, "Window width (default from config)")
	height := fs.Int("height", 0, "Window height (default from config)")
	centered := fs.Bool("centered", true, "Center the window on the default device")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winkit events [--driver NAME] [--title T] [--width W] [--height H]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open one window and print every event it receives. Closing the window")
		fmt.Fprintln(os.Stderr, "destroys it and exits.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, opts, flush, err := common.setup(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer flush()

	wc := cfg.Window
	if *title != "" {
		wc.Title = *title
	}
	if *width != 0 {
		wc.Width = *width
	}
	if *height != 0 {
		wc.Height = *height
	}

	ctx, err := winkit.Open(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer ctx.Close()

	b := ctx.NewWindowBuilder(nil).
		Title(wc.Title).
		Size(wc.Width, wc.Height).
		Style(windowStyle(wc))
	if *centered {
		b = b.Centered()
	}
	w, err := b.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	opts.Logger.Info("window created", "driver", ctx.Driver(), "window", w.ID(), "title", wc.Title)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := newStyles(os.Stdout)
	err = ctx.Run(sigCtx, event.UpdatePassive, func(e event.Event) error {
		if _, ok := e.(event.Update); ok {
			return nil
		}
		fmt.Printf("%s %s\n", st.Dim(e.Timestamp().Format("15:04:05.000")), event.Describe(e))

		switch e.(type) {
		case event.Close:
			if err := w.Destroy(); err != nil {
				return err
			}
			return winkit.ErrStopRun
		case event.Destroy:
			return winkit.ErrStopRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func windowStyle(wc config.WindowConfig) driver.Style {
	s := driver.StyleClosable
	if wc.Decorated {
		s |= driver.StyleDecorated
	}
	if wc.Resizable {
		s |= driver.StyleResizable
	}
	return s
}
