package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/1broseidon/winkit"
	"github.com/1broseidon/winkit/driver"
)

func runDrivers(args []string) int {
	fs := flag.NewFlagSet("drivers", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	common.register(fs)
	probe := fs.Bool("probe", true, "Open and close each driver to check it works")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winkit drivers [--probe=false]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List registered drivers in the order they would be tried.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	_, opts, flush, err := common.setup(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer flush()

	st := newStyles(os.Stdout)
	fmt.Println(st.Header(fmt.Sprintf("%-10s %-8s %s", "DRIVER", "PRIORITY", "STATUS")))
	for _, info := range driver.Default.Drivers() {
		status := st.Dim("-")
		switch {
		case slices.Contains(opts.Disabled, info.Name):
			status = st.Dim("disabled")
		case *probe:
			ctx, err := winkit.OpenDriver(info.Name, opts)
			if err != nil {
				status = st.Fail("unavailable: " + attemptReason(err))
				break
			}
			n := 0
			if devices, err := ctx.Devices(); err == nil {
				n = len(devices)
			}
			if err := ctx.Close(); err != nil {
				opts.Logger.Error(err, "close context", "driver", info.Name)
			}
			status = st.OK(fmt.Sprintf("ok (%d devices)", n))
		}
		fmt.Printf("%s %-8s %s\n", st.pad(st.name, info.Name, 10), strconv.Itoa(info.Priority), status)
	}
	return 0
}

// attemptReason strips the "no driver available" wrapping from a single
// driver failure.
func attemptReason(err error) string {
	var nde *driver.NoDriverError
	if errors.As(err, &nde) && len(nde.Attempts) == 1 {
		return nde.Attempts[0].Err.Error()
	}
	return err.Error()
}

func runDevices(args []string) int {
	fs := flag.NewFlagSet("devices", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var common commonFlags
	common.register(fs)
	formats := fs.Bool("formats", false, "Also list the pixel formats of every device")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winkit devices [--driver NAME] [--formats]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List the display devices of the selected driver.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	_, opts, flush, err := common.setup(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer flush()

	ctx, err := winkit.Open(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer ctx.Close()

	devices, err := ctx.Devices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	def, err := ctx.DefaultDevice()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	st := newStyles(os.Stdout)
	fmt.Printf("driver: %s\n", st.Name(ctx.Driver()))
	for _, d := range devices {
		marker := " "
		if d.Index() == def.Index() {
			marker = "*"
		}
		b := d.Bounds()
		fmt.Printf("%s %s %s %s\n",
			marker,
			st.Header(fmt.Sprintf("[%d]", d.Index())),
			st.Name(d.Name()),
			st.Dim(fmt.Sprintf("%dx%d+%d+%d", b.Dx(), b.Dy(), b.Min.X, b.Min.Y)))
		if !*formats {
			continue
		}
		pfs, err := d.PixelFormats()
		if err != nil {
			fmt.Printf("    %s\n", st.Fail(err.Error()))
			continue
		}
		dpf, _ := d.DefaultPixelFormat()
		for _, pf := range pfs {
			line := "    " + pf.String()
			if dpf != nil && pf.Equal(dpf) {
				line += st.OK(" (default)")
			}
			fmt.Println(line)
		}
	}
	return 0
}
