package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/1broseidon/winkit"
	_ "github.com/1broseidon/winkit/driver/all"
	"github.com/1broseidon/winkit/internal/config"
	"github.com/1broseidon/winkit/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "drivers":
		os.Exit(runDrivers(os.Args[2:]))
	case "devices":
		os.Exit(runDevices(os.Args[2:]))
	case "events":
		os.Exit(runEvents(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winkit <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  drivers             List registered drivers and whether they open")
	fmt.Fprintln(w, "  devices             List devices and pixel formats of a driver")
	fmt.Fprintln(w, "  events              Open a window and print every event it receives")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winkit <command> --help' for command-specific options.")
}

// commonFlags are shared by every command that opens a context.
type commonFlags struct {
	path     string
	driver   string
	logLevel string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.path, "path", "", "Config file path (default: ~/.config/winkit/config.yaml)")
	fs.StringVar(&c.driver, "driver", "", "Force a driver by name (overrides "+winkit.EnvDriver+")")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// setup loads configuration, installs the package logger and returns the
// options for opening contexts. The returned function flushes the logger.
func (c *commonFlags) setup(stderr io.Writer) (*config.Config, winkit.Options, func(), error) {
	res, err := loadConfig(c.path)
	if err != nil {
		return nil, winkit.Options{}, nil, err
	}
	cfg := res.Config

	level := cfg.Logging.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	log, sync, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	if err != nil {
		return nil, winkit.Options{}, nil, err
	}
	log = log.WithName("winkit")
	winkit.SetLogger(log)

	opts := optionsFromConfig(cfg, log)
	if c.driver != "" {
		opts.Driver = c.driver
	}
	return cfg, opts, func() { _ = sync() }, nil
}

func optionsFromConfig(cfg *config.Config, log logr.Logger) winkit.Options {
	return winkit.Options{
		Order:      cfg.Drivers.Order,
		Disabled:   cfg.Drivers.Disabled,
		Display:    cfg.Display,
		Xauthority: cfg.XAuthority,
		Logger:     log,
	}
}

func wantsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help")
}
