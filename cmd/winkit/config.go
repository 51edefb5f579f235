package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/winkit/internal/config"
)

func printConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  winkit config validate [--path PATH]")
	fmt.Fprintln(os.Stderr, "  winkit config print [--path PATH] [--format yaml|toml] [--defaults] [--explain]")
}

func runConfig(args []string) int {
	if len(args) == 0 || wantsHelp(args) {
		printConfigUsage()
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winkit/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			return 2
		}

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if len(res.Files) == 0 {
			fmt.Println("config: ok (defaults, no file)")
			return 0
		}
		fmt.Printf("config: ok (%d files)\n", len(res.Files))
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/winkit/config.yaml)")
		format := fs.String("format", "yaml", "Output format: yaml or toml")
		defaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		explain := fs.Bool("explain", false, "Print every value with the file and line it came from")
		if err := fs.Parse(args[1:]); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			return 2
		}

		if *defaults {
			if err := config.Encode(os.Stdout, config.DefaultConfig(), *format); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		}

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if *explain {
			entries, err := config.ExplainAll(res)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			st := newStyles(os.Stdout)
			for _, e := range entries {
				fmt.Printf("%s = %v  %s\n", st.pad(st.name, e.Path, 18), e.Value, st.Dim("# "+e.Source.String()))
			}
			return 0
		}

		if err := config.Encode(os.Stdout, res.Config, *format); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage()
		return 2
	}
}
