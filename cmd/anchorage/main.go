// Package main is the entry point for the anchorage batch editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/anchorage/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage reports bad command-line arguments after usage was printed.
var errUsage = errors.New("usage")

type cliOptions struct {
	app.Options
	File       string
	Code       string
	ScriptPath string
	OutputPath string
	Version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if opts.Version {
		fmt.Fprintf(stdout, "anchorage %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	opts.ScriptOutput = stderr
	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := edit(application, opts, stdout); err != nil {
		application.Logger().Error("%v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// edit opens the file, runs the requested script and writes the result.
func edit(a *app.Application, opts cliOptions, stdout io.Writer) error {
	if err := a.Open(opts.File); err != nil {
		return err
	}

	switch {
	case opts.Code != "":
		if err := a.RunString(opts.Code); err != nil {
			return err
		}
	case opts.ScriptPath != "":
		if err := a.RunFile(opts.ScriptPath); err != nil {
			return err
		}
	}

	if opts.OutputPath != "" {
		return a.Save(opts.OutputPath)
	}
	_, err := a.WriteTo(stdout)
	return err
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("anchorage", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.Code, "exec", "", "Lua code to run against the file")
	fs.StringVar(&opts.Code, "e", "", "Lua code to run against the file (shorthand)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua script file to run against the file")
	fs.StringVar(&opts.ScriptPath, "s", "", "Lua script file to run against the file (shorthand)")
	fs.StringVar(&opts.OutputPath, "output", "", "Write the result here instead of stdout")
	fs.StringVar(&opts.OutputPath, "o", "", "Write the result here instead of stdout (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	fs.BoolVar(&opts.ReadOnly, "readonly", false, "Open the file read-only")
	fs.BoolVar(&opts.ReadOnly, "R", false, "Open the file read-only (shorthand)")
	fs.BoolVar(&opts.Version, "version", false, "Show version information")
	fs.BoolVar(&opts.Version, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "anchorage - scriptable batch text editor\n\n")
		fmt.Fprintf(stderr, "Usage: anchorage [options] file\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  anchorage -e 'ed.insert(\"# \", 0)' notes.md      Prefix the file\n")
		fmt.Fprintf(stderr, "  anchorage -s fix.lua -o out.txt in.txt           Run a script, write out.txt\n")
		fmt.Fprintf(stderr, "  anchorage -R -e 'print(ed.len())' big.log         Inspect without editing\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Version {
		return opts, nil
	}

	if opts.Code != "" && opts.ScriptPath != "" {
		return opts, errors.New("-e and -s are mutually exclusive")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errUsage
	}
	opts.File = fs.Arg(0)
	return opts, nil
}
