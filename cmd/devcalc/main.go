// Command devcalc evaluates integer expressions written in binary, octal,
// decimal or hexadecimal and prints every reduction step.
//
//	devcalc [-b bin|oct|dec|hex] [-q] [-lint] [-config file] EXPRESSION
//	devcalc -i
//
// An EXPRESSION of "-" is read from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/woozymasta/devcalc"
	"github.com/woozymasta/devcalc/internal/config"
)

const (
	appName = "Developer Calculator"
	version = "1.0"
	about   = "Developer step by step calculator"
)

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("devcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s %s\n%s\n\nusage: devcalc [flags] EXPRESSION\n\n", appName, version, about)
		fs.PrintDefaults()
	}

	base := devcalc.Dec
	fs.TextVar(&base, "b", devcalc.Dec, "output `base`: bin|2|oct|8|dec|10|hex|16")
	fs.TextVar(&base, "base", devcalc.Dec, "output `base` (same as -b)")
	quiet := fs.Bool("q", false, "print only the result")
	lint := fs.Bool("lint", false, "print expression warnings before evaluating")
	cfgPath := fs.String("config", "", "configuration `file` (default $XDG_CONFIG_HOME/devcalc/config.yaml)")
	interactive := fs.Bool("i", false, "start an interactive session")
	verbose := fs.Bool("v", false, "log progress to stderr")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return exitOK
	}

	logger := log.New(io.Discard, "devcalc: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}

	cfg, err := loadConfig(*cfgPath, logger)
	if err != nil {
		fmt.Fprintf(stderr, "devcalc: %v\n", err)
		return exitUsage
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b", "base":
			cfg.Base = base
		case "q":
			steps := !*quiet
			cfg.Steps = &steps
		case "lint":
			cfg.Lint = *lint
		}
	})
	logger.Printf("output base %s", cfg.Base)

	s := newSession(cfg, stdout, stderr, logger)
	if *interactive {
		return runREPL(s)
	}

	if fs.NArg() != 1 {
		if fs.NArg() == 0 {
			fmt.Fprintln(stderr, "devcalc: missing EXPRESSION")
		} else {
			fmt.Fprintln(stderr, "devcalc: too many arguments, quote the expression")
		}
		fs.Usage()
		return exitUsage
	}

	src := fs.Arg(0)
	var e *devcalc.Expression
	if src == "-" {
		e, err = devcalc.Decode(stdin, cfg.ParseOptions())
	} else {
		e, err = devcalc.ParseString(src, cfg.ParseOptions())
	}
	if s.report(e, err) != nil {
		return exitError
	}

	return exitOK
}

// loadConfig reads the configuration file; the default location is optional.
func loadConfig(path string, logger *log.Logger) (config.Config, error) {
	optional := path == ""
	if optional {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Printf("no config directory: %v", err)
			return config.Default(), nil
		}
		path = p
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return cfg, err
	}
	logger.Printf("config %s", path)

	return cfg, nil
}
