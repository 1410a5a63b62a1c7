// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary prints the parse events of YAML streams read from files or
// stdin, as test-suite event lines, JSON lines or YAML documents.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/gvvaughan/lyaml"
)

// version is the current version of the lyaml-events tool.
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on success, 1
// when an input cannot be read or decoded and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lyaml-events", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := defaultConfig()
	var set config
	configFile := fs.String("config", "", "Load defaults from a TOML file")
	fs.StringVar(&set.Format, "f", def.Format, "Output format: events, json or yaml")
	fs.BoolVar(&set.Marks, "m", def.Marks, "Show marks in events output")
	fs.StringVar(&set.Color, "color", def.Color, "Color events output: auto, always or never")
	fs.IntVar(&set.MaxSize, "max-size", def.MaxSize, "Reject inputs larger than this many bytes (0 = no limit)")
	fs.StringVar(&set.Encoding, "encoding", def.Encoding, "Input encoding: ANY, UTF8, UTF16LE or UTF16BE")
	fs.StringVar(&set.LogLevel, "log.level", def.LogLevel, "Log level: debug, info, warn or error")
	showVersion := fs.Bool("version", false, "Show the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lyaml-events [options] [file ...]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "lyaml-events %s\n", version)
		return 0
	}

	cfg := def
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) { cfg.override(f.Name, set) })
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	opts := lyaml.Options(
		lyaml.WithLogger(logger),
		lyaml.WithEncoding(lyaml.Encoding(cfg.Encoding)),
		lyaml.WithMaxInputSize(cfg.MaxSize),
	)

	out := newPrinter(cfg, stdout)
	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	status := 0
	for _, name := range inputs {
		if err := decodeInput(name, stdin, out, opts); err != nil {
			level.Debug(logger).Log("msg", "input failed", "input", name, "err", err)
			fmt.Fprintf(stderr, "Error: %s: %v\n", displayName(name), err)
			status = 1
			break
		}
	}
	if err := out.close(); err != nil && status == 0 {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		status = 1
	}
	return status
}

// decodeInput prints every event of one input. Events decoded before a
// failure are printed before the failure is returned.
func decodeInput(name string, stdin io.Reader, out printer, opts lyaml.Option) error {
	data, err := readInput(name, stdin)
	if err != nil {
		return err
	}
	d, err := lyaml.Open(data, opts)
	if err != nil {
		return err
	}
	defer d.Close()

	for ev, err := range d.All() {
		if err != nil {
			return err
		}
		if err := out.print(ev); err != nil {
			return err
		}
	}
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
