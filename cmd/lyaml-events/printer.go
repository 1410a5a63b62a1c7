// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/gvvaughan/lyaml"
)

// printer writes events in one output format.
type printer interface {
	print(ev lyaml.Event) error
	close() error
}

func newPrinter(cfg config, w io.Writer) printer {
	switch cfg.Format {
	case "json":
		return &jsonPrinter{enc: json.NewEncoder(w)}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlPrinter{enc: enc}
	}
	return &eventsPrinter{
		w:      w,
		marks:  cfg.Marks,
		colors: newEventColors(useColor(cfg.Color, w)),
	}
}

// jsonPrinter writes one JSON record per line.
type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) print(ev lyaml.Event) error { return p.enc.Encode(ev) }
func (p *jsonPrinter) close() error               { return nil }

// yamlPrinter writes one YAML document per event.
type yamlPrinter struct {
	enc *yaml.Encoder
}

func (p *yamlPrinter) print(ev lyaml.Event) error { return p.enc.Encode(ev) }
func (p *yamlPrinter) close() error               { return p.enc.Close() }

// eventsPrinter writes test-suite event lines, optionally followed by the
// event position.
type eventsPrinter struct {
	w      io.Writer
	marks  bool
	colors map[lyaml.EventType]*color.Color
}

func (p *eventsPrinter) print(ev lyaml.Event) error {
	line := lyaml.FormatEvent(ev)
	if p.marks {
		line += " (" + formatPos(ev.Start(), ev.End()) + ")"
	}
	_, err := p.colors[ev.Type()].Fprintln(p.w, line)
	return err
}

func (p *eventsPrinter) close() error { return nil }

// formatPos renders 1-based positions as "L:C", "L:C-C" or "L:C-L:C".
func formatPos(start, end lyaml.Mark) string {
	sl, sc, el, ec := start.Line+1, start.Column+1, end.Line+1, end.Column+1
	switch {
	case start == end:
		return fmt.Sprintf("%d:%d", sl, sc)
	case sl == el:
		return fmt.Sprintf("%d:%d-%d", sl, sc, ec)
	default:
		return fmt.Sprintf("%d:%d-%d:%d", sl, sc, el, ec)
	}
}

func newEventColors(enabled bool) map[lyaml.EventType]*color.Color {
	attrs := map[lyaml.EventType][]color.Attribute{
		lyaml.StreamStart:   {color.Faint},
		lyaml.StreamEnd:     {color.Faint},
		lyaml.DocumentStart: {color.FgBlue, color.Bold},
		lyaml.DocumentEnd:   {color.FgBlue, color.Bold},
		lyaml.Alias:         {color.FgCyan},
		lyaml.Scalar:        {color.FgGreen},
		lyaml.SequenceStart: {color.FgYellow},
		lyaml.SequenceEnd:   {color.FgYellow},
		lyaml.MappingStart:  {color.FgMagenta},
		lyaml.MappingEnd:    {color.FgMagenta},
	}
	colors := make(map[lyaml.EventType]*color.Color, len(attrs))
	for t, a := range attrs {
		c := color.New(a...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		colors[t] = c
	}
	return colors
}

// useColor resolves the color mode. In auto mode color is used only for a
// terminal and only when NO_COLOR is unset.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
