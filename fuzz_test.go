// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gvvaughan/lyaml"
)

// setupSeedCorpus adds the YAML test suite inputs when they are present.
func setupSeedCorpus(f *testing.F) {
	f.Add([]byte("a: [1, &x {b: *x}]\n"))
	f.Add([]byte("%YAML 1.2\n%TAG !e! tag:e.com:\n--- !e!t |\n  text\n...\n"))

	root := filepath.Join("yts", "testdata", "data-2022-01-17")
	if _, err := os.Stat(root); err != nil {
		return
	}
	if err := filepath.WalkDir(root, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || filepath.Ext(p) != ".yaml" {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		f.Add(b)
		return nil
	}); err != nil {
		f.Fatalf("could not read test suite at %q: %s", root, err)
	}
}

func FuzzEvents(f *testing.F) {
	setupSeedCorpus(f)
	f.Fuzz(func(t *testing.T, in []byte) {
		events, err := lyaml.Events(in)
		if err != nil {
			var perr *lyaml.ParseError
			var derr *lyaml.DecodeError
			if !errors.As(err, &perr) && !errors.As(err, &derr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		if len(events) < 2 {
			t.Fatalf("got %d events for %q", len(events), in)
		}
		if events[0].Type() != lyaml.StreamStart || events[len(events)-1].Type() != lyaml.StreamEnd {
			t.Fatalf("stream not bracketed for %q", in)
		}
		for _, ev := range events {
			if ev.Start().Index > ev.End().Index {
				t.Fatalf("%s ends before it starts in %q", lyaml.FormatEvent(ev), in)
			}
		}
	})
}
