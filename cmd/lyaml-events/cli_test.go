// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gvvaughan/lyaml"
	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

// TestCase is one invocation of the command from testdata/cli.yaml.
type TestCase struct {
	Name   string   `yaml:"name"`
	Args   []string `yaml:"args"`
	Stdin  string   `yaml:"stdin"`
	Stdout string   `yaml:"stdout"`
	Stderr string   `yaml:"stderr"`
	Code   int      `yaml:"code"`
}

func runCLI(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCLI(t *testing.T) {
	data, err := os.ReadFile("testdata/cli.yaml")
	assert.NoError(t, err)
	var cases []TestCase
	assert.NoError(t, yaml.Unmarshal(data, &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tc.Args, tc.Stdin)
			assert.Equalf(t, tc.Code, code, "stderr: %s", stderr)
			assert.Equal(t, tc.Stdout, stdout)
			if tc.Stderr != "" {
				assert.Contains(t, stderr, tc.Stderr)
			}
		})
	}
}

func TestCLIFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	assert.NoError(t, os.WriteFile(first, []byte("a\n"), 0o644))
	assert.NoError(t, os.WriteFile(second, []byte("- b\n"), 0o644))

	code, stdout, _ := runCLI([]string{first, second}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "+STR\n+DOC\n=VAL :a\n-DOC\n-STR\n+STR\n+DOC\n+SEQ\n=VAL :b\n-SEQ\n-DOC\n-STR\n", stdout)

	code, _, stderr := runCLI([]string{filepath.Join(dir, "missing.yaml")}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.yaml")
}

func TestCLIConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lyaml.toml")
	assert.NoError(t, os.WriteFile(path, []byte("format = \"events\"\nmarks = true\nmax_size = 100\n"), 0o644))

	code, stdout, _ := runCLI([]string{"-config", path}, "x")
	assert.Equal(t, 0, code)
	assert.Equal(t, "+STR (1:1)\n+DOC (1:1)\n=VAL :x (1:1-2)\n-DOC (2:1)\n-STR (2:1)\n", stdout)

	// Flags win over the file.
	code, stdout, _ = runCLI([]string{"-config", path, "-m=false"}, "x")
	assert.Equal(t, 0, code)
	assert.Equal(t, "+STR\n+DOC\n=VAL :x\n-DOC\n-STR\n", stdout)
}

func TestCLIConfigErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.toml")
	assert.NoError(t, os.WriteFile(unknown, []byte("indent = 2\n"), 0o644))
	invalid := filepath.Join(dir, "invalid.toml")
	assert.NoError(t, os.WriteFile(invalid, []byte("format = \n"), 0o644))

	code, _, stderr := runCLI([]string{"-config", unknown}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown key "indent"`)

	code, _, stderr = runCLI([]string{"-config", invalid}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid.toml")
}

func TestCLIColor(t *testing.T) {
	code, stdout, _ := runCLI([]string{"-color", "always"}, "x")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "=VAL :x")

	code, stdout, _ = runCLI([]string{"-color", "never"}, "x")
	assert.Equal(t, 0, code)
	assert.False(t, strings.Contains(stdout, "\x1b["))
}

func TestCLIDebugLog(t *testing.T) {
	code, _, stderr := runCLI([]string{"-log.level", "debug"}, "x")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, `msg="released parser" reason=exhausted events=5`)

	code, _, stderr = runCLI([]string{"-log.level", "loud"}, "x")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown log level "loud"`)
}

func TestCLIVersionAndHelp(t *testing.T) {
	code, stdout, _ := runCLI([]string{"-version"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "lyaml-events "+version+"\n", stdout)

	code, _, stderr := runCLI([]string{"-h"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage: lyaml-events")

	code, _, _ = runCLI([]string{"-nope"}, "")
	assert.Equal(t, 2, code)
}

func TestFormatPos(t *testing.T) {
	tests := []struct {
		start, end lyaml.Mark
		want       string
	}{
		{lyaml.Mark{}, lyaml.Mark{}, "1:1"},
		{lyaml.Mark{Index: 3, Column: 3}, lyaml.Mark{Index: 5, Column: 5}, "1:4-6"},
		{lyaml.Mark{Index: 9, Line: 1, Column: 2}, lyaml.Mark{Index: 20, Line: 3}, "2:3-4:1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPos(tt.start, tt.end))
	}
}
