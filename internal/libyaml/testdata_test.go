// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// YAML-driven test case loading for the scanner and parser tests.

package libyaml

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestCase is one entry of a testdata file. Want lists the expected tokens
// or events; Like is a regular expression the error must match instead.
type TestCase struct {
	Name string   `yaml:"name"`
	Yaml string   `yaml:"yaml"`
	Want []string `yaml:"want"`
	Like string   `yaml:"like"`
}

// loadTestCases reads testdata/<file>, failing the test on any problem.
func loadTestCases(t *testing.T, file string) []TestCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("read %s: %v", file, err)
	}
	var cases []TestCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode %s: %v", file, err)
	}
	if len(cases) == 0 {
		t.Fatalf("%s has no test cases", file)
	}
	return cases
}

// runTestCases runs fn as a subtest for every case in testdata/<file>.
func runTestCases(t *testing.T, file string, fn func(t *testing.T, tc TestCase)) {
	t.Helper()

	for _, tc := range loadTestCases(t, file) {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Like == "" && tc.Want == nil {
				t.Fatalf("case %q needs either want or like", tc.Name)
			}
			fn(t, tc)
		})
	}
}
