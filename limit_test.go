// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml_test

import (
	"strings"
	"testing"

	"github.com/gvvaughan/lyaml"
	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

var limitTests = []struct {
	name   string
	data   []byte
	events int
	error  string
}{
	{
		name:  "1000kb of deeply nested slices",
		data:  []byte(strings.Repeat(`[`, 1000*1024)),
		error: "^lyaml: scanner error: while increasing flow level at line 1, column 10001: exceeded max depth of 10000$",
	},
	{
		name:  "1000kb of deeply nested maps",
		data:  []byte("x: " + strings.Repeat(`{`, 1000*1024)),
		error: "^lyaml: scanner error: while increasing flow level at line 1, column 10004: exceeded max depth of 10000$",
	},
	{
		name:  "1000kb of deeply nested indents",
		data:  []byte(strings.Repeat(`- `, 1000*1024)),
		error: "^lyaml: scanner error: while increasing indent level .*exceeded max depth of 10000$",
	},
	{
		name:   "slices nested at max depth",
		data:   []byte(strings.Repeat(`[`, 10000) + strings.Repeat(`]`, 10000)),
		events: 2*10000 + 4,
	},
	{
		name:   "aliases are not expanded",
		data:   []byte("a: &a [x]\nb: [" + strings.Repeat("*a, ", 99) + "*a]\n"),
		events: 113,
	},
	{
		name:   "1000kb of maps",
		data:   []byte(`a: &a [{a}` + strings.Repeat(`,{a}`, 1000*1024/4-1) + `]`),
		events: 9 + 4*(1000*1024/4),
	},
}

func TestLimits(t *testing.T) {
	for _, tc := range limitTests {
		t.Run(tc.name, func(t *testing.T) {
			events, err := lyaml.Events(tc.data)
			if tc.error != "" {
				assert.ErrorMatches(t, tc.error, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.events, len(events))
		})
	}
}

func TestLimitInputSize(t *testing.T) {
	data := []byte(strings.Repeat("- x\n", 1024))

	_, err := lyaml.Events(data, lyaml.WithMaxInputSize(len(data)-1))
	var oerr *lyaml.OpenError
	assert.ErrorAs(t, err, &oerr)

	events, err := lyaml.Events(data, lyaml.WithMaxInputSize(len(data)))
	assert.NoError(t, err)
	assert.Equal(t, 6+1024, len(events))
}

func BenchmarkLimits(b *testing.B) {
	for _, tc := range limitTests {
		b.Run(tc.name, func(b *testing.B) {
			for b.Loop() {
				_, err := lyaml.Events(tc.data)
				if tc.error != "" {
					assert.ErrorMatches(b, tc.error, err)
					continue
				}
				assert.NoError(b, err)
			}
		})
	}
}
