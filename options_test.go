// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml_test

import (
	"testing"

	"github.com/gvvaughan/lyaml"
	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

func TestOpenOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  lyaml.Option
		want string
	}{
		{
			name: "unknown encoding",
			opt:  lyaml.WithEncoding("EBCDIC"),
			want: `lyaml: cannot initialize parser: invalid option: unknown encoding "EBCDIC"`,
		},
		{
			name: "negative size",
			opt:  lyaml.WithMaxInputSize(-1),
			want: "lyaml: cannot initialize parser: invalid option: cannot limit input to a negative size",
		},
		{
			name: "combined",
			opt:  lyaml.Options(lyaml.WithMaxInputSize(10), lyaml.WithEncoding("")),
			want: `lyaml: cannot initialize parser: invalid option: unknown encoding ""`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := lyaml.OpenString("a", tt.opt)
			assert.IsNil(t, d)
			var oerr *lyaml.OpenError
			assert.ErrorAs(t, err, &oerr)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestOpenMaxInputSize(t *testing.T) {
	_, err := lyaml.OpenString("abcdef", lyaml.WithMaxInputSize(5))
	var oerr *lyaml.OpenError
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, "lyaml: cannot initialize parser: input of 6 bytes exceeds the 5 byte limit", err.Error())

	events, err := lyaml.Events([]byte("abcde"), lyaml.WithMaxInputSize(5))
	assert.NoError(t, err)
	assert.Equal(t, 5, len(events))

	events, err = lyaml.Events([]byte("abcdef"), lyaml.WithMaxInputSize(0))
	assert.NoError(t, err)
	assert.Equal(t, 5, len(events))
}

func TestOpenNilOptions(t *testing.T) {
	d, err := lyaml.OpenString("a", nil, lyaml.Options(nil), lyaml.WithLogger(nil), lyaml.WithMetrics(nil))
	assert.NoError(t, err)
	defer d.Close()

	ev, err := d.Next()
	assert.NoError(t, err)
	assert.Equal(t, lyaml.StreamStart, ev.Type())
}

func TestWithEncodingAny(t *testing.T) {
	events, err := lyaml.Events([]byte("\xFF\xFEa\x00"), lyaml.WithEncoding(lyaml.AnyEncoding))
	assert.NoError(t, err)
	assert.Equal(t, lyaml.UTF16LEEncoding, events[0].(*lyaml.StreamStartEvent).Encoding)
}
