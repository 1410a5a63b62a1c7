// Copyright 2025 The go-yaml Project Contributors
// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for error types.
// Verifies error formatting, unwrapping, and error matching.

package libyaml

import (
	"errors"
	"testing"

	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

func TestMarkedYAMLError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "problem only",
			err: ParserError{
				Mark:    Mark{Line: 2, Column: 4},
				Message: "did not find expected key",
			},
			want: "yaml: line 3, column 5: did not find expected key",
		},
		{
			name: "context at another position",
			err: ScannerError{
				ContextMessage: "while scanning a quoted scalar",
				ContextMark:    Mark{Line: 0, Column: 5},
				Mark:           Mark{Line: 1, Column: 0},
				Message:        "found unexpected end of stream",
			},
			want: "yaml: while scanning a quoted scalar at line 1, column 6: line 2, column 1: found unexpected end of stream",
		},
		{
			name: "context at the same position",
			err: MarkedYAMLError{
				ContextMessage: "while parsing a node",
				ContextMark:    Mark{Line: 3, Column: 0},
				Mark:           Mark{Line: 3, Column: 0},
				Message:        "found undefined tag handle",
			},
			want: "yaml: while parsing a node at line 4, column 1: found undefined tag handle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestReaderErrorUnwrap(t *testing.T) {
	cause := errors.New("invalid leading UTF-8 octet")
	err := error(ReaderError{Offset: 7, Value: 0xFF, Err: cause})

	assert.Equal(t, "yaml: offset 7: invalid leading UTF-8 octet", err.Error())
	assert.ErrorIs(t, err, cause)

	var rerr ReaderError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, 0xFF, rerr.Value)
}

func TestEngineErrorKinds(t *testing.T) {
	_, err := parseAll("\x01")
	var rerr ReaderError
	assert.ErrorAs(t, err, &rerr)

	_, err = parseAll("@")
	var serr ScannerError
	assert.ErrorAs(t, err, &serr)

	_, err = parseAll("]")
	var perr ParserError
	assert.ErrorAs(t, err, &perr)
}
