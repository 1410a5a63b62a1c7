// Copyright 2025 The go-yaml Project Contributors
// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the scanner stage.
// Verifies input stream to token stream transformation, indentation handling,
// and simple keys.

package libyaml

import (
	"testing"

	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

// scanAll returns every token up to and including STREAM-END, or the first
// scanner error.
func scanAll(input string) ([]Token, error) {
	parser := NewParser()
	parser.SetInputString([]byte(input))
	defer parser.Delete()

	var tokens []Token
	for {
		var token Token
		if err := parser.Scan(&token); err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Type == STREAM_END_TOKEN {
			return tokens, nil
		}
	}
}

func TestScanner(t *testing.T) {
	runTestCases(t, "scanner.yaml", func(t *testing.T, tc TestCase) {
		tokens, err := scanAll(tc.Yaml)
		if tc.Like != "" {
			assert.ErrorMatches(t, tc.Like, err)
			var serr ScannerError
			assert.ErrorAs(t, err, &serr)
			return
		}
		assert.NoError(t, err)

		got := make([]string, len(tokens))
		for i, token := range tokens {
			got[i] = token.Type.String()
		}
		assert.DeepEqual(t, tc.Want, got)
	})
}

func TestScannerTokenValues(t *testing.T) {
	tokens, err := scanAll("%TAG !e! tag:example.com,2000:\n--- !e!foo &a 'x''y'\n")
	assert.NoError(t, err)
	assert.Equal(t, 7, len(tokens))

	directive := tokens[1]
	assert.Equal(t, TAG_DIRECTIVE_TOKEN, directive.Type)
	assert.Equal(t, "!e!", string(directive.Value))
	assert.Equal(t, "tag:example.com,2000:", string(directive.prefix))

	tag := tokens[3]
	assert.Equal(t, TAG_TOKEN, tag.Type)
	assert.Equal(t, "!e!", string(tag.Value))
	assert.Equal(t, "foo", string(tag.suffix))

	anchor := tokens[4]
	assert.Equal(t, ANCHOR_TOKEN, anchor.Type)
	assert.Equal(t, "a", string(anchor.Value))

	scalar := tokens[5]
	assert.Equal(t, SCALAR_TOKEN, scalar.Type)
	assert.Equal(t, "x'y", string(scalar.Value))
	assert.Equal(t, SINGLE_QUOTED_SCALAR_STYLE, scalar.Style)
	assert.Equal(t, Mark{Index: 45, Line: 1, Column: 14}, scalar.StartMark)
	assert.Equal(t, Mark{Index: 51, Line: 1, Column: 20}, scalar.EndMark)
}

func TestScannerVersionDirective(t *testing.T) {
	tokens, err := scanAll("%YAML 1.2\n---\n")
	assert.NoError(t, err)
	assert.Equal(t, VERSION_DIRECTIVE_TOKEN, tokens[1].Type)
	assert.Equal(t, int8(1), tokens[1].major)
	assert.Equal(t, int8(2), tokens[1].minor)
}

func TestScannerScalarStyles(t *testing.T) {
	tests := []struct {
		input string
		value string
		style ScalarStyle
	}{
		{"plain text", "plain text", PLAIN_SCALAR_STYLE},
		{"'single'", "single", SINGLE_QUOTED_SCALAR_STYLE},
		{`"tab\there é \/"`, "tab\there é /", DOUBLE_QUOTED_SCALAR_STYLE},
		{"|\n  line1\n  line2\n", "line1\nline2\n", LITERAL_SCALAR_STYLE},
		{">-\n  folded\n  text\n", "folded text", FOLDED_SCALAR_STYLE},
		{"|+\n  keep\n\n", "keep\n\n", LITERAL_SCALAR_STYLE},
		{"\"multi\n  line\"", "multi line", DOUBLE_QUOTED_SCALAR_STYLE},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := scanAll(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, SCALAR_TOKEN, tokens[1].Type)
			assert.Equal(t, tt.value, string(tokens[1].Value))
			assert.Equal(t, tt.style, tokens[1].Style)
		})
	}
}

func TestScannerStreamEncoding(t *testing.T) {
	tokens, err := scanAll("\xFF\xFEa\x00")
	assert.NoError(t, err)
	assert.Equal(t, UTF16LE_ENCODING, tokens[0].encoding)
	assert.Equal(t, "a", string(tokens[1].Value))
}

func TestScannerErrorIsSticky(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("'unterminated"))

	var token Token
	var first error
	for first == nil {
		first = parser.Scan(&token)
	}
	assert.ErrorIs(t, parser.Scan(&token), first)
	assert.Equal(t, NO_TOKEN, token.Type)
}

func TestScannerAfterStreamEnd(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("a"))

	var token Token
	for token.Type != STREAM_END_TOKEN {
		assert.NoError(t, parser.Scan(&token))
	}
	assert.NoError(t, parser.Scan(&token))
	assert.Equal(t, NO_TOKEN, token.Type)
}
