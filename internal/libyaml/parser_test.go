// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"io"
	"testing"

	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

// parseAll returns every event of the stream, or the first parse error.
func parseAll(input string) ([]Event, error) {
	parser := NewParser()
	parser.SetInputString([]byte(input))
	defer parser.Delete()

	var events []Event
	for {
		var event Event
		err := parser.Parse(&event)
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

func TestParser(t *testing.T) {
	runTestCases(t, "parser.yaml", func(t *testing.T, tc TestCase) {
		events, err := parseAll(tc.Yaml)
		if tc.Like != "" {
			assert.ErrorMatches(t, tc.Like, err)
			return
		}
		assert.NoError(t, err)

		got := make([]string, len(events))
		for i := range events {
			got[i] = formatEvent(&events[i])
		}
		assert.DeepEqual(t, tc.Want, got)
	})
}

func TestParseStreamEndIsTerminal(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("a"))

	var event Event
	for event.Type != STREAM_END_EVENT {
		assert.NoError(t, parser.Parse(&event))
	}
	for range 3 {
		assert.ErrorIs(t, parser.Parse(&event), io.EOF)
		assert.Equal(t, NO_EVENT, event.Type)
	}
}

func TestParseErrorIsSticky(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("[a"))

	var event Event
	var first error
	for first == nil {
		first = parser.Parse(&event)
	}
	var perr ParserError
	assert.ErrorAs(t, first, &perr)
	assert.Equal(t, "did not find expected ',' or ']'", perr.Message)
	assert.Equal(t, "while parsing a flow sequence", perr.ContextMessage)
	assert.Equal(t, Mark{Index: 2, Line: 1, Column: 0}, perr.Mark)

	assert.ErrorIs(t, parser.Parse(&event), first)
	assert.Equal(t, NO_EVENT, event.Type)
}

func TestParseEventFields(t *testing.T) {
	events, err := parseAll("%YAML 1.2\n%TAG !e! tag:e.com:\n--- &m {x: 'y', z: !e!t \"\"}\n")
	assert.NoError(t, err)
	assert.Equal(t, 10, len(events))

	stream := events[0]
	assert.Equal(t, STREAM_START_EVENT, stream.Type)
	assert.Equal(t, UTF8_ENCODING, stream.Encoding)

	doc := events[1]
	assert.Equal(t, DOCUMENT_START_EVENT, doc.Type)
	assert.False(t, doc.Implicit)
	assert.DeepEqual(t, &VersionDirective{Major: 1, Minor: 2}, doc.VersionDirective)
	assert.Equal(t, 1, len(doc.TagDirectives))
	assert.Equal(t, "!e!", string(doc.TagDirectives[0].Handle))
	assert.Equal(t, "tag:e.com:", string(doc.TagDirectives[0].Prefix))
	assert.Equal(t, Mark{Index: 0, Line: 0, Column: 0}, doc.StartMark)
	assert.Equal(t, Mark{Index: 33, Line: 2, Column: 3}, doc.EndMark)

	mapping := events[2]
	assert.Equal(t, MAPPING_START_EVENT, mapping.Type)
	assert.Equal(t, "m", string(mapping.Anchor))
	assert.IsNil(t, mapping.Tag)
	assert.True(t, mapping.Implicit)
	assert.Equal(t, FLOW_MAPPING_STYLE, mapping.MappingStyle())

	key := events[3]
	assert.Equal(t, "x", string(key.Value))
	assert.IsNil(t, key.Anchor)
	assert.True(t, key.Implicit)
	assert.False(t, key.QuotedImplicit)

	quoted := events[4]
	assert.Equal(t, "y", string(quoted.Value))
	assert.False(t, quoted.Implicit)
	assert.True(t, quoted.QuotedImplicit)
	assert.Equal(t, SINGLE_QUOTED_SCALAR_STYLE, quoted.ScalarStyle())

	tagged := events[6]
	assert.Equal(t, "tag:e.com:t", string(tagged.Tag))
	assert.NotNil(t, tagged.Value)
	assert.Equal(t, 0, len(tagged.Value))
	assert.False(t, tagged.Implicit)
	assert.False(t, tagged.QuotedImplicit)
	assert.Equal(t, DOUBLE_QUOTED_SCALAR_STYLE, tagged.ScalarStyle())

	assert.Equal(t, MAPPING_END_EVENT, events[7].Type)
	assert.Equal(t, DOCUMENT_END_EVENT, events[8].Type)
	assert.True(t, events[8].Implicit)
	assert.Equal(t, STREAM_END_EVENT, events[9].Type)
}

func TestParseImplicitDocumentHasNoDirectives(t *testing.T) {
	events, err := parseAll("a: b\n")
	assert.NoError(t, err)

	doc := events[1]
	assert.True(t, doc.Implicit)
	assert.IsNil(t, doc.VersionDirective)
	assert.IsNil(t, doc.TagDirectives)
}

func TestParseImplicitDocumentIsZeroWidth(t *testing.T) {
	events, err := parseAll("  x\n")
	assert.NoError(t, err)

	doc := events[1]
	assert.Equal(t, DOCUMENT_START_EVENT, doc.Type)
	assert.Equal(t, Mark{Index: 2, Line: 0, Column: 2}, doc.StartMark)
	assert.Equal(t, doc.StartMark, doc.EndMark)
	assert.Equal(t, Mark{Index: 3, Line: 0, Column: 3}, events[2].EndMark)
}

func TestParseTagDirectivesAreDocumentScoped(t *testing.T) {
	_, err := parseAll("%TAG !e! tag:e.com:\n--- !e!a x\n...\n--- !e!b y\n")
	assert.ErrorMatches(t, `found undefined tag handle`, err)
}

func TestParseScalarMarks(t *testing.T) {
	events, err := parseAll("key: value\n")
	assert.NoError(t, err)

	value := events[4]
	assert.Equal(t, SCALAR_EVENT, value.Type)
	assert.Equal(t, Mark{Index: 5, Line: 0, Column: 5}, value.StartMark)
	assert.Equal(t, Mark{Index: 10, Line: 0, Column: 10}, value.EndMark)
	assert.Equal(t, "line 1, column 6", value.StartMark.String())
}

func TestParseForcedEncoding(t *testing.T) {
	parser := NewParser()
	parser.SetEncoding(UTF16BE_ENCODING)
	parser.SetInputString([]byte{0x00, 'a'})

	var event Event
	assert.NoError(t, parser.Parse(&event))
	assert.Equal(t, UTF16BE_ENCODING, event.Encoding)
	assert.NoError(t, parser.Parse(&event))
	assert.NoError(t, parser.Parse(&event))
	assert.Equal(t, "a", string(event.Value))

	assert.PanicMatches(t, "must set the encoding only once", func() {
		parser.SetEncoding(UTF8_ENCODING)
	})
}

func TestParserStateString(t *testing.T) {
	assert.Equal(t, "PARSE_FLOW_NODE_STATE", PARSE_FLOW_NODE_STATE.String())
	assert.Equal(t, "<unknown parser state>", ParserState(-1).String())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "mapping end", MAPPING_END_EVENT.String())
	assert.Equal(t, "unknown event 42", EventType(42).String())
}
