// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import "github.com/gvvaughan/lyaml/internal/libyaml"

// Encoding names the character encoding of a stream.
type Encoding string

const (
	AnyEncoding     Encoding = "ANY"
	UTF8Encoding    Encoding = "UTF8"
	UTF16LEEncoding Encoding = "UTF16LE"
	UTF16BEEncoding Encoding = "UTF16BE"
)

var encodingNames = [...]Encoding{
	libyaml.ANY_ENCODING:     AnyEncoding,
	libyaml.UTF8_ENCODING:    UTF8Encoding,
	libyaml.UTF16LE_ENCODING: UTF16LEEncoding,
	libyaml.UTF16BE_ENCODING: UTF16BEEncoding,
}

func encodingName(code libyaml.Encoding) (Encoding, error) {
	if code < 0 || int(code) >= len(encodingNames) {
		return "", &DecodeError{What: "encoding", Code: int(code)}
	}
	return encodingNames[code], nil
}

// engineEncoding maps a name back to the engine code. It is used for the
// forced input encoding.
func engineEncoding(name Encoding) (libyaml.Encoding, bool) {
	for code, n := range encodingNames {
		if n == name {
			return libyaml.Encoding(code), true
		}
	}
	return 0, false
}

// CollectionStyle names the layout of a sequence or mapping.
type CollectionStyle string

const (
	AnyStyle   CollectionStyle = "ANY"
	BlockStyle CollectionStyle = "BLOCK"
	FlowStyle  CollectionStyle = "FLOW"
)

// The engine numbers sequence and mapping styles identically.
var collectionStyleNames = [...]CollectionStyle{
	libyaml.ANY_SEQUENCE_STYLE:   AnyStyle,
	libyaml.BLOCK_SEQUENCE_STYLE: BlockStyle,
	libyaml.FLOW_SEQUENCE_STYLE:  FlowStyle,
}

func collectionStyleName(what string, code libyaml.Style) (CollectionStyle, error) {
	if code < 0 || int(code) >= len(collectionStyleNames) {
		return "", &DecodeError{What: what, Code: int(code)}
	}
	return collectionStyleNames[code], nil
}

// EventType names the kind of an event.
type EventType string

const (
	StreamStart   EventType = "STREAM-START"
	StreamEnd     EventType = "STREAM-END"
	DocumentStart EventType = "DOCUMENT-START"
	DocumentEnd   EventType = "DOCUMENT-END"
	Alias         EventType = "ALIAS"
	Scalar        EventType = "SCALAR"
	SequenceStart EventType = "SEQUENCE-START"
	SequenceEnd   EventType = "SEQUENCE-END"
	MappingStart  EventType = "MAPPING-START"
	MappingEnd    EventType = "MAPPING-END"
)

// EventTypes lists every event type in engine order.
var EventTypes = []EventType{
	StreamStart, StreamEnd,
	DocumentStart, DocumentEnd,
	Alias, Scalar,
	SequenceStart, SequenceEnd,
	MappingStart, MappingEnd,
}
