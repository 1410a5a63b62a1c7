// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

// Event is one parse event. The concrete type is one of the ten *Event
// structs declared in this file; no other implementations exist.
type Event interface {
	Type() EventType
	Start() Mark
	End() Mark
	event()
}

// VersionDirective is the version named by a %YAML directive.
type VersionDirective struct {
	Major int
	Minor int
}

// TagDirective is one %TAG directive.
type TagDirective struct {
	Handle string
	Prefix string
}

// StreamStartEvent opens the stream and reports the detected encoding.
type StreamStartEvent struct {
	Span
	Encoding Encoding
}

// StreamEndEvent is always the last event of a well-formed stream.
type StreamEndEvent struct {
	Span
}

// DocumentStartEvent opens a document. VersionDirective and TagDirectives are
// nil unless the document declared them.
type DocumentStartEvent struct {
	Span
	Implicit         bool
	VersionDirective *VersionDirective
	TagDirectives    []TagDirective
}

// DocumentEndEvent closes a document. Implicit is false when the document
// was terminated by an explicit "..." marker.
type DocumentEndEvent struct {
	Span
	Implicit bool
}

// AliasEvent refers back to an anchored node.
type AliasEvent struct {
	Span
	Anchor string
}

// ScalarEvent carries a scalar value. PlainImplicit reports that the tag may
// be omitted for the plain style, QuotedImplicit for any other style.
type ScalarEvent struct {
	Span
	Anchor         *string
	Tag            *string
	Value          string
	PlainImplicit  bool
	QuotedImplicit bool
}

// SequenceStartEvent opens a sequence.
type SequenceStartEvent struct {
	Span
	Anchor   *string
	Tag      *string
	Implicit bool
	Style    CollectionStyle
}

// SequenceEndEvent closes a sequence.
type SequenceEndEvent struct {
	Span
}

// MappingStartEvent opens a mapping.
type MappingStartEvent struct {
	Span
	Anchor   *string
	Tag      *string
	Implicit bool
	Style    CollectionStyle
}

// MappingEndEvent closes a mapping.
type MappingEndEvent struct {
	Span
}

func (*StreamStartEvent) Type() EventType   { return StreamStart }
func (*StreamEndEvent) Type() EventType     { return StreamEnd }
func (*DocumentStartEvent) Type() EventType { return DocumentStart }
func (*DocumentEndEvent) Type() EventType   { return DocumentEnd }
func (*AliasEvent) Type() EventType         { return Alias }
func (*ScalarEvent) Type() EventType        { return Scalar }
func (*SequenceStartEvent) Type() EventType { return SequenceStart }
func (*SequenceEndEvent) Type() EventType   { return SequenceEnd }
func (*MappingStartEvent) Type() EventType  { return MappingStart }
func (*MappingEndEvent) Type() EventType    { return MappingEnd }

func (*StreamStartEvent) event()   {}
func (*StreamEndEvent) event()     {}
func (*DocumentStartEvent) event() {}
func (*DocumentEndEvent) event()   {}
func (*AliasEvent) event()         {}
func (*ScalarEvent) event()        {}
func (*SequenceStartEvent) event() {}
func (*SequenceEndEvent) event()   {}
func (*MappingStartEvent) event()  {}
func (*MappingEndEvent) event()    {}
