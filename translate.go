// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import "github.com/gvvaughan/lyaml/internal/libyaml"

type translator func(e *libyaml.Event) (Event, error)

// translators is indexed by the raw event type. NO_EVENT has no entry.
var translators = [...]translator{
	libyaml.STREAM_START_EVENT:   translateStreamStart,
	libyaml.STREAM_END_EVENT:     translateStreamEnd,
	libyaml.DOCUMENT_START_EVENT: translateDocumentStart,
	libyaml.DOCUMENT_END_EVENT:   translateDocumentEnd,
	libyaml.ALIAS_EVENT:          translateAlias,
	libyaml.SCALAR_EVENT:         translateScalar,
	libyaml.SEQUENCE_START_EVENT: translateSequenceStart,
	libyaml.SEQUENCE_END_EVENT:   translateSequenceEnd,
	libyaml.MAPPING_START_EVENT:  translateMappingStart,
	libyaml.MAPPING_END_EVENT:    translateMappingEnd,
}

// translate converts one raw event. It never returns a partially filled
// event alongside an error.
func translate(e *libyaml.Event) (Event, error) {
	if e.Type < 0 || int(e.Type) >= len(translators) || translators[e.Type] == nil {
		return nil, &DecodeError{What: "event", Code: int(e.Type)}
	}
	return translators[e.Type](e)
}

func translateStreamStart(e *libyaml.Event) (Event, error) {
	enc, err := encodingName(e.Encoding)
	if err != nil {
		return nil, err
	}
	return &StreamStartEvent{Span: translateSpan(e), Encoding: enc}, nil
}

func translateStreamEnd(e *libyaml.Event) (Event, error) {
	return &StreamEndEvent{Span: translateSpan(e)}, nil
}

func translateDocumentStart(e *libyaml.Event) (Event, error) {
	ev := &DocumentStartEvent{Span: translateSpan(e), Implicit: e.Implicit}
	if v := e.VersionDirective; v != nil {
		ev.VersionDirective = &VersionDirective{Major: int(v.Major), Minor: int(v.Minor)}
	}
	if len(e.TagDirectives) > 0 {
		ev.TagDirectives = make([]TagDirective, len(e.TagDirectives))
		for i, td := range e.TagDirectives {
			ev.TagDirectives[i] = TagDirective{Handle: string(td.Handle), Prefix: string(td.Prefix)}
		}
	}
	return ev, nil
}

func translateDocumentEnd(e *libyaml.Event) (Event, error) {
	return &DocumentEndEvent{Span: translateSpan(e), Implicit: e.Implicit}, nil
}

func translateAlias(e *libyaml.Event) (Event, error) {
	return &AliasEvent{Span: translateSpan(e), Anchor: string(e.Anchor)}, nil
}

func translateScalar(e *libyaml.Event) (Event, error) {
	return &ScalarEvent{
		Span:           translateSpan(e),
		Anchor:         optionalString(e.Anchor),
		Tag:            optionalString(e.Tag),
		Value:          string(e.Value),
		PlainImplicit:  e.Implicit,
		QuotedImplicit: e.QuotedImplicit,
	}, nil
}

func translateSequenceStart(e *libyaml.Event) (Event, error) {
	style, err := collectionStyleName("sequence style", e.Style)
	if err != nil {
		return nil, err
	}
	return &SequenceStartEvent{
		Span:     translateSpan(e),
		Anchor:   optionalString(e.Anchor),
		Tag:      optionalString(e.Tag),
		Implicit: e.Implicit,
		Style:    style,
	}, nil
}

func translateSequenceEnd(e *libyaml.Event) (Event, error) {
	return &SequenceEndEvent{Span: translateSpan(e)}, nil
}

func translateMappingStart(e *libyaml.Event) (Event, error) {
	style, err := collectionStyleName("mapping style", e.Style)
	if err != nil {
		return nil, err
	}
	return &MappingStartEvent{
		Span:     translateSpan(e),
		Anchor:   optionalString(e.Anchor),
		Tag:      optionalString(e.Tag),
		Implicit: e.Implicit,
		Style:    style,
	}, nil
}

func translateMappingEnd(e *libyaml.Event) (Event, error) {
	return &MappingEndEvent{Span: translateSpan(e)}, nil
}

// optionalString maps the engine's nil slice to an absent value.
func optionalString(b []byte) *string {
	if b == nil {
		return nil
	}
	s := string(b)
	return &s
}
