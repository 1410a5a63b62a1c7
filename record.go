// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"github.com/goccy/go-json"
)

// Record returns ev as a generic record: "type", "start_mark" and
// "end_mark", plus the payload fields of the event kind. Optional fields
// are left out when the event does not carry them.
//
// A scalar record has value, plain_implicit and quoted_implicit; sequence
// and mapping starts have implicit and style; a document start has implicit
// and may have version_directive and tag_directives.
func Record(ev Event) map[string]any {
	r := map[string]any{
		"type":       string(ev.Type()),
		"start_mark": ev.Start().record(),
		"end_mark":   ev.End().record(),
	}
	switch ev := ev.(type) {
	case *StreamStartEvent:
		r["encoding"] = string(ev.Encoding)
	case *DocumentStartEvent:
		r["implicit"] = ev.Implicit
		if v := ev.VersionDirective; v != nil {
			r["version_directive"] = map[string]any{"major": v.Major, "minor": v.Minor}
		}
		if len(ev.TagDirectives) > 0 {
			tds := make([]any, len(ev.TagDirectives))
			for i, td := range ev.TagDirectives {
				tds[i] = map[string]any{"handle": td.Handle, "prefix": td.Prefix}
			}
			r["tag_directives"] = tds
		}
	case *DocumentEndEvent:
		r["implicit"] = ev.Implicit
	case *AliasEvent:
		r["anchor"] = ev.Anchor
	case *ScalarEvent:
		setOptional(r, "anchor", ev.Anchor)
		setOptional(r, "tag", ev.Tag)
		r["value"] = ev.Value
		r["plain_implicit"] = ev.PlainImplicit
		r["quoted_implicit"] = ev.QuotedImplicit
	case *SequenceStartEvent:
		setOptional(r, "anchor", ev.Anchor)
		setOptional(r, "tag", ev.Tag)
		r["implicit"] = ev.Implicit
		r["style"] = string(ev.Style)
	case *MappingStartEvent:
		setOptional(r, "anchor", ev.Anchor)
		setOptional(r, "tag", ev.Tag)
		r["implicit"] = ev.Implicit
		r["style"] = string(ev.Style)
	}
	return r
}

func setOptional(r map[string]any, key string, v *string) {
	if v != nil {
		r[key] = *v
	}
}

func marshalRecord(ev Event) ([]byte, error) {
	return json.Marshal(Record(ev))
}

// MarshalJSON and MarshalYAML encode every event as its Record.

func (ev *StreamStartEvent) MarshalJSON() ([]byte, error)   { return marshalRecord(ev) }
func (ev *StreamEndEvent) MarshalJSON() ([]byte, error)     { return marshalRecord(ev) }
func (ev *DocumentStartEvent) MarshalJSON() ([]byte, error) { return marshalRecord(ev) }
func (ev *DocumentEndEvent) MarshalJSON() ([]byte, error)   { return marshalRecord(ev) }
func (ev *AliasEvent) MarshalJSON() ([]byte, error)         { return marshalRecord(ev) }
func (ev *ScalarEvent) MarshalJSON() ([]byte, error)        { return marshalRecord(ev) }
func (ev *SequenceStartEvent) MarshalJSON() ([]byte, error) { return marshalRecord(ev) }
func (ev *SequenceEndEvent) MarshalJSON() ([]byte, error)   { return marshalRecord(ev) }
func (ev *MappingStartEvent) MarshalJSON() ([]byte, error)  { return marshalRecord(ev) }
func (ev *MappingEndEvent) MarshalJSON() ([]byte, error)    { return marshalRecord(ev) }

func (ev *StreamStartEvent) MarshalYAML() (any, error)   { return Record(ev), nil }
func (ev *StreamEndEvent) MarshalYAML() (any, error)     { return Record(ev), nil }
func (ev *DocumentStartEvent) MarshalYAML() (any, error) { return Record(ev), nil }
func (ev *DocumentEndEvent) MarshalYAML() (any, error)   { return Record(ev), nil }
func (ev *AliasEvent) MarshalYAML() (any, error)         { return Record(ev), nil }
func (ev *ScalarEvent) MarshalYAML() (any, error)        { return Record(ev), nil }
func (ev *SequenceStartEvent) MarshalYAML() (any, error) { return Record(ev), nil }
func (ev *SequenceEndEvent) MarshalYAML() (any, error)   { return Record(ev), nil }
func (ev *MappingStartEvent) MarshalYAML() (any, error)  { return Record(ev), nil }
func (ev *MappingEndEvent) MarshalYAML() (any, error)    { return Record(ev), nil }
