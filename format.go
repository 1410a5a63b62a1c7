// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"strings"
)

// FormatEvent renders ev in the one-line notation of the YAML test suite,
// for example "+DOC ---", "=VAL &a <tag:yaml.org,2002:str> :text" or
// "+SEQ []". Scalars are marked ':' when the plain style needs no tag and
// '"' otherwise; the source quoting style is not recorded by a Decoder.
func FormatEvent(ev Event) string {
	var b strings.Builder
	switch ev := ev.(type) {
	case *StreamStartEvent:
		b.WriteString("+STR")
	case *StreamEndEvent:
		b.WriteString("-STR")
	case *DocumentStartEvent:
		b.WriteString("+DOC")
		if !ev.Implicit {
			b.WriteString(" ---")
		}
	case *DocumentEndEvent:
		b.WriteString("-DOC")
		if !ev.Implicit {
			b.WriteString(" ...")
		}
	case *AliasEvent:
		b.WriteString("=ALI *")
		b.WriteString(ev.Anchor)
	case *ScalarEvent:
		b.WriteString("=VAL")
		writeProperties(&b, ev.Anchor, ev.Tag)
		if ev.PlainImplicit {
			b.WriteString(" :")
		} else {
			b.WriteString(` "`)
		}
		writeEscaped(&b, ev.Value)
	case *SequenceStartEvent:
		b.WriteString("+SEQ")
		if ev.Style == FlowStyle {
			b.WriteString(" []")
		}
		writeProperties(&b, ev.Anchor, ev.Tag)
	case *SequenceEndEvent:
		b.WriteString("-SEQ")
	case *MappingStartEvent:
		b.WriteString("+MAP")
		if ev.Style == FlowStyle {
			b.WriteString(" {}")
		}
		writeProperties(&b, ev.Anchor, ev.Tag)
	case *MappingEndEvent:
		b.WriteString("-MAP")
	}
	return b.String()
}

func writeProperties(b *strings.Builder, anchor, tag *string) {
	if anchor != nil {
		b.WriteString(" &")
		b.WriteString(*anchor)
	}
	if tag != nil {
		b.WriteString(" <")
		b.WriteString(*tag)
		b.WriteString(">")
	}
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`, "\b", `\b`)

func writeEscaped(b *strings.Builder, s string) {
	valueEscaper.WriteString(b, s)
}
