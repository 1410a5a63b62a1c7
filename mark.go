// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"fmt"

	"github.com/gvvaughan/lyaml/internal/libyaml"
)

// Mark is a position in the input. All three fields are 0-based: Index
// counts characters from the start of the stream.
type Mark struct {
	Index  int `json:"index" yaml:"index"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String renders the mark for humans, with a 1-based line and column.
func (m Mark) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line+1, m.Column+1)
}

// Span holds the start and end marks every event carries.
type Span struct {
	StartMark Mark
	EndMark   Mark
}

// Start returns the position of the first character of the event.
func (s Span) Start() Mark { return s.StartMark }

// End returns the position just past the event.
func (s Span) End() Mark { return s.EndMark }

func translateMark(m libyaml.Mark) Mark {
	return Mark{Index: m.Index, Line: m.Line, Column: m.Column}
}

func translateSpan(e *libyaml.Event) Span {
	return Span{
		StartMark: translateMark(e.StartMark),
		EndMark:   translateMark(e.EndMark),
	}
}

func (m Mark) record() map[string]any {
	return map[string]any{
		"index":  m.Index,
		"line":   m.Line,
		"column": m.Column,
	}
}
