// Copyright 2025 The go-yaml Project Contributors
// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for YAML reading, scanning and parsing.
// Provides structured error reporting with line/column information.

package libyaml

import (
	"fmt"
	"strings"
)

// MarkedYAMLError is a problem found at a position in the input, with an
// optional context (such as the collection being parsed) at another
// position.
type MarkedYAMLError struct {
	// optional context
	ContextMark    Mark
	ContextMessage string

	Mark    Mark
	Message string
}

func (e MarkedYAMLError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&builder, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	return builder.String()
}

// ParserError is raised by the parser state machine.
type ParserError MarkedYAMLError

func (e ParserError) Error() string {
	return MarkedYAMLError(e).Error()
}

// ScannerError is raised while tokenizing.
type ScannerError MarkedYAMLError

func (e ScannerError) Error() string {
	return MarkedYAMLError(e).Error()
}

// ReaderError is raised while decoding the input bytes. Offset is the byte
// offset of the offending input and Value the offending octet or code
// point, or -1 when there is none.
type ReaderError struct {
	Offset int
	Value  int
	Err    error
}

func (e ReaderError) Error() string {
	return fmt.Sprintf("yaml: offset %d: %s", e.Offset, e.Err)
}

func (e ReaderError) Unwrap() error {
	return e.Err
}
