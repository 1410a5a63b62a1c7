// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gvvaughan/lyaml/internal/libyaml"
)

// ErrClosed is returned by Next after the decoder has been closed.
var ErrClosed = errors.New("lyaml: decoder is closed")

// FailureKind identifies the engine stage that rejected the input.
type FailureKind string

const (
	ReaderFailure  FailureKind = "reader"
	ScannerFailure FailureKind = "scanner"
	ParserFailure  FailureKind = "parser"
)

// ParseError reports malformed input. Mark is the offending position and is
// nil for reader failures, which are located by Offset instead. Context and
// ContextMark describe the construct being parsed when the engine knows it.
type ParseError struct {
	Kind        FailureKind
	Problem     string
	Mark        *Mark
	Offset      int
	Context     string
	ContextMark *Mark
	Err         error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lyaml: %s error: ", e.Kind)
	if e.Context != "" {
		b.WriteString(e.Context)
		if e.ContextMark != nil {
			fmt.Fprintf(&b, " at %s", e.ContextMark)
		}
		b.WriteString(": ")
	}
	switch {
	case e.Mark != nil:
		if e.ContextMark == nil || *e.ContextMark != *e.Mark {
			fmt.Fprintf(&b, "%s: ", e.Mark)
		}
	case e.Kind == ReaderFailure:
		fmt.Fprintf(&b, "offset %d: ", e.Offset)
	}
	b.WriteString(e.Problem)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error) *ParseError {
	var (
		perr libyaml.ParserError
		serr libyaml.ScannerError
		rerr libyaml.ReaderError
	)
	switch {
	case errors.As(err, &perr):
		return markedParseError(ParserFailure, libyaml.MarkedYAMLError(perr), err)
	case errors.As(err, &serr):
		return markedParseError(ScannerFailure, libyaml.MarkedYAMLError(serr), err)
	case errors.As(err, &rerr):
		return &ParseError{
			Kind:    ReaderFailure,
			Problem: rerr.Err.Error(),
			Offset:  rerr.Offset,
			Err:     err,
		}
	}
	return &ParseError{Kind: ParserFailure, Problem: err.Error(), Err: err}
}

func markedParseError(kind FailureKind, m libyaml.MarkedYAMLError, err error) *ParseError {
	mark := translateMark(m.Mark)
	pe := &ParseError{
		Kind:    kind,
		Problem: m.Message,
		Mark:    &mark,
		Err:     err,
	}
	if m.ContextMessage != "" {
		ctx := translateMark(m.ContextMark)
		pe.Context = m.ContextMessage
		pe.ContextMark = &ctx
	}
	return pe
}

// DecodeError reports an engine event that carries a code outside the known
// tables. What names the field: "event", "encoding", "sequence style" or
// "mapping style".
type DecodeError struct {
	What string
	Code int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lyaml: invalid %s %d", e.What, e.Code)
}

// OpenError reports a decoder that could not be constructed.
type OpenError struct {
	Reason string
	Err    error
}

func (e *OpenError) Error() string {
	if e.Err != nil {
		return "lyaml: cannot initialize parser: " + e.Reason + ": " + e.Err.Error()
	}
	return "lyaml: cannot initialize parser: " + e.Reason
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
