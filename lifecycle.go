// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"fmt"
	"runtime"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/gvvaughan/lyaml/internal/libyaml"
)

// engine is the part of the YAML parser a Decoder drives.
type engine interface {
	Parse(event *libyaml.Event) error
	Delete()
}

// newEngine binds input to a fresh parser. Tests replace it to observe the
// release protocol.
var newEngine = func(input []byte, enc libyaml.Encoding) (engine, error) {
	parser := libyaml.NewParser()
	if enc != libyaml.ANY_ENCODING {
		parser.SetEncoding(enc)
	}
	parser.SetInputString(input)
	return &parser, nil
}

const (
	releaseExhausted = "exhausted"
	releaseFailed    = "failed"
	releaseClosed    = "closed"
	releaseAbandoned = "abandoned"
)

// handle owns the engine. It is kept apart from the Decoder so that a
// cleanup attached to the Decoder can still reach it.
type handle struct {
	engine  engine
	logger  log.Logger
	metrics *Metrics
	events  int
}

// release deletes the engine the first time it is called.
func (h *handle) release(reason string) {
	if h.engine == nil {
		return
	}
	h.engine.Delete()
	h.engine = nil
	h.metrics.released()
	level.Debug(h.logger).Log("msg", "released parser", "reason", reason, "events", h.events)
}

// Open returns a Decoder over input. The whole input is bound up front and
// is not copied; it must not be modified while the decoder is open.
//
// Invalid options and inputs over the WithMaxInputSize limit are reported
// here as an *OpenError, before any event is pulled.
func Open(input []byte, opts ...Option) (*Decoder, error) {
	o, err := applyOptions(opts...)
	if err != nil {
		return nil, &OpenError{Reason: "invalid option", Err: err}
	}
	if o.maxInputSize > 0 && len(input) > o.maxInputSize {
		return nil, &OpenError{
			Reason: fmt.Sprintf("input of %d bytes exceeds the %d byte limit", len(input), o.maxInputSize),
		}
	}
	enc, ok := engineEncoding(o.encoding)
	if !ok {
		return nil, &OpenError{Reason: fmt.Sprintf("unknown encoding %q", o.encoding)}
	}
	eng, err := newEngine(input, enc)
	if err != nil {
		return nil, &OpenError{Reason: "engine", Err: err}
	}

	h := &handle{engine: eng, logger: o.logger, metrics: o.metrics}
	d := &Decoder{h: h}
	d.cleanup = runtime.AddCleanup(d, func(h *handle) { h.release(releaseAbandoned) }, h)
	o.metrics.opened()
	level.Debug(o.logger).Log("msg", "opened parser", "bytes", len(input), "encoding", o.encoding)
	return d, nil
}

// OpenString is like Open for a string input.
func OpenString(input string, opts ...Option) (*Decoder, error) {
	return Open([]byte(input), opts...)
}

// Close releases the engine if the decoder is still open. Later calls to
// Next return ErrClosed. Closing an exhausted or failed decoder changes
// nothing. Close always returns nil.
func (d *Decoder) Close() error {
	if d.state == stateOpen && d.h != nil {
		d.finish(stateClosed, releaseClosed)
	}
	return nil
}

func (d *Decoder) finish(state decoderState, reason string) {
	d.state = state
	d.raw.Delete()
	d.cleanup.Stop()
	d.h.release(reason)
}
