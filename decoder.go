// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"io"
	"iter"
	"runtime"

	"github.com/go-kit/log/level"

	"github.com/gvvaughan/lyaml/internal/libyaml"
)

type decoderState int

const (
	stateOpen decoderState = iota
	stateExhausted
	stateFailed
	stateClosed
)

// A Decoder pulls events from a YAML stream one at a time. It makes a
// single pass: there is no seek, peek or reset. A Decoder must not be used
// by more than one goroutine at a time. The zero Decoder behaves as a closed
// one; use Open or OpenString to get a working decoder.
type Decoder struct {
	h       *handle
	raw     libyaml.Event
	err     error
	state   decoderState
	cleanup runtime.Cleanup
}

// Next returns the next event. After the STREAM-END event it returns io.EOF,
// and keeps doing so. A failure is returned as a *ParseError or a
// *DecodeError; the engine is released at once and every later call returns
// the same error.
func (d *Decoder) Next() (Event, error) {
	if d.h == nil {
		return nil, ErrClosed
	}
	switch d.state {
	case stateExhausted:
		return nil, io.EOF
	case stateFailed:
		return nil, d.err
	case stateClosed:
		return nil, ErrClosed
	}

	d.raw.Delete()
	if err := d.h.engine.Parse(&d.raw); err != nil {
		if err == io.EOF {
			d.finish(stateExhausted, releaseExhausted)
			return nil, io.EOF
		}
		return nil, d.fail(newParseError(err))
	}
	ev, err := translate(&d.raw)
	if err != nil {
		return nil, d.fail(err)
	}
	d.h.events++
	d.h.metrics.observeEvent(ev.Type())
	return ev, nil
}

func (d *Decoder) fail(err error) error {
	reason := failureReason(err)
	d.err = err
	d.h.metrics.observeFailure(reason)
	level.Warn(d.h.logger).Log("msg", "decoding failed", "reason", reason, "events", d.h.events, "err", err)
	d.finish(stateFailed, releaseFailed)
	return err
}

func failureReason(err error) string {
	if pe, ok := err.(*ParseError); ok {
		return string(pe.Kind)
	}
	return "decode"
}

// All returns an iterator over the remaining events. A failure is yielded
// once, as the last pair. Stopping the iteration early closes the decoder.
func (d *Decoder) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := d.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ev, nil) {
				d.Close()
				return
			}
		}
	}
}

// Events decodes every event of input. On failure it returns the events
// decoded before the error together with the error.
func Events(input []byte, opts ...Option) ([]Event, error) {
	d, err := Open(input, opts...)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var events []Event
	for ev, err := range d.All() {
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, nil
}
