// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
)

// Option configures a Decoder at Open time.
type Option func(*options) error

type options struct {
	encoding     Encoding
	maxInputSize int
	logger       log.Logger
	metrics      *Metrics
}

func defaultOptions() options {
	return options{
		encoding: AnyEncoding,
		logger:   log.NewNopLogger(),
	}
}

func applyOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	return o, nil
}

// Options combines multiple options into a single Option.
func Options(opts ...Option) Option {
	return func(o *options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithEncoding forces the input encoding. AnyEncoding, the default, detects
// it from the byte order mark.
func WithEncoding(enc Encoding) Option {
	return func(o *options) error {
		if _, ok := engineEncoding(enc); !ok {
			return fmt.Errorf("unknown encoding %q", enc)
		}
		o.encoding = enc
		return nil
	}
}

// WithMaxInputSize rejects inputs longer than n bytes. 0 means no limit.
//
// A negative size will result in an error.
func WithMaxInputSize(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return errors.New("cannot limit input to a negative size")
		}
		o.maxInputSize = n
		return nil
	}
}

// WithLogger sets the logger used for lifecycle messages. A nil logger
// restores the default, which discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		o.logger = logger
		return nil
	}
}

// WithMetrics reports decoder activity to m. Decoders sharing m share its
// counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) error {
		o.metrics = m
		return nil
	}
}
