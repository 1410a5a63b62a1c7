// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"

	"github.com/gvvaughan/lyaml/internal/libyaml"
	"github.com/gvvaughan/lyaml/internal/testutil/assert"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeEngine replays events, then returns err (io.EOF when nil).
type fakeEngine struct {
	events  []libyaml.Event
	err     error
	deletes atomic.Int32
}

func (f *fakeEngine) Parse(event *libyaml.Event) error {
	if len(f.events) == 0 {
		if f.err != nil {
			return f.err
		}
		return io.EOF
	}
	*event = f.events[0]
	f.events = f.events[1:]
	return nil
}

func (f *fakeEngine) Delete() {
	f.deletes.Add(1)
}

func useEngine(t *testing.T, f *fakeEngine) {
	t.Helper()
	saved := newEngine
	newEngine = func([]byte, libyaml.Encoding) (engine, error) { return f, nil }
	t.Cleanup(func() { newEngine = saved })
}

func openFake(t *testing.T, f *fakeEngine, opts ...Option) (*Decoder, *Metrics) {
	t.Helper()
	useEngine(t, f)
	m := NewMetrics(prometheus.NewRegistry())
	d, err := OpenString("ignored", append(opts, WithMetrics(m))...)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.openParsers))
	return d, m
}

func drain(d *Decoder) (n int, err error) {
	for {
		if _, err = d.Next(); err != nil {
			return n, err
		}
		n++
	}
}

func streamStart() libyaml.Event {
	return libyaml.Event{Type: libyaml.STREAM_START_EVENT, Encoding: libyaml.UTF8_ENCODING}
}

func TestReleaseOnExhaustion(t *testing.T) {
	f := &fakeEngine{events: []libyaml.Event{streamStart(), {Type: libyaml.STREAM_END_EVENT}}}
	d, m := openFake(t, f)

	n, err := drain(d)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
	assert.Equal(t, int32(1), f.deletes.Load())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.openParsers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("STREAM-END")))

	assert.NoError(t, d.Close())
	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, int32(1), f.deletes.Load())
}

func TestReleaseOnParseFailure(t *testing.T) {
	cause := libyaml.ParserError{Mark: libyaml.Mark{Index: 4, Line: 1, Column: 2}, Message: "did not find expected key"}
	f := &fakeEngine{events: []libyaml.Event{streamStart()}, err: cause}
	d, m := openFake(t, f)

	n, err := drain(d)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "lyaml: parser error: line 2, column 3: did not find expected key", err.Error())
	assert.Equal(t, int32(1), f.deletes.Load())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.openParsers))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("parser")))

	assert.NoError(t, d.Close())
	assert.Equal(t, int32(1), f.deletes.Load())
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name  string
		event libyaml.Event
		want  string
	}{
		{"no event", libyaml.Event{Type: libyaml.NO_EVENT}, "lyaml: invalid event 0"},
		{"unknown event", libyaml.Event{Type: 42}, "lyaml: invalid event 42"},
		{"negative event", libyaml.Event{Type: -1}, "lyaml: invalid event -1"},
		{"encoding", libyaml.Event{Type: libyaml.STREAM_START_EVENT, Encoding: 7}, "lyaml: invalid encoding 7"},
		{"sequence style", libyaml.Event{Type: libyaml.SEQUENCE_START_EVENT, Style: 9}, "lyaml: invalid sequence style 9"},
		{"mapping style", libyaml.Event{Type: libyaml.MAPPING_START_EVENT, Style: 9}, "lyaml: invalid mapping style 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeEngine{events: []libyaml.Event{tt.event, {Type: libyaml.STREAM_END_EVENT}}}
			d, m := openFake(t, f)

			ev, err := d.Next()
			assert.IsNil(t, ev)
			assert.Equal(t, tt.want, err.Error())
			var derr *DecodeError
			assert.ErrorAs(t, err, &derr)

			ev, again := d.Next()
			assert.IsNil(t, ev)
			assert.Equal(t, err, again)
			assert.Equal(t, int32(1), f.deletes.Load())
			assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("decode")))
		})
	}
}

func TestReleaseOnClose(t *testing.T) {
	f := &fakeEngine{events: []libyaml.Event{streamStart()}}
	d, m := openFake(t, f)

	_, err := d.Next()
	assert.NoError(t, err)
	assert.NoError(t, d.Close())
	assert.NoError(t, d.Close())
	assert.Equal(t, int32(1), f.deletes.Load())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.openParsers))
}

func TestReleaseOnAbandon(t *testing.T) {
	f := &fakeEngine{events: []libyaml.Event{streamStart()}}
	useEngine(t, f)

	func() {
		d, err := OpenString("ignored")
		assert.NoError(t, err)
		_, err = d.Next()
		assert.NoError(t, err)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for f.deletes.Load() == 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, int32(1), f.deletes.Load())
}

func TestOpenEngineFailure(t *testing.T) {
	cause := errors.New("out of memory")
	saved := newEngine
	newEngine = func([]byte, libyaml.Encoding) (engine, error) { return nil, cause }
	defer func() { newEngine = saved }()

	d, err := OpenString("a")
	assert.IsNil(t, d)
	assert.ErrorIs(t, err, cause)
	var oerr *OpenError
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, "lyaml: cannot initialize parser: engine: out of memory", err.Error())
}

func TestOpenUnmappedEncoding(t *testing.T) {
	called := false
	saved := newEngine
	newEngine = func([]byte, libyaml.Encoding) (engine, error) {
		called = true
		return nil, errors.New("unreachable")
	}
	defer func() { newEngine = saved }()

	bogus := func(o *options) error {
		o.encoding = "EBCDIC"
		return nil
	}
	d, err := OpenString("a", bogus)
	assert.IsNil(t, d)
	assert.False(t, called)
	var oerr *OpenError
	assert.ErrorAs(t, err, &oerr)
	assert.Equal(t, `lyaml: cannot initialize parser: unknown encoding "EBCDIC"`, err.Error())
}

func TestReleaseIsLogged(t *testing.T) {
	var buf bytes.Buffer
	f := &fakeEngine{events: []libyaml.Event{streamStart()}, err: libyaml.ScannerError{Message: "boom"}}
	d, _ := openFake(t, f, WithLogger(log.NewLogfmtLogger(&buf)))

	_, err := drain(d)
	assert.NotNil(t, err)
	out := buf.String()
	assert.Contains(t, out, `level=warn msg="decoding failed" reason=scanner events=1`)
	assert.Contains(t, out, `level=debug msg="released parser" reason=failed events=1`)
}
