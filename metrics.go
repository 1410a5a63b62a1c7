// Copyright 2025 The lyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package lyaml

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors updated by decoders opened with
// WithMetrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	events      *prometheus.CounterVec
	failures    *prometheus.CounterVec
	openParsers prometheus.Gauge
}

// NewMetrics creates the decoder collectors and registers them with reg. A
// nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "lyaml_decoder_events_total",
			Help: "Total number of events produced by decoders.",
		}, []string{"type"}),
		failures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "lyaml_decoder_failures_total",
			Help: "Total number of decoders that stopped on an error.",
		}, []string{"reason"}),
		openParsers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "lyaml_decoder_open_parsers",
			Help: "Number of engine parsers not yet released.",
		}),
	}
	for _, t := range EventTypes {
		m.events.WithLabelValues(string(t))
	}
	return m
}

func (m *Metrics) opened() {
	if m != nil {
		m.openParsers.Inc()
	}
}

func (m *Metrics) released() {
	if m != nil {
		m.openParsers.Dec()
	}
}

func (m *Metrics) observeEvent(t EventType) {
	if m != nil {
		m.events.WithLabelValues(string(t)).Inc()
	}
}

func (m *Metrics) observeFailure(reason string) {
	if m != nil {
		m.failures.WithLabelValues(reason).Inc()
	}
}
