// SPDX-License-Identifier: MIT

// Package metrics exposes solver telemetry as Prometheus collectors.
//
// # Metrics
//
//	lvsimplex_solves_total{kind,outcome}      completed Calc runs
//	lvsimplex_pivots_total{kind,stage}        applied pivot steps
//	lvsimplex_solve_duration_seconds{kind}    Calc wall time
//
// # Basic Usage
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(reg)
//	phases, err := simplex.Calc(ctx, table, simplex.WithRecorder(c.For("fraction")))
//	_ = metrics.WriteText(os.Stderr, reg)
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name.
const Namespace = "lvsimplex"

// Collector holds the solver metrics registered on one registry.
type Collector struct {
	solves   *prometheus.CounterVec   // outcome per kind
	pivots   *prometheus.CounterVec   // pivots per kind and stage
	duration *prometheus.HistogramVec // Calc duration per kind
}

// NewCollector creates the solver metrics and registers them on reg.
// Panics if they are already registered there.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solves_total",
			Help:      "Completed solves by number kind and outcome.",
		}, []string{"kind", "outcome"}),
		pivots: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pivots_total",
			Help:      "Applied pivot steps by number kind and stage.",
		}, []string{"kind", "stage"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve by number kind.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
	}
}

// Recorder scopes a Collector to one number kind. It satisfies
// simplex.Recorder.
type Recorder struct {
	c    *Collector
	kind string
}

// For returns a Recorder labelled with kind.
func (c *Collector) For(kind string) Recorder {
	return Recorder{c: c, kind: kind}
}

// RecordPivot counts one pivot of the given stage.
func (r Recorder) RecordPivot(stage string) {
	r.c.pivots.WithLabelValues(r.kind, stage).Inc()
}

// RecordOutcome counts a finished solve and observes its duration.
func (r Recorder) RecordOutcome(outcome string, elapsed time.Duration) {
	r.c.solves.WithLabelValues(r.kind, outcome).Inc()
	r.c.duration.WithLabelValues(r.kind).Observe(elapsed.Seconds())
}

// WriteText gathers g and writes every family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
