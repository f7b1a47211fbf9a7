// SPDX-License-Identifier: MIT

package simplex

import (
	"time"

	"go.uber.org/zap"
)

// DefaultMaxIterations bounds the pivots of a single phase.
const DefaultMaxIterations = 256

const panicMaxIterations = "simplex: WithMaxIterations: n must be > 0"

// Recorder receives solve telemetry. metrics.Collector scoped to a number
// kind satisfies it.
type Recorder interface {
	// RecordPivot is called once per applied pivot with the stage name.
	RecordPivot(stage string)
	// RecordOutcome is called once per Calc with the result label
	// ("optimal", "infeasible", ..., or "error") and the elapsed time.
	RecordOutcome(outcome string, elapsed time.Duration)
}

// Option mutates Calc options.
type Option func(*Options)

// Options is the effective Calc configuration.
type Options struct {
	maxIterations int
	logger        *zap.Logger
	recorder      Recorder
}

// WithMaxIterations sets the per-phase pivot limit. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger attaches a logger; pivots are logged at debug level, phase
// transitions at info. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder attaches a telemetry sink. A nil recorder keeps the no-op default.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.recorder = r
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
		recorder:      nopRecorder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

type nopRecorder struct{}

func (nopRecorder) RecordPivot(string)                  {}
func (nopRecorder) RecordOutcome(string, time.Duration) {}
