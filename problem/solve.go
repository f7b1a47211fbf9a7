// SPDX-License-Identifier: MIT

package problem

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsimplex/logger"
	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/report"
	"github.com/katalvlaran/lvsimplex/simplex"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// RecorderFactory returns the telemetry sink for one number kind.
type RecorderFactory func(kind string) simplex.Recorder

// Option mutates Solve options.
type Option func(*Options)

// Options is the effective Solve configuration.
type Options struct {
	logger        *zap.Logger
	recorders     RecorderFactory
	maxIterations int
}

// WithLogger hands l to the engine, annotated with the problem context.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRecorders attaches per-kind telemetry, e.g. metrics.Collector.For.
func WithRecorders(f RecorderFactory) Option {
	return func(o *Options) { o.recorders = f }
}

// WithMaxIterations overrides simplex.DefaultMaxIterations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("problem: WithMaxIterations: n must be > 0")
	}

	return func(o *Options) { o.maxIterations = n }
}

// Solve normalizes and validates p, instantiates the engine for its number
// kind and renders the phases into a report. p is modified in place by
// Normalize.
func Solve(ctx context.Context, p *Problem, opts ...Option) (*report.Report, error) {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := p.Normalize(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	kind, mantissa, err := p.Mode()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	ctx = context.WithValue(ctx, logger.KindKey, kind.String())
	engine := []simplex.Option{simplex.WithLogger(logger.WithContext(ctx, o.logger))}
	if o.recorders != nil {
		engine = append(engine, simplex.WithRecorder(o.recorders(kind.String())))
	}
	if o.maxIterations > 0 {
		engine = append(engine, simplex.WithMaxIterations(o.maxIterations))
	}

	switch kind {
	case number.KindRounded:
		return solve(ctx, number.NewRoundedDecimal(mantissa), kind, p, engine)
	default:
		return solve(ctx, number.NewFraction(), kind, p, engine)
	}
}

func solve[T number.Calculable[T]](ctx context.Context, gen T, kind number.Kind, p *Problem, opts []simplex.Option) (*report.Report, error) {
	cons, err := p.literalConstraints()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	initial, err := tableau.BuildFromLiterals(gen, literals(p.Objective), cons, p.Minimize)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	phases, err := simplex.Calc(ctx, initial, opts...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return report.Build(kind.String(), p.Input(), phases)
}
