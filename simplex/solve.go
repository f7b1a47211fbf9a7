// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// outcomeError labels a Calc that returned an error.
const outcomeError = "error"

// Calc solves the LP whose initial tableau is initial and returns the ordered
// phases (one or two). ctx is checked before every pivot.
//
// Infeasible and unbounded problems are reported through the SpecialSolution
// of the last phase; a Phase-1 infeasibility ends the list after Phase 1.
// Returns ErrNonConvergence when a phase exceeds the iteration guard, or
// ctx.Err() wrapped when the context is done.
func Calc[T number.Calculable[T]](ctx context.Context, initial *tableau.Table[T], opts ...Option) ([]Phase[T], error) {
	var (
		o     = gatherOptions(opts...)
		start = time.Now()
	)
	phases, err := calc(ctx, initial, o)

	outcome := outcomeError
	if err == nil {
		outcome = Result(phases).Outcome()
	}
	o.recorder.RecordOutcome(outcome, time.Since(start))
	o.logger.Info("simplex finished",
		zap.String("outcome", outcome),
		zap.Int("phases", len(phases)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return phases, err
}

func calc[T number.Calculable[T]](ctx context.Context, initial *tableau.Table[T], o Options) ([]Phase[T], error) {
	if initial == nil {
		return nil, fmt.Errorf("Calc: nil table: %w", tableau.ErrDimension)
	}

	var (
		out   []Phase[T]
		table = initial
		err   error
	)

	// Stage 1: Phase 1 when a constraint row has a negative RHS
	if !tableau.IsValid(table) {
		var phase1 Phase[T]
		if phase1, table, err = runPhase1(ctx, table, o); err != nil {
			return nil, err
		}
		out = append(out, phase1)
		if phase1.SpecialSolution == Infeasible {
			return out, nil
		}
	}

	// Stage 2: optimize the original objective
	stage := StageSimplex
	if len(out) > 0 {
		stage = StagePhase2
	}
	phase2, err := runPhase2(ctx, table, stage, o)
	if err != nil {
		return nil, err
	}

	return append(out, phase2), nil
}

// runPhase1 extends t, pivots until z' reaches zero and returns the phase
// together with the restored Phase-2 starting table.
func runPhase1[T number.Calculable[T]](ctx context.Context, t *tableau.Table[T], o Options) (Phase[T], *tableau.Table[T], error) {
	ext, err := tableau.BuildExtension(t)
	if err != nil {
		return Phase[T]{}, nil, fmt.Errorf("Calc: %w", err)
	}
	phase := Phase[T]{Stage: StagePhase1, Tables: []*tableau.Table[T]{ext.WithTitle(TitleInitial)}}
	o.logger.Info("phase started",
		zap.Stringer("stage", StagePhase1),
		zap.Int("helpers", ext.HelperColumns()),
	)

	for it := 1; !tableau.IsValid(ext); it++ {
		if tableau.IsOptimal(ext) && !ext.Objective().IsZero() {
			phase.SpecialSolution = Infeasible
			o.logger.Info("phase 1 optimum above zero, problem is infeasible",
				zap.Stringer("z'", ext.Objective()),
			)

			return phase, nil, nil
		}
		if ext, err = step(ctx, ext, StagePhase1, it, o); err != nil {
			return Phase[T]{}, nil, err
		}
		phase.Tables = append(phase.Tables, ext.WithTitle(iterationTitle(it)))
	}

	if basic := basicHelpers(ext); len(basic) > 0 {
		o.logger.Info("artificial variables left in the base at zero level",
			zap.Strings("rows", basic),
		)
	}
	restored, err := tableau.RemoveExtension(ext)
	if err != nil {
		return Phase[T]{}, nil, fmt.Errorf("Calc: %w", err)
	}

	return phase, restored, nil
}

// runPhase2 pivots t to optimality and classifies the result.
func runPhase2[T number.Calculable[T]](ctx context.Context, t *tableau.Table[T], stage Stage, o Options) (Phase[T], error) {
	phase := Phase[T]{
		Stage:       stage,
		SinglePhase: stage == StageSimplex,
		Tables:      []*tableau.Table[T]{t.WithTitle(TitleInitial)},
	}
	o.logger.Info("phase started", zap.Stringer("stage", stage))

	var err error
	for it := 1; !tableau.IsOptimal(t); it++ {
		if p := t.Pivot(); p == nil || p.IsUnbounded() {
			phase.SpecialSolution = Unbounded

			return phase, nil
		}
		if t, err = step(ctx, t, stage, it, o); err != nil {
			return Phase[T]{}, err
		}
		phase.Tables = append(phase.Tables, t.WithTitle(iterationTitle(it)))
	}
	if !tableau.IsDegenerate(t) {
		phase.SpecialSolution = MultipleSolutions
	}

	return phase, nil
}

// step checks the context and the iteration guard, then applies one pivot.
func step[T number.Calculable[T]](ctx context.Context, t *tableau.Table[T], stage Stage, it int, o Options) (*tableau.Table[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Calc: %s iteration %d: %w", stage, it, err)
	}
	if it > o.maxIterations {
		return nil, fmt.Errorf("Calc: %s after %d iterations: %w", stage, o.maxIterations, ErrNonConvergence)
	}

	p := t.Pivot()
	next, err := Transform(t)
	if err != nil {
		return nil, fmt.Errorf("Calc: %s iteration %d: %w", stage, it, err)
	}
	o.recorder.RecordPivot(stage.String())
	if ce := o.logger.Check(zap.DebugLevel, "pivot applied"); ce != nil {
		ce.Write(
			zap.Stringer("stage", stage),
			zap.Int("iteration", it),
			zap.Int("row", p.Row),
			zap.Int("column", p.Column),
			zap.Stringer("value", p.Value),
			zap.Stringer("objective", next.Objective()),
		)
	}

	return next, nil
}

// basicHelpers returns the row headers of helper variables that are still
// basic in the extended table t. Their rows survive RemoveExtension without
// a matching column.
func basicHelpers[T number.Calculable[T]](t *tableau.Table[T]) []string {
	var out []string
	for _, h := range t.RowHeaders()[2:] {
		if strings.HasPrefix(tableau.StripHeader(h), tableau.HelperPrefix) {
			out = append(out, h)
		}
	}

	return out
}
