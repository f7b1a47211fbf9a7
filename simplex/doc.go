// SPDX-License-Identifier: MIT

// Package simplex runs the Two-Phase Simplex Method over a tableau built by
// package tableau.
//
// Calc drives the state machine
//
//	BUILT → [PHASE 1] → PHASE 2 → {OPTIMAL, INFEASIBLE, UNBOUNDED}
//
// and returns every intermediate snapshot grouped into Phases. A table whose
// constraint rows all have non-negative right-hand sides skips Phase 1 and
// yields a single "Simplex" phase. Otherwise the table is extended with
// artificial (helper) columns, Phase 1 drives the auxiliary objective z' to
// zero, the extension is removed and Phase 2 continues from there.
//
// Infeasible, unbounded and alternate-optimum problems are results, not
// errors: they are reported through Phase.SpecialSolution. Errors are
// reserved for malformed tables, cancelled contexts and the iteration guard
// (ErrNonConvergence), which replaces unbounded looping on inputs that cycle
// under the most-negative/first-index pivot rule.
//
// The engine is generic over number.Calculable, so the same code runs with
// exact fractions or with rounded decimals:
//
//	tb, _ := tableau.BuildFromLiterals(number.NewFraction(), obj, cons, false)
//	phases, err := simplex.Calc(ctx, tb)
//	sol, err := simplex.ExtractSolution(phases)
package simplex
