// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/simplex"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// lp is a literal-level problem shared by the scenario tests.
type lp struct {
	objective   []string
	constraints []tableau.LiteralConstraint
	minimize    bool
}

func le(b string, coeffs ...string) tableau.LiteralConstraint {
	return tableau.LiteralConstraint{Coefficients: coeffs, Bound: b, Relation: tableau.LessEqual}
}

func ge(b string, coeffs ...string) tableau.LiteralConstraint {
	return tableau.LiteralConstraint{Coefficients: coeffs, Bound: b, Relation: tableau.GreaterEqual}
}

func eq(b string, coeffs ...string) tableau.LiteralConstraint {
	return tableau.LiteralConstraint{Coefficients: coeffs, Bound: b, Relation: tableau.Equal}
}

var (
	// max 3x1+2x2; x1+x2<=4; x1+3x2<=6 -> f=12 at (4, 0)
	scenarioA = lp{objective: []string{"3", "2"}, constraints: []tableau.LiteralConstraint{le("4", "1", "1"), le("6", "1", "3")}}
	// max 2x1+3x2; x1+x2<=4; x1>=1 -> f=11 at (1, 3), needs Phase 1
	scenarioB = lp{objective: []string{"2", "3"}, constraints: []tableau.LiteralConstraint{le("4", "1", "1"), ge("1", "1", "0")}}
	// x1+x2<=2; x1+x2>=5 -> infeasible
	scenarioC = lp{objective: []string{"1", "1"}, constraints: []tableau.LiteralConstraint{le("2", "1", "1"), ge("5", "1", "1")}}
	// max x1; -x1<=1 -> unbounded
	scenarioD = lp{objective: []string{"1"}, constraints: []tableau.LiteralConstraint{le("1", "-1")}}
	// max x1+x2; x1+x2<=4 -> alternate optima, f=4
	scenarioMulti = lp{objective: []string{"1", "1"}, constraints: []tableau.LiteralConstraint{le("4", "1", "1")}}
	// max x1+2x2; x1+x2=3; x2<=2 -> f=5 at (1, 2)
	scenarioEq = lp{objective: []string{"1", "2"}, constraints: []tableau.LiteralConstraint{eq("3", "1", "1"), le("2", "0", "1")}}
	// max 2x1+3x2; x1+x2<=4; x1+3x2<=6 -> f=9 at (3, 1), two pivots
	scenarioTwoPivots = lp{objective: []string{"2", "3"}, constraints: []tableau.LiteralConstraint{le("4", "1", "1"), le("6", "1", "3")}}
	// max 4x2; 3x1+3x2<=6; 3x1+2x2>=6 -> Phase 1 ties s1 and h1 in the ratio
	// test, so h1 stays basic at zero level
	scenarioZeroHelper = lp{objective: []string{"0", "4"}, constraints: []tableau.LiteralConstraint{le("6", "3", "3"), ge("6", "3", "2")}}
	// min 2x1+3x2; x1+x2>=4; x1<=3 -> f=9 at (3, 1)
	scenarioMin = lp{objective: []string{"2", "3"}, constraints: []tableau.LiteralConstraint{ge("4", "1", "1"), le("3", "1", "0")}, minimize: true}
)

// build creates the initial tableau of p over gen.
func build[T number.Calculable[T]](t *testing.T, gen T, p lp) *tableau.Table[T] {
	t.Helper()
	tb, err := tableau.BuildFromLiterals(gen, p.objective, p.constraints, p.minimize)
	require.NoError(t, err)

	return tb
}

// strs renders values with String.
func strs[T number.Calculable[T]](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}

	return out
}

// titles lists the snapshot titles of a phase.
func titles[T number.Calculable[T]](p simplex.Phase[T]) []string {
	out := make([]string, len(p.Tables))
	for i, tb := range p.Tables {
		out[i] = tb.Title()
	}

	return out
}
