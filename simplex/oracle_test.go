// SPDX-License-Identifier: MIT

package simplex_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/simplex"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// standardForm converts p into gonum's "minimize c·x s.t. A·x = b, x >= 0"
// by adding one slack (<=) or surplus (>=) column per inequality; gonum
// rejects all-zero columns, so equality rows get none.
// The engine works in the maximization convention, so c is the negated
// objective for max problems and the objective itself for min problems;
// either way the engine's row-0 RHS equals -opt.
func standardForm(t *testing.T, p lp) (c []float64, a *mat.Dense, b []float64) {
	t.Helper()
	var (
		n     = len(p.objective)
		m     = len(p.constraints)
		slack = 0
	)
	for _, con := range p.constraints {
		if con.Relation != tableau.Equal {
			slack++
		}
	}

	c = make([]float64, n+slack)
	for j, s := range p.objective {
		v := parseFloat(t, s)
		if !p.minimize {
			v = -v
		}
		c[j] = v
	}

	a = mat.NewDense(m, n+slack, nil)
	b = make([]float64, m)
	col := n
	for i, con := range p.constraints {
		for j, s := range con.Coefficients {
			a.Set(i, j, parseFloat(t, s))
		}
		switch con.Relation {
		case tableau.LessEqual:
			a.Set(i, col, 1)
			col++
		case tableau.GreaterEqual:
			a.Set(i, col, -1)
			col++
		}
		b[i] = parseFloat(t, con.Bound)
	}

	return c, a, b
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)

	return v
}

// decimalFloat renders v with 9 fractional digits and parses it back.
func decimalFloat[T number.Calculable[T]](t *testing.T, v T) float64 {
	t.Helper()

	return parseFloat(t, v.Decimal(9))
}

func TestCalc_MatchesGonumOracle(t *testing.T) {
	cases := map[string]lp{
		"single phase": scenarioA,
		"phase one":    scenarioB,
		"equality":     scenarioEq,
		"two pivots":   scenarioTwoPivots,
		"minimize":     scenarioMin,
		"three vars": {
			objective: []string{"5", "4", "3"},
			constraints: []tableau.LiteralConstraint{
				le("5", "2", "3", "1"),
				le("11", "4", "1", "2"),
				le("8", "3", "4", "2"),
			},
		},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			c, a, b := standardForm(t, p)
			opt, _, err := golp.Simplex(c, a, b, 0, nil)
			require.NoError(t, err)

			for _, kind := range []string{"fraction", "rounded"} {
				var got float64
				switch kind {
				case "fraction":
					got = solveObjective(t, number.NewFraction(), p)
				default:
					got = solveObjective(t, number.NewRoundedDecimal(8), p)
				}
				require.InDelta(t, -opt, got, 1e-4, kind)
			}
		})
	}
}

func solveObjective[T number.Calculable[T]](t *testing.T, gen T, p lp) float64 {
	t.Helper()
	phases, err := simplex.Calc(context.Background(), build(t, gen, p))
	require.NoError(t, err)
	sol, err := simplex.ExtractSolution(phases)
	require.NoError(t, err)

	return decimalFloat(t, sol.Objective)
}

func TestCalc_InfeasibleAgreesWithGonum(t *testing.T) {
	c, a, b := standardForm(t, scenarioC)
	_, _, err := golp.Simplex(c, a, b, 0, nil)
	require.ErrorIs(t, err, golp.ErrInfeasible)

	phases, err := simplex.Calc(context.Background(), build(t, frac, scenarioC))
	require.NoError(t, err)
	require.Equal(t, simplex.Infeasible, simplex.Result(phases))
}
