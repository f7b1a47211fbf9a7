// SPDX-License-Identifier: MIT

package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

var gen = number.NewFraction()

// fr parses a Fraction literal or fails the test.
func fr(t *testing.T, s string) number.Fraction {
	t.Helper()
	v, err := gen.Create(s)
	require.NoError(t, err)

	return v
}

// row builds a Fraction row from literals.
func row(t *testing.T, lits ...string) tableau.Row[number.Fraction] {
	t.Helper()
	vals := make([]number.Fraction, len(lits))
	for i, s := range lits {
		vals[i] = fr(t, s)
	}

	return tableau.NewRow(vals...)
}

// strs renders values with String for compact assertions.
func strs[T number.Calculable[T]](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}

	return out
}

// rowStrs renders every row of a table.
func rowStrs[T number.Calculable[T]](tb *tableau.Table[T]) [][]string {
	out := make([][]string, tb.Rows())
	for i := range out {
		out[i] = strs(tb.Row(i).Entries())
	}

	return out
}

// scenarioA is max 3x1+2x2 s.t. x1+x2<=4, x1+3x2<=6.
func scenarioA(t *testing.T) *tableau.Table[number.Fraction] {
	t.Helper()
	tb, err := tableau.BuildFromLiterals(gen,
		[]string{"3", "2"},
		[]tableau.LiteralConstraint{
			{Coefficients: []string{"1", "1"}, Bound: "4", Relation: tableau.LessEqual},
			{Coefficients: []string{"1", "3"}, Bound: "6", Relation: tableau.LessEqual},
		}, false)
	require.NoError(t, err)

	return tb
}

// scenarioGE is max x1+x2 s.t. x1+x2<=4, x1>=1.
func scenarioGE(t *testing.T) *tableau.Table[number.Fraction] {
	t.Helper()
	tb, err := tableau.BuildFromLiterals(gen,
		[]string{"1", "1"},
		[]tableau.LiteralConstraint{
			{Coefficients: []string{"1", "1"}, Bound: "4", Relation: tableau.LessEqual},
			{Coefficients: []string{"1", "0"}, Bound: "1", Relation: tableau.GreaterEqual},
		}, false)
	require.NoError(t, err)

	return tb
}
