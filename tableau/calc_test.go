// SPDX-License-Identifier: MIT

package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

func TestSelectPivot_RatioTest(t *testing.T) {
	lhs := []tableau.Row[number.Fraction]{
		row(t, "-1", "-3"),
		row(t, "1", "2"),
		row(t, "0", "1"),
		row(t, "1", "3"),
	}
	rhs := []number.Fraction{fr(t, "0"), fr(t, "4"), fr(t, "2"), fr(t, "6")}

	p, err := tableau.SelectPivot(lhs, rhs, false)
	require.NoError(t, err)
	require.Equal(t, 1, p.Column)
	// Ratios 2, 2, 2: the first row wins the tie.
	require.Equal(t, 1, p.Row)
	require.Equal(t, "2", p.Value.String())
	require.False(t, p.IsUnbounded())
}

func TestSelectPivot_ExtendedSkipsObjectiveRow(t *testing.T) {
	lhs := []tableau.Row[number.Fraction]{
		row(t, "-1", "0"),
		row(t, "1", "0"), // z: would give ratio 0 if it were eligible
		row(t, "2", "1"),
	}
	rhs := []number.Fraction{fr(t, "-3"), fr(t, "0"), fr(t, "3")}

	p, err := tableau.SelectPivot(lhs, rhs, true)
	require.NoError(t, err)
	require.Equal(t, 2, p.Row)
	require.Equal(t, "2", p.Value.String())
}

func TestSelectPivot_Unbounded(t *testing.T) {
	lhs := []tableau.Row[number.Fraction]{
		row(t, "-1", "0"),
		row(t, "-1", "1"),
		row(t, "0", "1"),
	}
	rhs := []number.Fraction{fr(t, "0"), fr(t, "1"), fr(t, "2")}

	p, err := tableau.SelectPivot(lhs, rhs, false)
	require.NoError(t, err)
	require.Equal(t, tableau.NoRow, p.Row)
	require.True(t, p.Value.IsInfinite())
	require.Equal(t, number.PositiveInfinityToken, p.Value.String())
	require.True(t, p.IsUnbounded())
}

func TestSelectPivot_Dimension(t *testing.T) {
	_, err := tableau.SelectPivot([]tableau.Row[number.Fraction]{row(t, "1")}, nil, false)
	require.ErrorIs(t, err, tableau.ErrDimension)
}

func TestIsValid(t *testing.T) {
	require.True(t, tableau.IsValid(scenarioA(t)))
	require.False(t, tableau.IsValid(scenarioGE(t)))

	ext, err := tableau.BuildExtension(scenarioGE(t))
	require.NoError(t, err)
	require.False(t, tableau.IsValid(ext)) // z' != 0
}

// optimalTable builds a single-constraint optimum over x1 x2 s1 [s2] with
// x1 basic and the given reduced-cost row.
func optimalTable(t *testing.T, reduced, constraint []string) *tableau.Table[number.Fraction] {
	t.Helper()
	cols := []string{"x1", "x2", "s1", "f"}
	if len(reduced) == 4 {
		cols = []string{"x1", "x2", "s1", "s2", "f"}
	}
	tb, err := tableau.NewTable("",
		[]tableau.Row[number.Fraction]{row(t, reduced...), row(t, constraint...)},
		[]number.Fraction{fr(t, "4"), fr(t, "4")},
		nil, cols, []string{"z", "x1[1]"}, 0)
	require.NoError(t, err)

	return tb
}

func TestIsOptimal(t *testing.T) {
	require.True(t, tableau.IsOptimal(optimalTable(t, []string{"0", "1", "1"}, []string{"1", "1", "1"})))
	require.False(t, tableau.IsOptimal(scenarioA(t)))
}

func TestIsDegenerate_UniqueOptimum(t *testing.T) {
	tb := optimalTable(t, []string{"0", "1", "1"}, []string{"1", "1", "1"})
	require.True(t, tableau.IsDegenerate(tb))
}

func TestIsDegenerate_AlternateOptimum(t *testing.T) {
	// x2 is non-basic with zero reduced cost: another vertex reaches f = 4.
	tb := optimalTable(t, []string{"0", "0", "1"}, []string{"1", "1", "1"})
	require.False(t, tableau.IsDegenerate(tb))
}

func TestIsDegenerate_IgnoresZeroColumns(t *testing.T) {
	// s2 belongs to an equality row: zero everywhere, never a real alternative.
	tb := optimalTable(t, []string{"0", "1", "1", "0"}, []string{"1", "1", "1", "0"})
	require.True(t, tableau.IsDegenerate(tb))
}

func TestUpdateRowHeaders(t *testing.T) {
	tb := scenarioA(t)
	got := tableau.UpdateRowHeaders(tb.ColumnHeaders(), tb.RowHeaders(), tb.Pivot())
	require.Equal(t, []string{"z", "x1[1]", "s2[4]"}, got)
	require.Equal(t, []string{"z", "s1[3]", "s2[4]"}, tb.RowHeaders())

	require.Equal(t, tb.RowHeaders(), tableau.UpdateRowHeaders[number.Fraction](tb.ColumnHeaders(), tb.RowHeaders(), nil))
}
