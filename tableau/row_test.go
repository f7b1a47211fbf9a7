// SPDX-License-Identifier: MIT

package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

func TestRow_Transformations(t *testing.T) {
	r := row(t, "1", "-2", "3/4")

	require.Equal(t, []string{"-1", "2", "-3/4"}, strs(r.Invert().Entries()))

	scaled, err := r.Scale(fr(t, "2"))
	require.NoError(t, err)
	require.Equal(t, []string{"2", "-4", "3/2"}, strs(scaled.Entries()))

	halved, err := r.DivideBy(fr(t, "2"))
	require.NoError(t, err)
	require.Equal(t, []string{"1/2", "-1", "3/8"}, strs(halved.Entries()))

	sum, err := r.Add(row(t, "1", "2", "1/4"))
	require.NoError(t, err)
	require.Equal(t, []string{"2", "0", "1"}, strs(sum.Entries()))

	require.Equal(t, []string{"1", "-2", "3/4", "5"}, strs(r.Append(fr(t, "5")).Entries()))
	require.Equal(t, []string{"1"}, strs(r.Truncate(1).Entries()))
	require.Equal(t, 3, r.Truncate(10).Len())

	// The receiver is never modified.
	require.Equal(t, "[1 -2 3/4]", r.String())
}

func TestRow_DivideByZeroIsNoOp(t *testing.T) {
	r := row(t, "1", "2")
	out, err := r.DivideBy(fr(t, "0"))
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, strs(out.Entries()))
}

func TestRow_AddLengthMismatch(t *testing.T) {
	_, err := row(t, "1").Add(row(t, "1", "2"))
	require.ErrorIs(t, err, tableau.ErrDimension)
}

func TestRow_MinIndexFirstTie(t *testing.T) {
	require.Equal(t, 1, row(t, "3", "-2", "0", "-2").MinIndex())
	require.Equal(t, -1, tableau.NewRow[number.Fraction]().MinIndex())
}

func TestRow_IsNonNegative(t *testing.T) {
	require.True(t, row(t, "0", "1/2", "3").IsNonNegative())
	require.False(t, row(t, "0", "-1/2").IsNonNegative())
}

func TestRow_EntriesIsCopy(t *testing.T) {
	r := row(t, "1", "2")
	e := r.Entries()
	e[0] = fr(t, "9")
	require.Equal(t, "1", r.At(0).String())
}
