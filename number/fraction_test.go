// SPDX-License-Identifier: MIT

package number_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/number"
)

// mustFraction parses s or fails the test.
func mustFraction(t *testing.T, s string) number.Fraction {
	t.Helper()
	f, err := number.NewFraction().Create(s)
	require.NoError(t, err, "literal %q", s)

	return f
}

func TestFraction_CreateReducesToCanonicalForm(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"-140/65", "-28/13"},
		{"6/3", "2"},
		{"0/5", "0"},
		{"-0", "0"},
		{"0.25", "1/4"},
		{"-0.5", "-1/2"},
		{"12", "12"},
		{"-7", "-7"},
		{"10/4", "5/2"},
		{"  3/9 ", "1/3"},
	}
	for _, tc := range cases {
		got := mustFraction(t, tc.in)
		require.Equal(t, tc.want, got.String(), "Create(%q)", tc.in)
		// Round trip through the canonical form is stable
		require.Equal(t, tc.want, mustFraction(t, got.String()).String())
	}
}

func TestFraction_CreateRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1.", ".5", "1//2", "1/0", "1/-2", "--1", "1/00", "1e5", "inf"} {
		_, err := number.NewFraction().Create(in)
		require.ErrorIs(t, err, number.ErrParse, "Create(%q)", in)
	}
}

func TestFraction_DenominatorPositiveAndReduced(t *testing.T) {
	f, err := number.NewFractionFromInts(6, -8)
	require.NoError(t, err)
	require.Equal(t, "-3", f.Num().String())
	require.Equal(t, "4", f.Den().String())

	_, err = number.NewFractionFromInts(1, 0)
	require.ErrorIs(t, err, number.ErrArithmetic)
}

func TestFraction_Arithmetic(t *testing.T) {
	a := mustFraction(t, "1/2")
	b := mustFraction(t, "-1/3")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "1/6", sum.String())

	prod, err := a.Multiply(b)
	require.NoError(t, err)
	require.Equal(t, "-1/6", prod.String())

	quo, err := a.Divide(b)
	require.NoError(t, err)
	require.Equal(t, "-3/2", quo.String())

	require.Equal(t, "1/3", b.Negate().String())
	require.True(t, mustFraction(t, "0").Negate().IsZero())
}

func TestFraction_Commutative(t *testing.T) {
	values := []string{"0", "1", "-1", "2/3", "-5/7", "0.125", "144/12"}
	for _, x := range values {
		for _, y := range values {
			a, b := mustFraction(t, x), mustFraction(t, y)

			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)
			require.Zero(t, ab.Compare(ba), "%s+%s", x, y)

			ab, err = a.Multiply(b)
			require.NoError(t, err)
			ba, err = b.Multiply(a)
			require.NoError(t, err)
			require.Zero(t, ab.Compare(ba), "%s*%s", x, y)
		}
	}
}

func TestFraction_DivideByZero(t *testing.T) {
	_, err := mustFraction(t, "3").Divide(mustFraction(t, "0"))
	require.ErrorIs(t, err, number.ErrArithmetic)
}

func TestFraction_Compare(t *testing.T) {
	require.Equal(t, -1, mustFraction(t, "1/3").Compare(mustFraction(t, "1/2")))
	require.Equal(t, 1, mustFraction(t, "-1/3").Compare(mustFraction(t, "-1/2")))
	require.Equal(t, 0, mustFraction(t, "2/4").Compare(mustFraction(t, "0.5")))
}

func TestFraction_Decimal(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"2/3", 2, "0.67"},
		{"1/8", 2, "0.12"}, // tie → even
		{"3/8", 2, "0.38"}, // tie → even
		{"-1/8", 2, "-0.12"},
		{"12", 2, "12"},
		{"5/2", 0, "2"},
		{"7/2", 0, "4"},
		{"1/4", 2, "0.25"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, mustFraction(t, tc.in).Decimal(tc.places), "%s@%d", tc.in, tc.places)
	}
}

func TestFraction_ZeroValueIsUsableGenerator(t *testing.T) {
	var zero number.Fraction
	require.True(t, zero.IsZero())
	require.Equal(t, "0", zero.String())

	one, err := zero.Create("1")
	require.NoError(t, err)
	sum, err := zero.Add(one)
	require.NoError(t, err)
	require.Equal(t, "1", sum.String())
}
