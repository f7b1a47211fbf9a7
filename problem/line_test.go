// SPDX-License-Identifier: MIT

package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsimplex/problem"
)

func TestParseConstraintLine(t *testing.T) {
	cases := []struct {
		line string
		want problem.Constraint
	}{
		{"1,3<6", problem.Constraint{Coefficients: []problem.Literal{"1", "3"}, Relation: "<=", Bound: "6"}},
		{"1,3,6", problem.Constraint{Coefficients: []problem.Literal{"1", "3"}, Relation: "<=", Bound: "6"}},
		{"1,-1>2", problem.Constraint{Coefficients: []problem.Literal{"1", "-1"}, Relation: ">=", Bound: "2"}},
		{" 1/2, 0.5 = 3 ", problem.Constraint{Coefficients: []problem.Literal{"1/2", "0.5"}, Relation: "=", Bound: "3"}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := problem.ParseConstraintLine(tc.line, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseConstraintLine_Errors(t *testing.T) {
	for _, line := range []string{
		"1,3<<6",  // two relations
		"1,a<6",   // not a number
		"1,3<",    // missing bound
		"6",       // no coefficients
		"1,2,3<4", // arity
		"1/0,1<2", // zero denominator
		"1.,1<2",  // dangling point
	} {
		t.Run(line, func(t *testing.T) {
			_, err := problem.ParseConstraintLine(line, 2)
			require.ErrorIs(t, err, problem.ErrSyntax)
		})
	}
}

func TestParseObjectiveLine(t *testing.T) {
	got, err := problem.ParseObjectiveLine("3, -2, 1/4", 3)
	require.NoError(t, err)
	assert.Equal(t, []problem.Literal{"3", "-2", "1/4"}, got)

	_, err = problem.ParseObjectiveLine("3,2", 3)
	require.ErrorIs(t, err, problem.ErrSyntax)

	_, err = problem.ParseObjectiveLine("3,,2", 0)
	require.ErrorIs(t, err, problem.ErrSyntax)
}
