// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/katalvlaran/lvsimplex/number"
)

// NegativeRows returns the indices of rhs entries below zero, in order.
func NegativeRows[T number.Calculable[T]](rhs []T) []int {
	var out []int
	for i, v := range rhs {
		if isNegative(v) {
			out = append(out, i)
		}
	}

	return out
}

// SelectPivot runs the entering/leaving ratio test.
//
// Stage 1: the entering column is the first index of the smallest entry of
// row 0 (most negative reduced cost).
// Stage 2: for every constraint row i with lhs[i][col] > 0 the ratio
// rhs[i] / lhs[i][col] is formed; row 0 (and row 1 when extended) and rows
// with a non-positive divisor rank as +inf. The leaving row is the first
// index of the smallest ratio.
//
// When every ratio is +inf the returned Pivot has Row == NoRow and an
// infinite Value.
// Complexity: O(rows + columns).
func SelectPivot[T number.Calculable[T]](lhs []Row[T], rhs []T, extended bool) (Pivot[T], error) {
	if len(lhs) == 0 || len(rhs) != len(lhs) {
		return Pivot[T]{}, fmt.Errorf("SelectPivot: %d rows, %d rhs: %w", len(lhs), len(rhs), ErrDimension)
	}

	// Stage 1: entering column
	col := lhs[0].MinIndex()
	if col < 0 {
		return Pivot[T]{}, fmt.Errorf("SelectPivot: empty objective row: %w", ErrDimension)
	}

	// Stage 2: leaving row
	first := 1
	if extended {
		first = 2
	}
	var (
		inf  = rhs[0].ToInfinity(number.Positive)
		best = inf
		row  = NoRow
	)
	for i := first; i < len(lhs); i++ {
		divisor := lhs[i].At(col)
		if !isPositive(divisor) {
			continue
		}
		ratio, err := rhs[i].Divide(divisor)
		if err != nil {
			return Pivot[T]{}, fmt.Errorf("SelectPivot: row %d: %w", i, err)
		}
		if ratio.Compare(best) < 0 {
			best, row = ratio, i
		}
	}
	if row == NoRow {
		return Pivot[T]{Column: col, Row: NoRow, Value: inf}, nil
	}

	return Pivot[T]{Column: col, Row: row, Value: lhs[row].At(col)}, nil
}

// IsValid reports whether the table is primal feasible: no constraint row has
// a negative right-hand side, and an extended table additionally has z' == 0.
func IsValid[T number.Calculable[T]](t *Table[T]) bool {
	first := 1
	if t.IsExtended() {
		if !t.rhs[0].IsZero() {
			return false
		}
		first = 2
	}
	for i := first; i < len(t.rhs); i++ {
		if isNegative(t.rhs[i]) {
			return false
		}
	}

	return true
}

// IsOptimal reports whether row 0 has no negative reduced cost.
func IsOptimal[T number.Calculable[T]](t *Table[T]) bool {
	return t.lhs[0].IsNonNegative()
}

// IsDegenerate reports whether the optimum is unique.
//
// Every non-basic column that is not identically zero is inspected; a zero
// reduced cost in row 0 means the objective is flat along that column, so
// another vertex attains the same optimum and false is returned. When every
// inspected column carries a non-zero reduced cost the optimum is unique and
// true is returned. Callers report multiple optimal solutions when this
// returns false.
func IsDegenerate[T number.Calculable[T]](t *Table[T]) bool {
	var (
		first = 1
		basic = make(map[int]bool, len(t.rowHeaders))
	)
	if t.IsExtended() {
		first = 2
	}
	for _, h := range t.rowHeaders[first:] {
		if pos, ok := HeaderPosition(h); ok {
			basic[pos-1] = true
		}
	}

	for col := 0; col < t.Columns(); col++ {
		if basic[col] || t.isZeroColumn(col) {
			continue
		}
		if t.lhs[0].At(col).IsZero() {
			return false
		}
	}

	return true
}

// isZeroColumn reports whether column col is zero in every row.
func (t *Table[T]) isZeroColumn(col int) bool {
	for _, r := range t.lhs {
		if !r.At(col).IsZero() {
			return false
		}
	}

	return true
}

// UpdateRowHeaders returns rowHeaders with the header of pivot.Row replaced
// by the entering column's header, tagged with its 1-based position.
// A nil or unbounded pivot returns an unchanged copy.
func UpdateRowHeaders[T number.Calculable[T]](columnHeaders, rowHeaders []string, pivot *Pivot[T]) []string {
	out := append([]string(nil), rowHeaders...)
	if pivot == nil || pivot.IsUnbounded() {
		return out
	}
	if pivot.Row < 0 || pivot.Row >= len(out) || pivot.Column < 0 || pivot.Column >= len(columnHeaders) {
		return out
	}
	name := StripHeader(columnHeaders[pivot.Column])
	out[pivot.Row] = TagHeader(name, pivot.Column+1)

	return out
}
