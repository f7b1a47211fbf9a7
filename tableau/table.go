// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/katalvlaran/lvsimplex/number"
)

// NoRow marks a Pivot whose ratio test found no admissible row.
const NoRow = -1

// Pivot is the result of a ratio test: the entering column, the leaving row
// and the pivot element. When no row admits a finite ratio, Row is NoRow and
// Value is +inf.
type Pivot[T number.Calculable[T]] struct {
	Column int
	Row    int
	Value  T
}

// IsUnbounded reports whether the ratio test found no finite pivot.
func (p Pivot[T]) IsUnbounded() bool {
	return p.Row == NoRow || p.Value.IsInfinite()
}

// String renders the pivot as "(row, column) = value".
func (p Pivot[T]) String() string {
	return fmt.Sprintf("(%d, %d) = %s", p.Row, p.Column, p.Value)
}

// Table is an immutable simplex tableau snapshot.
//
// Invariants (checked by NewTable):
//   - len(rhs) == len(rowHeaders) == len(lhs) >= 1,
//   - every row has exactly Columns() entries,
//   - len(columnHeaders) == Columns()+1 (trailing "f"),
//   - 0 <= HelperColumns() <= Columns().
type Table[T number.Calculable[T]] struct {
	title         string
	lhs           []Row[T]
	rhs           []T
	pivot         *Pivot[T]
	columnHeaders []string
	rowHeaders    []string
	helperColumns int
}

// NewTable validates the shape and returns a Table owning copies of the
// given slices. pivot may be nil.
func NewTable[T number.Calculable[T]](
	title string,
	lhs []Row[T],
	rhs []T,
	pivot *Pivot[T],
	columnHeaders, rowHeaders []string,
	helperColumns int,
) (*Table[T], error) {
	// Stage 1: validate
	if len(lhs) == 0 {
		return nil, fmt.Errorf("NewTable: no rows: %w", ErrDimension)
	}
	if len(rhs) != len(lhs) || len(rowHeaders) != len(lhs) {
		return nil, fmt.Errorf("NewTable: %d rows, %d rhs, %d row headers: %w",
			len(lhs), len(rhs), len(rowHeaders), ErrDimension)
	}
	cols := lhs[0].Len()
	for i, r := range lhs {
		if r.Len() != cols {
			return nil, fmt.Errorf("NewTable: row %d has %d entries, want %d: %w", i, r.Len(), cols, ErrDimension)
		}
	}
	if len(columnHeaders) != cols+1 {
		return nil, fmt.Errorf("NewTable: %d column headers for %d columns: %w", len(columnHeaders), cols, ErrDimension)
	}
	if helperColumns < 0 || helperColumns > cols {
		return nil, fmt.Errorf("NewTable: helper columns %d of %d: %w", helperColumns, cols, ErrDimension)
	}

	// Stage 2: copy
	t := &Table[T]{
		title:         title,
		lhs:           append([]Row[T](nil), lhs...),
		rhs:           append([]T(nil), rhs...),
		columnHeaders: append([]string(nil), columnHeaders...),
		rowHeaders:    append([]string(nil), rowHeaders...),
		helperColumns: helperColumns,
	}
	if pivot != nil {
		p := *pivot
		t.pivot = &p
	}

	return t, nil
}

// Title returns the snapshot label ("INITIAL TABLE", "ITERATION 3", ...).
func (t *Table[T]) Title() string { return t.title }

// Rows returns the number of rows, including the objective row(s).
func (t *Table[T]) Rows() int { return len(t.lhs) }

// Columns returns the number of LHS columns.
func (t *Table[T]) Columns() int { return t.lhs[0].Len() }

// HelperColumns returns the number of trailing helper columns.
func (t *Table[T]) HelperColumns() int { return t.helperColumns }

// IsExtended reports whether the table carries the Phase-1 extension.
func (t *Table[T]) IsExtended() bool { return t.helperColumns > 0 }

// Row returns LHS row i.
func (t *Table[T]) Row(i int) Row[T] { return t.lhs[i] }

// LHS returns a copy of the row slice. Rows are immutable and shared.
func (t *Table[T]) LHS() []Row[T] { return append([]Row[T](nil), t.lhs...) }

// At returns the LHS entry at (row, col).
func (t *Table[T]) At(row, col int) T { return t.lhs[row].At(col) }

// RHS returns a copy of the right-hand side.
func (t *Table[T]) RHS() []T { return append([]T(nil), t.rhs...) }

// RHSAt returns the right-hand side of row i.
func (t *Table[T]) RHSAt(i int) T { return t.rhs[i] }

// Objective returns the right-hand side of row 0.
func (t *Table[T]) Objective() T { return t.rhs[0] }

// Pivot returns a copy of the selected pivot, or nil if none was stored.
func (t *Table[T]) Pivot() *Pivot[T] {
	if t.pivot == nil {
		return nil
	}
	p := *t.pivot

	return &p
}

// ColumnHeaders returns a copy of the column headers, trailing "f" included.
func (t *Table[T]) ColumnHeaders() []string { return append([]string(nil), t.columnHeaders...) }

// RowHeaders returns a copy of the row headers.
func (t *Table[T]) RowHeaders() []string { return append([]string(nil), t.rowHeaders...) }

// WithTitle returns a snapshot identical to t except for its title.
// The immutable backing slices are shared.
func (t *Table[T]) WithTitle(title string) *Table[T] {
	out := *t
	out.title = title

	return &out
}

// generator returns a scalar of the table's kind and precision.
func (t *Table[T]) generator() T { return t.rhs[0] }
