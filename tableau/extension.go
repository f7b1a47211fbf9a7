// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/katalvlaran/lvsimplex/number"
)

// BuildExtension turns t into its Phase-1 form.
//
// Stage 1: every row with a negative RHS is inverted so an artificial
// variable can enter it with coefficient +1.
// Stage 2: a zero auxiliary row z' is prepended (row 0) and one helper column
// per inverted row is appended, holding 1 in z' and in its own row.
// Stage 3: headers h1..hk are inserted before "f", z' is prepended to the row
// headers.
// Stage 4: z' is canonicalized by adding the negation of every helper's unit
// row, so the helpers carry zero reduced cost; the pivot is reselected with
// extended semantics.
//
// Returns ErrAlreadyExtended when t already has helper columns.
// Complexity: O(k·(rows+columns)) for k helper columns.
func BuildExtension[T number.Calculable[T]](t *Table[T]) (*Table[T], error) {
	if t.IsExtended() {
		return nil, fmt.Errorf("BuildExtension: %d helper columns: %w", t.helperColumns, ErrAlreadyExtended)
	}

	var (
		gen     = t.generator()
		zero    = constant(gen, "0")
		one     = constant(gen, "1")
		negRows = NegativeRows(t.rhs)
		k       = len(negRows)
		columns = t.Columns() + k
		lhs     = make([]Row[T], 0, t.Rows()+1)
		rhs     = make([]T, 0, t.Rows()+1)
	)
	if k == 0 {
		return nil, fmt.Errorf("BuildExtension: no negative right-hand side: %w", ErrCanonicalForm)
	}

	// Stage 1: invert negative rows; unit[r] is the helper index owning row r
	unit := make(map[int]int, k)
	for h, r := range negRows {
		unit[r] = h
	}

	// Stage 2: z' row, then the original rows with helper columns appended
	lhs = append(lhs, ZeroRow(gen, columns))
	rhs = append(rhs, zero)
	for r, row := range t.lhs {
		b := t.rhs[r]
		if _, ok := unit[r]; ok {
			row, b = row.Invert(), b.Negate()
		}
		tail := ZeroRow(gen, k).entries
		if h, ok := unit[r]; ok {
			tail[h] = one
		}
		lhs = append(lhs, row.Append(tail...))
		rhs = append(rhs, b)
	}
	aux := lhs[0].entries
	for h := 0; h < k; h++ {
		aux[t.Columns()+h] = one
	}

	// Stage 3: headers
	colHdr := make([]string, 0, columns+1)
	colHdr = append(colHdr, t.columnHeaders[:len(t.columnHeaders)-1]...)
	for h := 1; h <= k; h++ {
		colHdr = append(colHdr, numbered(HelperPrefix, h))
	}
	colHdr = append(colHdr, t.columnHeaders[len(t.columnHeaders)-1])
	rowHdr := append([]string{AuxiliaryHeader}, t.rowHeaders...)

	// Stage 4: canonicalize z'
	for h := 0; h < k; h++ {
		r := unitRow(lhs, t.Columns()+h, one)
		if r < 0 {
			return nil, fmt.Errorf("BuildExtension: helper h%d: %w", h+1, ErrCanonicalForm)
		}
		var err error
		if lhs[0], err = lhs[0].Add(lhs[r].Invert()); err != nil {
			return nil, fmt.Errorf("BuildExtension: %w", err)
		}
		if rhs[0], err = rhs[0].Add(rhs[r].Negate()); err != nil {
			return nil, fmt.Errorf("BuildExtension: %w", err)
		}
	}

	pivot, err := SelectPivot(lhs, rhs, true)
	if err != nil {
		return nil, fmt.Errorf("BuildExtension: %w", err)
	}

	return NewTable(t.title, lhs, rhs, &pivot, colHdr, rowHdr, k)
}

// unitRow returns the first constraint row (index >= 2) holding one in col,
// or -1.
func unitRow[T number.Calculable[T]](lhs []Row[T], col int, one T) int {
	for r := 2; r < len(lhs); r++ {
		if lhs[r].At(col).Compare(one) == 0 {
			return r
		}
	}

	return -1
}

// RemoveExtension drops the auxiliary row z' and the helper columns,
// returning the Phase-2 starting table with a freshly selected pivot.
// Returns ErrNotExtended when t has no helper columns.
func RemoveExtension[T number.Calculable[T]](t *Table[T]) (*Table[T], error) {
	if !t.IsExtended() {
		return nil, fmt.Errorf("RemoveExtension: %w", ErrNotExtended)
	}

	var (
		columns = t.Columns() - t.helperColumns
		lhs     = make([]Row[T], 0, t.Rows()-1)
		rhs     = append([]T(nil), t.rhs[1:]...)
	)
	for _, row := range t.lhs[1:] {
		lhs = append(lhs, row.Truncate(columns))
	}
	colHdr := append(append([]string(nil), t.columnHeaders[:columns]...), t.columnHeaders[len(t.columnHeaders)-1])
	rowHdr := append([]string(nil), t.rowHeaders[1:]...)

	pivot, err := SelectPivot(lhs, rhs, false)
	if err != nil {
		return nil, fmt.Errorf("RemoveExtension: %w", err)
	}

	return NewTable(t.title, lhs, rhs, &pivot, colHdr, rowHdr, 0)
}
