// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvsimplex/number"
	"github.com/katalvlaran/lvsimplex/tableau"
)

// Transform applies one Gauss-Jordan pivot step to t.
//
// Stage 1: capture factor_i = -lhs[i][c] from the rows as they are.
// Stage 2: divide the pivot row (and its RHS) by the pivot value.
// Stage 3: row_i = pivotRow·factor_i + row_i for every other row, RHS included.
// Stage 4: swap the leaving row header for the entering column header and
// select the next pivot.
//
// Returns ErrNoPivot when t has no finite pivot.
// Complexity: O(rows·columns).
func Transform[T number.Calculable[T]](t *tableau.Table[T]) (*tableau.Table[T], error) {
	p := t.Pivot()
	if p == nil || p.IsUnbounded() {
		return nil, fmt.Errorf("Transform(%q): %w", t.Title(), ErrNoPivot)
	}

	var (
		lhs     = t.LHS()
		rhs     = t.RHS()
		factors = make([]T, len(lhs))
		err     error
	)

	// Stage 1: factors from the undivided rows
	for i, r := range lhs {
		factors[i] = r.At(p.Column).Negate()
	}

	// Stage 2: normalize the pivot row
	if lhs[p.Row], err = lhs[p.Row].DivideBy(p.Value); err != nil {
		return nil, fmt.Errorf("Transform: pivot row: %w", err)
	}
	if rhs[p.Row], err = rhs[p.Row].Divide(p.Value); err != nil {
		return nil, fmt.Errorf("Transform: pivot rhs: %w", err)
	}

	// Stage 3: eliminate the entering column from every other row
	for i := range lhs {
		if i == p.Row {
			continue
		}
		scaled, err := lhs[p.Row].Scale(factors[i])
		if err != nil {
			return nil, fmt.Errorf("Transform: row %d: %w", i, err)
		}
		if lhs[i], err = scaled.Add(lhs[i]); err != nil {
			return nil, fmt.Errorf("Transform: row %d: %w", i, err)
		}
		prod, err := rhs[p.Row].Multiply(factors[i])
		if err != nil {
			return nil, fmt.Errorf("Transform: rhs %d: %w", i, err)
		}
		if rhs[i], err = prod.Add(rhs[i]); err != nil {
			return nil, fmt.Errorf("Transform: rhs %d: %w", i, err)
		}
	}

	// Stage 4: headers and next pivot
	cols := t.ColumnHeaders()
	rows := tableau.UpdateRowHeaders(cols, t.RowHeaders(), p)
	next, err := tableau.SelectPivot(lhs, rhs, t.IsExtended())
	if err != nil {
		return nil, fmt.Errorf("Transform: %w", err)
	}

	return tableau.NewTable(t.Title(), lhs, rhs, &next, cols, rows, t.HelperColumns())
}
