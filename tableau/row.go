// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsimplex/number"
)

// Row is an immutable, ordered sequence of scalars of one kind.
// Every transformation returns a fresh Row; the receiver is never modified.
type Row[T number.Calculable[T]] struct {
	entries []T
}

// NewRow copies entries into a new Row.
func NewRow[T number.Calculable[T]](entries ...T) Row[T] {
	out := make([]T, len(entries))
	copy(out, entries)

	return Row[T]{entries: out}
}

// ZeroRow returns a Row of n zeros created from gen.
func ZeroRow[T number.Calculable[T]](gen T, n int) Row[T] {
	zero := constant(gen, "0")
	out := make([]T, n)
	for i := range out {
		out[i] = zero
	}

	return Row[T]{entries: out}
}

// Len returns the number of entries.
func (r Row[T]) Len() int { return len(r.entries) }

// At returns entry i. Panics when i is out of range, like a slice index.
func (r Row[T]) At(i int) T { return r.entries[i] }

// Entries returns a copy of the entries.
func (r Row[T]) Entries() []T {
	out := make([]T, len(r.entries))
	copy(out, r.entries)

	return out
}

// Invert negates every entry.
func (r Row[T]) Invert() Row[T] {
	out := make([]T, len(r.entries))
	for i, v := range r.entries {
		out[i] = v.Negate()
	}

	return Row[T]{entries: out}
}

// Scale multiplies every entry by factor.
func (r Row[T]) Scale(factor T) (Row[T], error) {
	out := make([]T, len(r.entries))
	for i, v := range r.entries {
		p, err := v.Multiply(factor)
		if err != nil {
			return Row[T]{}, fmt.Errorf("Row.Scale: entry %d: %w", i, err)
		}
		out[i] = p
	}

	return Row[T]{entries: out}, nil
}

// DivideBy divides every entry by divisor.
// A zero divisor leaves the row unchanged.
func (r Row[T]) DivideBy(divisor T) (Row[T], error) {
	if divisor.IsZero() {
		return r, nil
	}
	out := make([]T, len(r.entries))
	for i, v := range r.entries {
		q, err := v.Divide(divisor)
		if err != nil {
			return Row[T]{}, fmt.Errorf("Row.DivideBy: entry %d: %w", i, err)
		}
		out[i] = q
	}

	return Row[T]{entries: out}, nil
}

// Add returns the element-wise sum r + o.
// Returns ErrDimension when the lengths differ.
func (r Row[T]) Add(o Row[T]) (Row[T], error) {
	if len(r.entries) != len(o.entries) {
		return Row[T]{}, fmt.Errorf("Row.Add: %d vs %d entries: %w", len(r.entries), len(o.entries), ErrDimension)
	}
	out := make([]T, len(r.entries))
	for i, v := range r.entries {
		s, err := v.Add(o.entries[i])
		if err != nil {
			return Row[T]{}, fmt.Errorf("Row.Add: entry %d: %w", i, err)
		}
		out[i] = s
	}

	return Row[T]{entries: out}, nil
}

// Append returns r followed by vals.
func (r Row[T]) Append(vals ...T) Row[T] {
	out := make([]T, 0, len(r.entries)+len(vals))
	out = append(out, r.entries...)
	out = append(out, vals...)

	return Row[T]{entries: out}
}

// Truncate keeps the first n entries. n is clamped to [0, Len()].
func (r Row[T]) Truncate(n int) Row[T] {
	n = max(0, min(n, len(r.entries)))
	out := make([]T, n)
	copy(out, r.entries[:n])

	return Row[T]{entries: out}
}

// MinIndex returns the first index holding the smallest entry, or -1 for an
// empty row.
// Complexity: O(n).
func (r Row[T]) MinIndex() int {
	if len(r.entries) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(r.entries); i++ {
		if r.entries[i].Compare(r.entries[best]) < 0 {
			best = i
		}
	}

	return best
}

// IsNonNegative reports whether no entry is below zero.
func (r Row[T]) IsNonNegative() bool {
	for _, v := range r.entries {
		if isNegative(v) {
			return false
		}
	}

	return true
}

// String renders the entries as "[a b c]".
func (r Row[T]) String() string {
	parts := make([]string, len(r.entries))
	for i, v := range r.entries {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// constant creates a literal known to be well-formed. Panics otherwise.
func constant[T number.Calculable[T]](gen T, literal string) T {
	v, err := gen.Create(literal)
	if err != nil {
		panic(fmt.Sprintf("tableau: constant %q: %v", literal, err))
	}

	return v
}

// isNegative reports v < 0 (v < -v holds exactly for negative values).
func isNegative[T number.Calculable[T]](v T) bool {
	return v.Compare(v.Negate()) < 0
}

// isPositive reports v > 0.
func isPositive[T number.Calculable[T]](v T) bool {
	return v.Compare(v.Negate()) > 0
}
