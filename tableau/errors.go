// SPDX-License-Identifier: MIT

// Package tableau: sentinel error set.
// All exported operations return these sentinels, wrapped with operation
// context via fmt.Errorf("Op: ...: %w"); callers match with errors.Is.

package tableau

import "errors"

var (
	// ErrDimension indicates inconsistent shapes: objective/constraint arity
	// mismatch, ragged rows, or header counts that do not match the matrix.
	ErrDimension = errors.New("tableau: dimension mismatch")

	// ErrInvalidCount indicates a variable or constraint count outside the
	// configured bounds (1..10 by default).
	ErrInvalidCount = errors.New("tableau: invalid variable or constraint count")

	// ErrUnknownRelation indicates a relation token other than ≤, ≥ or =.
	ErrUnknownRelation = errors.New("tableau: unknown relation")

	// ErrAlreadyExtended is returned by BuildExtension on a Phase-1 table.
	ErrAlreadyExtended = errors.New("tableau: table is already extended")

	// ErrNotExtended is returned by RemoveExtension on a table without helper columns.
	ErrNotExtended = errors.New("tableau: table is not extended")

	// ErrCanonicalForm indicates that a helper column has no unit row to
	// eliminate against while canonicalizing the auxiliary row.
	ErrCanonicalForm = errors.New("tableau: helper column has no unit row")
)
