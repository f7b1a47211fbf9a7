// SPDX-License-Identifier: MIT

// Package problem: sentinel error set.

package problem

import "errors"

var (
	// ErrSyntax indicates a malformed objective or constraint line, or an
	// unknown relation.
	ErrSyntax = errors.New("problem: syntax error")

	// ErrInvalidCount indicates a variable or constraint count outside 1..10.
	ErrInvalidCount = errors.New("problem: invalid variable or constraint count")

	// ErrDimension indicates a constraint whose arity differs from the objective's.
	ErrDimension = errors.New("problem: dimension mismatch")

	// ErrFormat indicates an unsupported file extension or number kind.
	ErrFormat = errors.New("problem: unsupported format")
)
