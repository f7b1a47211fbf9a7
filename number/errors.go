// SPDX-License-Identifier: MIT

// Package number: sentinel error set.
// Every message is prefixed with "number: ..." and callers match with errors.Is.
// Arithmetic methods wrap these with the operation name and operands.

package number

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned by Create (and the constructors behind it) when a
	// literal does not match the accepted grammar or has a zero denominator.
	ErrParse = errors.New("number: malformed literal")

	// ErrArithmetic is returned when two infinite operands are combined or a
	// finite value is divided by zero.
	ErrArithmetic = errors.New("number: invalid arithmetic")
)

// Operation name constants for error wrapping.
const (
	opAdd      = "Add"
	opMultiply = "Multiply"
	opDivide   = "Divide"
	opCreate   = "Create"
)

// opErrorf wraps err with "Kind.Op(a, b)" context, preserving errors.Is.
func opErrorf(kind, op string, a, b fmt.Stringer, err error) error {
	return fmt.Errorf("%s.%s(%s, %s): %w", kind, op, a, b, err)
}

// parseErrorf wraps ErrParse with the offending literal.
func parseErrorf(kind, literal string) error {
	return fmt.Errorf("%s.%s(%q): %w", kind, opCreate, literal, ErrParse)
}
