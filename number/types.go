// SPDX-License-Identifier: MIT

package number

import (
	"cmp"
	"fmt"
)

// Calculable is the capability every tableau scalar provides.
// T is the concrete kind itself (Fraction, RoundedDecimal), so a
// Table[Fraction] can never mix in a RoundedDecimal by accident.
type Calculable[T any] interface {
	fmt.Stringer

	// Add returns receiver + other.
	// Returns ErrArithmetic when both operands are infinite.
	Add(other T) (T, error)

	// Multiply returns receiver * other.
	// Returns ErrArithmetic when both operands are infinite.
	Multiply(other T) (T, error)

	// Divide returns receiver / other.
	// Returns ErrArithmetic on two infinite operands or a finite zero divisor.
	Divide(other T) (T, error)

	// Negate returns -receiver; infinities flip their sign.
	Negate() T

	// Create parses literal into a value of the receiver's kind and precision.
	Create(literal string) (T, error)

	// Compare orders values numerically: -1, 0 or +1.
	// +inf is greater than every finite value, -inf smaller, equal infinities are equal.
	Compare(other T) int

	// ToInfinity returns the infinity sentinel of the given sign, keeping the
	// receiver's kind and precision.
	ToInfinity(sign Sign) T

	// IsInfinite reports whether the receiver is the infinity sentinel.
	IsInfinite() bool

	// IsZero reports whether the receiver is the finite additive identity.
	IsZero() bool

	// Decimal renders a finite value rounded half-even to places fractional
	// digits, trailing zeros stripped. Infinities render as their token.
	Decimal(places int32) string
}

// Sign selects the infinity sentinel. The zero value marks a finite number.
type Sign int8

const (
	// Finite marks a regular (non-infinite) value.
	Finite Sign = 0
	// Positive is +infinity.
	Positive Sign = 1
	// Negative is -infinity.
	Negative Sign = -1
)

// Display tokens for the infinity sentinel.
const (
	PositiveInfinityToken = "inf"
	NegativeInfinityToken = "minf"
)

// String returns the display token of an infinite sign ("inf", "minf").
func (s Sign) String() string {
	switch s {
	case Positive:
		return PositiveInfinityToken
	case Negative:
		return NegativeInfinityToken
	default:
		return "finite"
	}
}

// combineInfinite resolves an operation where at least one operand may be infinite.
// A single infinite operand wins; two infinite operands are an error.
func combineInfinite(a, b Sign) (Sign, error) {
	if a != Finite && b != Finite {
		return Finite, ErrArithmetic
	}
	if a != Finite {
		return a, nil
	}

	return b, nil
}

// compareInfinite orders two operands of which at least one is infinite.
// Finite values rank between -inf and +inf.
func compareInfinite(a, b Sign) int {
	return cmp.Compare(a, b)
}

// Compile-time interface checks.
var (
	_ Calculable[Fraction]       = Fraction{}
	_ Calculable[RoundedDecimal] = RoundedDecimal{}
)
