// SPDX-License-Identifier: MIT

// Package number provides the scalar types used for every simplex tableau entry.
//
// Two interchangeable kinds implement the Calculable capability:
//
//   - Fraction: exact rational arithmetic on arbitrary-precision integers.
//     Values are always stored fully reduced (gcd-divided, denominator > 0,
//     zero normalized to 0/1).
//   - RoundedDecimal: arbitrary-precision decimal rounded after every
//     operation to a configured number of significant digits (round-half-even).
//
// Both kinds share a signed-infinity sentinel (Sign). It only ever appears in
// the ratio test of the pivot selection: combining it with a finite value
// yields the infinite operand, combining two infinities is an error.
//
// Values are immutable: every arithmetic method returns a fresh value.
// A value of either kind also acts as a generator: Create mints new literals
// of the same kind and precision, so the tableau engine never needs global
// state to know which arithmetic it runs on.
//
// Literal grammar accepted by Create:
//
//	-?int            e.g. "3", "-12"
//	-?int/nonzero    e.g. "-140/65"
//	-?int.digits     e.g. "0.25"
package number
