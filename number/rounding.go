// SPDX-License-Identifier: MIT

package number

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// divisionGuardDigits is the number of extra fractional digits kept when a
// quotient is formed before significant-digit rounding.
const divisionGuardDigits = 20

// ratToDecimal renders num/den (den > 0) rounded half-even to places
// fractional digits, trailing zeros stripped, never in exponent form.
//
// Implementation:
//   - Stage 1: q, r = QuoRem(num·10^places, den) (truncated toward zero).
//   - Stage 2: compare 2|r| with den; above → away from zero, tie → to even.
//   - Stage 3: format q·10^-places through decimal for plain output.
//
// Complexity: O(M(n)) big-integer multiply/divide on the operand sizes.
func ratToDecimal(num, den *big.Int, places int32) string {
	if places < 0 {
		places = 0
	}

	var (
		scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
		q     = new(big.Int).Mul(num, scale)
		r     = new(big.Int)
	)
	q.QuoRem(q, den, r)

	// Round half to even on the discarded remainder
	twice := new(big.Int).Abs(r)
	twice.Lsh(twice, 1)
	switch c := twice.Cmp(den); {
	case c > 0, c == 0 && q.Bit(0) == 1:
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	return decimal.NewFromBigInt(q, -places).String()
}

// significantDigits returns the number of digits of d's coefficient.
func significantDigits(d decimal.Decimal) int32 {
	return int32(len(new(big.Int).Abs(d.Coefficient()).String()))
}

// roundSignificant rounds d half-even so that exactly mantissa significant
// digits remain after the first non-zero digit.
//
// For |d| >= 1 this rounds relative to the integer/fractional boundary
// (mantissa digits counted from the leading integer digit); for |d| < 1 the
// leading zero fractional digits are skipped first. Both cases reduce to
// rounding at places = mantissa - 1 - e, where e is the decimal exponent of
// the leading digit.
//
// Complexity: O(digits of d).
func roundSignificant(d decimal.Decimal, mantissa int32) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	// e: position of the leading digit, 123.4 → 2, 0.0012 → -3
	e := significantDigits(d) + d.Exponent() - 1

	return d.RoundBank(mantissa - 1 - e)
}
