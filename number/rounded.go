// SPDX-License-Identifier: MIT

package number

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const kindRounded = "RoundedDecimal"

// panicMantissaInvalid is raised by NewRoundedDecimal on a non-positive mantissa.
const panicMantissaInvalid = "number: NewRoundedDecimal: mantissa must be > 0"

// RoundedDecimal is an arbitrary-precision decimal that is rounded to
// mantissa significant digits (round-half-even) after every operation.
//
// The stored value is always already rounded, so rounding is idempotent.
type RoundedDecimal struct {
	value    decimal.Decimal // rounded value; zero for infinities
	mantissa int32           // significant digits kept
	inf      Sign            // Finite unless this is the infinity sentinel
}

// NewRoundedDecimal returns the zero generator for mantissa significant digits.
// Panics when mantissa <= 0 (programmer error).
func NewRoundedDecimal(mantissa int) RoundedDecimal {
	if mantissa <= 0 {
		panic(panicMantissaInvalid)
	}

	return RoundedDecimal{value: decimal.Zero, mantissa: int32(mantissa)}
}

// NewRoundedDecimalFromDecimal rounds d to mantissa significant digits.
// Panics when mantissa <= 0 (programmer error).
func NewRoundedDecimalFromDecimal(d decimal.Decimal, mantissa int) RoundedDecimal {
	gen := NewRoundedDecimal(mantissa)

	return gen.with(d)
}

// with wraps d rounded to the receiver's mantissa.
func (r RoundedDecimal) with(d decimal.Decimal) RoundedDecimal {
	return RoundedDecimal{value: roundSignificant(d, r.mantissa), mantissa: r.mantissa}
}

// precision resolves the mantissa of a binary operation: the finite operand's
// mantissa wins so an infinity never degrades the result.
func (r RoundedDecimal) precision(o RoundedDecimal) RoundedDecimal {
	if o.mantissa > 0 && o.inf == Finite {
		return RoundedDecimal{mantissa: o.mantissa}
	}

	return RoundedDecimal{mantissa: r.mantissa}
}

// Mantissa returns the configured number of significant digits.
func (r RoundedDecimal) Mantissa() int {
	return int(r.mantissa)
}

// Value returns the rounded decimal value (zero for infinities).
func (r RoundedDecimal) Value() decimal.Decimal {
	return r.value
}

// Round rounds d to the receiver's mantissa. Round(Round(d)) == Round(d).
func (r RoundedDecimal) Round(d decimal.Decimal) decimal.Decimal {
	return roundSignificant(d, r.mantissa)
}

// Create parses a literal and rounds it to the receiver's mantissa.
// A p/q literal is divided with extra guard digits before rounding.
// Returns ErrParse on malformed input or a zero denominator.
func (r RoundedDecimal) Create(s string) (RoundedDecimal, error) {
	lit, ok := parseLiteral(s)
	if !ok || r.mantissa <= 0 {
		return RoundedDecimal{}, parseErrorf(kindRounded, s)
	}

	if lit.denominator == "" {
		d, err := decimal.NewFromString(lit.decimal())
		if err != nil {
			return RoundedDecimal{}, parseErrorf(kindRounded, s)
		}

		return r.with(d), nil
	}

	var (
		num = new(big.Int)
		den = new(big.Int)
	)
	if _, ok = num.SetString(lit.signed(), 10); !ok {
		return RoundedDecimal{}, parseErrorf(kindRounded, s)
	}
	if _, ok = den.SetString(lit.denominator, 10); !ok || den.Sign() == 0 {
		return RoundedDecimal{}, parseErrorf(kindRounded, s)
	}
	q := decimal.NewFromBigInt(num, 0).DivRound(decimal.NewFromBigInt(den, 0), r.mantissa+divisionGuardDigits)

	return r.with(q), nil
}

// Add returns r + o rounded.
func (r RoundedDecimal) Add(o RoundedDecimal) (RoundedDecimal, error) {
	if r.inf != Finite || o.inf != Finite {
		sign, err := combineInfinite(r.inf, o.inf)
		if err != nil {
			return RoundedDecimal{}, opErrorf(kindRounded, opAdd, r, o, err)
		}

		return r.ToInfinity(sign), nil
	}

	return r.precision(o).with(r.value.Add(o.value)), nil
}

// Multiply returns r · o rounded.
func (r RoundedDecimal) Multiply(o RoundedDecimal) (RoundedDecimal, error) {
	if r.inf != Finite || o.inf != Finite {
		sign, err := combineInfinite(r.inf, o.inf)
		if err != nil {
			return RoundedDecimal{}, opErrorf(kindRounded, opMultiply, r, o, err)
		}

		return r.ToInfinity(sign), nil
	}

	return r.precision(o).with(r.value.Mul(o.value)), nil
}

// Divide returns r / o rounded. The quotient is formed with
// digits(r)+digits(o)+20 fractional digits before rounding.
// Returns ErrArithmetic when o is the finite zero.
func (r RoundedDecimal) Divide(o RoundedDecimal) (RoundedDecimal, error) {
	if r.inf != Finite || o.inf != Finite {
		sign, err := combineInfinite(r.inf, o.inf)
		if err != nil {
			return RoundedDecimal{}, opErrorf(kindRounded, opDivide, r, o, err)
		}

		return r.ToInfinity(sign), nil
	}
	if o.value.IsZero() {
		return RoundedDecimal{}, opErrorf(kindRounded, opDivide, r, o, ErrArithmetic)
	}

	places := significantDigits(r.value) + significantDigits(o.value) + divisionGuardDigits

	return r.precision(o).with(r.value.DivRound(o.value, places)), nil
}

// Negate returns -r.
func (r RoundedDecimal) Negate() RoundedDecimal {
	if r.inf != Finite {
		return r.ToInfinity(-r.inf)
	}

	return RoundedDecimal{value: r.value.Neg(), mantissa: r.mantissa}
}

// Compare orders r and o numerically.
func (r RoundedDecimal) Compare(o RoundedDecimal) int {
	if r.inf != Finite || o.inf != Finite {
		return compareInfinite(r.inf, o.inf)
	}

	return r.value.Cmp(o.value)
}

// ToInfinity returns the infinity sentinel of the given sign with the receiver's mantissa.
func (r RoundedDecimal) ToInfinity(sign Sign) RoundedDecimal {
	return RoundedDecimal{value: decimal.Zero, mantissa: r.mantissa, inf: sign}
}

// IsInfinite reports whether r is the infinity sentinel.
func (r RoundedDecimal) IsInfinite() bool {
	return r.inf != Finite
}

// IsZero reports whether r is the finite zero.
func (r RoundedDecimal) IsZero() bool {
	return r.inf == Finite && r.value.IsZero()
}

// Decimal renders r rounded half-even to places fractional digits.
func (r RoundedDecimal) Decimal(places int32) string {
	if r.inf != Finite {
		return r.inf.String()
	}

	return r.value.RoundBank(places).String()
}

// String renders the plain (non-exponential) decimal, trailing zeros stripped.
func (r RoundedDecimal) String() string {
	if r.inf != Finite {
		return r.inf.String()
	}

	return r.value.String()
}
