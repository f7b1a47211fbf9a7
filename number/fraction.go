// SPDX-License-Identifier: MIT

package number

import (
	"math/big"
	"strings"
)

const kindFraction = "Fraction"

// Fraction is an exact rational number num/den.
//
// Invariants (enforced by every constructor):
//   - gcd(|num|, den) == 1,
//   - den > 0 (the sign lives on the numerator),
//   - zero is stored as 0/1.
//
// The zero value is a valid 0/1 and can be used as a generator.
type Fraction struct {
	num *big.Int // reduced numerator; nil means 0
	den *big.Int // reduced positive denominator; nil means 1
	inf Sign     // Finite unless this is the infinity sentinel
}

// NewFraction returns the rational zero, the usual generator for exact arithmetic.
func NewFraction() Fraction {
	return Fraction{}
}

// NewFractionFromInts builds num/den in reduced form.
// Returns ErrArithmetic when den == 0.
// Complexity: O(log(min(|num|, |den|))) gcd steps.
func NewFractionFromInts(num, den int64) (Fraction, error) {
	return newFraction(big.NewInt(num), big.NewInt(den))
}

// newFraction reduces n/d. The arguments are not retained.
func newFraction(n, d *big.Int) (Fraction, error) {
	// Validate
	if d.Sign() == 0 {
		return Fraction{}, ErrArithmetic
	}
	// Zero normalizes to 0/1
	if n.Sign() == 0 {
		return Fraction{}, nil
	}

	// Reduce by the gcd of the absolute values
	var (
		g   = gcd(n, d)
		num = new(big.Int).Quo(n, g)
		den = new(big.Int).Quo(d, g)
	)
	// Move the sign onto the numerator
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	return Fraction{num: num, den: den}, nil
}

// gcd computes the greatest common divisor of |a| and |b| with the Euclidean
// algorithm. Both inputs must be non-zero.
func gcd(a, b *big.Int) *big.Int {
	var (
		x = new(big.Int).Abs(a)
		y = new(big.Int).Abs(b)
		r = new(big.Int)
	)
	for y.Sign() != 0 {
		r.Rem(x, y)  // r = x mod y
		x, y = y, x  // shift
		y.Set(r)     // y = r
	}

	return x
}

// numerator returns the stored numerator, treating nil as 0.
func (f Fraction) numerator() *big.Int {
	if f.num == nil {
		return big.NewInt(0)
	}

	return f.num
}

// denominator returns the stored denominator, treating nil as 1.
func (f Fraction) denominator() *big.Int {
	if f.den == nil {
		return big.NewInt(1)
	}

	return f.den
}

// Num returns a copy of the reduced numerator (0 for infinities).
func (f Fraction) Num() *big.Int {
	if f.inf != Finite {
		return big.NewInt(0)
	}

	return new(big.Int).Set(f.numerator())
}

// Den returns a copy of the reduced, positive denominator (1 for infinities).
func (f Fraction) Den() *big.Int {
	if f.inf != Finite {
		return big.NewInt(1)
	}

	return new(big.Int).Set(f.denominator())
}

// Create parses a literal into a reduced Fraction.
// "-0.5" becomes -1/2, "-140/65" becomes -28/13.
// Returns ErrParse on malformed input or a zero denominator.
func (f Fraction) Create(s string) (Fraction, error) {
	lit, ok := parseLiteral(s)
	if !ok {
		return Fraction{}, parseErrorf(kindFraction, s)
	}

	var (
		n = new(big.Int)
		d = big.NewInt(1)
	)
	if _, ok = n.SetString(lit.signed(), 10); !ok {
		return Fraction{}, parseErrorf(kindFraction, s)
	}
	switch {
	case lit.denominator != "":
		if _, ok = d.SetString(lit.denominator, 10); !ok || d.Sign() == 0 {
			return Fraction{}, parseErrorf(kindFraction, s)
		}
	case lit.fraction != "":
		// int.digits = (int·10^k + digits) / 10^k
		d.Exp(big.NewInt(10), big.NewInt(int64(len(lit.fraction))), nil)
	}

	out, err := newFraction(n, d)
	if err != nil {
		return Fraction{}, parseErrorf(kindFraction, s)
	}

	return out, nil
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	if f.inf != Finite || g.inf != Finite {
		sign, err := combineInfinite(f.inf, g.inf)
		if err != nil {
			return Fraction{}, opErrorf(kindFraction, opAdd, f, g, err)
		}

		return Fraction{inf: sign}, nil
	}

	// a/b + c/d = (a·d + c·b) / (b·d)
	var (
		ad  = new(big.Int).Mul(f.numerator(), g.denominator())
		cb  = new(big.Int).Mul(g.numerator(), f.denominator())
		den = new(big.Int).Mul(f.denominator(), g.denominator())
	)

	return newFraction(ad.Add(ad, cb), den)
}

// Multiply returns f · g.
func (f Fraction) Multiply(g Fraction) (Fraction, error) {
	if f.inf != Finite || g.inf != Finite {
		sign, err := combineInfinite(f.inf, g.inf)
		if err != nil {
			return Fraction{}, opErrorf(kindFraction, opMultiply, f, g, err)
		}

		return Fraction{inf: sign}, nil
	}

	return newFraction(
		new(big.Int).Mul(f.numerator(), g.numerator()),
		new(big.Int).Mul(f.denominator(), g.denominator()),
	)
}

// Divide returns f / g.
// Returns ErrArithmetic when g is the finite zero.
func (f Fraction) Divide(g Fraction) (Fraction, error) {
	if f.inf != Finite || g.inf != Finite {
		sign, err := combineInfinite(f.inf, g.inf)
		if err != nil {
			return Fraction{}, opErrorf(kindFraction, opDivide, f, g, err)
		}

		return Fraction{inf: sign}, nil
	}
	if g.IsZero() {
		return Fraction{}, opErrorf(kindFraction, opDivide, f, g, ErrArithmetic)
	}

	// (a/b) / (c/d) = (a·d) / (b·c)
	return newFraction(
		new(big.Int).Mul(f.numerator(), g.denominator()),
		new(big.Int).Mul(f.denominator(), g.numerator()),
	)
}

// Negate returns -f.
func (f Fraction) Negate() Fraction {
	if f.inf != Finite {
		return Fraction{inf: -f.inf}
	}
	if f.IsZero() {
		return Fraction{}
	}

	return Fraction{num: new(big.Int).Neg(f.numerator()), den: new(big.Int).Set(f.denominator())}
}

// Compare orders f and g exactly by cross-multiplication (denominators are positive).
func (f Fraction) Compare(g Fraction) int {
	if f.inf != Finite || g.inf != Finite {
		return compareInfinite(f.inf, g.inf)
	}
	left := new(big.Int).Mul(f.numerator(), g.denominator())
	right := new(big.Int).Mul(g.numerator(), f.denominator())

	return left.Cmp(right)
}

// ToInfinity returns the infinite Fraction of the given sign.
func (f Fraction) ToInfinity(sign Sign) Fraction {
	return Fraction{inf: sign}
}

// IsInfinite reports whether f is the infinity sentinel.
func (f Fraction) IsInfinite() bool {
	return f.inf != Finite
}

// IsZero reports whether f is the finite zero.
func (f Fraction) IsZero() bool {
	return f.inf == Finite && f.numerator().Sign() == 0
}

// Decimal renders f rounded half-even to places fractional digits.
func (f Fraction) Decimal(places int32) string {
	if f.inf != Finite {
		return f.inf.String()
	}

	return ratToDecimal(f.numerator(), f.denominator(), places)
}

// String renders the reduced form: "num" when den == 1, otherwise "num/den".
func (f Fraction) String() string {
	if f.inf != Finite {
		return f.inf.String()
	}
	if f.denominator().Cmp(big.NewInt(1)) == 0 {
		return f.numerator().String()
	}

	var sb strings.Builder
	sb.WriteString(f.numerator().String())
	sb.WriteByte('/')
	sb.WriteString(f.denominator().String())

	return sb.String()
}
