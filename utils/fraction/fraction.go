// Package fraction provides the fixed-point fraction primitive used for
// currency-rate arithmetic.
//
// A Fraction is an exact rational number Num/Den over *big.Int. Multiplying an
// amount by a Fraction is performed at full precision (the numerator product is
// computed before any division) and then truncated towards zero. Truncation is
// always applied at the very last step, so repeated conversions with the same
// rate are consistent: the same input always yields the same output, and no
// intermediate rounding can accumulate.
//
// Usage:
//
//	rate, err := fraction.New(big.NewInt(218), big.NewInt(100)) // 2.18
//	eur := rate.Mul(weiAmount)                                  // truncated
package fraction

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrZeroDenominator is returned when constructing a fraction with Den == 0.
var ErrZeroDenominator = errors.New("fraction: zero denominator")

// Fraction is an exact rational rate. The zero value (nil Num/Den) is treated
// as the zero rate by IsZero; use New to build a valid non-degenerate fraction.
type Fraction struct {
	// Num is the numerator of the rate.
	Num *big.Int

	// Den is the denominator of the rate. Must never be zero for a
	// constructed fraction; New enforces this.
	Den *big.Int
}

// New builds a Fraction from a numerator and denominator, deep-copying both so
// the caller cannot mutate the fraction afterwards. Returns ErrZeroDenominator
// if den is zero or nil.
func New(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if num == nil {
		num = new(big.Int)
	}
	return Fraction{
		Num: new(big.Int).Set(num),
		Den: new(big.Int).Set(den),
	}, nil
}

// MustNew is a convenience constructor for static rates (presets, tests).
// Panics on a zero denominator.
func MustNew(num, den int64) Fraction {
	f, err := New(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return f
}

// IsZero reports whether the fraction evaluates to zero (unset or Num == 0).
func (f Fraction) IsZero() bool {
	return f.Num == nil || f.Num.Sign() == 0
}

// Mul multiplies x by the fraction at full precision and truncates the result
// towards zero. x is not modified; the result is freshly allocated.
//
// Mul(x) == trunc(x * Num / Den)
func (f Fraction) Mul(x *big.Int) *big.Int {
	if f.IsZero() || x == nil || x.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(x, f.Num)
	return product.Quo(product, f.Den)
}

// Copy returns a deep copy, so stored fractions stay immutable even if the
// original's big.Ints are mutated by the caller.
func (f Fraction) Copy() Fraction {
	cp := Fraction{}
	if f.Num != nil {
		cp.Num = new(big.Int).Set(f.Num)
	}
	if f.Den != nil {
		cp.Den = new(big.Int).Set(f.Den)
	}
	return cp
}

// String renders the fraction as "num/den" for logs and config dumps.
func (f Fraction) String() string {
	if f.Num == nil || f.Den == nil {
		return "0/1"
	}
	return fmt.Sprintf("%s/%s", f.Num.String(), f.Den.String())
}
