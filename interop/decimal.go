package interop

import (
	"math"
	"math/big"

	"github.com/db47h/mpfloat"
	"github.com/shopspring/decimal"
)

// FromDecimal returns d rounded to prec bits according to mode.
func FromDecimal(d decimal.Decimal, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	return mpfloat.FromRat(d.Rat(), prec, mode)
}

// ToDecimal returns the exact decimal value of x. It fails with ErrNotFinite
// for NaN and ±Inf, and with ErrRange if the decimal exponent of x does not
// fit an int32. Negative zero converts to zero.
func ToDecimal(x *mpfloat.Float) (decimal.Decimal, error) {
	if !x.IsFinite() {
		return decimal.Decimal{}, ErrNotFinite
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	r, _ := x.Rat()
	num, den := new(big.Int).Set(r.Num()), r.Denom()
	// den is a power of two 2**k, and num/2**k == num×5**k / 10**k.
	k := den.BitLen() - 1
	if k > math.MaxInt32 {
		return decimal.Decimal{}, ErrRange
	}
	if k == 0 {
		return decimal.NewFromBigInt(num, 0), nil
	}
	num.Mul(num, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))
	return decimal.NewFromBigInt(num, -int32(k)), nil
}
