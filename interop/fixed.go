package interop

import (
	"math/big"

	"github.com/db47h/mpfloat"
	"github.com/robaho/fixed"
)

// fixed.Fixed values carry fixedPlaces decimal places.
const fixedPlaces = 7

var fixedScale = big.NewRat(10_000_000, 1)

// FromFixed returns f rounded to prec bits according to mode. A NaN f yields
// NaN.
func FromFixed(f fixed.Fixed, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	if f.IsNaN() {
		return mpfloat.NaN(prec)
	}
	z, err := mpfloat.Parse(f.String(), prec, mode)
	if err != nil {
		return mpfloat.NaN(prec)
	}
	return z
}

// ToFixed returns x rounded to 7 decimal places according to mode. It fails
// with ErrNotFinite for NaN and ±Inf, and with ErrRange if the result does
// not fit a fixed.Fixed.
func ToFixed(x *mpfloat.Float, mode mpfloat.RoundingMode) (fixed.Fixed, error) {
	if !x.IsFinite() {
		return fixed.NaN, ErrNotFinite
	}
	r, _ := x.Rat()
	r.Mul(r, fixedScale)
	// r has a power of two denominator: its numerator's bit length is enough
	s := mpfloat.FromRat(r, uint(r.Num().BitLen()), mpfloat.ToNearestEven)
	i, _ := mpfloat.Rint(s, mode).Int(mode)
	if i == nil || !i.IsInt64() {
		return fixed.NaN, ErrRange
	}
	f := fixed.NewI(i.Int64(), fixedPlaces)
	if f.IsNaN() {
		return fixed.NaN, ErrRange
	}
	return f, nil
}
