package math

import "github.com/db47h/mpfloat"

// FMA returns x*y + u, computed with only one rounding to prec bits according
// to mode. (That is, FMA performs the fused multiply-add of x, y, and u.) If
// prec is 0, the largest of x's, y's and u's precision is used. Special values
// follow Mul and Add: multiplying zero with an infinity, or adding two
// infinities with opposite signs, yields NaN.
//
// This function is a proxy for mpfloat.FMA(x, y, u, prec, mode).
func FMA(x, y, u *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	return mpfloat.FMA(x, y, u, prec, mode)
}

// Sqrt returns the square root of x rounded to prec bits according to mode.
// If prec is 0, x's precision is used. Sqrt(-0) is -0 and the square root of
// a negative number is NaN.
//
// This function is a proxy for mpfloat.Sqrt(x, prec, mode).
func Sqrt(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	return mpfloat.Sqrt(x, prec, mode)
}
