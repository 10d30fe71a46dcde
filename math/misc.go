package math

import (
	"math/big"
	"math/bits"

	"github.com/db47h/mpfloat"
)

// constants
var (
	one  = big.NewFloat(1)
	two  = big.NewFloat(2)
	four = big.NewFloat(4)
	half = big.NewFloat(0.5)
)

const (
	// extra bits of working precision for the first approximation of a
	// result
	guardBits = 24
	// give up refining an approximation after that many attempts and return
	// the last one, faithfully rounded
	maxZivIter = 12
)

// float returns a new big.Float with precision prec, rounding to nearest
// even.
func float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// exponent returns the binary exponent e of x such that 2**(e-1) <= |x| <
// 2**e. x must be finite and non-zero.
func exponent(x *big.Float) int {
	return x.MantExp(nil)
}

// resultPrec returns the precision of a result: prec if non-zero, or the
// largest precision of the operands.
func resultPrec(prec uint, xs ...*mpfloat.Float) uint {
	if prec == 0 {
		for _, x := range xs {
			if x.Prec() > prec {
				prec = x.Prec()
			}
		}
	}
	switch {
	case prec == 0:
		return mpfloat.DefaultPrec
	case prec < mpfloat.MinPrec:
		return mpfloat.MinPrec
	case prec > mpfloat.MaxPrec:
		return mpfloat.MaxPrec
	}
	return prec
}

// approx computes an approximation r of some value at a working precision of
// w bits and returns it along with errExp such that the absolute error of r
// is below 2**errExp.
type approx func(w uint) (r *big.Float, errExp int)

// ziv returns the value approximated by f correctly rounded to prec bits
// according to mode. It evaluates f with increasing working precision until
// both ends of the error interval of the approximation round to the same
// value. The accuracy of the result is exact as long as the rounded value
// falls outside the interval.
func ziv(prec uint, mode mpfloat.RoundingMode, f approx) *mpfloat.Float {
	w := prec + guardBits + uint(bits.Len(prec))
	var r *big.Float
	for i := 0; i < maxZivIter; i++ {
		var e int
		r, e = f(w)
		if e == exactErr || r.IsInf() {
			return mpfloat.FromBig(r, prec, mode)
		}
		lo, hi := interval(r, e)
		a := mpfloat.FromBig(lo, prec, mode)
		b := mpfloat.FromBig(hi, prec, mode)
		if a.Identical(b) {
			if a.Acc() == mpfloat.Below {
				return a
			}
			if b.Acc() == mpfloat.Above {
				return b
			}
		}
		w += w / 2
	}
	return mpfloat.FromBig(r, prec, mode)
}

// interval returns the exact bounds r-2**e and r+2**e.
func interval(r *big.Float, e int) (lo, hi *big.Float) {
	eps := new(big.Float).SetMantExp(one, e) // 2**e
	top, bottom := e+1, e
	if r.Sign() != 0 {
		er := exponent(r)
		top = max(top, er)
		bottom = min(bottom, er-int(r.MinPrec()))
	}
	p := uint(top-bottom) + 2
	lo = float(p).Sub(r, eps)
	hi = float(p).Add(r, eps)
	return lo, hi
}

// nudge handles results f that are known to lie very close to v, with
// |f - v| < 2**errExp and the sign of f - v given by dir. If errExp
// is small enough for f and a value slightly off v to round identically at
// prec bits, nudge returns that rounding. It returns nil otherwise.
func nudge(v *big.Float, dir int, errExp int, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	q := int(max(prec, v.MinPrec())) + 3
	ev := exponent(v)
	if errExp >= ev-q {
		return nil
	}
	d := new(big.Float).SetMantExp(one, ev-q-1)
	if dir < 0 {
		d.Neg(d)
	}
	return mpfloat.FromBig(float(uint(q)+3).Add(v, d), prec, mode)
}

// guard returns the number of bits to add to the working precision to
// compensate for the rounding errors of n successive operations.
func guard(n int) uint {
	return uint(bits.Len(uint(n))) + 2
}

// pow sets z to the value of x**n rounded to z's precision and returns z.
// The caller is responsible for allocating guard bits. If z's precision is
// at least n×x.MinPrec(), the result is exact.
func pow(z, x *big.Float, n uint64) *big.Float {
	if n == 0 {
		return z.SetInt64(1)
	}
	y := float(z.Prec()).SetInt64(1)
	t := float(z.Prec()).Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(y, t)
		}
		t.Mul(t, t)
		if t.IsInf() || t.Sign() == 0 {
			return z.Set(t)
		}
		n /= 2
	}
	return z.Mul(t, y)
}
