package math

import (
	"math/big"
	"math/bits"

	"github.com/db47h/mpfloat"
)

// Atan returns the arctangent, in radians, of x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±π/2
//	Atan(NaN) = NaN
func Atan(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf():
		return halfPi(x.Signbit(), p, mode)
	case x.IsZero():
		return mpfloat.Zero(x.Signbit(), p)
	}
	b := x.Big()
	// atan(x) = x - x³/3 + O(x⁵)
	if ex := exponent(b); ex < 0 {
		if z := nudge(b, -b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) { return atanApprox(b, w) })
}

// Asin returns the arcsine, in radians, of x rounded to prec bits according
// to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(±1) = ±π/2
//	Asin(x) = NaN if x < -1 or x > 1
//	Asin(NaN) = NaN
func Asin(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.IsInf():
		return mpfloat.NaN(p)
	case x.IsZero():
		return mpfloat.Zero(x.Signbit(), p)
	}
	b := x.Big()
	switch new(big.Float).Abs(b).Cmp(one) {
	case 1:
		return mpfloat.NaN(p)
	case 0:
		return halfPi(b.Signbit(), p, mode)
	}
	// asin(x) = x + x³/6 + O(x⁵)
	if ex := exponent(b); ex < 0 {
		if z := nudge(b, b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	// asin(x) = atan(x / √((1-x)(1+x)))
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 8
		d := float(pp).Mul(oneMinus(b), onePlus(b))
		r, e := atanApprox(float(pp).Quo(b, d.Sqrt(d)), w)
		// |atan(t(1+δ)) - atan(t)| <= |δ×atan(t)|
		return r, max(e, exponent(r)-int(pp)+2) + 1
	})
}

// Acos returns the arccosine, in radians, of x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Acos(1) = +0
//	Acos(-1) = π
//	Acos(x) = NaN if x < -1 or x > 1
//	Acos(NaN) = NaN
func Acos(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.IsInf():
		return mpfloat.NaN(p)
	case x.IsZero():
		return halfPi(false, p, mode)
	}
	b := x.Big()
	switch new(big.Float).Abs(b).Cmp(one) {
	case 1:
		return mpfloat.NaN(p)
	case 0:
		if b.Sign() > 0 {
			return mpfloat.Zero(false, p)
		}
		return Pi(p, mode)
	}
	// acos(x) = 2 × atan(√((1-x)/(1+x)))
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 8
		u := float(pp).Quo(oneMinus(b), onePlus(b))
		u.Sqrt(u)
		r, e := atanApprox(u, w)
		r.SetMantExp(r, 1)
		return r, max(e+1, exponent(r)-int(pp)+3) + 1
	})
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value, rounded to prec bits according
// to mode. If prec is 0, the larger of x's and y's precision is used.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(±0, x>=0) = ±0
//	Atan2(±0, x<=-0) = ±π
//	Atan2(y>0, 0) = +π/2
//	Atan2(y<0, 0) = -π/2
//	Atan2(±Inf, +Inf) = ±π/4
//	Atan2(±Inf, -Inf) = ±3π/4
//	Atan2(y, +Inf) = ±0
//	Atan2(y>0, -Inf) = +π
//	Atan2(y<0, -Inf) = -π
//	Atan2(±Inf, x) = ±π/2
func Atan2(y, x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, y, x)
	neg := y.Signbit()
	switch {
	case x.IsNaN() || y.IsNaN():
		return mpfloat.NaN(p)
	case y.IsZero():
		if x.Signbit() {
			return signedPi(neg, p, mode)
		}
		return mpfloat.Zero(neg, p)
	case x.IsZero():
		return halfPi(neg, p, mode)
	case x.IsInf():
		if x.Signbit() {
			if y.IsInf() {
				// ±3π/4
				return ziv(p, mode, func(w uint) (*big.Float, int) {
					r := pi(w + 2)
					r.Mul(r, big.NewFloat(0.75))
					if neg {
						r.Neg(r)
					}
					return r, 3 - int(w)
				})
			}
			return signedPi(neg, p, mode)
		}
		if y.IsInf() {
			return ziv(p, mode, func(w uint) (*big.Float, int) {
				r := pi(w)
				r.SetMantExp(r, -2)
				if neg {
					r.Neg(r)
				}
				return r, -int(w)
			})
		}
		return mpfloat.Zero(neg, p)
	case y.IsInf():
		return halfPi(neg, p, mode)
	}

	yb, xb := y.Big(), x.Big()
	if new(big.Float).Abs(yb).Cmp(new(big.Float).Abs(xb)) <= 0 {
		if !xb.Signbit() {
			// atan(y/x)
			return ziv(p, mode, func(w uint) (*big.Float, int) {
				pp := w + 8
				r, e := atanApprox(float(pp).Quo(yb, xb), w)
				return r, max(e, exponent(r)-int(pp)+1) + 1
			})
		}
		// atan(y/x) ± π
		return ziv(p, mode, func(w uint) (*big.Float, int) {
			pp := w + 8
			r, e := atanApprox(float(pp).Quo(yb, xb), pp)
			v := pi(pp)
			if neg {
				v.Neg(v)
			}
			r.Add(r, v)
			return r, max(e, 3-int(pp)) + 2
		})
	}
	// ±π/2 - atan(x/y)
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 8
		r, e := atanApprox(float(pp).Quo(xb, yb), pp)
		hp := pi(pp)
		hp.SetMantExp(hp, -1)
		if neg {
			hp.Neg(hp)
		}
		r.Sub(hp, r)
		return r, max(e, 1-int(pp)) + 2
	})
}

// halfPi returns ±π/2.
func halfPi(neg bool, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	return ziv(prec, mode, func(w uint) (*big.Float, int) {
		r := pi(w)
		r.SetMantExp(r, -1)
		if neg {
			r.Neg(r)
		}
		return r, 1 - int(w)
	})
}

// signedPi returns ±π.
func signedPi(neg bool, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	return ziv(prec, mode, func(w uint) (*big.Float, int) {
		r := pi(w)
		if neg {
			r.Neg(r)
		}
		return r, 2 - int(w)
	})
}

// oneMinus returns the exact value of 1-x for |x| < 1.
func oneMinus(x *big.Float) *big.Float {
	return float(uint(int(x.MinPrec())-exponent(x)+2)).Sub(one, x)
}

// onePlus returns the exact value of 1+x for |x| < 1.
func onePlus(x *big.Float) *big.Float {
	return float(uint(int(x.MinPrec())-exponent(x)+2)).Add(one, x)
}

// atanApprox returns an approximation of atan(x) for a finite, non-zero x
// along with the binary exponent of its absolute error.
//
// The argument is first brought into [0, 1] with atan(x) = π/2 - atan(1/x),
// then halved n times with atan(x) = 2×atan(x/(1+√(1+x²))) until the Taylor
// series converges quickly.
func atanApprox(x *big.Float, w uint) (*big.Float, int) {
	var (
		// argument reduction threshold
		h   = 1 << (bits.Len(w) / 2)
		pp  = w + 16
		t   = float(pp).Abs(x)
		u   = float(pp)
		inv = t.Cmp(one) > 0
		n   = 0 // halvings
		m   = 0 // terms
	)
	if inv {
		t.Quo(one, t)
	}
	for t.Sign() != 0 && exponent(t) > -h {
		// t / (1 + √(1 + t²))
		u.Mul(t, t)
		u.Add(u, one)
		u.Sqrt(u)
		t.Quo(t, u.Add(u, one))
		n++
	}

	// atan(t) = t - t³/3 + t⁵/5 - ...
	var (
		t2   = float(pp).Mul(t, t)
		sum  = float(pp).Set(t)
		term = float(pp).Set(t)
		d    = float(64)
	)
	for i := int64(1); t.Sign() != 0; i++ {
		term.Mul(term, t2)
		u.Quo(term, d.SetInt64(2*i+1))
		if i%2 != 0 {
			sum.Sub(sum, u)
		} else {
			sum.Add(sum, u)
		}
		m++
		if u.Sign() == 0 || exponent(u) < exponent(t)-int(pp) {
			break
		}
	}
	sum.SetMantExp(sum, n)
	// relative error
	rel := int(guard(3*n+m)) - int(pp)
	e := exponent(sum) + rel
	if inv {
		hp := pi(pp)
		hp.SetMantExp(hp, -1)
		sum.Sub(hp, sum)
		e = max(e, 1-int(pp)) + 1
	}
	if x.Signbit() {
		sum.Neg(sum)
	}
	return sum, e + 1
}
