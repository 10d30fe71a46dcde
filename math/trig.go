package math

import (
	"math/big"

	"github.com/db47h/mpfloat"
)

// Sin returns the sine of the radian argument x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.IsInf():
		return mpfloat.NaN(p)
	case x.IsZero():
		return mpfloat.Zero(x.Signbit(), p)
	}
	b := x.Big()
	// sin(x) = x - x³/6 + O(x⁵)
	if ex := exponent(b); ex < 0 {
		if z := nudge(b, -b.Sign(), 3*ex-2, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		s, _, es, _ := sinCos(b, w)
		return s, es
	})
}

// Cos returns the cosine of the radian argument x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.IsInf():
		return mpfloat.NaN(p)
	case x.IsZero():
		return mpfloat.FromInt64(1, p, mode)
	}
	b := x.Big()
	// cos(x) = 1 - x²/2 + O(x⁴)
	if ex := exponent(b); ex < 0 {
		if z := nudge(one, -1, 2*ex-1, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		_, c, _, ec := sinCos(b, w)
		return c, ec
	})
}

// Tan returns the tangent of the radian argument x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.IsInf():
		return mpfloat.NaN(p)
	case x.IsZero():
		return mpfloat.Zero(x.Signbit(), p)
	}
	b := x.Big()
	// tan(x) = x + x³/3 + O(x⁵)
	if ex := exponent(b); ex < 0 {
		if z := nudge(b, b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		s, c, es, ec := sinCos(b, w)
		if s.Sign() == 0 || c.Sign() == 0 {
			// not enough precision to tell anything
			return float(w), 1
		}
		t := float(s.Prec()).Quo(s, c)
		return t, exponent(t) + max(es-exponent(s), ec-exponent(c), -int(t.Prec())) + 3
	})
}

// sinCos returns approximations of sin(x) and cos(x) for a finite x along
// with the binary exponents of their absolute errors.
//
// x is reduced to r = x - k×π/2 with |r| <= π/4, and the results are
// derived from the Taylor series of sin(r) and cos(r) according to the
// quadrant k mod 4.
func sinCos(x *big.Float, w uint) (s, c *big.Float, es, ec int) {
	var (
		ex   = exponent(x)
		pp   = w + guard(int(w)) + 8
		r    = float(pp)
		quad int64
		er   int // error of r
	)

	if ex <= 0 {
		// |x| < 1: no reduction
		r.Set(x)
		er = ex - int(pp)
	} else {
		// π/2 with an absolute error below 2**-(pp+ex)
		hp := pi(pp + uint(ex) + 2)
		hp.SetMantExp(hp, -1)
		q := float(uint(ex) + 64).Quo(x, hp)
		if q.Signbit() {
			q.Sub(q, half)
		} else {
			q.Add(q, half)
		}
		k, _ := q.Int(nil)
		quad = new(big.Int).And(k, big.NewInt(3)).Int64()
		kp := float(hp.Prec() + uint(k.BitLen())).SetInt(k)
		r.Sub(x, kp.Mul(kp, hp))
		er = 1 - int(pp)
	}

	var (
		r2  = float(pp).Mul(r, r)
		sum = float(pp)
		t   = float(pp)
		d   = float(64)
		n   int // number of terms
	)

	// sin(r) = r - r³/3! + r⁵/5! - ...
	sum.Set(r)
	t.Set(r)
	if r.Sign() != 0 {
		for i := int64(1); ; i++ {
			t.Mul(t, r2)
			t.Quo(t, d.SetInt64(-2*i*(2*i+1)))
			sum.Add(sum, t)
			n++
			if t.Sign() == 0 || exponent(t) < exponent(r)-int(pp) {
				break
			}
		}
		es = max(exponent(r)-int(pp)+int(guard(n)), er) + 1
	} else {
		es = er
	}
	s = sum

	// cos(r) = 1 - r²/2! + r⁴/4! - ...
	sum = float(pp).SetInt64(1)
	t.SetInt64(1)
	n = 0
	if r.Sign() != 0 {
		for i := int64(1); ; i++ {
			t.Mul(t, r2)
			t.Quo(t, d.SetInt64(-(2*i-1)*(2*i)))
			sum.Add(sum, t)
			n++
			if t.Sign() == 0 || exponent(t) < -int(pp) {
				break
			}
		}
	}
	ec = max(int(guard(n))-int(pp), er) + 1
	c = sum

	switch quad {
	case 1:
		s, c, es, ec = c, s.Neg(s), ec, es
	case 2:
		s, c = s.Neg(s), c.Neg(c)
	case 3:
		s, c, es, ec = c.Neg(c), s, ec, es
	}
	return s, c, es, ec
}
