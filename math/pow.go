package math

import (
	"math/big"

	"github.com/db47h/mpfloat"
)

// maximum number of bits of an intermediate exact power
const maxExactBits = 1 << 16

// Pow returns x**y rounded to prec bits according to mode. If prec is 0,
// the larger of x's and y's precision is used.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, NaN) = NaN
//	Pow(NaN, y) = NaN
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(+Inf, y) = +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for finite y > 0 and not an odd integer
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
//
// Integer powers are computed exactly, then rounded once, whenever the
// exact result is of reasonable size. So are powers with a dyadic exponent
// y = n/2**k if x has an exact 2**k-th root.
func Pow(x, y *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x, y)
	switch {
	case y.IsZero():
		return mpfloat.FromInt64(1, p, mode)
	case x.Cmp(mpfloat.FromInt64(1, 1, mpfloat.ToNearestEven)) == 0:
		return mpfloat.FromInt64(1, p, mode)
	case x.IsNaN() || y.IsNaN():
		return mpfloat.NaN(p)
	case y.IsInf():
		switch c := x.Abs().Cmp(mpfloat.FromInt64(1, 1, mpfloat.ToNearestEven)); {
		case c == 0:
			return mpfloat.FromInt64(1, p, mode)
		case (c > 0) == (y.Sign() > 0):
			return mpfloat.Inf(false, p)
		default:
			return mpfloat.Zero(false, p)
		}
	case x.IsInf():
		if x.Signbit() {
			return Pow(mpfloat.Zero(true, 1), y.Neg(), p, mode)
		}
		if y.Sign() > 0 {
			return mpfloat.Inf(false, p)
		}
		return mpfloat.Zero(false, p)
	case x.IsZero():
		neg := x.Signbit() && isOddInt(y)
		if y.Sign() < 0 {
			return mpfloat.Inf(neg, p)
		}
		return mpfloat.Zero(neg, p)
	}

	// x and y are finite and non-zero
	neg := false
	if x.Sign() < 0 {
		if !y.IsInt() {
			return mpfloat.NaN(p)
		}
		neg = isOddInt(y)
	}
	xb, yb := x.Big(), y.Big()
	xb.Abs(xb)

	if z := exactPow(xb, yb, neg, p, mode); z != nil {
		return z
	}

	// e**(y×log|x|) overflows or underflows if |y×log|x|| >= 2**31
	l, _ := logApprox(xb, 32)
	est := float(64).Mul(l, yb)
	if est.IsInf() || est.Sign() != 0 && exponent(est) > 31 {
		if est.Sign() > 0 {
			return mpfloat.Inf(neg, p)
		}
		return mpfloat.Zero(neg, p)
	}
	// bits of the integer part of y×log|x|, lost to the exponential
	ei := 0
	if est.Sign() != 0 {
		ei = max(0, exponent(est))
	}

	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 16 + uint(ei)
		l, el := logApprox(xb, pp)
		// t = y×log|x| with |t - y×log|x|| < |y|×2**el + ulp(t)
		t := float(pp).Mul(l, yb)
		et := el + exponent(yb)
		if t.Sign() != 0 {
			et = max(et, exponent(t)-int(pp)) + 1
		}
		r, er := expApprox(t, w+8)
		if neg {
			r.Neg(r)
		}
		if er == exactErr {
			return r, er
		}
		// e**(t+δ) = e**t × (1 + δ + O(δ²))
		return r, exponent(r) + max(er-exponent(r), et) + 2
	})
}

// isOddInt reports whether x is an odd integer.
func isOddInt(x *mpfloat.Float) bool {
	if !x.IsFinite() || x.IsZero() || !x.IsInt() {
		return false
	}
	// the unit bit is the last one of the mantissa
	return x.MantExp() == int(x.MinPrec())
}

// exactPow returns ±x**y if the result is exact at a reasonable precision,
// and nil otherwise. x must be positive and y finite and non-zero.
func exactPow(x, y *big.Float, neg bool, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	// y = n / 2**k with n an odd integer
	k := int(y.MinPrec()) - exponent(y)
	if k > 64 {
		return nil
	}
	n, _ := new(big.Float).SetMantExp(y, max(k, 0)).Int(nil)
	n.Abs(n)
	if !n.IsUint64() {
		return nil
	}

	// take k square roots
	r := x
	for ; k > 0; k-- {
		s := mpfloat.Sqrt(mpfloat.FromBig(r, 0, mpfloat.ToNearestEven), r.MinPrec()+1, mpfloat.ToNearestEven)
		if s.Acc() != mpfloat.Exact {
			return nil
		}
		r = s.Big()
	}

	bits := uint64(r.MinPrec()) * n.Uint64()
	if n.Uint64() > maxExactBits || bits > maxExactBits {
		return nil
	}
	z := pow(float(uint(bits)+1), r, n.Uint64())
	if z.IsInf() || z.Sign() == 0 {
		return nil
	}
	if neg {
		z.Neg(z)
	}
	if y.Sign() < 0 {
		return mpfloat.Quo(mpfloat.FromInt64(1, 1, mpfloat.ToNearestEven), mpfloat.FromBig(z, 0, mpfloat.ToNearestEven), prec, mode)
	}
	return mpfloat.FromBig(z, prec, mode)
}
