package math

import (
	"math/big"
	"math/bits"

	"github.com/db47h/mpfloat"
)

// Exp returns e**x, the base-e exponential of x, rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = +0
//	Exp(±0) = 1
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf and very small ones underflow to +0.
func Exp(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf():
		if x.Signbit() {
			return mpfloat.Zero(false, p)
		}
		return mpfloat.Inf(false, p)
	case x.IsZero():
		return mpfloat.FromInt64(1, p, mode)
	}
	b := x.Big()
	// exp(x) = 1 + x + O(x²)
	if ex := exponent(b); ex < 0 {
		if z := nudge(one, b.Sign(), ex+1, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) { return expApprox(b, w) })
}

// e**x overflows for x > expMax and underflows for x < -expMax.
const expMax = 1488522236 // (1<<31) × log(2)

// exactErr is returned by kernels in place of an error exponent for results
// that need no refinement, like overflows and underflows.
const exactErr = -1 << 62

// expApprox returns an approximation of e**x along with the binary exponent
// of its absolute error.
//
// x is reduced to r = x - k×log(2) with |r| <= log(2)/2, then r is divided
// by 2**s so that the Taylor series converges quickly. The result is
// (e**(r/2**s))**(2**s) × 2**k.
func expApprox(x *big.Float, w uint) (*big.Float, int) {
	if x.IsInf() {
		if x.Signbit() {
			return float(w), exactErr
		}
		return float(w).SetInf(false), exactErr
	}
	if x.Sign() == 0 {
		return float(w).SetInt64(1), exactErr
	}
	switch xf, _ := x.Float64(); {
	case xf > expMax:
		return float(w).SetInf(false), exactErr
	case xf < -expMax:
		return float(w), exactErr
	}

	var k int64
	if kf, _ := float(64).Quo(x, ln2(64)).Float64(); kf < 0 {
		k = int64(kf - 0.5)
	} else {
		k = int64(kf + 0.5)
	}

	var (
		// argument reduction threshold: |r/2**s| < 2**-t
		t  = 1 << (bits.Len(w) / 2)
		n  = int(w)/t + 2 // number of terms
		pp = w + uint(t) + guard(n) + 8
		kb = uint(bits.Len64(uint64(abs(int(k)))))
		r  = float(pp)
		s  = 0
	)

	if k != 0 {
		kl := float(pp + kb).SetInt64(k)
		kl.Mul(kl, ln2(pp+kb))
		r.Sub(x, kl)
	} else {
		r.Set(x)
	}

	sum := float(pp).SetInt64(1)
	if r.Sign() != 0 {
		s = max(0, t+exponent(r))
		r.SetMantExp(r, -s)

		term := float(pp).SetInt64(1)
		for i := int64(1); ; i++ {
			term.Mul(term, r)
			term.Quo(term, float(64).SetInt64(i))
			sum.Add(sum, term)
			if term.Sign() == 0 || exponent(term) < -int(pp) {
				break
			}
		}
		for i := 0; i < s; i++ {
			sum.Mul(sum, sum)
		}
	}
	sum.SetMantExp(sum, int(k))
	if sum.IsInf() || sum.Sign() == 0 {
		return sum, exactErr
	}
	// each squaring doubles the relative error
	return sum, exponent(sum) + s + int(guard(n)) + 3 - int(pp)
}
