package math

import (
	"math/big"
	"math/bits"
	"sync"

	"github.com/db47h/mpfloat"
)

// Log returns the natural logarithm of x rounded to prec bits according to
// mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(±0) = -Inf
//	Log(1) = +0
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.Sign() < 0 && !x.IsZero():
		return mpfloat.NaN(p)
	case x.IsZero():
		return mpfloat.Inf(true, p)
	case x.IsInf():
		return mpfloat.Inf(false, p)
	}
	b := x.Big()
	if b.Cmp(one) == 0 {
		return mpfloat.Zero(false, p)
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) { return logApprox(b, w) })
}

// Log10 returns the decimal logarithm of x rounded to prec bits according to
// mode. If prec is 0, x's precision is used. The result is exact for powers
// of 10. Special cases are the same as for Log.
func Log10(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	if !x.IsFinite() || x.Sign() <= 0 {
		return Log(x, p, mode)
	}
	if k, ok := powerOfTen(x); ok {
		return mpfloat.FromInt64(int64(k), p, mode)
	}
	b := x.Big()
	ten := big.NewFloat(10)
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		l, el := logApprox(b, w+4)
		t, et := logApprox(ten, w+4)
		r := float(w).Quo(l, t)
		// relative error of l/t: rel(l) + rel(t) + 2**-w
		return r, exponent(r) + max(el-exponent(l), et-exponent(t), -int(w)) + 3
	})
}

// powerOfTen returns k if x == 10**k for some k >= 0.
func powerOfTen(x *mpfloat.Float) (int, bool) {
	if !x.IsInt() {
		return 0, false
	}
	// x = m × 2**k with m odd, and 10**k = 5**k × 2**k
	k := x.MantExp() - int(x.MinPrec())
	// 5**k has about k×log2(5) bits
	if k < 0 || abs(int(float64(k)*2.321928094887362)+1-int(x.MinPrec())) > 1 {
		return 0, false
	}
	m, _ := new(big.Float).SetMantExp(x.Big(), -k).Int(nil)
	return k, m.Cmp(new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)) == 0
}

// Ln2 returns log(2) rounded to prec bits according to mode. If prec is 0,
// mpfloat.DefaultPrec is used.
func Ln2(prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec)
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		return ln2(w), -int(w)
	})
}

// logApprox returns an approximation of log(x) for x > 0 along with the
// binary exponent of its absolute error.
//
// It uses the Salamin algorithm described in Michael Beeler, R. William
// Gosper, Richard Schroeppel, HAKMEM, Artificial Intelligence Memo No. 239,
// Item 143: for s large enough, log(s) ≈ π / (2 × AGM(1, 4/s)) with an error
// below 4/s².
func logApprox(x *big.Float, w uint) (*big.Float, int) {
	if x.Cmp(one) == 0 {
		return float(w), -int(w)
	}
	pp := w + 16
	// log(x) ≈ x-1 near 1, where the subtraction of m×log(2) below cancels
	// most significant bits.
	if d := float(64).Sub(x, one); exponent(d) < 0 {
		pp += uint(-exponent(d))
	}

	// scale x by 2**m so that s = x×2**m >= 2**(pp/2 + bits.Len(pp)),
	// which makes the error of the formula negligible.
	m := int(pp/2) + bits.Len(pp) + 2 - exponent(x)
	s := float(pp).SetMantExp(x, m)

	a := agm(float(pp).SetInt64(1), float(pp).Quo(four, s))
	z := float(pp).Quo(pi(pp), a.SetMantExp(a, 1))
	// magnitude of the terms of z - m×log(2)
	mag := exponent(z)
	if m != 0 {
		t := float(pp).SetInt64(int64(m))
		t.Mul(t, ln2(pp+uint(bits.Len(uint(abs(m))))))
		mag = max(mag, exponent(t))
		z.Sub(z, t)
	}
	// each AGM iteration contributes a few ulps
	return z, mag - int(pp) + 10
}

// cached value of log(2)
var _ln2 struct {
	sync.Mutex
	v *big.Float
}

// ln2 returns log(2) within one ulp, as a new Float with precision prec.
func ln2(prec uint) *big.Float {
	_ln2.Lock()
	if _ln2.v == nil || _ln2.v.Prec() < prec {
		_ln2.v = computeLn2(max(prec, 256))
	}
	z := float(prec).Set(_ln2.v)
	_ln2.Unlock()
	return z
}

// computeLn2 is a special case of logApprox where no value of log(2) is
// needed for the scaling: with s = 2**n, log(2) = log(s)/n.
func computeLn2(prec uint) *big.Float {
	pp := prec + 32
	n := int(pp/2) + bits.Len(pp) + 2
	// b = 4/s = 2**(2-n) at pp bits. SetMantExp copies the precision of its
	// operand.
	b := float(pp).SetInt64(1)
	a := agm(float(pp).SetInt64(1), b.SetMantExp(b, 2-n))
	z := float(pp).Quo(pi(pp), a.SetMantExp(a, 1))
	return float(prec).Quo(z, float(pp).SetInt64(int64(n)))
}

// agm returns the arithmetic-geometric mean of a and b. a and b are not
// preserved.
func agm(a, b *big.Float) *big.Float {
	var (
		prec = a.Prec()
		t    = float(prec)
		z    = float(prec)
	)

	for i := 0; i < 64; i++ {
		// once |a - b| < 2**(-prec/2), the next iteration would only change
		// the result by about the square of that.
		if d := z.Sub(a, b); d.Sign() == 0 || exponent(d) < exponent(a)-int(prec/2) {
			break
		}
		t.Set(a)
		a.SetMantExp(z.Add(a, b), -1) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))           // b_n+1 = sqrt(a_n × b_n)
	}
	return a.SetMantExp(z.Add(a, b), -1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
