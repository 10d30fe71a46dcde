package math

import (
	"math/big"
	"sync"

	"github.com/db47h/mpfloat"
)

// Pi returns π rounded to prec bits according to mode. If prec is 0,
// mpfloat.DefaultPrec is used.
func Pi(prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec)
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		r := pi(w)
		return r, 2 - int(w) // |r - π| <= ulp(π) = 2**(2-w)
	})
}

// cached value of π
var _pi struct {
	sync.Mutex
	v *big.Float
}

// pi returns π within one ulp, as a new Float with precision prec. Values
// are cached; the cache only grows.
func pi(prec uint) *big.Float {
	_pi.Lock()
	if _pi.v == nil || _pi.v.Prec() < prec {
		_pi.v = gaussLegendre(max(prec, 256))
	}
	z := float(prec).Set(_pi.v)
	_pi.Unlock()
	return z
}

// gaussLegendre computes π with the Gauss-Legendre algorithm to prec bits of
// precision.
func gaussLegendre(prec uint) *big.Float {
	var (
		// Increase precision. The rounding errors of the iteration grow
		// with the logarithm of the number of iterations.
		pp = prec + 32
		a  = float(pp).SetInt64(1)
		b  = float(pp).Sqrt(float(pp).Set(half)) // 1/√2
		t  = float(pp).SetFloat64(0.25)
		u  = float(pp)
		z  = float(pp)
	)

	for n := 0; n < 64; n++ {
		u.Set(a)                      // a_n
		a.SetMantExp(a.Add(a, b), -1) // a_n+1
		b.Sqrt(z.Mul(u, b))           // b_n+1
		// t_n+1 = t_n - 2**n × (a_n - a_n+1)**2
		t.Sub(t, z.SetMantExp(z.Mul(u.Sub(u, a), u), n))

		// the error after the next step is about the square of |a - b|
		if d := z.Sub(a, b); d.Sign() == 0 || exponent(d) < -int(pp/2) {
			break
		}
	}
	z.Add(a, b)
	a.Mul(z, z)
	t.Mul(t, four)
	return float(prec).Quo(a, t)
}
