package math

import (
	"math/big"

	"github.com/db47h/mpfloat"
)

// Sinh returns the hyperbolic sine of x rounded to prec bits according to
// mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf() || x.IsZero():
		return x.Round(p, mode)
	}
	b := x.Big()
	// sinh(x) = x + x³/6 + O(x⁵)
	if ex := exponent(b); ex < 0 {
		if z := nudge(b, b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) { return sinhApprox(b, w) })
}

// Cosh returns the hyperbolic cosine of x rounded to prec bits according to
// mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf():
		return mpfloat.Inf(false, p)
	case x.IsZero():
		return mpfloat.FromInt64(1, p, mode)
	}
	b := x.Big()
	b.Abs(b)
	// cosh(x) = 1 + x²/2 + O(x⁴)
	if ex := exponent(b); ex < 0 {
		if z := nudge(one, 1, 2*ex, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 8
		e, ee := expApprox(b, pp)
		if ee == exactErr {
			return e, ee
		}
		// (e + 1/e) / 2
		r := float(pp).Quo(one, e)
		r.Add(e, r)
		r.SetMantExp(r, -1)
		return r, max(ee, exponent(r)-int(pp)) + 2
	})
}

// Tanh returns the hyperbolic tangent of x rounded to prec bits according to
// mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf():
		if x.Signbit() {
			return mpfloat.FromInt64(-1, p, mode)
		}
		return mpfloat.FromInt64(1, p, mode)
	case x.IsZero():
		return mpfloat.Zero(x.Signbit(), p)
	}
	b := x.Big()
	ex := exponent(b)
	// tanh(x) = x - x³/3 + O(x⁵)
	if ex < 0 {
		if z := nudge(b, -b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	// 1 - tanh(|x|) < 2×e**(-2|x|)
	if ex > 0 {
		v := float(1).SetInt64(int64(b.Sign()))
		errExp := -1 << 40
		if xf, _ := new(big.Float).Abs(b).Float64(); xf < 1<<30 {
			errExp = 1 - int(2.885390081777927*xf) // 2|x|×log2(e)
		}
		if z := nudge(v, -b.Sign(), errExp, p, mode); z != nil {
			return z
		}
	}
	return ziv(p, mode, func(w uint) (*big.Float, int) { return tanhApprox(b, w) })
}

// sinhApprox returns an approximation of sinh(x) for a finite, non-zero x
// along with the binary exponent of its absolute error.
func sinhApprox(x *big.Float, w uint) (*big.Float, int) {
	pp := w + 16
	if exponent(x) <= 0 {
		// sinh(x) = x + x³/3! + x⁵/5! + ...
		var (
			x2   = float(pp).Mul(x, x)
			sum  = float(pp).Set(x)
			term = float(pp).Set(x)
			d    = float(64)
			n    = 0
		)
		for i := int64(1); ; i++ {
			term.Mul(term, x2)
			term.Quo(term, d.SetInt64(2*i*(2*i+1)))
			sum.Add(sum, term)
			n++
			if term.Sign() == 0 || exponent(term) < exponent(sum)-int(pp) {
				break
			}
		}
		return sum, exponent(sum) - int(pp) + int(guard(n)) + 1
	}

	e, ee := expApprox(new(big.Float).Abs(x), pp)
	if ee == exactErr {
		if x.Signbit() {
			e.Neg(e)
		}
		return e, ee
	}
	// (e - 1/e) / 2
	r := float(pp).Quo(one, e)
	r.Sub(e, r)
	r.SetMantExp(r, -1)
	if x.Signbit() {
		r.Neg(r)
	}
	return r, max(ee, exponent(r)-int(pp)) + 2
}

// tanhApprox returns an approximation of tanh(x) for a finite, non-zero x
// along with the binary exponent of its absolute error.
func tanhApprox(x *big.Float, w uint) (*big.Float, int) {
	pp := w + 16
	if exponent(x) <= 0 {
		// sinh(x) / √(1 + sinh(x)²)
		s, es := sinhApprox(x, pp)
		c := float(pp).Mul(s, s)
		c.Add(c, one)
		c.Sqrt(c)
		t := c.Quo(s, c)
		return t, exponent(t) + max(es-exponent(s)+2, 2-int(pp)) + 1
	}
	// 1 - 2/(e**2|x| + 1)
	ax := new(big.Float).Abs(x)
	e, ee := expApprox(ax.SetMantExp(ax, 1), pp)
	t := float(pp).SetInt64(1)
	if ee != exactErr {
		d := float(pp).Add(e, one)
		t.Sub(t, d.Quo(two, d))
	}
	if x.Signbit() {
		t.Neg(t)
	}
	if ee == exactErr {
		return t, 1 - int(pp)
	}
	// the error of e is damped by 2/e²
	return t, max(ee-2*exponent(e)+3, -int(pp)) + 2
}

// Asinh returns the inverse hyperbolic sine of x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN():
		return mpfloat.NaN(p)
	case x.IsInf() || x.IsZero():
		return x.Round(p, mode)
	}
	b := x.Big()
	ex := exponent(b)
	// asinh(x) = x - x³/6 + O(x⁵)
	if ex < 0 {
		if z := nudge(b, -b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	// sign(x) × log(|x| + √(x² + 1))
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 16 + uint(max(0, -ex))
		ax := new(big.Float).Abs(b)
		m := float(pp)
		if ex > int(pp/2)+2 {
			// log(2|x|) + 1/(4x²) + O(1/x⁴)
			m.SetMantExp(ax, 1)
		} else {
			m.Mul(ax, ax)
			m.Add(m, one)
			m.Sqrt(m)
			m.Add(m, ax)
		}
		r, e := logApprox(m, pp)
		if b.Signbit() {
			r.Neg(r)
		}
		return r, max(e, 3-int(pp)) + 1
	})
}

// Acosh returns the inverse hyperbolic cosine of x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(1) = +0
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
	p := resultPrec(prec, x)
	switch {
	case x.IsNaN() || x.Signbit():
		return mpfloat.NaN(p)
	case x.IsInf():
		return mpfloat.Inf(false, p)
	}
	b := x.Big()
	switch b.Cmp(one) {
	case -1:
		return mpfloat.NaN(p)
	case 0:
		return mpfloat.Zero(false, p)
	}
	ex := exponent(b)
	// x-1 is exact
	xm1 := float(uint(ex) + b.MinPrec() + 2).Sub(b, one)
	// log(x + √((x-1)(x+1)))
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 16
		if e := exponent(xm1); e < 0 {
			// acosh(1+ε) ≈ √(2ε)
			pp += uint(-e/2 + 1)
		}
		m := float(pp)
		if ex > int(pp/2)+2 {
			// log(2x) - 1/(4x²) + O(1/x⁴)
			m.SetMantExp(b, 1)
		} else {
			m.Mul(xm1, float(uint(ex)+b.MinPrec()+2).Add(b, one))
			m.Sqrt(m)
			m.Add(m, b)
		}
		r, e := logApprox(m, pp)
		return r, max(e, 3-int(pp)) + 1
	})
}

// Atanh returns the inverse hyperbolic tangent of x rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Special cases are:
//
//	Atanh(±1) = ±Inf
//	Atanh(±0) = ±0
//	Atanh(x) = NaN if x < -1 or x > 1
//	Atanh(NaN) = NaN
func Atanh(x *mpfloat.Float, prec uint, mode mpfloat.RoundingMode) *mpfloat.Float {
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
		return mpfloat.Inf(b.Signbit(), p)
	}
	ex := exponent(b)
	// atanh(x) = x + x³/3 + O(x⁵)
	if ex < 0 {
		if z := nudge(b, b.Sign(), 3*ex-1, p, mode); z != nil {
			return z
		}
	}
	// log((1+x)/(1-x)) / 2
	return ziv(p, mode, func(w uint) (*big.Float, int) {
		pp := w + 16 + uint(max(0, -ex))
		q := float(pp).Quo(onePlus(b), oneMinus(b))
		r, e := logApprox(q, pp)
		r.SetMantExp(r, -1)
		return r, max(e, 1-int(pp))
	})
}
