// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math/big"
)

// Sqrt returns the square root of x, correctly rounded to prec bits
// according to mode. If prec is 0, x's precision is used.
//
// Following IEEE 754-2008 (section 7.2), Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf,
// and the square root of a negative operand, including -Inf, is NaN.
func Sqrt(x *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x)

	switch {
	case x.form == nan, x.neg && x.form != zero:
		return NaN(uint(p))
	case x.form != finite:
		// ±0 and +Inf
		return &Float{prec: p, form: x.form, neg: x.neg}
	}

	// Unlike big.Float.Sqrt, which does not guarantee correct rounding,
	// compute the integer square root of a scaled mantissa and use the
	// remainder as a sticky bit.
	//
	// With x = m × 2**e, pick an even e' <= e such that n = m × 2**(e-e')
	// has at least 2(p+1) bits. Then √x = √n × 2**(e'/2) and r = ⌊√n⌋ has at
	// least p+1 bits, so that no rounding boundary at p bits lies strictly
	// between r and r+1.
	m, e := mantInt(x.mant)
	shift := 2*int(p+1) - m.BitLen()
	if shift < 0 {
		shift = 0
	}
	if (e-shift)&1 != 0 {
		shift++
	}
	n := m.Lsh(m, uint(shift))
	e -= shift

	r := new(big.Int).Sqrt(n)
	rem := new(big.Int).Mul(r, r)
	rem.Sub(n, rem)

	t := new(big.Float)
	if rem.Sign() == 0 {
		t.SetInt(r).SetMantExp(t, e/2)
	} else {
		// r < √n < r+1: replace by r+½, which rounds identically.
		r.Lsh(r, 1).SetBit(r, 0, 1)
		t.SetInt(r).SetMantExp(t, e/2-1)
	}
	return fromBig(newBig(p, mode).Set(t), p)
}

// Sqrt returns the square root of x with x's precision, rounded to nearest
// even.
func (x *Float) Sqrt() *Float {
	return Sqrt(x, 0, ToNearestEven)
}

// mantInt returns an integer m and an exponent e such that |x| = m × 2**e,
// with m odd. x must be finite and nonzero.
func mantInt(x *big.Float) (m *big.Int, e int) {
	mant := new(big.Float)
	exp := x.MantExp(mant)
	n := int(mant.MinPrec())
	mant.SetMantExp(mant, n)
	m, _ = mant.Int(nil)
	return m.Abs(m), exp - n
}
