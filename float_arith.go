// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the basic arithmetic operations on Floats.
//
// All operations return a new *Float. If prec is 0, the result precision is
// the largest of the operand precisions. Results are correctly rounded
// according to mode; an invalid mode behaves as ToNearestEven. Operations
// that are undefined under IEEE 754 rules (0/0, ∞-∞, 0×∞, ∞/∞) return NaN
// instead of panicking, and any NaN operand yields NaN.

package mpfloat

import "math/big"

// Neg returns -x rounded to prec bits. Neg(NaN) is NaN.
func Neg(x *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x)
	switch x.form {
	case nan:
		return NaN(uint(p))
	case finite:
		return round(newBig(x.prec, ToNearestEven).Neg(x.mant), p, mode)
	}
	return &Float{prec: p, form: x.form, neg: !x.neg}
}

// Abs returns |x| rounded to prec bits. Abs(NaN) is NaN.
func Abs(x *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x)
	switch x.form {
	case nan:
		return NaN(uint(p))
	case finite:
		return round(newBig(x.prec, ToNearestEven).Abs(x.mant), p, mode)
	}
	return &Float{prec: p, form: x.form}
}

// Neg returns -x with x's precision. It is exact.
func (x *Float) Neg() *Float {
	return Neg(x, 0, ToNearestEven)
}

// Abs returns |x| with x's precision. It is exact.
func (x *Float) Abs() *Float {
	return Abs(x, 0, ToNearestEven)
}

// Add returns the rounded sum x+y. The sum of two infinities of opposite
// sign is NaN. An exact zero sum of operands with opposite signs is +0,
// or -0 if mode is ToNegativeInf.
func Add(x, y *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x, y)
	if x.form == nan || y.form == nan || x.form == inf && y.form == inf && x.neg != y.neg {
		return NaN(uint(p))
	}
	return fromBig(newBig(p, mode).Add(x.big(), y.big()), p)
}

// Sub returns the rounded difference x-y. The difference of two infinities
// of the same sign is NaN.
func Sub(x, y *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x, y)
	if x.form == nan || y.form == nan || x.form == inf && y.form == inf && x.neg == y.neg {
		return NaN(uint(p))
	}
	return fromBig(newBig(p, mode).Sub(x.big(), y.big()), p)
}

// Mul returns the rounded product x×y. The product of a zero and an
// infinity is NaN.
func Mul(x, y *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x, y)
	if x.form == nan || y.form == nan ||
		x.form == zero && y.form == inf || x.form == inf && y.form == zero {
		return NaN(uint(p))
	}
	return fromBig(newBig(p, mode).Mul(x.big(), y.big()), p)
}

// Quo returns the rounded quotient x/y. 0/0 and ∞/∞ are NaN; a nonzero x
// divided by ±0 is an infinity whose sign is the exclusive or of the operand
// signs.
func Quo(x, y *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x, y)
	if x.form == nan || y.form == nan ||
		x.form == zero && y.form == zero || x.form == inf && y.form == inf {
		return NaN(uint(p))
	}
	return fromBig(newBig(p, mode).Quo(x.big(), y.big()), p)
}

// FMA returns x×y+u computed with only one rounding. If prec is 0, the
// result precision is the largest of the operand precisions. NaN cases are
// those of Mul and Add.
func FMA(x, y, u *Float, prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x, y, u)
	if x.form == nan || y.form == nan || u.form == nan ||
		x.form == zero && y.form == inf || x.form == inf && y.form == zero {
		return NaN(uint(p))
	}
	if x.form == inf || y.form == inf {
		pneg := x.neg != y.neg
		if u.form == inf && u.neg != pneg {
			return NaN(uint(p))
		}
		return &Float{prec: p, form: inf, neg: pneg}
	}
	// the product of two finite values is exact with the sum of their
	// precisions.
	xb, yb := x.big(), y.big()
	t := new(big.Float).SetPrec(xb.MinPrec() + yb.MinPrec() + 1).Mul(xb, yb)
	if t.Sign() == 0 && u.form == zero {
		// IEEE 754 sign rules for zero sums apply to the exact product.
		return Add(Zero(t.Signbit(), uint(p)), u, uint(p), mode)
	}
	return fromBig(newBig(p, mode).Add(t, u.big()), p)
}
