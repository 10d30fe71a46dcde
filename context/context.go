// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides MPFR style contexts for Floats.
//
// A Context bundles a default rounding mode and a print precision with every
// operation, and records exception flags. All functions of the form
//
//	func (c *Context) FromT(x T, prec uint) *mpfloat.Float
//
// create a new Float set to the value of x rounded to prec bits using c's
// rounding mode. Operators of the form
//
//	func (c *Context) UnaryOp(x *mpfloat.Float, prec uint) *mpfloat.Float
//	func (c *Context) BinaryOp(x, y *mpfloat.Float, prec uint) *mpfloat.Float
//
// return the result of the matching function of the mpfloat or mpfloat/math
// packages, rounded to prec bits using c's rounding mode. As everywhere else,
// a prec of 0 selects the largest precision of the operands.
//
// A Context never panics on invalid operations. Instead, the resulting NaN or
// infinity is returned as a regular value and the corresponding flag is
// raised. Flags are sticky: they stay raised until cleared with ClearFlags or
// Err. This provides a form of support for IEEE-754 exception handling.
//
// A Context is not safe for concurrent use; Floats are.
package context

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/math"
)

// Errors returned by Err.
var (
	ErrInvalid   = errors.New("invalid operation")
	ErrDivByZero = errors.New("division by zero")
)

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, printing precision and error handling.
type Context struct {
	mode      mpfloat.RoundingMode
	printPrec int
	flags     Flags
}

// New creates a new context with the given rounding mode and print
// precision. An invalid mode is replaced by mpfloat.ToNearestEven and a
// negative printPrec by 0.
func New(mode mpfloat.RoundingMode, printPrec int) *Context {
	return new(Context).SetMode(mode).SetPrintPrec(printPrec)
}

// Default returns a new context rounding to nearest even, with a print
// precision of 0.
func Default() *Context {
	return New(mpfloat.ToNearestEven, 0)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() mpfloat.RoundingMode {
	return c.mode
}

// SetMode sets c's rounding mode to mode and returns c. An invalid mode is
// replaced by mpfloat.ToNearestEven.
func (c *Context) SetMode(mode mpfloat.RoundingMode) *Context {
	if !mode.Valid() {
		mode = mpfloat.ToNearestEven
	}
	c.mode = mode
	return c
}

// PrintPrec returns the number of significant digits used by c to print
// Floats. 0 means enough digits for the printed value to read back exactly.
func (c *Context) PrintPrec() int {
	return c.printPrec
}

// SetPrintPrec sets c's print precision to n and returns c. A negative n is
// replaced by 0.
func (c *Context) SetPrintPrec(n int) *Context {
	if n < 0 {
		n = 0
	}
	c.printPrec = n
	return c
}

// WithMode returns a copy of c with its rounding mode set to mode. The copy
// starts with no flags raised.
func (c *Context) WithMode(mode mpfloat.RoundingMode) *Context {
	return New(mode, c.printPrec)
}

// ResolveMode returns the rounding mode with the numeric value mode, or c's
// rounding mode if mode is out of range.
func (c *Context) ResolveMode(mode int) mpfloat.RoundingMode {
	if mode < int(mpfloat.ToNearestEven) || mode > int(mpfloat.AwayFromZero) {
		return c.mode
	}
	return mpfloat.RoundingMode(mode)
}

// ClampPrec returns prec clamped to [mpfloat.MinPrec, mpfloat.MaxPrec].
func ClampPrec(prec int) uint {
	switch {
	case prec < mpfloat.MinPrec:
		return mpfloat.MinPrec
	case uint64(prec) > mpfloat.MaxPrec:
		return mpfloat.MaxPrec
	}
	return uint(prec)
}

// Flags returns the exception flags raised since they were last cleared.
func (c *Context) Flags() Flags {
	return c.flags
}

// ClearFlags clears all exception flags.
func (c *Context) ClearFlags() {
	c.flags = 0
}

// Err returns an error if the Invalid or DivByZero flags are raised, and
// clears them. The returned error wraps ErrInvalid, ErrDivByZero, or both.
func (c *Context) Err() (err error) {
	switch c.flags & (Invalid | DivByZero) {
	case Invalid:
		err = ErrInvalid
	case DivByZero:
		err = ErrDivByZero
	case Invalid | DivByZero:
		err = fmt.Errorf("%w, %w", ErrInvalid, ErrDivByZero)
	}
	c.flags &^= Invalid | DivByZero
	return err
}

// Text returns the rendering of x using c's print precision and rounding
// mode.
func (c *Context) Text(x *mpfloat.Float) string {
	return x.Text(c.printPrec, c.mode)
}

// Round returns x rounded to prec bits. A prec of 0 keeps x's precision.
func (c *Context) Round(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(x.Round(prec, c.mode), x)
}

// FromFloat64 returns a new Float set to the (possibly rounded) value of x.
func (c *Context) FromFloat64(x float64, prec uint) *mpfloat.Float {
	return c.record(mpfloat.FromFloat64(x, prec, c.mode))
}

// FromInt64 returns a new Float set to the (possibly rounded) value of x.
func (c *Context) FromInt64(x int64, prec uint) *mpfloat.Float {
	return c.record(mpfloat.FromInt64(x, prec, c.mode))
}

// FromInt returns a new Float set to the (possibly rounded) value of x.
func (c *Context) FromInt(x *big.Int, prec uint) *mpfloat.Float {
	return c.record(mpfloat.FromInt(x, prec, c.mode))
}

// FromRat returns a new Float set to the (possibly rounded) value of x.
func (c *Context) FromRat(x *big.Rat, prec uint) *mpfloat.Float {
	return c.record(mpfloat.FromRat(x, prec, c.mode))
}

// Parse is like mpfloat.Parse(s, prec, mode) with c's rounding mode.
func (c *Context) Parse(s string, prec uint) (*mpfloat.Float, error) {
	z, err := mpfloat.Parse(s, prec, c.mode)
	if err != nil {
		return nil, err
	}
	return c.record(z), nil
}

// Float64 returns the float64 value nearest to x in the direction of c's
// rounding mode.
func (c *Context) Float64(x *mpfloat.Float) float64 {
	f := x.Float64(c.mode)
	if x.IsFinite() {
		exact := mpfloat.FromFloat64(f, 64, mpfloat.ToNearestEven)
		if !exact.Equal(x) {
			c.flags |= Inexact
		}
	}
	return f
}

// Int64 returns the integer resulting from rounding x to an integer in the
// direction of c's rounding mode, saturated to the int64 range. NaN yields
// 0 and raises Invalid.
func (c *Context) Int64(x *mpfloat.Float) int64 {
	if x.IsNaN() {
		c.flags |= Invalid
	}
	return x.Int64(c.mode)
}

// Int returns the integer resulting from rounding x to an integer in the
// direction of c's rounding mode. It returns nil and raises Invalid for NaN
// and ±Inf.
func (c *Context) Int(x *mpfloat.Float) *big.Int {
	i, ok := x.Int(c.mode)
	switch {
	case !ok:
		c.flags |= Invalid
	case !x.IsInt():
		c.flags |= Inexact
	}
	return i
}

// Neg returns the (possibly rounded) value of x with its sign negated.
func (c *Context) Neg(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Neg(x, prec, c.mode), x)
}

// Abs returns the (possibly rounded) absolute value of x.
func (c *Context) Abs(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Abs(x, prec, c.mode), x)
}

// Add returns the rounded sum x+y.
func (c *Context) Add(x, y *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Add(x, y, prec, c.mode), x, y)
}

// Sub returns the rounded difference x-y.
func (c *Context) Sub(x, y *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Sub(x, y, prec, c.mode), x, y)
}

// Mul returns the rounded product x×y.
func (c *Context) Mul(x, y *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Mul(x, y, prec, c.mode), x, y)
}

// Quo returns the rounded quotient x/y. Dividing a finite non-zero x by zero
// raises DivByZero.
func (c *Context) Quo(x, y *mpfloat.Float, prec uint) *mpfloat.Float {
	pole := y.IsZero() && x.IsFinite() && !x.IsZero()
	return c.check(mpfloat.Quo(x, y, prec, c.mode), pole, x, y)
}

// FMA returns x×y+u, computed with only one rounding.
func (c *Context) FMA(x, y, u *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.FMA(x, y, u, prec, c.mode), x, y, u)
}

// Sqrt returns the rounded square root of x.
func (c *Context) Sqrt(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(mpfloat.Sqrt(x, prec, c.mode), x)
}

// Pow returns the rounded value of x**y. Raising zero to a negative power
// raises DivByZero.
func (c *Context) Pow(x, y *mpfloat.Float, prec uint) *mpfloat.Float {
	pole := x.IsZero() && y.Sign() < 0 && !y.IsInf()
	return c.check(math.Pow(x, y, prec, c.mode), pole, x, y)
}

// Floor returns the largest integer value less than or equal to x.
func (c *Context) Floor(x *mpfloat.Float) *mpfloat.Float {
	return c.integral(mpfloat.Floor(x))
}

// Ceil returns the least integer value greater than or equal to x.
func (c *Context) Ceil(x *mpfloat.Float) *mpfloat.Float {
	return c.integral(mpfloat.Ceil(x))
}

// RoundInt returns the nearest integer value to x, rounding half away from
// zero.
func (c *Context) RoundInt(x *mpfloat.Float) *mpfloat.Float {
	return c.integral(mpfloat.Round(x))
}

// Trunc returns the integer value of x, rounded toward zero.
func (c *Context) Trunc(x *mpfloat.Float) *mpfloat.Float {
	return c.integral(mpfloat.Trunc(x))
}

// Rint returns x rounded to an integer value in the direction of c's
// rounding mode.
func (c *Context) Rint(x *mpfloat.Float) *mpfloat.Float {
	return c.integral(mpfloat.Rint(x, c.mode))
}

// record updates c's flags for the result z of an operation on args, and
// returns z.
func (c *Context) record(z *mpfloat.Float, args ...*mpfloat.Float) *mpfloat.Float {
	return c.check(z, false, args...)
}

// check is like record. If pole is true, the operation had an exact infinite
// result and an infinite z raises DivByZero instead of Overflow.
func (c *Context) check(z *mpfloat.Float, pole bool, args ...*mpfloat.Float) *mpfloat.Float {
	var nan, inf, zero bool
	for _, x := range args {
		nan = nan || x.IsNaN()
		inf = inf || x.IsInf()
		zero = zero || x.IsZero()
	}
	switch {
	case z.IsNaN():
		if !nan {
			c.flags |= Invalid
		}
		return z
	case z.IsInf():
		switch {
		case pole:
			c.flags |= DivByZero
		case !inf:
			c.flags |= Overflow
		}
	case z.IsZero():
		if len(args) > 0 && !inf && !zero && z.Acc() != mpfloat.Exact {
			c.flags |= Underflow
		}
	}
	if z.Acc() != mpfloat.Exact {
		c.flags |= Inexact
	}
	return z
}

// integral updates the Inexact flag for the result of an integer rounding
// and returns z.
func (c *Context) integral(z *mpfloat.Float) *mpfloat.Float {
	if z.Acc() != mpfloat.Exact {
		c.flags |= Inexact
	}
	return z
}
