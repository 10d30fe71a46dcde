package context

import (
	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/math"
)

// Pi returns π rounded to prec bits.
func (c *Context) Pi(prec uint) *mpfloat.Float {
	return c.record(math.Pi(prec, c.mode))
}

// Ln2 returns the natural logarithm of 2 rounded to prec bits.
func (c *Context) Ln2(prec uint) *mpfloat.Float {
	return c.record(math.Ln2(prec, c.mode))
}

// Exp returns e**x, the base-e exponential of x.
func (c *Context) Exp(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Exp(x, prec, c.mode), x)
}

// Log returns the natural logarithm of x. Log(±0) raises DivByZero.
func (c *Context) Log(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.check(math.Log(x, prec, c.mode), x.IsZero(), x)
}

// Log10 returns the decimal logarithm of x. Log10(±0) raises DivByZero.
func (c *Context) Log10(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.check(math.Log10(x, prec, c.mode), x.IsZero(), x)
}

func (c *Context) Sin(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Sin(x, prec, c.mode), x)
}

func (c *Context) Cos(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Cos(x, prec, c.mode), x)
}

func (c *Context) Tan(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Tan(x, prec, c.mode), x)
}

func (c *Context) Asin(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Asin(x, prec, c.mode), x)
}

func (c *Context) Acos(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Acos(x, prec, c.mode), x)
}

func (c *Context) Atan(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Atan(x, prec, c.mode), x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func (c *Context) Atan2(y, x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Atan2(y, x, prec, c.mode), y, x)
}

func (c *Context) Sinh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Sinh(x, prec, c.mode), x)
}

func (c *Context) Cosh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Cosh(x, prec, c.mode), x)
}

func (c *Context) Tanh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Tanh(x, prec, c.mode), x)
}

func (c *Context) Asinh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Asinh(x, prec, c.mode), x)
}

func (c *Context) Acosh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	return c.record(math.Acosh(x, prec, c.mode), x)
}

// Atanh returns the inverse hyperbolic tangent of x. Atanh(±1) raises
// DivByZero.
func (c *Context) Atanh(x *mpfloat.Float, prec uint) *mpfloat.Float {
	pole := x.IsFinite() && x.Abs().Cmp(mpfloat.FromInt64(1, 1, mpfloat.ToNearestEven)) == 0
	return c.check(math.Atanh(x, prec, c.mode), pole, x)
}
