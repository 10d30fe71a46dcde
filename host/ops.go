package host

import (
	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
)

// Results of operations below have the largest precision of their operands
// and are rounded with the default rounding mode.

type (
	unaryOp  func(c *context.Context, x *mpfloat.Float) *mpfloat.Float
	binaryOp func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float
)

func (h *Host) unary(name string, x Handle, op unaryOp) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get(name, x)
	if v == nil {
		return Null
	}
	return h.put(op(h.ctx, v))
}

func (h *Host) binary(name string, x, y Handle, op binaryOp) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, w := h.get(name, x), h.get(name, y)
	if v == nil || w == nil {
		return Null
	}
	return h.put(op(h.ctx, v, w))
}

// Floor returns the largest integer value less than or equal to x.
func (h *Host) Floor(x Handle) Handle {
	return h.unary("Floor", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Floor(x) })
}

// Ceil returns the least integer value greater than or equal to x.
func (h *Host) Ceil(x Handle) Handle {
	return h.unary("Ceil", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Ceil(x) })
}

// Round returns the nearest integer value to x, rounding halfway cases away
// from zero.
func (h *Host) Round(x Handle) Handle {
	return h.unary("Round", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.RoundInt(x) })
}

// Trunc returns the integer value of x, rounded toward zero.
func (h *Host) Trunc(x Handle) Handle {
	return h.unary("Trunc", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Trunc(x) })
}

// Neg returns -x.
func (h *Host) Neg(x Handle) Handle {
	return h.unary("Neg", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Neg(x, 0) })
}

// Add returns the sum x+y.
func (h *Host) Add(x, y Handle) Handle {
	return h.binary("Add", x, y, func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float { return c.Add(x, y, 0) })
}

// Sub returns the difference x-y.
func (h *Host) Sub(x, y Handle) Handle {
	return h.binary("Sub", x, y, func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float { return c.Sub(x, y, 0) })
}

// Mul returns the product x×y.
func (h *Host) Mul(x, y Handle) Handle {
	return h.binary("Mul", x, y, func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float { return c.Mul(x, y, 0) })
}

// Div returns the quotient x/y. Dividing a non-zero value by zero yields
// an infinity.
func (h *Host) Div(x, y Handle) Handle {
	return h.binary("Div", x, y, func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float { return c.Quo(x, y, 0) })
}

// Pow returns x**y.
func (h *Host) Pow(x, y Handle) Handle {
	return h.binary("Pow", x, y, func(c *context.Context, x, y *mpfloat.Float) *mpfloat.Float { return c.Pow(x, y, 0) })
}

// Sqrt returns the square root of x, NaN if x < 0.
func (h *Host) Sqrt(x Handle) Handle {
	return h.unary("Sqrt", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Sqrt(x, 0) })
}

// Exp returns e**x.
func (h *Host) Exp(x Handle) Handle {
	return h.unary("Exp", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Exp(x, 0) })
}

// Ln returns the natural logarithm of x.
func (h *Host) Ln(x Handle) Handle {
	return h.unary("Ln", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Log(x, 0) })
}

// Log returns the decimal logarithm of x.
func (h *Host) Log(x Handle) Handle {
	return h.unary("Log", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Log10(x, 0) })
}

// Sin returns the sine of the radian argument x.
func (h *Host) Sin(x Handle) Handle {
	return h.unary("Sin", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Sin(x, 0) })
}

// Cos returns the cosine of the radian argument x.
func (h *Host) Cos(x Handle) Handle {
	return h.unary("Cos", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Cos(x, 0) })
}

// Tan returns the tangent of the radian argument x.
func (h *Host) Tan(x Handle) Handle {
	return h.unary("Tan", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Tan(x, 0) })
}

// Asin returns the arcsine of x, in radians.
func (h *Host) Asin(x Handle) Handle {
	return h.unary("Asin", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Asin(x, 0) })
}

// Acos returns the arccosine of x, in radians.
func (h *Host) Acos(x Handle) Handle {
	return h.unary("Acos", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Acos(x, 0) })
}

// Atan returns the arctangent of x, in radians.
func (h *Host) Atan(x Handle) Handle {
	return h.unary("Atan", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Atan(x, 0) })
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the result.
func (h *Host) Atan2(y, x Handle) Handle {
	return h.binary("Atan2", y, x, func(c *context.Context, y, x *mpfloat.Float) *mpfloat.Float { return c.Atan2(y, x, 0) })
}

// Sinh returns the hyperbolic sine of x.
func (h *Host) Sinh(x Handle) Handle {
	return h.unary("Sinh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Sinh(x, 0) })
}

// Cosh returns the hyperbolic cosine of x.
func (h *Host) Cosh(x Handle) Handle {
	return h.unary("Cosh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Cosh(x, 0) })
}

// Tanh returns the hyperbolic tangent of x.
func (h *Host) Tanh(x Handle) Handle {
	return h.unary("Tanh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Tanh(x, 0) })
}

// Asinh returns the inverse hyperbolic sine of x.
func (h *Host) Asinh(x Handle) Handle {
	return h.unary("Asinh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Asinh(x, 0) })
}

// Acosh returns the inverse hyperbolic cosine of x, NaN if x < 1.
func (h *Host) Acosh(x Handle) Handle {
	return h.unary("Acosh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Acosh(x, 0) })
}

// Atanh returns the inverse hyperbolic tangent of x.
func (h *Host) Atanh(x Handle) Handle {
	return h.unary("Atanh", x, func(c *context.Context, x *mpfloat.Float) *mpfloat.Float { return c.Atanh(x, 0) })
}
