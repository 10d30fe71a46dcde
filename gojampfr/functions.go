package gojampfr

import (
	"math/big"

	"github.com/db47h/mpfloat"
	"github.com/dop251/goja"
)

// jsFromDouble implements mpfr.fromDouble(x, prec?, rnd?).
func (m *Module) jsFromDouble(call goja.FunctionCall) goja.Value {
	x := call.Argument(0).ToFloat()
	return m.wrapFloat(mpfloat.FromFloat64(x, m.precArg(call, 1), m.modeArg(call, 2)))
}

// jsFromFloat implements mpfr.fromFloat(x, prec?, rnd?).
func (m *Module) jsFromFloat(call goja.FunctionCall) goja.Value {
	x := m.float("fromFloat", call, 0)
	return m.wrapFloat(mpfloat.FromFloat(x, m.precArg(call, 1), m.modeArg(call, 2)))
}

// jsFromBigInt implements mpfr.fromBigInt(x, prec?, rnd?). x may be a
// BigInt or an integral number.
func (m *Module) jsFromBigInt(call goja.FunctionCall) goja.Value {
	var i *big.Int
	switch v := call.Argument(0).Export().(type) {
	case *big.Int:
		i = v
	case int64:
		i = big.NewInt(v)
	default:
		panic(m.runtime.NewTypeError("fromBigInt: expected BigInt or integer"))
	}
	return m.wrapFloat(mpfloat.FromInt(i, m.precArg(call, 1), m.modeArg(call, 2)))
}

// jsFromString implements mpfr.fromString(s, prec?, rnd?). It returns null
// if s is not a valid base 10 number.
func (m *Module) jsFromString(call goja.FunctionCall) goja.Value {
	s := call.Argument(0).String()
	x, err := mpfloat.Parse(s, m.precArg(call, 1), m.modeArg(call, 2))
	if err != nil {
		m.logger.Debug().
			Str("input", s).
			Err(err).
			Log("parse failed")
		return goja.Null()
	}
	return m.wrapFloat(x)
}

// jsToDouble implements mpfr.toDouble(x).
func (m *Module) jsToDouble(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.ctx.Float64(m.float("toDouble", call, 0)))
}

// jsToInt implements mpfr.toInt(x). NaN yields 0; out of range values
// saturate.
func (m *Module) jsToInt(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.ctx.Int64(m.float("toInt", call, 0)))
}

// jsToBigInt implements mpfr.toBigInt(x). It returns null for NaN and ±Inf.
func (m *Module) jsToBigInt(call goja.FunctionCall) goja.Value {
	i := m.ctx.Int(m.float("toBigInt", call, 0))
	if i == nil {
		return goja.Null()
	}
	return m.runtime.ToValue(i)
}

// jsStr implements mpfr.str(x).
func (m *Module) jsStr(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.ctx.Text(m.float("str", call, 0)))
}

// jsPrec implements mpfr.prec(x).
func (m *Module) jsPrec(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(int64(m.float("prec", call, 0).Prec()))
}

func (m *Module) jsIsNaN(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.float("isNaN", call, 0).IsNaN())
}

func (m *Module) jsIsInf(call goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.float("isInf", call, 0).IsInf())
}

// jsCmp implements mpfr.cmp(x, y). NaN sorts before any other value.
func (m *Module) jsCmp(call goja.FunctionCall) goja.Value {
	x, y := m.float("cmp", call, 0), m.float("cmp", call, 1)
	return m.runtime.ToValue(x.Cmp(y))
}

func (m *Module) jsGetPrintPrec(goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(m.ctx.PrintPrec())
}

func (m *Module) jsSetPrintPrec(call goja.FunctionCall) goja.Value {
	m.ctx.SetPrintPrec(int(call.Argument(0).ToInteger()))
	return goja.Undefined()
}

func (m *Module) jsGetDefaultRounding(goja.FunctionCall) goja.Value {
	return m.runtime.ToValue(int(m.ctx.Mode()))
}

// jsSetDefaultRounding implements mpfr.setDefaultRounding(rnd). Invalid
// modes are ignored.
func (m *Module) jsSetDefaultRounding(call goja.FunctionCall) goja.Value {
	m.ctx.SetMode(m.modeArg(call, 0))
	return goja.Undefined()
}

type (
	unaryOp  func(x *mpfloat.Float) *mpfloat.Float
	binaryOp func(x, y *mpfloat.Float) *mpfloat.Float
)

// unaryOps returns the single operand functions. Results have the precision
// of their operand and are rounded with the default rounding mode.
func (m *Module) unaryOps() map[string]unaryOp {
	c := m.ctx
	return map[string]unaryOp{
		"floor": c.Floor,
		"ceil":  c.Ceil,
		"round": c.RoundInt,
		"trunc": c.Trunc,
		"neg":   func(x *mpfloat.Float) *mpfloat.Float { return c.Neg(x, 0) },
		"sqrt":  func(x *mpfloat.Float) *mpfloat.Float { return c.Sqrt(x, 0) },
		"exp":   func(x *mpfloat.Float) *mpfloat.Float { return c.Exp(x, 0) },
		"ln":    func(x *mpfloat.Float) *mpfloat.Float { return c.Log(x, 0) },
		"log":   func(x *mpfloat.Float) *mpfloat.Float { return c.Log10(x, 0) },
		"sin":   func(x *mpfloat.Float) *mpfloat.Float { return c.Sin(x, 0) },
		"cos":   func(x *mpfloat.Float) *mpfloat.Float { return c.Cos(x, 0) },
		"tan":   func(x *mpfloat.Float) *mpfloat.Float { return c.Tan(x, 0) },
		"asin":  func(x *mpfloat.Float) *mpfloat.Float { return c.Asin(x, 0) },
		"acos":  func(x *mpfloat.Float) *mpfloat.Float { return c.Acos(x, 0) },
		"atan":  func(x *mpfloat.Float) *mpfloat.Float { return c.Atan(x, 0) },
		"sinh":  func(x *mpfloat.Float) *mpfloat.Float { return c.Sinh(x, 0) },
		"cosh":  func(x *mpfloat.Float) *mpfloat.Float { return c.Cosh(x, 0) },
		"tanh":  func(x *mpfloat.Float) *mpfloat.Float { return c.Tanh(x, 0) },
		"asinh": func(x *mpfloat.Float) *mpfloat.Float { return c.Asinh(x, 0) },
		"acosh": func(x *mpfloat.Float) *mpfloat.Float { return c.Acosh(x, 0) },
		"atanh": func(x *mpfloat.Float) *mpfloat.Float { return c.Atanh(x, 0) },
	}
}

// binaryOps returns the two operand functions. Results have the larger
// precision of their operands.
func (m *Module) binaryOps() map[string]binaryOp {
	c := m.ctx
	return map[string]binaryOp{
		"add":   func(x, y *mpfloat.Float) *mpfloat.Float { return c.Add(x, y, 0) },
		"sub":   func(x, y *mpfloat.Float) *mpfloat.Float { return c.Sub(x, y, 0) },
		"mul":   func(x, y *mpfloat.Float) *mpfloat.Float { return c.Mul(x, y, 0) },
		"div":   func(x, y *mpfloat.Float) *mpfloat.Float { return c.Quo(x, y, 0) },
		"pow":   func(x, y *mpfloat.Float) *mpfloat.Float { return c.Pow(x, y, 0) },
		"atan2": func(y, x *mpfloat.Float) *mpfloat.Float { return c.Atan2(y, x, 0) },
	}
}

func (m *Module) unary(name string, op unaryOp) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		return m.wrapFloat(op(m.float(name, call, 0)))
	}
}

func (m *Module) binary(name string, op binaryOp) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		return m.wrapFloat(op(m.float(name, call, 0), m.float(name, call, 1)))
	}
}
