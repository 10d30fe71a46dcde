package gojampfr

import (
	"errors"
	"math/big"

	"github.com/db47h/mpfloat"
	"github.com/dop251/goja"
)

const floatKey = "_mpfr"

// wrapFloat returns a JS object holding x. The object renders itself with
// the context's print precision when converted to a string.
func (m *Module) wrapFloat(x *mpfloat.Float) *goja.Object {
	obj := m.runtime.NewObject()
	_ = obj.Set(floatKey, x)
	_ = obj.Set("toString", m.runtime.ToValue(func(goja.FunctionCall) goja.Value {
		return m.runtime.ToValue(m.ctx.Text(x))
	}))
	_ = obj.DefineAccessorProperty("prec",
		m.runtime.ToValue(func(goja.FunctionCall) goja.Value {
			return m.runtime.ToValue(int64(x.Prec()))
		}),
		nil,
		goja.FLAG_FALSE,
		goja.FLAG_TRUE,
	)
	return obj
}

func (m *Module) unwrapFloat(val goja.Value) (*mpfloat.Float, error) {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil, errors.New("expected mpfr value, got null/undefined")
	}
	if obj, ok := val.(*goja.Object); ok {
		v := obj.Get(floatKey)
		if v == nil || goja.IsUndefined(v) {
			return nil, errors.New("not an mpfr value")
		}
		x, ok := v.Export().(*mpfloat.Float)
		if !ok || x == nil {
			return nil, errors.New("not an mpfr value")
		}
		return x, nil
	}
	switch v := val.Export().(type) {
	case int64:
		return mpfloat.FromInt64(v, m.prec, m.ctx.Mode()), nil
	case float64:
		return mpfloat.FromFloat64(v, m.prec, m.ctx.Mode()), nil
	case *big.Int:
		return mpfloat.FromInt(v, m.prec, m.ctx.Mode()), nil
	}
	return nil, errors.New("expected mpfr value, number or BigInt")
}

// float returns the argument at index i as a Float, or panics with a JS
// TypeError.
func (m *Module) float(fn string, call goja.FunctionCall, i int) *mpfloat.Float {
	x, err := m.unwrapFloat(call.Argument(i))
	if err != nil {
		panic(m.runtime.NewTypeError("%s: %s", fn, err))
	}
	return x
}

// precArg returns the optional precision argument at index i.
func (m *Module) precArg(call goja.FunctionCall, i int) uint {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return m.prec
	}
	return clampPrec(v.ToInteger())
}

// modeArg returns the optional rounding mode argument at index i, falling
// back to the context's rounding mode.
func (m *Module) modeArg(call goja.FunctionCall, i int) mpfloat.RoundingMode {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return m.ctx.Mode()
	}
	rnd := v.ToInteger()
	if rnd < 0 || rnd > int64(mpfloat.AwayFromZero) {
		m.logger.Debug().
			Int64("rnd", rnd).
			Stringer("fallback", m.ctx.Mode()).
			Log("invalid rounding mode")
		return m.ctx.Mode()
	}
	return mpfloat.RoundingMode(rnd)
}

func clampPrec(prec int64) uint {
	switch {
	case prec < mpfloat.MinPrec:
		return mpfloat.MinPrec
	case prec > mpfloat.MaxPrec:
		return mpfloat.MaxPrec
	}
	return uint(prec)
}
