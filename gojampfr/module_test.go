package gojampfr_test

import (
	"math/big"
	"testing"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
	"github.com/db47h/mpfloat/gojampfr"
	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Panics(t, func() { _, _ = gojampfr.New(nil) })

	_, err := gojampfr.New(goja.New(), gojampfr.WithDefaultPrec(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gojampfr:")

	_, err = gojampfr.New(goja.New(), gojampfr.WithContext(nil))
	require.Error(t, err)
}

func TestSetupExports(t *testing.T) {
	rt := goja.New()
	m, err := gojampfr.New(rt)
	require.NoError(t, err)
	exports := rt.NewObject()
	m.SetupExports(exports)
	require.NoError(t, rt.Set("m", exports))

	for _, name := range []string{
		"fromDouble", "fromFloat", "fromBigInt", "fromString", "toDouble",
		"toInt", "toBigInt", "floor", "ceil", "round", "trunc", "neg", "add",
		"sub", "mul", "div", "pow", "sqrt", "exp", "ln", "log", "sin", "cos",
		"tan", "asin", "acos", "atan", "atan2", "sinh", "cosh", "tanh",
		"asinh", "acosh", "atanh", "str", "prec", "isNaN", "isInf", "cmp",
		"getPrintPrec", "setPrintPrec", "getDefaultRounding",
		"setDefaultRounding",
	} {
		v, err := rt.RunString(`typeof m.` + name)
		require.NoError(t, err)
		assert.Equal(t, "function", v.String(), name)
	}
	v, err := rt.RunString(`[m.RNDN, m.RNDZ, m.RNDU, m.RNDD, m.RNDA, m.PREC_MIN, m.PREC_MAX].join(",")`)
	require.NoError(t, err)
	assert.Equal(t, "0,1,2,3,4,1,4294967295", v.String())
}

func TestConversions(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "1.5", env.run(`mpfr.str(mpfr.fromDouble(1.5))`).String())
	assert.Equal(t, "2.5", env.run(`String(mpfr.fromDouble(2.5))`).String())
	assert.Equal(t, int64(53), env.run(`mpfr.fromDouble(1).prec`).ToInteger())
	assert.Equal(t, int64(100), env.run(`mpfr.prec(mpfr.fromDouble(1, 100))`).ToInteger())
	assert.Equal(t, int64(1), env.run(`mpfr.prec(mpfr.fromDouble(1, -7))`).ToInteger())
	assert.Equal(t, 0.1, env.run(`mpfr.toDouble(mpfr.fromString("0.1"))`).ToFloat())
	assert.Equal(t, int64(-2), env.run(`mpfr.toInt(mpfr.fromDouble(-2.5, 53, mpfr.RNDD))`).ToInteger())
	assert.Equal(t, int64(10), env.run(`mpfr.prec(mpfr.fromFloat(mpfr.fromDouble(1), 10))`).ToInteger())

	assert.True(t, env.run(`mpfr.fromString("1.2.3") === null`).ToBoolean())
	assert.Contains(t, env.log.String(), `"msg":"parse failed"`)
	assert.True(t, env.run(`mpfr.toBigInt(mpfr.fromDouble(Infinity)) === null`).ToBoolean())
	assert.True(t, env.run(`mpfr.toBigInt(mpfr.fromDouble(NaN)) === null`).ToBoolean())

	v := env.run(`mpfr.toBigInt(mpfr.fromBigInt(12345678901234567890123n, 100))`)
	want, _ := new(big.Int).SetString("12345678901234567890123", 10)
	got, ok := v.Export().(*big.Int)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(got))
	assert.Equal(t, "4.2e1", env.run(`mpfr.str(mpfr.fromBigInt(42))`).String())
}

func TestNativeArguments(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "3.0", env.run(`mpfr.str(mpfr.add(1, 2))`).String())
	assert.Equal(t, "1.0e20", env.run(`mpfr.str(mpfr.mul(10000000000n, 10000000000n))`).String())
	assert.Equal(t, 0.5, env.run(`mpfr.toDouble(mpfr.div(mpfr.fromDouble(1), 2))`).ToFloat())
}

func TestTypeErrors(t *testing.T) {
	env := newTestEnv(t)
	for _, code := range []string{
		`mpfr.sin("x")`,
		`mpfr.add(mpfr.fromDouble(1), {})`,
		`mpfr.str(undefined)`,
		`mpfr.fromBigInt(1.5)`,
	} {
		err := env.mustFail(code)
		assert.Contains(t, err.Error(), "TypeError", code)
	}
	assert.True(t, env.run(`
		var caught = false;
		try { mpfr.exp(null) } catch (e) { caught = e instanceof TypeError }
		caught;
	`).ToBoolean())
}

func TestSpecialValues(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "inf", env.run(`mpfr.str(mpfr.div(1, 0))`).String())
	assert.Equal(t, "-inf", env.run(`mpfr.str(mpfr.div(-1, 0))`).String())
	assert.Equal(t, "nan", env.run(`mpfr.str(mpfr.div(0, 0))`).String())
	assert.True(t, env.run(`mpfr.isNaN(mpfr.sqrt(-1))`).ToBoolean())
	assert.True(t, env.run(`mpfr.isInf(mpfr.ln(0))`).ToBoolean())
	assert.Equal(t, "-0.0", env.run(`mpfr.str(mpfr.neg(0))`).String())
	assert.Equal(t, int64(-1), env.run(`mpfr.cmp(mpfr.fromDouble(NaN), 1)`).ToInteger())
	assert.Equal(t, int64(1), env.run(`mpfr.cmp(2, 1)`).ToInteger())
}

func TestRounding(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "2.0", env.run(`mpfr.str(mpfr.floor(2.5))`).String())
	assert.Equal(t, "3.0", env.run(`mpfr.str(mpfr.ceil(2.5))`).String())
	assert.Equal(t, "3.0", env.run(`mpfr.str(mpfr.round(2.5))`).String())
	assert.Equal(t, "-2.0", env.run(`mpfr.str(mpfr.trunc(-2.5))`).String())

	assert.Equal(t, int64(mpfloat.ToNearestEven), env.run(`mpfr.getDefaultRounding()`).ToInteger())
	env.run(`mpfr.setDefaultRounding(mpfr.RNDU)`)
	assert.Equal(t, int64(mpfloat.ToPositiveInf), env.run(`mpfr.getDefaultRounding()`).ToInteger())
	env.run(`mpfr.setDefaultRounding(99)`)
	assert.Equal(t, int64(mpfloat.ToPositiveInf), env.run(`mpfr.getDefaultRounding()`).ToInteger())
	assert.Contains(t, env.log.String(), `"msg":"invalid rounding mode"`)

	assert.True(t, env.run(`
		var up = mpfr.fromString("0.1", 10);
		var down = mpfr.fromString("0.1", 10, mpfr.RNDD);
		var other = mpfr.fromString("0.1", 10, -1);
		mpfr.cmp(up, down) > 0 && mpfr.cmp(other, up) == 0;
	`).ToBoolean())
}

func TestTranscendental(t *testing.T) {
	env := newTestEnv(t, gojampfr.WithDefaultPrec(200))
	env.run(`mpfr.setPrintPrec(30)`)
	assert.Equal(t, int64(30), env.run(`mpfr.getPrintPrec()`).ToInteger())
	assert.Equal(t, "3.14159265358979323846264338328", env.run(`mpfr.str(mpfr.mul(mpfr.atan(1), 4))`).String())
	assert.Equal(t, "2.71828182845904523536028747135", env.run(`mpfr.str(mpfr.exp(1))`).String())
	assert.Equal(t, "3.0", env.run(`mpfr.str(mpfr.log(1000))`).String())
	assert.Equal(t, "1.024e3", env.run(`mpfr.str(mpfr.pow(2, 10))`).String())
	assert.True(t, env.run(`mpfr.isNaN(mpfr.asin(2))`).ToBoolean())
	assert.Equal(t, "-7.8539816339744830961566084582e-1", env.run(`mpfr.str(mpfr.atan2(-1, 1))`).String())
}

func TestWrapUnwrap(t *testing.T) {
	rt := goja.New()
	m, err := gojampfr.New(rt,
		gojampfr.WithContext(context.New(mpfloat.ToZero, 0)),
		gojampfr.WithDefaultPrec(10),
	)
	require.NoError(t, err)

	x := mpfloat.FromInt64(7, 20, mpfloat.ToNearestEven)
	v := m.Wrap(x)
	got, err := m.Unwrap(v)
	require.NoError(t, err)
	assert.Same(t, x, got)
	assert.True(t, goja.IsNull(m.Wrap(nil)))

	got, err = m.Unwrap(rt.ToValue(0.1))
	require.NoError(t, err)
	assert.Equal(t, mpfloat.Below, got.Acc())

	_, err = m.Unwrap(rt.ToValue("0.1"))
	assert.Error(t, err)
	_, err = m.Unwrap(rt.NewObject())
	assert.Error(t, err)
}
