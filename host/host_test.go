package host_test

import (
	"bytes"
	"math"
	"math/big"
	"sync"
	"testing"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
	"github.com/db47h/mpfloat/host"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T, opts ...host.Option) (*host.Host, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&buf), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
	h, err := host.New(append([]host.Option{host.WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return h, &buf
}

func TestNew(t *testing.T) {
	_, err := host.New(host.WithContext(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:")

	h, err := host.New()
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.GetPrintPrec())
	assert.Equal(t, int(mpfloat.ToNearestEven), h.GetDefaultRounding())
}

func TestLifecycle(t *testing.T) {
	h, _ := newTestHost(t)
	x := h.FromDouble(1.5, 53, 0)
	require.NotEqual(t, host.Null, x)
	y := h.FromDouble(2.5, 53, 0)
	assert.NotEqual(t, x, y)
	assert.Equal(t, 2, h.Len())

	v, ok := h.Get(x)
	require.True(t, ok)
	assert.Equal(t, 1.5, v.Float64(mpfloat.ToNearestEven))

	assert.True(t, h.Release(x))
	assert.False(t, h.Release(x))
	assert.Equal(t, 1, h.Len())
	_, ok = h.Get(x)
	assert.False(t, ok)

	assert.Equal(t, host.Null, h.Put(nil))
	z := h.Put(mpfloat.FromInt64(7, 8, mpfloat.ToNearestEven))
	assert.Equal(t, 7, h.ToInt(z))
}

func TestUnknownHandle(t *testing.T) {
	h, buf := newTestHost(t)
	x := h.FromDouble(1, 53, 0)
	h.Release(x)

	assert.Equal(t, host.Null, h.Add(x, x))
	assert.Equal(t, host.Null, h.Sin(x))
	assert.True(t, math.IsNaN(h.ToDouble(x)))
	assert.Equal(t, 0, h.ToInt(x))
	assert.Nil(t, h.ToBigInt(x))
	assert.Equal(t, "", h.Str(x))
	assert.Equal(t, 0, h.Len())

	assert.Contains(t, buf.String(), `"lvl":"warning"`)
	assert.Contains(t, buf.String(), `"msg":"unknown handle"`)
	assert.Contains(t, buf.String(), `"op":"ToDouble"`)
}

func TestFromString(t *testing.T) {
	h, buf := newTestHost(t)
	assert.Equal(t, host.Null, h.FromString("1.5.5", 53, 0))
	assert.Contains(t, buf.String(), `"msg":"parse failed"`)

	x := h.FromString("3.14159265358979323846", 200, 0)
	require.NotEqual(t, host.Null, x)
	h.SetPrintPrec(6)
	assert.Equal(t, "3.14159", h.Str(x))
	h.SetPrintPrec(-1)
	assert.Equal(t, 0, h.GetPrintPrec())
}

func TestRoundingFallback(t *testing.T) {
	h, buf := newTestHost(t, host.WithContext(context.New(mpfloat.ToPositiveInf, 0)))
	up := h.FromString("0.1", 10, 99)
	down := h.FromString("0.1", 10, int(mpfloat.ToNegativeInf))
	a, _ := h.Get(up)
	b, _ := h.Get(down)
	assert.Equal(t, mpfloat.Above, a.Acc())
	assert.Equal(t, mpfloat.Below, b.Acc())
	assert.Contains(t, buf.String(), `"msg":"invalid rounding mode"`)

	// out of range values do not wrap around to a valid mode
	wide := h.FromDouble(0.1, 10, 256+int(mpfloat.ToNegativeInf))
	c, _ := h.Get(wide)
	assert.Equal(t, mpfloat.Above, c.Acc())
	assert.True(t, c.Identical(a))

	h.SetDefaultRounding(17)
	assert.Equal(t, int(mpfloat.ToPositiveInf), h.GetDefaultRounding())
	h.SetDefaultRounding(int(mpfloat.ToZero))
	assert.Equal(t, int(mpfloat.ToZero), h.GetDefaultRounding())
}

func TestPrecisionClamp(t *testing.T) {
	h, _ := newTestHost(t)
	x := h.FromDouble(3, -10, 0)
	v, ok := h.Get(x)
	require.True(t, ok)
	assert.Equal(t, uint(mpfloat.MinPrec), v.Prec())
	assert.Equal(t, 4.0, v.Float64(mpfloat.ToNearestEven))
}

func TestArithmetic(t *testing.T) {
	h, _ := newTestHost(t)
	one := h.FromDouble(1, 53, 0)
	zero := h.FromDouble(0, 53, 0)
	three := h.FromDouble(3, 53, 0)

	assert.Equal(t, math.Inf(1), h.ToDouble(h.Div(one, zero)))
	assert.Equal(t, math.Inf(-1), h.ToDouble(h.Div(h.Neg(one), zero)))
	assert.True(t, math.IsNaN(h.ToDouble(h.Div(zero, zero))))
	assert.Equal(t, 1.0/3, h.ToDouble(h.Div(one, three)))
	assert.Equal(t, 4.0, h.ToDouble(h.Add(one, three)))
	assert.Equal(t, -2.0, h.ToDouble(h.Sub(one, three)))
	assert.Equal(t, 3.0, h.ToDouble(h.Mul(one, three)))
	assert.Equal(t, 27.0, h.ToDouble(h.Pow(three, three)))
	assert.True(t, math.IsNaN(h.ToDouble(h.Sqrt(h.Neg(one)))))
}

func TestRoundingFamily(t *testing.T) {
	h, _ := newTestHost(t)
	x := h.FromDouble(2.5, 53, 0)
	y := h.FromDouble(-2.5, 53, 0)
	for _, td := range []struct {
		name string
		op   func(host.Handle) host.Handle
		x, y float64
	}{
		{"Floor", h.Floor, 2, -3},
		{"Ceil", h.Ceil, 3, -2},
		{"Round", h.Round, 3, -3},
		{"Trunc", h.Trunc, 2, -2},
	} {
		assert.Equal(t, td.x, h.ToDouble(td.op(x)), td.name)
		assert.Equal(t, td.y, h.ToDouble(td.op(y)), td.name)
	}
	assert.Equal(t, "2.0", h.Str(h.Floor(x)))
}

func TestTranscendental(t *testing.T) {
	h, _ := newTestHost(t)
	one := h.FromDouble(1, 53, 0)
	half := h.FromDouble(0.5, 53, 0)
	for _, td := range []struct {
		name string
		op   func(host.Handle) host.Handle
		x    host.Handle
		want float64
	}{
		{"Exp", h.Exp, one, math.E},
		{"Ln", h.Ln, one, 0},
		{"Log", h.Log, h.FromDouble(1000, 53, 0), 3},
		{"Sin", h.Sin, one, math.Sin(1)},
		{"Cos", h.Cos, one, math.Cos(1)},
		{"Tan", h.Tan, one, math.Tan(1)},
		{"Asin", h.Asin, half, math.Asin(0.5)},
		{"Acos", h.Acos, half, math.Acos(0.5)},
		{"Atan", h.Atan, one, math.Pi / 4},
		{"Sinh", h.Sinh, one, math.Sinh(1)},
		{"Cosh", h.Cosh, one, math.Cosh(1)},
		{"Tanh", h.Tanh, one, math.Tanh(1)},
		{"Asinh", h.Asinh, one, math.Asinh(1)},
		{"Acosh", h.Acosh, h.FromDouble(2, 53, 0), math.Acosh(2)},
		{"Atanh", h.Atanh, half, math.Atanh(0.5)},
	} {
		assert.InDelta(t, td.want, h.ToDouble(td.op(td.x)), 1e-15, td.name)
	}
	assert.InDelta(t, 3*math.Pi/4, h.ToDouble(h.Atan2(one, h.Neg(one))), 1e-15)
	assert.True(t, math.IsNaN(h.ToDouble(h.Asin(h.FromDouble(2, 53, 0)))))
}

func TestConversions(t *testing.T) {
	h, _ := newTestHost(t)
	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	x := h.FromBigInt(n, 128, 0)
	assert.Equal(t, 0, h.ToBigInt(x).Cmp(n))
	assert.Equal(t, math.MaxInt, h.ToInt(x))
	assert.Equal(t, host.Null, h.FromBigInt(nil, 53, 0))

	inf := h.Div(h.FromDouble(1, 53, 0), h.FromDouble(0, 53, 0))
	assert.Nil(t, h.ToBigInt(inf))
	assert.Nil(t, h.ToBigInt(h.FromDouble(math.NaN(), 53, 0)))

	y := h.FromFloat(x, 10, int(mpfloat.ToZero))
	v, _ := h.Get(y)
	assert.Equal(t, uint(10), v.Prec())
	assert.Equal(t, host.Null, h.FromFloat(host.Null, 10, 0))
}

func TestConcurrentUse(t *testing.T) {
	h, _ := newTestHost(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				x := h.FromDouble(float64(i*100+j), 64, 0)
				y := h.Sqrt(x)
				assert.True(t, h.Release(x))
				assert.True(t, h.Release(y))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, h.Len())
}
