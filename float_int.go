package mpfloat

import (
	"math"
	"math/big"
)

// integer rounding directions
type intRounding byte

const (
	intFloor     intRounding = iota // toward -Inf
	intCeil                         // toward +Inf
	intTrunc                        // toward zero
	intAway                         // away from zero
	intHalfAway                     // to nearest, ties away from zero
	intHalfEven                     // to nearest, ties to even
)

// intRoundingOf maps a rounding mode to the matching integer rounding
// direction.
func intRoundingOf(mode RoundingMode) intRounding {
	switch mode {
	case ToZero:
		return intTrunc
	case ToPositiveInf:
		return intCeil
	case ToNegativeInf:
		return intFloor
	case AwayFromZero:
		return intAway
	}
	return intHalfEven
}

var bigHalf = big.NewFloat(0.5)

// integral returns x, which must be finite and nonzero, rounded to an
// integer in direction r. exact reports whether x was already an integer.
func integral(x *big.Float, r intRounding) (i *big.Int, exact bool) {
	i, acc := x.Int(nil) // truncated toward zero
	if acc == big.Exact {
		return i, true
	}
	neg := x.Signbit()
	inc := false // increment magnitude of i
	switch r {
	case intFloor:
		inc = neg
	case intCeil:
		inc = !neg
	case intAway:
		inc = true
	case intHalfAway, intHalfEven:
		// |x| - |i| is exact at x's precision
		f := new(big.Float).SetPrec(x.Prec()).Sub(x, new(big.Float).SetInt(i))
		switch f.Abs(f).Cmp(bigHalf) {
		case 1:
			inc = true
		case 0:
			inc = r == intHalfAway || i.Bit(0) != 0
		}
	}
	if inc {
		if neg {
			i.Sub(i, big.NewInt(1))
		} else {
			i.Add(i, big.NewInt(1))
		}
	}
	return i, false
}

// toIntegral returns x rounded to an integral value in direction r, with x's
// precision. Zero results keep the sign of x.
func toIntegral(x *Float, r intRounding) *Float {
	p := resultPrec(0, x)
	if x.form != finite {
		return &Float{prec: p, form: x.form, neg: x.neg}
	}
	i, exact := integral(x.mant, r)
	if exact {
		return &Float{mant: x.mant, prec: p, form: finite, neg: x.neg}
	}
	if i.Sign() == 0 {
		z := Zero(x.neg, uint(p))
		z.acc = makeAcc(x.neg)
		return z
	}
	// The integer fits in p bits, except for carries into a new power of two
	// which are exact anyway.
	z := fromBig(newBig(p, ToNearestEven).SetInt(i), p)
	z.acc = Accuracy(z.mant.Cmp(x.mant))
	return z
}

// Floor returns the largest integral value not greater than x, with x's
// precision. Floor(NaN) is NaN; ±Inf and ±0 are returned unchanged.
func Floor(x *Float) *Float { return toIntegral(x, intFloor) }

// Ceil returns the smallest integral value not less than x, with x's
// precision. Ceil(-0.5) is -0.
func Ceil(x *Float) *Float { return toIntegral(x, intCeil) }

// Round returns x rounded to the nearest integral value, rounding halfway
// cases away from zero, with x's precision. Round(-0.3) is -0.
func Round(x *Float) *Float { return toIntegral(x, intHalfAway) }

// Trunc returns the integral part of x, with x's precision.
func Trunc(x *Float) *Float { return toIntegral(x, intTrunc) }

// Rint returns x rounded to an integral value using mode: ToNearestEven
// rounds halfway cases to even, the directed modes round like Floor, Ceil,
// Trunc or away from zero.
func Rint(x *Float, mode RoundingMode) *Float { return toIntegral(x, intRoundingOf(mode)) }

// Int returns x rounded to an integer according to mode. It returns nil and
// false if x is NaN or infinite.
func (x *Float) Int(mode RoundingMode) (*big.Int, bool) {
	switch x.form {
	case zero:
		return new(big.Int), true
	case finite:
		i, _ := integral(x.mant, intRoundingOf(mode))
		return i, true
	}
	return nil, false
}

// Int64 returns x rounded to an integer according to mode. The result
// saturates at math.MinInt64 and math.MaxInt64 for values out of range,
// including ±Inf. NaN yields 0.
func (x *Float) Int64(mode RoundingMode) int64 {
	switch x.form {
	case zero, nan:
		return 0
	case inf:
		if x.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	i, _ := integral(x.mant, intRoundingOf(mode))
	if i.IsInt64() {
		return i.Int64()
	}
	if i.Sign() < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

// float64 limits, as binary exponents of x = mant × 2**exp, 0.5 <= mant < 1.
const (
	f64MaxExp    = 1024  // largest exponent of a finite float64
	f64MinNormal = -1021 // smallest exponent of a normal float64
	f64MinExp    = -1074 // exponent of values in [2**-1075, 2**-1074)
)

// Float64 returns the float64 value nearest to x in the direction given by
// mode, including values in the subnormal range. Values too large in
// magnitude become ±Inf, or ±math.MaxFloat64 for modes rounding toward zero.
// NaN yields math.NaN().
func (x *Float) Float64(mode RoundingMode) float64 {
	switch x.form {
	case nan:
		return math.NaN()
	case zero:
		if x.neg {
			return math.Copysign(0, -1)
		}
		return 0
	case inf:
		return math.Inf(sign(x.neg))
	}

	// Direction of rounding away from zero for the sign of x.
	away := false
	switch mode {
	case AwayFromZero:
		away = true
	case ToPositiveInf:
		away = !x.neg
	case ToNegativeInf:
		away = x.neg
	}

	e := x.mant.MantExp(nil)
	switch {
	case e > f64MaxExp:
		if mode.Valid() && mode != ToNearestEven && !away {
			return math.Copysign(math.MaxFloat64, float64(sign(x.neg)))
		}
		return math.Inf(sign(x.neg))
	case e < f64MinExp:
		// |x| < 2**-1075: 0 or the smallest subnormal
		if away {
			return math.Copysign(math.SmallestNonzeroFloat64, float64(sign(x.neg)))
		}
		return math.Copysign(0, float64(sign(x.neg)))
	}

	p := uint(53)
	if e < f64MinNormal {
		p = uint(e - f64MinExp)
	}
	if p == 0 {
		// 2**-1075 <= |x| < 2**-1074, halfway at 2**-1075
		up := away
		if !mode.Valid() || mode == ToNearestEven {
			up = new(big.Float).Abs(x.mant).Cmp(new(big.Float).SetMantExp(bigHalf, f64MinExp)) > 0
		}
		if up {
			return math.Copysign(math.SmallestNonzeroFloat64, float64(sign(x.neg)))
		}
		return math.Copysign(0, float64(sign(x.neg)))
	}
	r := new(big.Float).SetMode(mode.big()).SetPrec(p).Set(x.mant)
	if r.MantExp(nil) > f64MaxExp {
		// rounding carried out of range
		return math.Inf(sign(x.neg))
	}
	f, _ := r.Float64() // exact
	return f
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
