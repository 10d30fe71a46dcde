package mpfloat

import (
	"fmt"
	"math"
	"math/big"
)

const debugFloat = false // enable for debugging

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Float may
// also be zero (+0, -0), infinite (+Inf, -Inf) or not-a-number (NaN).
//
// Floats are immutable: every operation returns a new *Float and leaves its
// operands untouched, so that values may be shared freely between goroutines.
// Each Float carries its own precision, fixed for its lifetime, and the
// accuracy of the operation that produced it.
//
// The zero value for a Float is +0 with precision 0. Operations treat a
// precision of 0 as DefaultPrec when no other precision is available.
type Float struct {
	mant *big.Float
	prec uint32
	acc  Accuracy
	form form
	neg  bool
}

// clampPrec raises prec to MinPrec and lowers it to MaxPrec.
func clampPrec(prec uint) uint32 {
	if prec < MinPrec {
		return MinPrec
	}
	if prec > MaxPrec {
		return MaxPrec
	}
	return uint32(prec)
}

// resultPrec returns prec clamped to the supported range, or, if prec is 0,
// the largest precision of the given operands (DefaultPrec if they all have
// precision 0).
func resultPrec(prec uint, xs ...*Float) uint32 {
	if prec != 0 {
		return clampPrec(prec)
	}
	var p uint32
	for _, x := range xs {
		p = umax32(p, x.prec)
	}
	if p == 0 {
		p = DefaultPrec
	}
	return p
}

// newBig returns a new big.Float with the given precision and rounding
// mode.
func newBig(prec uint32, mode RoundingMode) *big.Float {
	return new(big.Float).SetMode(mode.big()).SetPrec(uint(prec))
}

// fromBig wraps b, which must already be rounded to prec bits, into a Float.
// The Float takes ownership of b.
func fromBig(b *big.Float, prec uint32) *Float {
	z := &Float{prec: prec, acc: Accuracy(b.Acc()), neg: b.Signbit()}
	switch {
	case b.IsInf():
		z.form = inf
	case b.Sign() == 0:
		z.form = zero
	default:
		z.form = finite
		z.mant = b
	}
	if debugFloat {
		z.validate()
	}
	return z
}

// round returns the value of b rounded to prec bits according to mode.
func round(b *big.Float, prec uint32, mode RoundingMode) *Float {
	return fromBig(newBig(prec, mode).Set(b), prec)
}

// big returns a read-only *big.Float view of x, or nil if x is NaN. The
// result must not be modified.
func (x *Float) big() *big.Float {
	switch x.form {
	case finite:
		return x.mant
	case zero:
		z := new(big.Float).SetPrec(uint(x.prec))
		if x.neg {
			z.Neg(z)
		}
		return z
	case inf:
		return new(big.Float).SetPrec(uint(x.prec)).SetInf(x.neg)
	}
	return nil
}

// NaN returns a new NaN with the given precision.
func NaN(prec uint) *Float {
	return &Float{prec: clampPrec(prec), form: nan}
}

// Inf returns a new infinite Float: -Inf if signbit is set, +Inf otherwise.
func Inf(signbit bool, prec uint) *Float {
	return &Float{prec: clampPrec(prec), form: inf, neg: signbit}
}

// Zero returns a new zero Float: -0 if signbit is set, +0 otherwise.
func Zero(signbit bool, prec uint) *Float {
	return &Float{prec: clampPrec(prec), form: zero, neg: signbit}
}

// FromFloat64 returns the value of x rounded to prec bits according to mode.
// A NaN x yields a NaN Float; ±Inf and ±0 keep their sign.
func FromFloat64(x float64, prec uint, mode RoundingMode) *Float {
	p := clampPrec(prec)
	if math.IsNaN(x) {
		return NaN(uint(p))
	}
	return fromBig(newBig(p, mode).SetFloat64(x), p)
}

// FromInt returns the value of x rounded to prec bits according to mode. A
// nil x is treated as 0.
func FromInt(x *big.Int, prec uint, mode RoundingMode) *Float {
	p := clampPrec(prec)
	z := newBig(p, mode)
	if x != nil {
		z.SetInt(x)
	}
	return fromBig(z, p)
}

// FromInt64 returns the value of x rounded to prec bits according to mode.
func FromInt64(x int64, prec uint, mode RoundingMode) *Float {
	p := clampPrec(prec)
	return fromBig(newBig(p, mode).SetInt64(x), p)
}

// FromUint64 returns the value of x rounded to prec bits according to mode.
func FromUint64(x uint64, prec uint, mode RoundingMode) *Float {
	p := clampPrec(prec)
	return fromBig(newBig(p, mode).SetUint64(x), p)
}

// FromRat returns the value of x rounded to prec bits according to mode. A
// nil x is treated as 0.
func FromRat(x *big.Rat, prec uint, mode RoundingMode) *Float {
	p := clampPrec(prec)
	z := newBig(p, mode)
	if x != nil {
		z.SetRat(x)
	}
	return fromBig(z, p)
}

// FromBig returns the value of x rounded to prec bits according to mode. If
// prec is 0, x's own precision is used. A nil x yields NaN, mirroring the
// convention of using a nil *big.Float to represent NaN.
func FromBig(x *big.Float, prec uint, mode RoundingMode) *Float {
	if prec == 0 && x != nil {
		prec = x.Prec()
	}
	p := clampPrec(prec)
	if x == nil {
		return NaN(uint(p))
	}
	return round(x, p, mode)
}

// FromFloat returns the value of x rounded to prec bits according to mode.
// A prec of 0 keeps x's precision.
func FromFloat(x *Float, prec uint, mode RoundingMode) *Float {
	return x.Round(prec, mode)
}

// Round returns x rounded to prec bits according to mode. A prec of 0 keeps
// x's precision. The special values NaN, ±Inf and ±0 are preserved.
func (x *Float) Round(prec uint, mode RoundingMode) *Float {
	p := resultPrec(prec, x)
	if x.form != finite {
		return &Float{prec: p, form: x.form, neg: x.neg}
	}
	return round(x.mant, p, mode)
}

// Big returns the value of x as a new *big.Float with x's precision, or nil
// if x is NaN.
func (x *Float) Big() *big.Float {
	b := x.big()
	if b == nil {
		return nil
	}
	return new(big.Float).SetPrec(b.Prec()).Set(b)
}

// Rat returns the exact value of x as a *big.Rat. It returns nil and false
// for NaN and ±Inf.
func (x *Float) Rat() (*big.Rat, bool) {
	switch x.form {
	case zero:
		return new(big.Rat), true
	case finite:
		r, _ := x.mant.Rat(nil)
		return r, true
	}
	return nil, false
}

// Acc returns the accuracy of x produced by the most recent operation.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Prec returns the mantissa precision of x in bits.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly.
// The result is 0 for ±0, ±Inf and NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return x.mant.MinPrec()
}

// MantExp returns the binary exponent of x such that x = mant × 2**exp with
// 0.5 <= |mant| < 1.0. It returns 0 for ±0, ±Inf and NaN.
func (x *Float) MantExp() (exp int) {
	if x.form != finite {
		return 0
	}
	return x.mant.MantExp(nil)
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero. It returns false
// for NaN.
func (x *Float) Signbit() bool {
	return x.neg && x.form != nan
}

// IsNaN reports whether x is not-a-number.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x *Float) IsFinite() bool {
	return x.form == zero || x.form == finite
}

// IsInt reports whether x is an integer. ±Inf and NaN are not integers.
func (x *Float) IsInt() bool {
	switch x.form {
	case zero:
		return true
	case finite:
		return x.mant.IsInt()
	}
	return false
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// NaN compares equal to itself and less than any other value, which makes
// Cmp a total order suitable for sorting.
func (x *Float) Cmp(y *Float) int {
	if x.form == nan || y.form == nan {
		switch {
		case x.form == y.form:
			return 0
		case x.form == nan:
			return -1
		}
		return 1
	}
	return x.big().Cmp(y.big())
}

// Equal reports whether x == y under IEEE 754 rules: NaN is not equal to
// anything, including itself, and -0 == +0.
func (x *Float) Equal(y *Float) bool {
	return x.form != nan && y.form != nan && x.Cmp(y) == 0
}

// Identical reports whether x and y have the same precision, form, sign and
// value. Unlike Equal, Identical distinguishes -0 from +0 and reports NaNs
// of equal precision as identical. The accuracy is ignored.
func (x *Float) Identical(y *Float) bool {
	if x.prec != y.prec || x.form != y.form {
		return false
	}
	switch x.form {
	case nan:
		return true
	case finite:
		return x.mant.Cmp(y.mant) == 0
	}
	return x.neg == y.neg
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		if x.mant != nil {
			panic("non-finite Float with mantissa")
		}
		return
	}
	if x.mant == nil {
		panic("nonzero finite number with empty mantissa")
	}
	if x.mant.IsInf() || x.mant.Sign() == 0 {
		panic(fmt.Sprintf("finite Float with mantissa %v", x.mant))
	}
	if x.mant.Signbit() != x.neg {
		panic("sign mismatch between Float and mantissa")
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
	if x.mant.MinPrec() > uint(x.prec) {
		panic(fmt.Sprintf("mantissa needs %d bits, precision is %d", x.mant.MinPrec(), x.prec))
	}
}
