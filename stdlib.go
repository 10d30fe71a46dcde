// This file mirrors types and constants from math/big, renumbered where
// MPFR assigns different values.

package mpfloat

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
)

// Exponent and precision limits.
const (
	MaxExp      = math.MaxInt32  // largest supported binary exponent
	MinExp      = math.MinInt32  // smallest supported binary exponent
	MinPrec     = 1              // smallest supported precision; smaller requests are raised to MinPrec
	MaxPrec     = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
	DefaultPrec = 53             // precision used when neither caller nor operands provide one
)

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a *big.Float rounded to exactly x.prec bits.
//
// A zero, infinite or NaN Float x ignores x.mant.
//
// x                 form      neg      mant
// ----------------------------------------------
// ±0                zero      sign     -
// 0 < |x| < +Inf    finite    sign     mantissa
// ±Inf              inf       sign     -
// NaN               nan       -        -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the Float's Accuracy.
//
// The numeric values match MPFR's mpfr_rnd_t so that hosts passing plain
// integers keep working.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven, MPFR_RNDN
	ToZero                            // == IEEE 754-2008 roundTowardZero, MPFR_RNDZ
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive, MPFR_RNDU
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative, MPFR_RNDD
	AwayFromZero                      // no IEEE 754-2008 equivalent, MPFR_RNDA
)

var modeNames = [...]string{
	ToNearestEven: "ToNearestEven",
	ToZero:        "ToZero",
	ToPositiveInf: "ToPositiveInf",
	ToNegativeInf: "ToNegativeInf",
	AwayFromZero:  "AwayFromZero",
}

func (m RoundingMode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is one of the defined rounding modes.
func (m RoundingMode) Valid() bool {
	return m <= AwayFromZero
}

// big returns the math/big equivalent of m. Invalid modes map to
// big.ToNearestEven.
func (m RoundingMode) big() big.RoundingMode {
	switch m {
	case ToZero:
		return big.ToZero
	case ToPositiveInf:
		return big.ToPositiveInf
	case ToNegativeInf:
		return big.ToNegativeInf
	case AwayFromZero:
		return big.AwayFromZero
	}
	return big.ToNearestEven
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Float value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return "Accuracy(" + strconv.Itoa(int(a)) + ")"
}

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}

// scan errors
var (
	// ErrSyntax is wrapped by every error returned when parsing a malformed
	// number.
	ErrSyntax = errors.New("invalid syntax")

	errNoDigits  = fmt.Errorf("%w: number has no digits", ErrSyntax)
	errExpDigits = fmt.Errorf("%w: exponent has no digits", ErrSyntax)
	errTrailing  = fmt.Errorf("%w: unexpected trailing characters", ErrSyntax)
)

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// maxScanExp bounds decimal exponents during scanning. Anything beyond it
// overflows or underflows every representable Float anyway.
const maxScanExp = 1 << 40

// scanExponent scans an optional decimal exponent "e[sign]digits". Exponents
// too large in magnitude saturate at ±maxScanExp.
func scanExponent(r io.ByteScanner) (exp int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}

	// exponent char
	switch ch {
	case 'e', 'E':
		// ok
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, nil
	}

	// sign
	neg := false
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		neg = ch == '-'
		ch, err = r.ReadByte()
	}

	// exponent value
	hasDigits := false
	for err == nil {
		if '0' <= ch && ch <= '9' {
			if exp < maxScanExp {
				exp = exp*10 + int64(ch-'0')
			}
			hasDigits = true
		} else {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errExpDigits
	}
	if exp > maxScanExp {
		exp = maxScanExp
	}
	if neg {
		exp = -exp
	}
	return
}

// These powers of 10 fit into a uint64.
//
//	for p, q := uint64(0), uint64(1); p < q; p, q = q, q*10 {
//		fmt.Println(q)
//	}
var pow10tab = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

var bigTen = big.NewInt(10)

// pow10 returns 10**n as a new *big.Int. n must not be negative.
func pow10(n int) *big.Int {
	if n < len(pow10tab) {
		return new(big.Int).SetUint64(pow10tab[n])
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
