// This file implements Float-to-string conversion functions.

package mpfloat

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// log10(2)
const log10of2 = 0.30102999566398119521373889472449302676818988146211

// DigitsFor returns the number of significant decimal digits needed so
// that any Float of precision prec printed with that many digits, rounded to
// nearest, parses back to the same value: 1 + ⌈prec × log10(2)⌉.
func DigitsFor(prec uint) int {
	return 1 + int(math.Ceil(float64(prec)*log10of2))
}

// Digits returns the decimal significand of x rounded to n significant
// digits according to mode, and the exponent exp such that
//
//	x = 0.d1d2...dn × 10**exp
//
// If n <= 0, DigitsFor(x.Prec()) digits are generated. The significand
// always has exactly n digits and is prefixed with '-' for negative values,
// including -0. Zero yields n zeros with exp 0. NaN and ±Inf yield "@NaN@",
// "@Inf@" or "-@Inf@" and exp 0.
func (x *Float) Digits(n int, mode RoundingMode) (digits string, exp int) {
	if n <= 0 {
		n = DigitsFor(uint(x.prec))
	}
	sign := ""
	if x.Signbit() {
		sign = "-"
	}
	switch x.form {
	case nan:
		return "@NaN@", 0
	case inf:
		return sign + "@Inf@", 0
	case zero:
		return sign + strings.Repeat("0", n), 0
	}

	m, e := mantInt(x.mant)

	// |x| = m × 2**e lies in [2**(b-1), 2**b) with b = m.BitLen()+e. Start
	// from the estimate 10**(k-1) <= |x| < 10**k and correct it while the
	// scaled significand has the wrong number of digits.
	b := m.BitLen() + e
	k := int(math.Floor(float64(b-1)*log10of2)) + 1

	lo, hi := pow10(n-1), pow10(n)
	var q, r, den *big.Int
	for {
		// q + r/den = |x| × 10**(n-k)
		num := new(big.Int).Set(m)
		den = big.NewInt(1)
		if e > 0 {
			num.Lsh(num, uint(e))
		} else {
			den.Lsh(den, uint(-e))
		}
		if s := n - k; s > 0 {
			num.Mul(num, pow10(s))
		} else if s < 0 {
			den.Mul(den, pow10(-s))
		}
		q, r = num.QuoRem(num, den, new(big.Int))
		if q.Cmp(hi) >= 0 {
			k++
			continue
		}
		if q.Cmp(lo) < 0 {
			k--
			continue
		}
		break
	}

	if r.Sign() != 0 {
		inc := false
		switch mode {
		case ToZero:
			// nothing to do
		case AwayFromZero:
			inc = true
		case ToPositiveInf:
			inc = !x.neg
		case ToNegativeInf:
			inc = x.neg
		default:
			c := new(big.Int).Lsh(r, 1).Cmp(den)
			inc = c > 0 || c == 0 && q.Bit(0) != 0
		}
		if inc {
			q.Add(q, big.NewInt(1))
			if q.Cmp(hi) == 0 {
				q.Set(lo)
				k++
			}
		}
	}
	return sign + q.String(), k
}

// Text returns the shortest readable rendering of x, with the significand
// rounded to printPrec significant digits according to mode. If printPrec is
// 0 or less, 2 + ⌈prec × log10(2)⌉ digits are used, which is enough for the
// result to parse back to x. The rendering is:
//
//	nan, inf, -inf        for NaN and ±Inf
//	[-]d.ddd              if the decimal exponent is zero
//	[-]d.ddde<exp>        otherwise
//
// Trailing zeros of the significand are removed, but at least one
// fractional digit is always shown. Negative zero renders as "-0.0".
//
// If the conversion fails unexpectedly, Text returns a placeholder of the form
// "#<mpfloat 0x...>" identifying the value.
func (x *Float) Text(printPrec int, mode RoundingMode) (s string) {
	if x == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("#<mpfloat %p>", x)
		}
	}()

	switch x.form {
	case nan:
		return "nan"
	case inf:
		if x.neg {
			return "-inf"
		}
		return "inf"
	}

	n := printPrec
	if n <= 0 {
		n = 1 + DigitsFor(uint(x.prec))
	}
	digits, exp := x.Digits(n, mode)
	neg := digits[0] == '-'
	if neg {
		digits = digits[1:]
	}
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	} else {
		exp--
	}

	var buf strings.Builder
	buf.Grow(len(digits) + 24)
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteByte(digits[0])
	buf.WriteByte('.')
	if len(digits) > 1 {
		buf.WriteString(digits[1:])
	} else {
		buf.WriteByte('0')
	}
	if exp != 0 {
		buf.WriteByte('e')
		buf.WriteString(strconv.Itoa(exp))
	}
	return buf.String()
}

// String formats x like x.Text(0, ToNearestEven).
func (x *Float) String() string {
	return x.Text(0, ToNearestEven)
}

var _ fmt.Formatter = &floatZero // *Float must implement fmt.Formatter

// Format implements fmt.Formatter. The verbs 's' and 'v' use String. All
// verbs supported by big.Float.Format ('e', 'E', 'f', 'F', 'g', 'G', 'b',
// 'p', 'x', 'X') are handled by it, for finite and infinite values. NaN is
// printed as "NaN".
func (x *Float) Format(s fmt.State, format rune) {
	var str string
	switch {
	case x == nil:
		str = "<nil>"
	case format == 's' || format == 'v':
		str = x.String()
	case x.form == nan:
		str = "NaN"
	default:
		x.big().Format(s, format)
		return
	}
	pad := 0
	if w, ok := s.Width(); ok && w > len(str) {
		pad = w - len(str)
	}
	if pad > 0 && !s.Flag('-') {
		fmt.Fprint(s, strings.Repeat(" ", pad))
	}
	fmt.Fprint(s, str)
	if pad > 0 && s.Flag('-') {
		fmt.Fprint(s, strings.Repeat(" ", pad))
	}
}
