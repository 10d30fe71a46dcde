// This file implements string-to-Float conversion functions.

package mpfloat

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"strings"
)

var floatZero Float

// A ParseError records a failed conversion of a string to a Float.
type ParseError struct {
	Input  string // the input string
	Offset int    // byte offset in Input where parsing stopped
	Err    error  // the reason the conversion failed; wraps ErrSyntax
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mpfloat: parsing %q at offset %d: %v", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decimal exponent bounds past which every value overflows to ±Inf or
// underflows to ±0. 2**MaxExp ≈ 10**646456993.
const (
	maxDecExp = 646456995
	minDecExp = -646456995
)

// Powers of ten up to 10**exactScale are applied exactly. Larger ones are
// evaluated at a working precision by scaleApprox.
const exactScale = 400

// Parse parses s as a base-10 floating-point number and returns its value
// correctly rounded to prec bits according to mode. Leading white space is
// ignored. The number must be of the form:
//
//	number   = [ sign ] ( mantissa [ exponent ] | infinity | nan ) .
//	sign     = "+" | "-" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//	infinity = "inf" | "infinity" | "@inf@" .
//	nan      = "nan" | "@nan@" .
//
// Keywords are case-insensitive. The entire string (not just a prefix) must
// be consumed. On failure, Parse returns a nil *Float and a *ParseError
// wrapping ErrSyntax.
func Parse(s string, prec uint, mode RoundingMode) (*Float, error) {
	p := clampPrec(prec)
	t := strings.TrimLeft(s, " \t\n\v\f\r")
	r := strings.NewReader(t)
	offset := func() int { return len(s) - r.Len() }

	neg, err := scanSign(r)
	if err != nil {
		// empty input
		return nil, &ParseError{Input: s, Offset: offset(), Err: errNoDigits}
	}

	if rest := strings.ToLower(t[len(t)-r.Len():]); !startsNumber(rest) {
		switch rest {
		case "inf", "infinity", "@inf@":
			return Inf(neg, uint(p)), nil
		case "nan", "@nan@":
			return NaN(uint(p)), nil
		}
		return nil, &ParseError{Input: s, Offset: offset(), Err: errNoDigits}
	}

	z, err := scan(r, neg, p, mode)
	if err != nil {
		return nil, &ParseError{Input: s, Offset: offset(), Err: err}
	}

	// entire string must have been consumed
	if _, err := r.ReadByte(); err != io.EOF {
		_ = r.UnreadByte()
		return nil, &ParseError{Input: s, Offset: offset(), Err: errTrailing}
	}
	return z, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// the initialization of global variables holding constants.
func MustParse(s string, prec uint, mode RoundingMode) *Float {
	z, err := Parse(s, prec, mode)
	if err != nil {
		panic(err)
	}
	return z
}

func startsNumber(s string) bool {
	return s != "" && (s[0] == '.' || '0' <= s[0] && s[0] <= '9')
}

// scan reads the longest prefix of r representing an unsigned decimal
// number and returns its value with the given sign, rounded to prec bits.
func scan(r io.ByteScanner, neg bool, prec uint32, mode RoundingMode) (*Float, error) {
	// mantissa digits, with leading zeros dropped
	var (
		digits    []byte
		hasDigits bool
		fracDigs  int64 // digits after the radix point
		seenPoint bool
		ch        byte
		err       error
	)
	for {
		if ch, err = r.ReadByte(); err != nil {
			break
		}
		if ch == '.' && !seenPoint {
			seenPoint = true
			continue
		}
		if ch < '0' || '9' < ch {
			_ = r.UnreadByte()
			break
		}
		hasDigits = true
		if seenPoint {
			fracDigs++
		}
		if ch != '0' || len(digits) > 0 {
			digits = append(digits, ch)
		}
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !hasDigits {
		return nil, errNoDigits
	}

	exp, err := scanExponent(r)
	if err != nil {
		return nil, err
	}
	if len(digits) == 0 {
		return Zero(neg, uint(prec)), nil
	}

	// value = 0.digits × 10**d
	d := exp - fracDigs + int64(len(digits))
	switch {
	case d > maxDecExp:
		return &Float{prec: prec, acc: makeAcc(!neg), form: inf, neg: neg}, nil
	case d < minDecExp:
		return &Float{prec: prec, acc: makeAcc(neg), form: zero, neg: neg}, nil
	}

	m, _ := new(big.Int).SetString(string(digits), 10)
	if neg {
		m.Neg(m)
	}
	k := d - int64(len(digits))
	if k > exactScale || k < -exactScale {
		if z := scaleApprox(m, k, prec, mode); z != nil {
			return z, nil
		}
	}
	z := newBig(prec, mode)
	if k >= 0 {
		z.SetInt(m.Mul(m, pow10(int(k))))
	} else {
		z.SetRat(new(big.Rat).SetFrac(m, pow10(int(-k))))
	}
	return fromBig(z, prec), nil
}

// scaleApprox returns m × 10**k correctly rounded to prec bits. The power of
// ten is computed at increasing working precisions with a bound on the
// accumulated rounding error, until both ends of the error interval round to
// the same value. It returns nil if that does not happen within a few
// attempts, or if 10**|k| is out of range.
func scaleApprox(m *big.Int, k int64, prec uint32, mode RoundingMode) *Float {
	n := uint64(k)
	if k < 0 {
		n = uint64(-k)
	}
	// rounded operations: the conversion of m, at most two per bit of n,
	// and the final product or quotient. Each one adds a relative error of
	// at most 2**-w.
	ops := 2*bits.Len64(n) + 2
	slack := bits.Len(uint(4 * ops))
	w := uint(prec) + uint(slack) + 32

	for i := 0; i < 4; i++ {
		p := pow10Float(w, n)
		if p.IsInf() {
			return nil
		}
		z := new(big.Float).SetPrec(w).SetInt(m)
		if k > 0 {
			z.Mul(z, p)
		} else {
			z.Quo(z, p)
		}
		switch {
		case z.IsInf():
			return &Float{prec: prec, acc: makeAcc(!z.Signbit()), form: inf, neg: z.Signbit()}
		case z.Sign() == 0:
			return &Float{prec: prec, acc: makeAcc(z.Signbit()), form: zero, neg: z.Signbit()}
		}

		// |z - m×10**k| < 2**e
		e := z.MantExp(nil) - int(w) + slack
		if e <= MinExp {
			return nil
		}
		eps := new(big.Float).SetMantExp(big.NewFloat(1), e)
		lo := new(big.Float).SetPrec(w+4).Sub(z, eps)
		hi := new(big.Float).SetPrec(w+4).Add(z, eps)
		a := newBig(prec, mode).Set(lo)
		b := newBig(prec, mode).Set(hi)
		if a.Cmp(b) == 0 {
			if a.Acc() == big.Below {
				return fromBig(a, prec)
			}
			if b.Acc() == big.Above {
				return fromBig(b, prec)
			}
		}
		w += w / 2
	}
	return nil
}

// pow10Float returns 10**n rounded to nearest even at w bits, using at most
// two roundings per bit of n.
func pow10Float(w uint, n uint64) *big.Float {
	z := new(big.Float).SetPrec(w).SetInt64(1)
	t := new(big.Float).SetPrec(w).SetInt64(10)
	for {
		if n&1 != 0 {
			z.Mul(z, t)
		}
		n >>= 1
		if n == 0 || z.IsInf() {
			return z
		}
		t.Mul(t, t)
		if t.IsInf() {
			return t
		}
	}
}

var _ fmt.Scanner = &floatZero // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number, rounded to nearest even with z's precision, or DefaultPrec
// if z has precision 0. It accepts the decimal formats of Parse; Scan
// doesn't handle ±Inf and NaN.
//
// Scan mutates z and must only be used on a Float that is not yet shared.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	prec := z.prec
	if prec == 0 {
		prec = DefaultPrec
	}
	r := byteReader{s}
	neg, err := scanSign(r)
	if err != nil {
		return err
	}
	f, err := scan(r, neg, prec, ToNearestEven)
	if err != nil {
		return err
	}
	*z = *f
	return nil
}
