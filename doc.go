// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpfloat implements arbitrary-precision binary floating-point
arithmetic with correct rounding, in the spirit of GNU MPFR.

The mantissa of a finite Float is stored in a *big.Float and the basic
operations build on the correctly rounded primitives of math/big. Unlike
big.Float, a Float has a distinct NaN state, never panics on operations that
are undefined under IEEE 754 (0/0, ∞-∞, 0×∞, √-1), and takes its rounding mode
as an explicit argument of every operation instead of storing it.

Floats are immutable values. Every operation returns a new *Float, which
makes Floats safe to share between goroutines without synchronization:

	x := mpfloat.FromFloat64(2, 200, mpfloat.ToNearestEven)
	r := mpfloat.Sqrt(x, 0, mpfloat.ToNearestEven) // √2 to 200 bits

The zero value for a Float is +0 with precision 0, and may be used as an
operand.

Precision

Each Float has its own precision, in bits, fixed for its lifetime. Requests
for a precision below MinPrec are raised to MinPrec. Operations take a prec
argument for their result; if it is 0, the result gets the largest precision
of the operands.

Rounding modes

The five rounding modes ToNearestEven, ToZero, ToPositiveInf, ToNegativeInf
and AwayFromZero have the numeric values of MPFR's RNDN, RNDZ, RNDU, RNDD and
RNDA. Functions of this package treat an invalid mode as ToNearestEven; the
context package substitutes its own default mode.

Every Float records the Accuracy of the operation that produced it, that is
whether the result is Below, Exact or Above the exact mathematical value.

Conversions

Floats are created with FromFloat64, FromInt64, FromUint64, FromInteger,
FromInt, FromRat, FromBig, FromFloat, Parse, or the special value
constructors NaN, Inf and Zero. They convert back with Float64, Int64, Int,
Rat and Big, rounding in an explicit direction where needed.

Decimal output is produced by Digits, which generates a correctly rounded
decimal significand and exponent, and by Text and String, which render a
Float in the shortest form that parses back to the same value. *Float also
implements fmt.Formatter, fmt.Scanner, encoding.TextMarshaler,
json.Marshaler and gob.GobEncoder.

Elementary functions (exp, log, trigonometric and hyperbolic functions and
their inverses, power) live in the math sub-package. The context package
bundles a default rounding mode and print precision with every operation and
records exception flags.
*/
package mpfloat
