// Package gojampfr exposes arbitrary precision binary floating point numbers
// from [github.com/db47h/mpfloat] to the Goja JavaScript engine.
//
// Values are immutable Go Floats wrapped in JS objects. Every function
// returns a new value and the JS garbage collector reclaims unreferenced
// ones, so there is no release function. JS numbers and BigInts are accepted
// wherever a float is expected, and are converted at the module's default
// precision.
//
// Rounding modes are small integers, exported as RNDN, RNDZ, RNDU, RNDD and
// RNDA. An out of range rounding argument falls back to the default rounding
// mode instead of failing. Precision arguments are clamped to
// [PREC_MIN, PREC_MAX].
//
// # Usage
//
// Use [Require] to create a [github.com/dop251/goja_nodejs/require.ModuleLoader],
// or create a [Module] directly with [New].
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("mpfr", gojampfr.Require(
//		gojampfr.WithDefaultPrec(200),
//	))
//
// From JavaScript:
//
//	const mpfr = require('mpfr');
//	const x = mpfr.fromString('0.1', 200);
//	mpfr.str(mpfr.sin(x));
package gojampfr
