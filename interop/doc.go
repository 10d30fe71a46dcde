// Package interop converts Floats to and from the decimal types of
// github.com/shopspring/decimal and github.com/robaho/fixed.
//
// Every finite Float has an exact decimal representation, so ToDecimal is
// exact. Conversions into Floats and into fixed-point values round once,
// using the given rounding mode.
package interop

import "errors"

var (
	// ErrNotFinite is returned when converting NaN or ±Inf to a type that
	// cannot represent them.
	ErrNotFinite = errors.New("interop: value is not finite")
	// ErrRange is returned when a value is too large for the target type.
	ErrRange = errors.New("interop: value out of range")
)
