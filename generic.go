package mpfloat

import (
	"golang.org/x/exp/constraints"
)

// FromInteger returns the value of the integer x rounded to prec bits
// according to mode. It accepts any signed or unsigned integer type.
func FromInteger[T constraints.Integer](x T, prec uint, mode RoundingMode) *Float {
	if x < 0 {
		return FromInt64(int64(x), prec, mode)
	}
	return FromUint64(uint64(x), prec, mode)
}
