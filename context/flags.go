package context

import "strings"

// Flags is a set of IEEE-754 exception flags.
type Flags uint8

// Exception flags raised by Context operations.
const (
	// Invalid is raised when an operation on non-NaN operands yields NaN, or
	// when NaN or ±Inf is converted to an integer.
	Invalid Flags = 1 << iota
	// DivByZero is raised when an exact infinite result is produced from
	// finite operands, as in 1/0, Log(0) or Pow(0, -1).
	DivByZero
	// Overflow is raised when a finite operation rounds to ±Inf.
	Overflow
	// Underflow is raised when a non-zero result rounds to zero.
	Underflow
	// Inexact is raised when a result differs from the exact value.
	Inexact
)

var flagNames = [...]string{"invalid", "divbyzero", "overflow", "underflow", "inexact"}

// String returns the names of the flags set in f, separated by '|'.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var b strings.Builder
	for i, n := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n)
	}
	return b.String()
}
