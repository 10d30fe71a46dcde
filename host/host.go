// Package host exposes Floats through a flat, handle based call surface for
// runtimes that cannot hold Go pointers.
//
// Every call returning a Handle transfers ownership of a new value to the
// caller, who must eventually pass it to Release. Values are immutable, so a
// handle always refers to the same number. The null Handle stands for a
// failed call. Operations on unknown or released handles return the null
// handle, or NaN and 0 for scalar results, and log a warning.
//
// Rounding modes are passed as plain integers in MPFR order (0: to nearest
// even, 1: toward zero, 2: toward +Inf, 3: toward -Inf, 4: away from zero).
// Out of range values fall back to the default rounding mode of the Host's
// context. Precisions are clamped to [mpfloat.MinPrec, mpfloat.MaxPrec].
//
// A Host is safe for concurrent use.
package host

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
	"github.com/joeycumines/logiface"
)

// A Handle identifies a Float owned by a Host.
type Handle uint64

// Null is the null handle, returned by failed calls.
const Null Handle = 0

// Host is a table of live Floats indexed by Handle.
type Host struct {
	mu     sync.Mutex
	ctx    *context.Context
	logger *logiface.Logger[logiface.Event]
	values map[Handle]*mpfloat.Float
	last   Handle
}

// New returns a new Host. It returns an error if option validation fails.
func New(opts ...Option) (*Host, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return &Host{
		ctx:    cfg.ctx,
		logger: cfg.logger,
		values: make(map[Handle]*mpfloat.Float),
	}, nil
}

// Put stores x and returns a new handle for it. Put(nil) returns Null.
func (h *Host) Put(x *mpfloat.Float) Handle {
	if x == nil {
		return Null
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put(x)
}

// Get returns the Float for handle x.
func (h *Host) Get(x Handle) (*mpfloat.Float, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.values[x]
	return v, ok
}

// Release frees handle x and reports whether it was live.
func (h *Host) Release(x Handle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.values[x]; !ok {
		h.logger.Debug().
			Uint64("handle", uint64(x)).
			Log("release of unknown handle")
		return false
	}
	delete(h.values, x)
	return true
}

// Len returns the number of live handles.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.values)
}

// GetPrintPrec returns the number of significant digits used by Str. 0
// means enough digits to read values back exactly.
func (h *Host) GetPrintPrec() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctx.PrintPrec()
}

// SetPrintPrec sets the number of significant digits used by Str. Negative
// values are treated as 0.
func (h *Host) SetPrintPrec(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n < 0 {
		h.logger.Debug().Int("printPrec", n).Log("negative print precision, using 0")
	}
	h.ctx.SetPrintPrec(n)
}

// GetDefaultRounding returns the default rounding mode.
func (h *Host) GetDefaultRounding() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return int(h.ctx.Mode())
}

// SetDefaultRounding sets the default rounding mode. Out of range values
// are ignored.
func (h *Host) SetDefaultRounding(rnd int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx.SetMode(h.mode(rnd))
}

// FromDouble returns a new Float set to x rounded to prec bits.
func (h *Host) FromDouble(x float64, prec, rnd int) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put(mpfloat.FromFloat64(x, context.ClampPrec(prec), h.mode(rnd)))
}

// FromFloat returns a new Float set to x rounded to prec bits.
func (h *Host) FromFloat(x Handle, prec, rnd int) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get("FromFloat", x)
	if v == nil {
		return Null
	}
	return h.put(mpfloat.FromFloat(v, context.ClampPrec(prec), h.mode(rnd)))
}

// FromBigInt returns a new Float set to x rounded to prec bits. A nil x
// returns Null.
func (h *Host) FromBigInt(x *big.Int, prec, rnd int) Handle {
	if x == nil {
		return Null
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.put(mpfloat.FromInt(x, context.ClampPrec(prec), h.mode(rnd)))
}

// FromString returns a new Float set to the base 10 number s rounded to prec
// bits. It returns Null if s is malformed.
func (h *Host) FromString(s string, prec, rnd int) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	z, err := mpfloat.Parse(s, context.ClampPrec(prec), h.mode(rnd))
	if err != nil {
		h.logger.Debug().
			Str("input", s).
			Err(err).
			Log("parse failed")
		return Null
	}
	return h.put(z)
}

// ToDouble returns x rounded to a float64 using the default rounding mode.
// Unknown handles yield NaN.
func (h *Host) ToDouble(x Handle) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get("ToDouble", x)
	if v == nil {
		return math.NaN()
	}
	return h.ctx.Float64(v)
}

// ToInt returns x rounded to an integer using the default rounding mode,
// saturated to the int range. NaN and unknown handles yield 0.
func (h *Host) ToInt(x Handle) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get("ToInt", x)
	if v == nil {
		return 0
	}
	i := h.ctx.Int64(v)
	switch {
	case i > math.MaxInt:
		return math.MaxInt
	case i < math.MinInt:
		return math.MinInt
	}
	return int(i)
}

// ToBigInt returns x rounded to an integer using the default rounding mode.
// It returns nil for NaN, ±Inf and unknown handles.
func (h *Host) ToBigInt(x Handle) *big.Int {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get("ToBigInt", x)
	if v == nil {
		return nil
	}
	return h.ctx.Int(v)
}

// Str returns the rendering of x at the current print precision. Unknown
// handles yield an empty string.
func (h *Host) Str(x Handle) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.get("Str", x)
	if v == nil {
		return ""
	}
	return h.ctx.Text(v)
}

// mode returns the rounding mode for rnd, logging fallbacks.
func (h *Host) mode(rnd int) mpfloat.RoundingMode {
	m := h.ctx.ResolveMode(rnd)
	if int(m) != rnd {
		h.logger.Debug().
			Int("rnd", rnd).
			Stringer("fallback", m).
			Log("invalid rounding mode")
	}
	return m
}

func (h *Host) put(x *mpfloat.Float) Handle {
	h.last++
	for h.last == Null || h.values[h.last] != nil {
		h.last++
	}
	h.values[h.last] = x
	return h.last
}

// get returns the Float for x, or nil after logging a warning if x is
// unknown.
func (h *Host) get(op string, x Handle) *mpfloat.Float {
	v, ok := h.values[x]
	if !ok {
		h.logger.Warning().
			Str("op", op).
			Uint64("handle", uint64(x)).
			Log("unknown handle")
		return nil
	}
	return v
}
