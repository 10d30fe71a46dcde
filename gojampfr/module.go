package gojampfr

import (
	"fmt"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
	"github.com/dop251/goja"
	"github.com/joeycumines/logiface"
)

// Module provides MPFR style floating point numbers for a [goja.Runtime].
// Each Module instance is bound to a single runtime and owns its context.
type Module struct {
	runtime *goja.Runtime
	ctx     *context.Context
	logger  *logiface.Logger[logiface.Event]
	prec    uint
}

// New creates a new [Module] bound to the given [goja.Runtime].
//
// New panics if runtime is nil, as this is a programming error
// (invariant violation). It returns an error if option validation
// fails.
func New(runtime *goja.Runtime, opts ...Option) (*Module, error) {
	if runtime == nil {
		panic("gojampfr: runtime must not be nil")
	}

	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("gojampfr: %w", err)
	}

	return &Module{
		runtime: runtime,
		ctx:     cfg.ctx,
		logger:  cfg.logger,
		prec:    cfg.prec,
	}, nil
}

// SetupExports wires the module's JS API onto the given exports object.
// This is equivalent to the setup performed by [Require] but allows
// external consumers to configure exports without the require() mechanism.
func (m *Module) SetupExports(exports *goja.Object) {
	set := func(name string, v any) { _ = exports.Set(name, m.runtime.ToValue(v)) }

	set("RNDN", int(mpfloat.ToNearestEven))
	set("RNDZ", int(mpfloat.ToZero))
	set("RNDU", int(mpfloat.ToPositiveInf))
	set("RNDD", int(mpfloat.ToNegativeInf))
	set("RNDA", int(mpfloat.AwayFromZero))
	set("PREC_MIN", int64(mpfloat.MinPrec))
	set("PREC_MAX", int64(mpfloat.MaxPrec))

	set("fromDouble", m.jsFromDouble)
	set("fromFloat", m.jsFromFloat)
	set("fromBigInt", m.jsFromBigInt)
	set("fromString", m.jsFromString)
	set("toDouble", m.jsToDouble)
	set("toInt", m.jsToInt)
	set("toBigInt", m.jsToBigInt)
	set("str", m.jsStr)
	set("prec", m.jsPrec)
	set("isNaN", m.jsIsNaN)
	set("isInf", m.jsIsInf)
	set("cmp", m.jsCmp)

	set("getPrintPrec", m.jsGetPrintPrec)
	set("setPrintPrec", m.jsSetPrintPrec)
	set("getDefaultRounding", m.jsGetDefaultRounding)
	set("setDefaultRounding", m.jsSetDefaultRounding)

	for name, op := range m.unaryOps() {
		set(name, m.unary(name, op))
	}
	for name, op := range m.binaryOps() {
		set(name, m.binary(name, op))
	}
}

// Require returns a [github.com/dop251/goja_nodejs/require.ModuleLoader]
// that registers the mpfr module. This follows the standard Goja
// Node.js module pattern.
//
//	registry := require.NewRegistry()
//	registry.RegisterNativeModule("mpfr", gojampfr.Require())
func Require(opts ...Option) func(runtime *goja.Runtime, module *goja.Object) {
	return func(runtime *goja.Runtime, module *goja.Object) {
		m, err := New(runtime, opts...)
		if err != nil {
			panic(err)
		}
		exports := module.Get("exports").(*goja.Object)
		m.SetupExports(exports)
	}
}

// Wrap returns x as a JS value usable by the module's functions.
func (m *Module) Wrap(x *mpfloat.Float) goja.Value {
	if x == nil {
		return goja.Null()
	}
	return m.wrapFloat(x)
}

// Unwrap extracts the Float from a JavaScript value created by this module.
// JS numbers and BigInts are converted at the module's default precision.
// It returns an error for any other value.
func (m *Module) Unwrap(val goja.Value) (*mpfloat.Float, error) {
	return m.unwrapFloat(val)
}
