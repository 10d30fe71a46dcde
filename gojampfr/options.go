package gojampfr

import (
	"errors"
	"fmt"

	"github.com/db47h/mpfloat"
	"github.com/db47h/mpfloat/context"
	"github.com/joeycumines/logiface"
)

// Option configures module behavior. Options are immutable value
// types that validate on construction.
type Option interface {
	apply(*config) error
}

type config struct {
	ctx    *context.Context
	logger *logiface.Logger[logiface.Event]
	prec   uint
}

func resolveOptions(opts []Option) (*config, error) {
	cfg := &config{prec: mpfloat.DefaultPrec}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Default()
	}
	return cfg, nil
}

// WithContext sets the context providing the default rounding mode and
// print precision. The module takes ownership of ctx, which must not be
// shared with other runtimes. Defaults to context.Default().
func WithContext(ctx *context.Context) Option {
	return withContext{ctx: ctx}
}

type withContext struct {
	ctx *context.Context
}

func (o withContext) apply(cfg *config) error {
	if o.ctx == nil {
		return errors.New("context must not be nil")
	}
	cfg.ctx = o.ctx
	return nil
}

// WithLogger sets the logger used to report lenient fallbacks. A nil logger
// disables logging, which is the default.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return withLogger{logger: logger}
}

type withLogger struct {
	logger *logiface.Logger[logiface.Event]
}

func (o withLogger) apply(cfg *config) error {
	cfg.logger = o.logger
	return nil
}

// WithDefaultPrec sets the precision used when a function is called
// without a precision argument, and when converting JS numbers and BigInts.
// Defaults to mpfloat.DefaultPrec.
func WithDefaultPrec(prec uint) Option {
	return withDefaultPrec{prec: prec}
}

type withDefaultPrec struct {
	prec uint
}

func (o withDefaultPrec) apply(cfg *config) error {
	if o.prec < mpfloat.MinPrec || uint64(o.prec) > mpfloat.MaxPrec {
		return fmt.Errorf("default precision %d out of range [%d, %d]", o.prec, mpfloat.MinPrec, uint64(mpfloat.MaxPrec))
	}
	cfg.prec = o.prec
	return nil
}
