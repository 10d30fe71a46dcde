package host

import (
	"errors"

	"github.com/db47h/mpfloat/context"
	"github.com/joeycumines/logiface"
)

// Option configures a Host. Options validate on construction.
type Option interface {
	apply(*config) error
}

type config struct {
	ctx    *context.Context
	logger *logiface.Logger[logiface.Event]
}

func resolveOptions(opts []Option) (*config, error) {
	cfg := &config{}
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

// WithContext sets the engine context providing the default rounding mode
// and print precision. The Host takes ownership of ctx. Defaults to
// context.Default().
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

// WithLogger sets the logger used to report lenient fallbacks and unknown
// handles. A nil logger disables logging, which is the default.
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
