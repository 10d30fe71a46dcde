package gojampfr_test

import (
	"bytes"
	"testing"

	"github.com/db47h/mpfloat/gojampfr"
	"github.com/dop251/goja"
	gojarequire "github.com/dop251/goja_nodejs/require"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	rt  *goja.Runtime
	log *bytes.Buffer
	t   *testing.T
}

// newTestEnv returns a runtime with the module loaded as the global mpfr,
// through require().
func newTestEnv(t *testing.T, opts ...gojampfr.Option) *testEnv {
	t.Helper()
	var buf bytes.Buffer
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&buf), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
	rt := goja.New()
	registry := gojarequire.NewRegistry()
	registry.RegisterNativeModule("mpfr", gojampfr.Require(append([]gojampfr.Option{gojampfr.WithLogger(logger)}, opts...)...))
	registry.Enable(rt)
	_, err := rt.RunString(`var mpfr = require('mpfr');`)
	require.NoError(t, err)
	return &testEnv{rt: rt, log: &buf, t: t}
}

func (e *testEnv) run(code string) goja.Value {
	e.t.Helper()
	v, err := e.rt.RunString(code)
	require.NoError(e.t, err)
	return v
}

func (e *testEnv) mustFail(code string) error {
	e.t.Helper()
	_, err := e.rt.RunString(code)
	require.Error(e.t, err)
	return err
}
