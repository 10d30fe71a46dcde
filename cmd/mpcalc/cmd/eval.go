package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/db47h/mpfloat/gojampfr"
	"github.com/dop251/goja"
	gojarequire "github.com/dop251/goja_nodejs/require"
	"github.com/spf13/cobra"
)

func newEvalCmd(s *settings) *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "eval [-e script | file]",
		Short: "Run JavaScript with the mpfr module",
		Long: `Run a JavaScript program with the mpfr module available both as the global
mpfr and through require('mpfr'). The value of the last expression is
printed. A file name of "-" reads the program from standard input.

Example:
  mpcalc eval --prec 200 -e 'mpfr.sqrt(mpfr.fromDouble(2))'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, s, script, args)
		},
	}
	cmd.Flags().StringVarP(&script, "expr", "e", "", "program text")
	return cmd
}

func runEval(cmd *cobra.Command, s *settings, script string, args []string) error {
	name := "<expr>"
	switch {
	case script != "" && len(args) > 0:
		return errors.New("eval: both -e and a file were given")
	case len(args) > 0:
		name = args[0]
		src, err := readScript(cmd, name)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		script = src
	case script == "":
		return errors.New("eval: no program given")
	}

	rt := goja.New()
	m, err := gojampfr.New(rt,
		gojampfr.WithContext(s.ctx),
		gojampfr.WithLogger(s.logger),
		gojampfr.WithDefaultPrec(s.cfg.Prec),
	)
	if err != nil {
		return err
	}
	registry := gojarequire.NewRegistry()
	registry.RegisterNativeModule("mpfr", func(_ *goja.Runtime, module *goja.Object) {
		m.SetupExports(module.Get("exports").(*goja.Object))
	})
	registry.Enable(rt)
	if err := rt.Set("mpfr", gojarequire.Require(rt, "mpfr")); err != nil {
		return err
	}

	s.logger.Info().Str("script", name).Log("eval started")
	v, err := rt.RunScript(name, script)
	if err != nil {
		s.logger.Err().Str("script", name).Err(err).Log("eval failed")
		return fmt.Errorf("eval: %w", err)
	}
	s.logger.Info().Str("script", name).Log("eval done")

	if text, ok := formatResult(s, m, v); ok {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

func readScript(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

// formatResult returns the text of a script's completion value. Wrapped
// Floats print with the context's print precision. Undefined prints nothing.
func formatResult(s *settings, m *gojampfr.Module, v goja.Value) (string, bool) {
	if v == nil || goja.IsUndefined(v) {
		return "", false
	}
	if obj, ok := v.(*goja.Object); ok {
		if x, err := m.Unwrap(obj); err == nil {
			return s.ctx.Text(x), true
		}
	}
	return v.String(), true
}
