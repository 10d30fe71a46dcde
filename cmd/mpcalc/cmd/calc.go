package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/db47h/mpfloat/host"
	"github.com/spf13/cobra"
)

func unaryFuncs(h *host.Host) map[string]func(host.Handle) host.Handle {
	return map[string]func(host.Handle) host.Handle{
		"floor": h.Floor,
		"ceil":  h.Ceil,
		"round": h.Round,
		"trunc": h.Trunc,
		"neg":   h.Neg,
		"sqrt":  h.Sqrt,
		"exp":   h.Exp,
		"ln":    h.Ln,
		"log":   h.Log,
		"sin":   h.Sin,
		"cos":   h.Cos,
		"tan":   h.Tan,
		"asin":  h.Asin,
		"acos":  h.Acos,
		"atan":  h.Atan,
		"sinh":  h.Sinh,
		"cosh":  h.Cosh,
		"tanh":  h.Tanh,
		"asinh": h.Asinh,
		"acosh": h.Acosh,
		"atanh": h.Atanh,
	}
}

func binaryFuncs(h *host.Host) map[string]func(host.Handle, host.Handle) host.Handle {
	return map[string]func(host.Handle, host.Handle) host.Handle{
		"add":   h.Add,
		"sub":   h.Sub,
		"mul":   h.Mul,
		"div":   h.Div,
		"pow":   h.Pow,
		"atan2": h.Atan2,
	}
}

// funcNames returns the sorted names of all calc functions.
func funcNames() string {
	h := new(host.Host)
	names := slices.AppendSeq(slices.Collect(maps.Keys(unaryFuncs(h))), maps.Keys(binaryFuncs(h)))
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func newCalcCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <function> <args...>",
		Short: "Apply a single function to decimal arguments",
		Long: `Apply a single function to one or two arguments and print the result.
Arguments are parsed at the configured precision and rounding mode.

Functions: ` + funcNames() + `

Example:
  mpcalc calc sqrt 2 --prec 200`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, s, args)
		},
	}
}

func runCalc(cmd *cobra.Command, s *settings, args []string) error {
	h, err := host.New(host.WithContext(s.ctx), host.WithLogger(s.logger))
	if err != nil {
		return err
	}
	fn, params := strings.ToLower(args[0]), args[1:]

	ops := make([]host.Handle, 0, len(params))
	defer func() {
		for _, x := range ops {
			h.Release(x)
		}
	}()
	for _, p := range params {
		x := h.FromString(p, int(s.cfg.Prec), int(s.ctx.Mode()))
		if x == host.Null {
			return fmt.Errorf("calc: invalid number %q", p)
		}
		ops = append(ops, x)
	}

	var z host.Handle
	if f, ok := unaryFuncs(h)[fn]; ok {
		if len(ops) != 1 {
			return fmt.Errorf("calc: %s takes 1 argument, got %d", fn, len(ops))
		}
		z = f(ops[0])
	} else if f, ok := binaryFuncs(h)[fn]; ok {
		if len(ops) != 2 {
			return fmt.Errorf("calc: %s takes 2 arguments, got %d", fn, len(ops))
		}
		z = f(ops[0], ops[1])
	} else {
		return fmt.Errorf("calc: unknown function %q", fn)
	}
	ops = append(ops, z)

	s.logger.Info().
		Str("function", fn).
		Int("args", len(params)).
		Stringer("flags", s.ctx.Flags()).
		Log("calc done")
	fmt.Fprintln(cmd.OutOrStdout(), h.Str(z))
	return nil
}
