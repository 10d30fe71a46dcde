// Package cmd implements the mpcalc command line.
package cmd

import (
	"fmt"
	"io"

	"github.com/db47h/mpfloat/context"
	"github.com/db47h/mpfloat/internal/config"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"
)

// settings holds the flags and the resolved configuration shared by all
// subcommands.
type settings struct {
	cfgFile   string
	prec      uint
	rnd       string
	printPrec int
	logLevel  string

	cfg    config.Config
	ctx    *context.Context
	logger *logiface.Logger[logiface.Event]
}

// Execute runs the mpcalc command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:   "mpcalc",
		Short: "Arbitrary precision floating point calculator",
		Long: `mpcalc computes with correctly rounded binary floating point numbers of
any precision.

Commands:
  eval     - run JavaScript with the mpfr module
  calc     - apply a single function to decimal arguments
  version  - print version information`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.UintVar(&s.prec, "prec", 0, "precision in bits (default 53)")
	flags.StringVar(&s.rnd, "rnd", "", "rounding mode: RNDN, RNDZ, RNDU, RNDD, RNDA or 0..4 (default RNDN)")
	flags.IntVar(&s.printPrec, "print-prec", 0, "significant digits of printed results, 0 for round-trip")
	flags.StringVar(&s.logLevel, "log-level", "", "log level: trace, debug, info, notice, warning, error, disabled (default warning)")

	rootCmd.AddCommand(newEvalCmd(s), newCalcCmd(s), newVersionCmd())
	return rootCmd
}

// resolve loads the config file, applies flag overrides and sets up the
// logger and engine context.
func (s *settings) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if s.cfgFile != "" {
		var err error
		if cfg, err = config.Load(s.cfgFile); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("prec") {
		cfg.Prec = s.prec
	}
	if flags.Changed("rnd") {
		cfg.Rounding = s.rnd
	}
	if flags.Changed("print-prec") {
		cfg.PrintPrec = s.printPrec
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = s.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// both were validated above
	mode, _ := config.ParseRounding(cfg.Rounding)
	level, _ := config.ParseLevel(cfg.LogLevel)

	s.cfg = cfg
	s.ctx = context.New(mode, cfg.PrintPrec)
	s.logger = newLogger(cmd.ErrOrStderr(), level)
	s.logger.Debug().
		Str("command", cmd.Name()).
		Int("prec", int(cfg.Prec)).
		Stringer("rnd", mode).
		Int("printPrec", cfg.PrintPrec).
		Log("settings resolved")
	return nil
}

func newLogger(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	).Logger()
}
