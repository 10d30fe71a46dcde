// Package config loads mpcalc settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/mpfloat"
	"github.com/joeycumines/logiface"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files whose extension is not
// one of .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the settings of an mpcalc run.
type Config struct {
	// Prec is the precision in bits of parsed operands.
	Prec uint `toml:"prec" yaml:"prec"`
	// Rounding is the default rounding mode, either an MPFR name (RNDN,
	// RNDZ, RNDU, RNDD, RNDA) or its numeric value.
	Rounding string `toml:"rounding" yaml:"rounding"`
	// PrintPrec is the number of significant digits of printed results. 0
	// prints enough digits to read results back exactly.
	PrintPrec int `toml:"print_prec" yaml:"print_prec"`
	// LogLevel is one of trace, debug, info, notice, warning, error or
	// disabled.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Prec:      mpfloat.DefaultPrec,
		Rounding:  "RNDN",
		PrintPrec: 0,
		LogLevel:  "warning",
	}
}

// Load reads the file at path over the default settings and validates the
// result. The format is chosen by file extension. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return cfg, fmt.Errorf("config: %s: unknown key %q", path, keys[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: %s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (c Config) Validate() error {
	if c.Prec < mpfloat.MinPrec || uint64(c.Prec) > mpfloat.MaxPrec {
		return fmt.Errorf("prec %d out of range [%d, %d]", c.Prec, mpfloat.MinPrec, uint64(mpfloat.MaxPrec))
	}
	if c.PrintPrec < 0 {
		return fmt.Errorf("negative print_prec %d", c.PrintPrec)
	}
	if _, err := ParseRounding(c.Rounding); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

var roundingNames = map[string]mpfloat.RoundingMode{
	"RNDN": mpfloat.ToNearestEven,
	"RNDZ": mpfloat.ToZero,
	"RNDU": mpfloat.ToPositiveInf,
	"RNDD": mpfloat.ToNegativeInf,
	"RNDA": mpfloat.AwayFromZero,
}

// ParseRounding parses an MPFR rounding mode name (RNDN, RNDZ, RNDU, RNDD,
// RNDA), a RoundingMode name such as ToNearestEven, or a number in 0..4.
// Names are case insensitive.
func ParseRounding(s string) (mpfloat.RoundingMode, error) {
	if m, ok := roundingNames[strings.ToUpper(s)]; ok {
		return m, nil
	}
	for m := mpfloat.ToNearestEven; m.Valid(); m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= int(mpfloat.ToNearestEven) && n <= int(mpfloat.AwayFromZero) {
		return mpfloat.RoundingMode(n), nil
	}
	return 0, fmt.Errorf("invalid rounding mode %q", s)
}

var levelNames = map[string]logiface.Level{
	"disabled": logiface.LevelDisabled,
	"error":    logiface.LevelError,
	"err":      logiface.LevelError,
	"warning":  logiface.LevelWarning,
	"warn":     logiface.LevelWarning,
	"notice":   logiface.LevelNotice,
	"info":     logiface.LevelInformational,
	"debug":    logiface.LevelDebug,
	"trace":    logiface.LevelTrace,
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (logiface.Level, error) {
	if l, ok := levelNames[strings.ToLower(s)]; ok {
		return l, nil
	}
	return logiface.LevelDisabled, fmt.Errorf("invalid log level %q", s)
}
