package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/mpfloat"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, uint(mpfloat.DefaultPrec), cfg.Prec)
	assert.Equal(t, "RNDN", cfg.Rounding)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "mpcalc.toml", `
prec = 200
rounding = "RNDD"
print_prec = 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Prec: 200, Rounding: "RNDD", PrintPrec: 30, LogLevel: "warning"}, cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "mpcalc.yml", "rounding: 2\nlog_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Prec: 53, Rounding: "2", PrintPrec: 0, LogLevel: "debug"}, cfg)

	cfg, err = Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, content, msg string
	}{
		{"bad.json", `{}`, "unsupported config format"},
		{"unknown.toml", "precision = 3\n", `unknown key "precision"`},
		{"unknown.yaml", "precision: 3\n", "precision"},
		{"prec.toml", "prec = 0\n", "prec 0 out of range"},
		{"rnd.yaml", "rounding: RNDX\n", `invalid rounding mode "RNDX"`},
		{"level.toml", `log_level = "loud"`, `invalid log level "loud"`},
		{"print.toml", "print_prec = -1\n", "negative print_prec"},
		{"syntax.toml", "prec = \n", "config:"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeFile(t, test.name, test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "x.ini", ""))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRounding(t *testing.T) {
	tests := []struct {
		in   string
		want mpfloat.RoundingMode
	}{
		{"RNDN", mpfloat.ToNearestEven},
		{"rndz", mpfloat.ToZero},
		{"RNDU", mpfloat.ToPositiveInf},
		{"ToNegativeInf", mpfloat.ToNegativeInf},
		{"4", mpfloat.AwayFromZero},
	}
	for _, test := range tests {
		m, err := ParseRounding(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, m, test.in)
		}
	}
	for _, s := range []string{"", "5", "-1", "256", "259", "nearest"} {
		_, err := ParseRounding(s)
		assert.Error(t, err, s)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, logiface.LevelInformational, l)
	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
