// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

var allModes = [...]RoundingMode{ToNearestEven, ToZero, ToPositiveInf, ToNegativeInf, AwayFromZero}

type binaryOp func(x, y *Float, prec uint, mode RoundingMode) *Float

func TestFloatSpecialArith(t *testing.T) {
	for _, test := range []struct {
		name string
		op   binaryOp
		x, y string
		mode RoundingMode
		want string
	}{
		{"Add", Add, "Inf", "-Inf", ToNearestEven, "nan"},
		{"Add", Add, "Inf", "Inf", ToNearestEven, "inf"},
		{"Add", Add, "NaN", "1", ToNearestEven, "nan"},
		{"Add", Add, "1", "-1", ToNearestEven, "0.0"},
		{"Add", Add, "1", "-1", ToNegativeInf, "-0.0"},
		{"Add", Add, "-0", "-0", ToNearestEven, "-0.0"},
		{"Add", Add, "-0", "0", ToNearestEven, "0.0"},
		{"Sub", Sub, "Inf", "Inf", ToNearestEven, "nan"},
		{"Sub", Sub, "-Inf", "Inf", ToNearestEven, "-inf"},
		{"Sub", Sub, "1", "NaN", ToNearestEven, "nan"},
		{"Sub", Sub, "-0", "0", ToNearestEven, "-0.0"},
		{"Mul", Mul, "0", "Inf", ToNearestEven, "nan"},
		{"Mul", Mul, "-Inf", "0", ToNearestEven, "nan"},
		{"Mul", Mul, "-0", "3", ToNearestEven, "-0.0"},
		{"Mul", Mul, "-2", "-Inf", ToNearestEven, "inf"},
		{"Quo", Quo, "1", "0", ToNearestEven, "inf"},
		{"Quo", Quo, "-1", "0", ToNearestEven, "-inf"},
		{"Quo", Quo, "1", "-0", ToNearestEven, "-inf"},
		{"Quo", Quo, "0", "0", ToNearestEven, "nan"},
		{"Quo", Quo, "Inf", "-Inf", ToNearestEven, "nan"},
		{"Quo", Quo, "1", "-Inf", ToNearestEven, "-0.0"},
		{"Quo", Quo, "-Inf", "2", ToNearestEven, "-inf"},
		{"Quo", Quo, "NaN", "0", ToNearestEven, "nan"},
	} {
		x, y := makeFloat(test.x, 53), makeFloat(test.y, 53)
		if got := test.op(x, y, 0, test.mode).String(); got != test.want {
			t.Errorf("%s(%s, %s, %s) = %s; want %s", test.name, test.x, test.y, test.mode, got, test.want)
		}
	}
}

func TestFloatNegAbs(t *testing.T) {
	for _, test := range []struct {
		x, neg, abs string
	}{
		{"0", "-0.0", "0.0"},
		{"-0", "0.0", "0.0"},
		{"1.5", "-1.5", "1.5"},
		{"-1.5", "1.5", "1.5"},
		{"Inf", "-inf", "inf"},
		{"-Inf", "inf", "inf"},
		{"NaN", "nan", "nan"},
	} {
		x := makeFloat(test.x, 53)
		if got := x.Neg().String(); got != test.neg {
			t.Errorf("-(%s) = %s; want %s", test.x, got, test.neg)
		}
		if got := x.Abs().String(); got != test.abs {
			t.Errorf("|%s| = %s; want %s", test.x, got, test.abs)
		}
	}

	// rounded variants
	x := FromInt64(11, 64, ToNearestEven)
	if z := Neg(x, 3, ToZero); z.Int64(ToZero) != -10 || z.Acc() != Above {
		t.Errorf("Neg(11, 3, ToZero) = %s (%s); want -10 (Above)", z, z.Acc())
	}
	if z := Abs(x.Neg(), 3, ToPositiveInf); z.Int64(ToZero) != 12 || z.Acc() != Above {
		t.Errorf("Abs(-11, 3, ToPositiveInf) = %s (%s); want 12 (Above)", z, z.Acc())
	}
}

// TestFloatArithBig checks results of finite operations against math/big.
func TestFloatArithBig(t *testing.T) {
	ops := []struct {
		name string
		op   binaryOp
		ref  func(z, x, y *big.Float) *big.Float
	}{
		{"Add", Add, (*big.Float).Add},
		{"Sub", Sub, (*big.Float).Sub},
		{"Mul", Mul, (*big.Float).Mul},
		{"Quo", Quo, (*big.Float).Quo},
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		xf := r.NormFloat64() * math.Ldexp(1, r.Intn(200)-100)
		yf := r.NormFloat64() * math.Ldexp(1, r.Intn(200)-100)
		if yf == 0 {
			continue
		}
		x, y := FromFloat64(xf, 53, ToNearestEven), FromFloat64(yf, 53, ToNearestEven)
		prec := uint(1 + r.Intn(120))
		for _, op := range ops {
			for _, mode := range allModes {
				z := op.op(x, y, prec, mode)
				want := op.ref(new(big.Float).SetPrec(prec).SetMode(mode.big()), big.NewFloat(xf), big.NewFloat(yf))
				if z.Big().Cmp(want) != 0 || z.Acc() != Accuracy(want.Acc()) || z.Prec() != prec {
					t.Fatalf("%s(%g, %g, %d, %s) = %s (%s); want %s (%s)", op.name, xf, yf, prec, mode, z, z.Acc(), want.Text('g', 40), want.Acc())
				}
			}
		}
	}
}

// TestFloatDirected checks that directed rounding brackets the exact result.
func TestFloatDirected(t *testing.T) {
	third := FromRat(big.NewRat(1, 3), 200, ToNearestEven)
	ten := FromInt64(10, 200, ToNearestEven)
	for prec := uint(1); prec <= 100; prec++ {
		lo := Mul(third, ten, prec, ToNegativeInf)
		hi := Mul(third, ten, prec, ToPositiveInf)
		tz := Mul(third, ten, prec, ToZero)
		aw := Mul(third, ten, prec, AwayFromZero)
		ne := Mul(third, ten, prec, ToNearestEven)
		if lo.Cmp(hi) >= 0 || lo.Acc() != Below || hi.Acc() != Above {
			t.Fatalf("prec %d: %s (%s) !< %s (%s)", prec, lo, lo.Acc(), hi, hi.Acc())
		}
		if !tz.Equal(lo) || !aw.Equal(hi) {
			t.Fatalf("prec %d: ToZero = %s, AwayFromZero = %s; want %s, %s", prec, tz, aw, lo, hi)
		}
		if !ne.Equal(lo) && !ne.Equal(hi) {
			t.Fatalf("prec %d: nearest %s not in {%s, %s}", prec, ne, lo, hi)
		}
	}
}

func TestFloatFMA(t *testing.T) {
	x := FromFloat64(0.1, 53, ToNearestEven)
	y := FromInt64(10, 53, ToNearestEven)
	u := FromInt64(-1, 53, ToNearestEven)

	// the product is not rounded before the addition
	z := FMA(x, y, u, 0, ToNearestEven)
	if f := z.Float64(ToNearestEven); f != 0x1p-54 {
		t.Errorf("FMA(0.1, 10, -1) = %g; want %g", f, 0x1p-54)
	}
	if z := Add(Mul(x, y, 0, ToNearestEven), u, 0, ToNearestEven); !z.IsZero() {
		t.Errorf("0.1×10-1 = %s; want 0", z)
	}

	for _, test := range []struct {
		x, y, u string
		mode    RoundingMode
		want    string
	}{
		{"0", "Inf", "1", ToNearestEven, "nan"},
		{"Inf", "2", "-Inf", ToNearestEven, "nan"},
		{"Inf", "-2", "-Inf", ToNearestEven, "-inf"},
		{"2", "3", "Inf", ToNearestEven, "inf"},
		{"2", "3", "NaN", ToNearestEven, "nan"},
		{"-0", "3", "0", ToNearestEven, "0.0"},
		{"-0", "3", "-0", ToNearestEven, "-0.0"},
		{"2", "3", "-6", ToNearestEven, "0.0"},
		{"2", "3", "-6", ToNegativeInf, "-0.0"},
		{"2", "3", "4", ToNearestEven, "1.0e1"},
	} {
		z := FMA(makeFloat(test.x, 53), makeFloat(test.y, 53), makeFloat(test.u, 53), 0, test.mode)
		if got := z.String(); got != test.want {
			t.Errorf("FMA(%s, %s, %s, %s) = %s; want %s", test.x, test.y, test.u, test.mode, got, test.want)
		}
	}
}
