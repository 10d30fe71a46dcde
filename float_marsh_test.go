// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"math/big"
	"testing"
)

var floatVals = []string{
	"0",
	"-0",
	"1",
	"-1",
	"0.1",
	"-3.75e-300",
	"1e1000",
	"123456789012345678901234567890.5",
	"Inf",
	"-Inf",
	"NaN",
}

func TestFloatGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, s := range floatVals {
		for _, prec := range []uint{1, 5, 53, 100, 1000} {
			for _, mode := range allModes {
				medium.Reset()
				x := MustParse(s, prec, mode)
				if err := enc.Encode(x); err != nil {
					t.Errorf("encoding of %s failed: %s", s, err)
					continue
				}
				var rx Float
				if err := dec.Decode(&rx); err != nil {
					t.Errorf("decoding of %s failed: %s", s, err)
					continue
				}
				if !rx.Identical(x) || rx.Acc() != x.Acc() {
					t.Errorf("transmission of %s (prec %d, %s) failed: got %s (prec %d, %s)", s, prec, mode, &rx, rx.Prec(), rx.Acc())
				}
			}
		}
	}
}

func TestFloatCorruptGob(t *testing.T) {
	var buf bytes.Buffer
	tx := FromFloat64(0.5, 53, ToNearestEven)
	if err := gob.NewEncoder(&buf).Encode(tx); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	var rx Float
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rx); err != nil {
		t.Fatal(err)
	}

	if err := gob.NewDecoder(bytes.NewReader(b[:10])).Decode(&rx); err == nil {
		t.Fatal("expected error for truncated input")
	}

	var z Float
	if err := z.GobDecode([]byte{floatGobVersion + 1, 0, 0, 0, 0, 53}); err == nil {
		t.Error("expected error for unsupported version")
	}
	if err := z.GobDecode([]byte{floatGobVersion, 0}); err == nil {
		t.Error("expected error for short buffer")
	}
	if err := z.GobDecode(nil); err != nil || !z.Identical(new(Float)) {
		t.Errorf("GobDecode(nil) = %s, %v; want zero value", &z, err)
	}
}

func TestFloatJSONEncoding(t *testing.T) {
	for _, s := range floatVals {
		for _, prec := range []uint{1, 24, 53, 200} {
			x := MustParse(s, prec, ToNearestEven)
			b, err := json.Marshal(x)
			if err != nil {
				t.Errorf("marshaling of %s failed: %s", s, err)
				continue
			}
			var rx Float
			if err := json.Unmarshal(b, &rx); err != nil {
				t.Errorf("unmarshaling of %s failed: %s", s, err)
				continue
			}
			if !rx.Identical(x) {
				t.Errorf("JSON encoding of %s (prec %d) failed: got %s (prec %d)", s, prec, &rx, rx.Prec())
			}
		}
	}

	want := `{"value":"1.5","prec":53}`
	if b, _ := json.Marshal(FromFloat64(1.5, 53, ToNearestEven)); string(b) != want {
		t.Errorf("Marshal(1.5) = %s; want %s", b, want)
	}
}

func TestFloatJSONForms(t *testing.T) {
	for _, test := range []struct {
		in   string
		prec uint // of the target
		want string
		wp   uint
	}{
		{`"0.1"`, 0, "1.00000000000000006e-1", DefaultPrec},
		{`"0.1"`, 10, "9.99756e-2", 10},
		{`2.5`, 0, "2.5", DefaultPrec},
		{`{"value":"-inf","prec":7}`, 53, "-inf", 7},
		{`{"value":"3"}`, 20, "3.0", 20},
	} {
		z := new(Float)
		if test.prec != 0 {
			z = Zero(false, test.prec)
		}
		if err := json.Unmarshal([]byte(test.in), z); err != nil {
			t.Errorf("Unmarshal(%s): %v", test.in, err)
			continue
		}
		if got := z.String(); got != test.want || z.Prec() != test.wp {
			t.Errorf("Unmarshal(%s) = %s (prec %d); want %s (prec %d)", test.in, got, z.Prec(), test.want, test.wp)
		}
	}

	// null leaves the target untouched
	z := FromInt64(5, 10, ToNearestEven)
	if err := json.Unmarshal([]byte("null"), z); err != nil || z.String() != "5.0" {
		t.Errorf("Unmarshal(null) = %s, %v", z, err)
	}

	for _, in := range []string{`"five"`, `{"value":"1..2"}`, `{"value":`, `true`} {
		var z Float
		if err := json.Unmarshal([]byte(in), &z); err == nil {
			t.Errorf("Unmarshal(%s) = %s; want error", in, &z)
		}
	}
}

func TestFloatTextEncoding(t *testing.T) {
	for _, s := range floatVals {
		for _, prec := range []uint{1, 53, 300} {
			x := MustParse(s, prec, ToNearestEven)
			text, err := x.MarshalText()
			if err != nil {
				t.Errorf("marshaling of %s failed: %s", s, err)
				continue
			}
			rx := Zero(false, prec)
			if err := rx.UnmarshalText(text); err != nil {
				t.Errorf("unmarshaling of %s failed: %s", s, err)
				continue
			}
			if !rx.Identical(x) {
				t.Errorf("text encoding of %s (prec %d) failed: got %s", s, prec, rx)
			}
		}
	}

	// precision of the zero value
	var z Float
	if err := z.UnmarshalText([]byte("0.1")); err != nil || z.Prec() != DefaultPrec {
		t.Errorf("UnmarshalText: prec %d, err %v", z.Prec(), err)
	}
	if err := z.UnmarshalText([]byte("x")); err == nil {
		t.Error("UnmarshalText(x): expected error")
	}
	if b, _ := (*Float)(nil).MarshalText(); string(b) != "<nil>" {
		t.Errorf("nil MarshalText = %s", b)
	}
}

func TestFloatBigInterop(t *testing.T) {
	b := new(big.Float).SetPrec(80)
	b.SetString("0.1")
	x := FromBig(b, 0, ToNearestEven)
	if x.Prec() != 80 || x.Big().Cmp(b) != 0 {
		t.Errorf("FromBig(%s) = %s (prec %d)", b.Text('g', 30), x, x.Prec())
	}
	if z := FromBig(b, 10, ToZero); z.Acc() != Below {
		t.Errorf("FromBig(0.1, 10, ToZero) acc = %s; want Below", z.Acc())
	}
}
