// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package mpfloat

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Float value and all its attributes (precision, accuracy) are
// marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	var mant []byte
	if x.form == finite {
		var err error
		if mant, err = x.mant.GobEncode(); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, 1+1+4, 1+1+4+len(mant)) // version + acc|form|neg (2+2+1 bits) + prec
	buf[0] = floatGobVersion
	b := byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)
	return append(buf, mant...), nil
}

// GobDecode implements the gob.GobDecoder interface. The decoded value keeps
// its encoded precision.
//
// GobDecode mutates z and must only be used on a Float that is not yet
// shared.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if buf[0] != floatGobVersion {
		return fmt.Errorf("Float.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 {
		return fmt.Errorf("Float.GobDecode: buffer too small")
	}

	b := buf[1]
	f := Float{
		acc:  Accuracy((b>>3)&3) - 1,
		form: form((b >> 1) & 3),
		neg:  b&1 != 0,
		prec: binary.BigEndian.Uint32(buf[2:]),
	}
	if f.form == finite {
		f.mant = new(big.Float)
		if err := f.mant.GobDecode(buf[6:]); err != nil {
			return fmt.Errorf("Float.GobDecode: %w", err)
		}
		if f.mant.IsInf() || f.mant.Sign() == 0 || f.mant.Prec() != uint(f.prec) {
			return fmt.Errorf("Float.GobDecode: inconsistent mantissa")
		}
	}
	*z = f
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Float value is marshaled, with enough digits to be parsed back
// exactly at the same precision; other attributes such as precision or
// accuracy are ignored.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded to nearest even with z's precision, or DefaultPrec
// if z's precision is 0.
//
// UnmarshalText mutates z and must only be used on a Float that is not yet
// shared.
func (z *Float) UnmarshalText(text []byte) error {
	prec := uint(z.prec)
	if prec == 0 {
		prec = DefaultPrec
	}
	f, err := Parse(string(text), prec, ToNearestEven)
	if err != nil {
		return fmt.Errorf("mpfloat: cannot unmarshal %q into a *mpfloat.Float (%w)", text, err)
	}
	*z = *f
	return nil
}

// jsonFloat is the JSON representation of a Float: its value as a decimal
// string and its precision, so that it can be decoded exactly.
type jsonFloat struct {
	Value string `json:"value"`
	Prec  uint   `json:"prec"`
}

// MarshalJSON implements the json.Marshaler interface, as an object of the
// form {"value":"3.1415926535897931","prec":53}.
func (x *Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonFloat{Value: x.String(), Prec: uint(x.prec)})
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts the
// object form produced by MarshalJSON, a JSON string (parsed at z's
// precision, or DefaultPrec), or a JSON number.
//
// UnmarshalJSON mutates z and must only be used on a Float that is not yet
// shared.
func (z *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var v jsonFloat
	switch {
	case len(b) > 0 && b[0] == '{':
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
	case len(b) > 0 && b[0] == '"':
		if err := json.Unmarshal(b, &v.Value); err != nil {
			return err
		}
	default:
		v.Value = string(b)
	}
	if v.Prec == 0 {
		v.Prec = uint(z.prec)
	}
	if v.Prec == 0 {
		v.Prec = DefaultPrec
	}
	f, err := Parse(v.Value, v.Prec, ToNearestEven)
	if err != nil {
		return fmt.Errorf("mpfloat: cannot unmarshal %s into a *mpfloat.Float (%w)", b, err)
	}
	*z = *f
	return nil
}
