// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import "testing"

func TestField(t *testing.T) {
	tests := []struct {
		v    Word
		bits uint
		want Word
	}{
		{0xffff, 8, 0xff},
		{0x1234, 4, 0x4},
		{0x1234, 16, 0x1234},
		{0x00c7, 3, 0x7},
	}
	for _, tt := range tests {
		if got := Field(tt.v, tt.bits); got != tt.want {
			t.Errorf("Field(%#04x, %d) = %#04x, want %#04x", tt.v, tt.bits, got, tt.want)
		}
	}
}

func TestSignExtendField(t *testing.T) {
	tests := []struct {
		v    Word
		bits uint
		want Word
	}{
		{0b10, 2, 0xfffe},  // -2 in 2 bits
		{0b01, 2, 0x0001},  // 1 in 2 bits
		{0xffa1, 2, 0x0001}, // only the low bits matter
		{0b1111111, 7, 0xffff},
		{0x007f, 8, 0x007f},
		{0x0080, 8, 0xff80},
	}
	for _, tt := range tests {
		if got := SignExtendField(tt.v, tt.bits); got != tt.want {
			t.Errorf("SignExtendField(%#04x, %d) = %#04x, want %#04x", tt.v, tt.bits, got, tt.want)
		}
	}
}

// A sign extended field keeps its value when re-encoded, for every field
// width and every padding above the field.
func TestSignExtendFieldComplete(t *testing.T) {
	for bits := uint(1); bits <= 15; bits++ {
		mask := ^Word(0) >> (16 - bits)
		for v := Word(0); v <= mask; v++ {
			padded := v | 0xa5a5&^mask
			got := SignExtendField(padded, bits)
			if got&mask != v {
				t.Fatalf("SignExtendField(%#04x, %d) lost field bits: %#04x", padded, bits, got)
			}
			if EncodeSignedField(int16(got), bits) != v {
				t.Fatalf("EncodeSignedField(SignExtendField(%#04x, %d)) != %#04x", padded, bits, v)
			}
		}
	}
}

func TestParseGpr(t *testing.T) {
	for i := 0; i <= 7; i++ {
		g, ok := ParseGpr(Gpr(i).String())
		if !ok || g != Gpr(i) {
			t.Errorf("ParseGpr(r%d) = %v, %v", i, g, ok)
		}
	}
	for _, bad := range []string{"r8", "r", "x1", "R0", "r01x", ""} {
		if _, ok := ParseGpr(bad); ok {
			t.Errorf("ParseGpr(%q) unexpectedly succeeded", bad)
		}
	}
}

func TestParseControlRegister(t *testing.T) {
	for cr := AluStatus; cr <= MMUData; cr++ {
		got, ok := ParseControlRegister(cr.String())
		if !ok || got != cr {
			t.Errorf("ParseControlRegister(%s) = %v, %v", cr, got, ok)
		}
	}
	for _, bad := range []string{"cpustatus", "CPUSTATUS", "Status", ""} {
		if _, ok := ParseControlRegister(bad); ok {
			t.Errorf("ParseControlRegister(%q) unexpectedly succeeded", bad)
		}
	}
}
