// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"errors"
	"testing"
)

func exprStream(src string) *tokenStream {
	c := NewSourceCache()
	id := c.AddSnippet("<expr>", src)
	return newTokenStream(id, c.files[id])
}

func noSymbols(string) (int32, bool) { return 0, false }

func testSymbols(name string) (int32, bool) {
	if name == "foo" {
		return 13, true
	}
	return 0, false
}

func TestEvalValueHappyPath(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"42", 42},
		{"2_147_483_647", 2147483647},
		{"foo", 13},
		{"(3)", 3},
		{"((4))", 4},
		{"(3 + 2)", 5},
		{"-43", -43},
		{"-2_147_483_647", -2147483647},
		{"+44", 44},
		{"!42", 0},
		{"!0", 1},
		{"!foo", 0},
		{"~1", -2},
		{"-(18)", -18},
		{"--19", 19},
		{"+-~!0", 2},
	}
	for _, tt := range tests {
		// A trailing + verifies the value does not consume too much.
		ts := exprStream(tt.in + "+")
		got, loc, err := evalValue(ts, testSymbols)
		if err != nil {
			t.Fatalf("evalValue(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("evalValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if loc.Start != 0 || loc.End != len(tt.in) {
			t.Errorf("evalValue(%q) location = %+v", tt.in, loc)
		}
		if next, ok := ts.peek(); !ok || next.kind != tokPlus {
			t.Errorf("evalValue(%q) consumed too much", tt.in)
		}
	}
}

func TestEvalValueErrors(t *testing.T) {
	for _, in := range []string{"", "+", ";", "9999999999999999999999", "bar", "(1", "()", ":"} {
		if _, _, err := evalValue(exprStream(in), noSymbols); err == nil {
			t.Errorf("evalValue(%q) unexpectedly succeeded", in)
		}
	}

	var undefined *UndefinedSymbolError
	_, _, err := evalValue(exprStream("bar"), noSymbols)
	if !errors.As(err, &undefined) || undefined.Name != "bar" {
		t.Errorf("undefined symbol error = %v", err)
	}
}

func TestEvalExpressionHappyPath(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"1234", 1234},
		{"1+1", 2},
		{"5*2/3", 3},
		{"5*2+3&0xfe", 12},
		{"1|2+3*4", 15},
		{"(1 << 8) - 1", 255},
		{"0xabcd & ~((1 << 8) - 1)", 0xab00},
		{"2*3 - 4*5 + 6/3", -12},
		{"1 + 1 == 2 + 0", 1},
		{"-2_147_483_647 - 1", -2147483648},
		{"0b0100 | 0b1001 ^ 0b1100 & 0b1010", 0b0000},
		{"1 < 2 == 2 < 3", 1},
		{"7 >> 1 << 1", 6},
	}
	for _, tt := range tests {
		got, _, err := evalExpression(exprStream(tt.in), noSymbols)
		if err != nil {
			t.Fatalf("evalExpression(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("evalExpression(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEvalExpressionErrors(t *testing.T) {
	outOfRange := []string{
		"1/0",
		"0 % 0",
		"-(-2_147_483_647 - 1)",
		"2_000_000_000 + 2_000_000_000",
		"-2_000_000_000 - 2_000_000_000",
		"0xffffff * 0xffffff",
		"1 << 40",
	}
	for _, in := range outOfRange {
		var oor *ValueOutOfRangeError
		_, _, err := evalExpression(exprStream(in), noSymbols)
		if !errors.As(err, &oor) {
			t.Errorf("evalExpression(%q) error = %v, want ValueOutOfRangeError", in, err)
		}
	}

	negShift := []string{"1 << -2", "1 >> -2"}
	for _, in := range negShift {
		var neg *NegativeShiftError
		_, _, err := evalExpression(exprStream(in), noSymbols)
		if !errors.As(err, &neg) {
			t.Errorf("evalExpression(%q) error = %v, want NegativeShiftError", in, err)
		}
	}

	syntax := []string{"1+", "/1"}
	for _, in := range syntax {
		if _, _, err := evalExpression(exprStream(in), noSymbols); err == nil {
			t.Errorf("evalExpression(%q) unexpectedly succeeded", in)
		}
	}
}

func TestEvalBinaryOperatorTable(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"2 * 4", 8},
		{"4 / 2", 2},
		{"11 % 4", 3},
		{"1 + 1", 2},
		{"1 - 9", -8},
		{"0b110010 << 4", 0b1100100000},
		{"0b110010 >> 3", 0b110},
		{"1 == 2", 0},
		{"1 != 2", 1},
		{"1 < 2", 1},
		{"2 < 2", 0},
		{"1 <= 2", 1},
		{"2 <= 2", 1},
		{"2 > 1", 1},
		{"2 > 2", 0},
		{"2 >= 1", 1},
		{"2 >= 2", 1},
		{"0b110010 & 0b101010", 0b100010},
		{"0b110010 | 0b101010", 0b111010},
		{"0b110010 ^ 0b101010", 0b011000},
		{"0 && 0", 0},
		{"0 && 100", 0},
		{"100 && 0", 0},
		{"100 && 100", 1},
		{"0 || 0", 0},
		{"0 || 100", 1},
		{"100 || 0", 1},
		{"100 || 100", 1},
	}
	for _, tt := range tests {
		got, _, err := evalExpression(exprStream(tt.in), noSymbols)
		if err != nil {
			t.Fatalf("evalExpression(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("evalExpression(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// The expression's location covers all of its source text.
func TestExpressionLocation(t *testing.T) {
	in := "1 + 2 * 3"
	_, loc, err := evalExpression(exprStream(in), noSymbols)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Start != 0 || loc.End != len(in) {
		t.Errorf("location = %+v", loc)
	}
}
