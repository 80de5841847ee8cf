// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isa

import (
	"errors"
	"testing"
)

func TestParseArgType(t *testing.T) {
	tests := []struct {
		in     string
		kind   ArgKind
		signed bool
		bits   int
	}{
		{"gpr", ArgGpr, false, 3},
		{"cr", ArgControlRegister, false, 3},
		{"s7", ArgImmediate, true, 7},
		{"s8", ArgImmediate, true, 8},
		{"u6", ArgImmediate, false, 6},
		{"u16", ArgImmediate, false, 16},
	}
	for _, tt := range tests {
		at, err := ParseArgType(tt.in)
		if err != nil {
			t.Fatalf("ParseArgType(%q) failed: %v", tt.in, err)
		}
		if at.Kind != tt.kind || at.Bits() != tt.bits {
			t.Errorf("ParseArgType(%q) = %+v, want kind=%d bits=%d", tt.in, at, tt.kind, tt.bits)
		}
		if at.Kind == ArgImmediate && at.Signed != tt.signed {
			t.Errorf("ParseArgType(%q).Signed = %v", tt.in, at.Signed)
		}
	}
}

func TestParseArgTypeErrors(t *testing.T) {
	for _, in := range []string{"", "x8", "s", "u", "s0", "u17", "sboat", "GPR"} {
		if _, err := ParseArgType(in); err == nil {
			t.Errorf("ParseArgType(%q) unexpectedly succeeded", in)
		} else {
			var bad *BadArgumentTypeError
			if !errors.As(err, &bad) {
				t.Errorf("ParseArgType(%q) error type = %T", in, err)
			}
		}
	}
}

func TestClassifyEncodingPiece(t *testing.T) {
	tests := []struct {
		in   string
		kind PieceKind
	}{
		{"0000000", PieceLiteral},
		{"1", PieceLiteral},
		{"xxx", PieceIgnored},
		{"rd", PieceArg},
		{"offset", PieceArg},
		{"x0", PieceArg}, // mixed is an argument name
	}
	for _, tt := range tests {
		if p := ClassifyEncodingPiece(tt.in); p.Kind != tt.kind {
			t.Errorf("ClassifyEncodingPiece(%q).Kind = %d, want %d", tt.in, p.Kind, tt.kind)
		}
	}
}

func TestEncodingExpansion(t *testing.T) {
	inst := &Instruction{
		Mnemonic: "ld",
		Args: []Arg{
			{Name: "rd", Type: ArgType{Kind: ArgGpr}},
			{Name: "address", Type: ArgType{Kind: ArgGpr}},
			{Name: "offset", Type: ArgType{Kind: ArgImmediate, Signed: true, Width: 7}},
		},
		EncodingPieces: []EncodingPiece{
			ClassifyEncodingPiece("010"),
			ClassifyEncodingPiece("address"),
			ClassifyEncodingPiece("offset"),
			ClassifyEncodingPiece("rd"),
		},
	}
	enc, err := inst.Encoding()
	if err != nil {
		t.Fatal(err)
	}
	if enc != "010xxxxxxxxxxxxx" {
		t.Errorf("Encoding() = %q", enc)
	}
}

func TestEncodingErrors(t *testing.T) {
	undefined := &Instruction{
		Mnemonic: "bad",
		EncodingPieces: []EncodingPiece{
			ClassifyEncodingPiece("0000000"),
			ClassifyEncodingPiece("rd"),
		},
	}
	var undefErr *UndefinedArgumentError
	if _, err := undefined.Encoding(); !errors.As(err, &undefErr) {
		t.Errorf("undefined argument error = %v", err)
	}

	short := &Instruction{
		Mnemonic: "short",
		EncodingPieces: []EncodingPiece{
			ClassifyEncodingPiece("0000000"),
		},
	}
	var lenErr *WrongEncodingLengthError
	if _, err := short.Encoding(); !errors.As(err, &lenErr) {
		t.Errorf("wrong length error = %v", err)
	}
	if lenErr.Bits != 7 {
		t.Errorf("wrong length bits = %d", lenErr.Bits)
	}
}

func TestParseSnippet(t *testing.T) {
	src := `
// comment
{
    "instructions": {
        "halt": {
            "title": "Halt",
            "encoding": ["1111111", "111111111"],
            "microcode": [["break"]],
        },
        "mov": {
            "title": "Move",
            "args": {"rd": "gpr", "rs": "gpr"},
            "encoding": ["0000000", "xxx", "rs", "rd"],
            "note": ["a", "b"],
        },
    },
    "substitutions": {
        "fetch": ["end_instruction"],
    },
}`
	set, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Instructions) != 2 {
		t.Fatalf("instruction count = %d", len(set.Instructions))
	}
	if set.Instructions[0].Mnemonic != "halt" || set.Instructions[1].Mnemonic != "mov" {
		t.Errorf("definition order not preserved: %s, %s",
			set.Instructions[0].Mnemonic, set.Instructions[1].Mnemonic)
	}
	mov := set.Lookup("mov")
	if mov == nil {
		t.Fatal("Lookup(mov) = nil")
	}
	if len(mov.Args) != 2 || mov.Args[0].Name != "rd" || mov.Args[1].Name != "rs" {
		t.Errorf("mov args = %+v", mov.Args)
	}
	if len(mov.Note) != 2 {
		t.Errorf("mov note = %v", mov.Note)
	}
	if set.Lookup("halt").Microcode == nil {
		t.Error("halt has no microcode")
	}
	if mov.Microcode != nil {
		t.Error("mov unexpectedly has microcode")
	}
	if _, ok := set.Substitutions["fetch"]; !ok {
		t.Error("substitution missing")
	}
}

func TestParseRejectsBadDefinitions(t *testing.T) {
	tests := []string{
		`{"instructions": {"a": {"title": "x", "args": {"v": "q9"}, "encoding": ["0000000", "xxxxxxxxx"]}}}`,
		`{"instructions": {"a": {"title": "x", "encoding": ["0000000"]}}}`,
		`{"instructions": {"a": {"title": "x", "encoding": ["0000000", "rd", "xxxxxx"]}}}`,
		`{"unknown_key": 1}`,
		`[1, 2]`,
	}
	for _, src := range tests {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q) unexpectedly succeeded", src)
		}
	}
}

func TestLoadCanonicalDefinition(t *testing.T) {
	set, err := Load("pickle16.json5")
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Instructions) != 22 {
		t.Errorf("instruction count = %d, want 22", len(set.Instructions))
	}
	for _, inst := range set.Instructions {
		enc, err := inst.Encoding()
		if err != nil {
			t.Errorf("%s: %v", inst.Mnemonic, err)
			continue
		}
		if len(enc) != InstructionBits {
			t.Errorf("%s: encoding length %d", inst.Mnemonic, len(enc))
		}
	}
	if set.Instructions[0].Mnemonic != "add" {
		t.Errorf("first instruction = %s", set.Instructions[0].Mnemonic)
	}
	if set.Lookup("break") == nil || set.Lookup("bz").Microcode != nil {
		t.Error("canonical definition shape unexpected")
	}
	for _, name := range []string{"fetch_next", "refill_jump"} {
		if _, ok := set.Substitutions[name]; !ok {
			t.Errorf("substitution %s missing", name)
		}
	}
}
