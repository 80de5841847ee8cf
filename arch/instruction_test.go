// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/pickle16/pickle16/isa"
)

func TestDecodeExamples(t *testing.T) {
	tests := []struct {
		word Word
		want Instruction
	}{
		{0x0000, Add{Rd: 0, Ra: 0, Rb: 0}},
		{0xffff, Break{}},
		{0x1829, Ldi{Rd: 1, V: 5}},
		{0x1019, Addi{Rd: 1, V: 3}},
		{0xa080, Jmp{Ra: 2}},
	}
	for _, tt := range tests {
		got, err := DecodeInstruction(tt.word)
		if err != nil {
			t.Fatalf("DecodeInstruction(%#06x) failed: %v", tt.word, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeInstruction(%#06x) = %#v, want %#v", tt.word, got, tt.want)
		}
		if got.Encode() != tt.word {
			t.Errorf("Encode(%#v) = %#06x, want %#06x", got, got.Encode(), tt.word)
		}
	}
}

func TestDecodeInvalidOpcode(t *testing.T) {
	for _, w := range []Word{0xe000, 0x0c00, 0x0e00, 0xa600, 0xfa00} {
		_, err := DecodeInstruction(w)
		var invalid *InvalidOpcodeError
		if !errors.As(err, &invalid) {
			t.Fatalf("DecodeInstruction(%#06x) error = %v, want InvalidOpcodeError", w, err)
		}
		if invalid.Word != w {
			t.Errorf("InvalidOpcodeError.Word = %#06x, want %#06x", invalid.Word, w)
		}
	}
}

func TestDisplayExamples(t *testing.T) {
	tests := []struct {
		inst Instruction
		want string
	}{
		{Add{Rd: 1, Ra: 2, Rb: 3}, "add r1, r2, r3"},
		{Ld{Rd: 3, Address: 4, Offset: -14}, "ld r3, r4, -14"},
		{Stcr{Cr: CpuStatus, Rs: 7}, "stcr CpuStatus, r7"},
		{Ldi{Rd: 5, V: -1}, "ldi r5, -1"},
		{Syscall{V: 9}, "syscall 9"},
		{Break{}, "break"},
	}
	for _, tt := range tests {
		if got := tt.inst.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Every instruction value round-trips through its encoding.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gpr := func() Gpr { return Gpr(rng.Intn(8)) }
	s8 := func() int8 { return int8(rng.Intn(256) - 128) }
	s7 := func() int8 { return int8(rng.Intn(128) - 64) }
	u8 := func() uint8 { return uint8(rng.Intn(256)) }
	cr := func() ControlRegister { return ControlRegister(rng.Intn(8)) }

	for trial := 0; trial < 2000; trial++ {
		var insts = []Instruction{
			Add{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			Sub{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			And{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			Or{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			Xor{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			Pack{Rd: gpr(), Ra: gpr(), Rb: gpr()},
			Addi{Rd: gpr(), V: s8()},
			Ldi{Rd: gpr(), V: s8()},
			Ldui{Rd: gpr(), V: u8()},
			Adr{Rd: gpr(), Offset: s8()},
			Ld{Rd: gpr(), Address: gpr(), Offset: s7()},
			St{Rs: gpr(), Address: gpr(), Offset: s7()},
			Ldp{Rd: gpr(), Offset: s7()},
			Jmp{Ra: gpr()},
			Bz{Rc: gpr(), Ra: gpr()},
			Bnz{Rc: gpr(), Ra: gpr()},
			Ldcr{Rd: gpr(), Cr: cr()},
			Stcr{Cr: cr(), Rs: gpr()},
			Syscall{V: uint8(rng.Intn(64))},
			Reti{},
			Nop{},
			Break{},
		}
		for _, inst := range insts {
			decoded, err := DecodeInstruction(inst.Encode())
			if err != nil {
				t.Fatalf("decode(encode(%#v)) failed: %v", inst, err)
			}
			if !reflect.DeepEqual(decoded, inst) {
				t.Fatalf("decode(encode(%#v)) = %#v", inst, decoded)
			}
		}
	}
}

// For every word with a valid opcode prefix, re-encoding the decoded
// instruction reproduces the word's argument bits exactly and forces its
// literal bits; ignored bit positions come back as zero.
func TestWordRoundTripMasked(t *testing.T) {
	set, err := isa.Load("../isa/pickle16.json5")
	if err != nil {
		t.Fatal(err)
	}

	type shape struct {
		argMask Word // argument bit positions
		fixed   Word // literal bits, in place
	}
	shapes := make(map[string]shape)
	for _, inst := range set.Instructions {
		var s shape
		offset := isa.InstructionBits
		for _, p := range inst.EncodingPieces {
			switch p.Kind {
			case isa.PieceLiteral:
				for i := 0; i < len(p.Literal); i++ {
					offset--
					if p.Literal[i] == '1' {
						s.fixed |= 1 << offset
					}
				}
			case isa.PieceIgnored:
				offset -= p.Count
			case isa.PieceArg:
				at, ok := inst.Arg(p.Arg)
				if !ok {
					t.Fatalf("%s: argument %s undefined", inst.Mnemonic, p.Arg)
				}
				for i := 0; i < at.Bits(); i++ {
					offset--
					s.argMask |= 1 << offset
				}
			}
		}
		shapes[inst.Mnemonic] = s
	}

	table, err := buildTestOpcodeTable(set)
	if err != nil {
		t.Fatal(err)
	}

	for w := 0; w <= 0xffff; w++ {
		word := Word(w)
		inst, err := DecodeInstruction(word)
		expected := table[word>>9]
		if expected == nil {
			var invalid *InvalidOpcodeError
			if !errors.As(err, &invalid) {
				t.Fatalf("DecodeInstruction(%#06x) = %v, want invalid opcode", word, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DecodeInstruction(%#06x) failed: %v", word, err)
		}
		s := shapes[expected.Mnemonic]
		want := word&s.argMask | s.fixed
		if got := inst.Encode(); got != want {
			t.Fatalf("encode(decode(%#06x)) = %#06x, want %#06x (%s)", word, got, want, expected.Mnemonic)
		}
	}
}

// buildTestOpcodeTable mirrors the generator's prefix expansion so the
// sweep above can know which mnemonic each word should decode to.
func buildTestOpcodeTable(set *isa.InstructionSet) ([1 << isa.OpcodeBits]*isa.Instruction, error) {
	var table [1 << isa.OpcodeBits]*isa.Instruction
	for _, inst := range set.Instructions {
		encoding, err := inst.Encoding()
		if err != nil {
			return table, err
		}
		prefixes := []int{0}
		for i := 0; i < isa.OpcodeBits; i++ {
			next := prefixes[:0:0]
			for _, p := range prefixes {
				switch encoding[i] {
				case '0':
					next = append(next, p<<1)
				case '1':
					next = append(next, p<<1|1)
				default:
					next = append(next, p<<1, p<<1|1)
				}
			}
			prefixes = next
		}
		for _, p := range prefixes {
			table[p] = inst
		}
	}
	return table, nil
}
