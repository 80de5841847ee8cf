// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegen expands an instruction set definition into Go source: the
// Instruction types with encode/decode/display, the opcode decode table,
// the microcode dispatch for the cpu package, and the mnemonic parse arms
// for the assembler. It runs at build time via the isagen tool; the
// generated files are committed.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/pickle16/pickle16/isa"
)

// Generate writes all three generated files.
func Generate(set *isa.InstructionSet, instructions, microcode, parse io.Writer) error {
	if err := GenerateInstructions(set, instructions); err != nil {
		return err
	}
	if err := GenerateMicrocode(set, microcode); err != nil {
		return err
	}
	return GenerateParse(set, parse)
}

// An emitter accumulates formatted output, remembering the first write
// error so call sites stay uncluttered.
type emitter struct {
	w   io.Writer
	err error
}

func (g *emitter) printf(format string, args ...any) {
	if g.err == nil {
		_, g.err = fmt.Fprintf(g.w, format, args...)
	}
}

// mnemonicToCamel converts a mnemonic like "add" or "ld_cr" to an exported
// Go identifier.
func mnemonicToCamel(mnemonic string) string {
	var b strings.Builder
	boundary := true
	for _, r := range mnemonic {
		switch {
		case r == '_':
			boundary = true
		case boundary:
			b.WriteString(strings.ToUpper(string(r)))
			boundary = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// argFieldName converts an argument name to its exported struct field name.
func argFieldName(name string) string {
	return mnemonicToCamel(name)
}

// immediateCarrier returns the Go type an immediate argument is carried in:
// the next byte-aligned integer of matching signedness.
func immediateCarrier(t isa.ArgType) string {
	prefix := "uint"
	if t.Signed {
		prefix = "int"
	}
	if t.Width <= 8 {
		return prefix + "8"
	}
	return prefix + "16"
}

// argGoType returns the Go type of an argument's struct field.
func argGoType(t isa.ArgType) string {
	switch t.Kind {
	case isa.ArgGpr:
		return "Gpr"
	case isa.ArgControlRegister:
		return "ControlRegister"
	default:
		return immediateCarrier(t)
	}
}

// argOffsets computes, for every argument, the bit offset of the end of its
// field counted from the MSB of the instruction word.
func argOffsets(inst *isa.Instruction) (map[string]int, error) {
	offsets := make(map[string]int)
	offset := 0
	for _, p := range inst.EncodingPieces {
		switch p.Kind {
		case isa.PieceLiteral:
			offset += len(p.Literal)
		case isa.PieceIgnored:
			offset += p.Count
		case isa.PieceArg:
			t, ok := inst.Arg(p.Arg)
			if !ok {
				return nil, &isa.UndefinedArgumentError{Mnemonic: inst.Mnemonic, Arg: p.Arg}
			}
			offset += t.Bits()
			offsets[p.Arg] = offset
		}
	}
	return offsets, nil
}

// expandEncoding yields every concrete value matched by a pattern of '0',
// '1' and 'x' characters.
func expandEncoding(pattern string) []int {
	values := []int{0}
	for i := 0; i < len(pattern); i++ {
		next := make([]int, 0, len(values)*2)
		for _, v := range values {
			switch pattern[i] {
			case '0':
				next = append(next, v<<1)
			case '1':
				next = append(next, v<<1|1)
			default:
				next = append(next, v<<1, v<<1|1)
			}
		}
		values = next
	}
	return values
}

// BuildOpcodeTable expands every instruction's first seven encoding bits
// into the 128-entry decode table. Two instructions claiming the same
// prefix is a definition error; unclaimed entries stay nil and decode as
// invalid opcodes.
func BuildOpcodeTable(set *isa.InstructionSet) ([1 << isa.OpcodeBits]*isa.Instruction, error) {
	var table [1 << isa.OpcodeBits]*isa.Instruction
	for _, inst := range set.Instructions {
		encoding, err := inst.Encoding()
		if err != nil {
			return table, err
		}
		for _, opcode := range expandEncoding(encoding[:isa.OpcodeBits]) {
			if prev := table[opcode]; prev != nil {
				return table, &OpcodeCollisionError{
					Prefix: opcode,
					First:  prev.Mnemonic,
					Second: inst.Mnemonic,
				}
			}
			table[opcode] = inst
		}
	}
	return table, nil
}

// An OpcodeCollisionError reports two instructions claiming one opcode
// prefix.
type OpcodeCollisionError struct {
	Prefix        int
	First, Second string
}

func (e *OpcodeCollisionError) Error() string {
	return fmt.Sprintf("opcode prefix %#04x claimed by both %s and %s", e.Prefix, e.First, e.Second)
}

// A BadSubstitutionError reports a $name microcode token with no matching
// substitution.
type BadSubstitutionError struct {
	Token string
}

func (e *BadSubstitutionError) Error() string {
	return fmt.Sprintf("bad substitution %q", e.Token)
}

// An UnknownMicroinstructionError reports a microcode token outside the
// translator's vocabulary.
type UnknownMicroinstructionError struct {
	Token string
}

func (e *UnknownMicroinstructionError) Error() string {
	return fmt.Sprintf("unknown microinstruction %q", e.Token)
}
