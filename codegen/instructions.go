// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pickle16/pickle16/isa"
)

// GenerateInstructions writes the arch package's generated file: the Opcode
// enum, the prefix decode table, and one Instruction type per mnemonic with
// encode, decode and display.
func GenerateInstructions(set *isa.InstructionSet, w io.Writer) error {
	table, err := BuildOpcodeTable(set)
	if err != nil {
		return err
	}

	g := &emitter{w: w}
	g.printf("// Code generated by isagen from pickle16.json5. DO NOT EDIT.\n\n")
	g.printf("package arch\n\n")
	g.printf("import \"fmt\"\n\n")

	// Opcode enum.
	g.printf("// Opcode identifies a decoded instruction family.\n")
	g.printf("type Opcode uint8\n\n")
	g.printf("const (\n")
	for i, inst := range set.Instructions {
		if i == 0 {
			g.printf("\tOp%s Opcode = iota\n", mnemonicToCamel(inst.Mnemonic))
		} else {
			g.printf("\tOp%s\n", mnemonicToCamel(inst.Mnemonic))
		}
	}
	g.printf(")\n\n")

	// Prefix decode. Contiguous runs collapse into range arms.
	g.printf("// DecodeOpcode selects the instruction family from a word's 7-bit opcode\n")
	g.printf("// prefix. Unclaimed prefixes yield an InvalidOpcodeError.\n")
	g.printf("func DecodeOpcode(w Word) (Opcode, error) {\n")
	g.printf("\tprefix := (w >> %d) & %#02x\n", isa.InstructionBits-isa.OpcodeBits, (1<<isa.OpcodeBits)-1)
	g.printf("\tswitch {\n")
	for start := 0; start < len(table); {
		inst := table[start]
		end := start
		for end+1 < len(table) && table[end+1] == inst {
			end++
		}
		if inst != nil {
			if start == end {
				g.printf("\tcase prefix == %#02x:\n", start)
			} else {
				g.printf("\tcase prefix >= %#02x && prefix <= %#02x:\n", start, end)
			}
			g.printf("\t\treturn Op%s, nil\n", mnemonicToCamel(inst.Mnemonic))
		}
		start = end + 1
	}
	g.printf("\tdefault:\n")
	g.printf("\t\treturn 0, &InvalidOpcodeError{Word: w}\n")
	g.printf("\t}\n")
	g.printf("}\n\n")

	// Instruction interface.
	g.printf("// Instruction is implemented by one struct type per mnemonic. Struct\n")
	g.printf("// fields mirror the instruction's arguments in definition order.\n")
	g.printf("type Instruction interface {\n")
	g.printf("\tOpcode() Opcode\n")
	g.printf("\tEncode() Word\n")
	g.printf("\tString() string\n")
	g.printf("}\n\n")

	for _, inst := range set.Instructions {
		if err := generateInstructionType(g, inst); err != nil {
			return err
		}
	}

	// Decode.
	g.printf("// DecodeInstruction decodes an instruction word into its typed form.\n")
	g.printf("func DecodeInstruction(w Word) (Instruction, error) {\n")
	g.printf("\topcode, err := DecodeOpcode(w)\n")
	g.printf("\tif err != nil {\n")
	g.printf("\t\treturn nil, err\n")
	g.printf("\t}\n")
	g.printf("\tswitch opcode {\n")
	for _, inst := range set.Instructions {
		if err := generateDecodeArm(g, inst); err != nil {
			return err
		}
	}
	g.printf("\t}\n")
	g.printf("\treturn nil, &InvalidOpcodeError{Word: w}\n")
	g.printf("}\n")
	return g.err
}

func generateInstructionType(g *emitter, inst *isa.Instruction) error {
	name := mnemonicToCamel(inst.Mnemonic)

	g.printf("// %s is the %s instruction: %s.\n", name, inst.Mnemonic, inst.Title)
	if len(inst.Args) == 0 {
		g.printf("type %s struct{}\n\n", name)
	} else {
		g.printf("type %s struct {\n", name)
		for _, a := range inst.Args {
			g.printf("\t%s %s\n", argFieldName(a.Name), argGoType(a.Type))
		}
		g.printf("}\n\n")
	}

	g.printf("func (i %s) Opcode() Opcode { return Op%s }\n\n", name, name)

	// Encode: argument fields shifted into place, ORed with the fixed bits
	// from the literal pieces. Ignored bits encode as zero.
	var terms []string
	fixed := 0
	offset := isa.InstructionBits
	for _, p := range inst.EncodingPieces {
		switch p.Kind {
		case isa.PieceLiteral:
			offset -= len(p.Literal)
			v, err := strconv.ParseUint(p.Literal, 2, 16)
			if err != nil {
				return err
			}
			fixed |= int(v) << offset
		case isa.PieceIgnored:
			offset -= p.Count
		case isa.PieceArg:
			t, _ := inst.Arg(p.Arg)
			offset -= t.Bits()
			var expr string
			switch {
			case t.Kind == isa.ArgImmediate && t.Signed:
				expr = fmt.Sprintf("EncodeSignedField(int16(i.%s), %d)", argFieldName(p.Arg), t.Bits())
			default:
				expr = fmt.Sprintf("Word(i.%s)", argFieldName(p.Arg))
			}
			if offset > 0 {
				expr = fmt.Sprintf("%s<<%d", expr, offset)
			}
			terms = append(terms, expr)
		}
	}
	terms = append(terms, fmt.Sprintf("%#04x", fixed))
	g.printf("func (i %s) Encode() Word {\n", name)
	g.printf("\treturn %s\n", strings.Join(terms, " | "))
	g.printf("}\n\n")

	// Display.
	g.printf("func (i %s) String() string {\n", name)
	if len(inst.Args) == 0 {
		g.printf("\treturn %q\n", inst.Mnemonic)
	} else {
		verbs := make([]string, 0, len(inst.Args))
		fields := make([]string, 0, len(inst.Args))
		for _, a := range inst.Args {
			if a.Type.Kind == isa.ArgImmediate {
				verbs = append(verbs, "%d")
			} else {
				verbs = append(verbs, "%s")
			}
			fields = append(fields, "i."+argFieldName(a.Name))
		}
		g.printf("\treturn fmt.Sprintf(%q, %s)\n",
			inst.Mnemonic+" "+strings.Join(verbs, ", "), strings.Join(fields, ", "))
	}
	g.printf("}\n\n")
	return nil
}

func generateDecodeArm(g *emitter, inst *isa.Instruction) error {
	name := mnemonicToCamel(inst.Mnemonic)
	offsets, err := argOffsets(inst)
	if err != nil {
		return err
	}
	g.printf("\tcase Op%s:\n", name)
	if len(inst.Args) == 0 {
		g.printf("\t\treturn %s{}, nil\n", name)
		return nil
	}
	g.printf("\t\treturn %s{\n", name)
	for _, a := range inst.Args {
		shift := isa.InstructionBits - offsets[a.Name]
		src := "w"
		if shift > 0 {
			src = fmt.Sprintf("w>>%d", shift)
		}
		var expr string
		switch {
		case a.Type.Kind == isa.ArgGpr:
			expr = fmt.Sprintf("Gpr(Field(%s, 3))", src)
		case a.Type.Kind == isa.ArgControlRegister:
			expr = fmt.Sprintf("ControlRegister(Field(%s, 3))", src)
		case a.Type.Signed && a.Type.Width <= 8:
			expr = fmt.Sprintf("int8(int16(SignExtendField(%s, %d)))", src, a.Type.Width)
		case a.Type.Signed:
			expr = fmt.Sprintf("int16(SignExtendField(%s, %d))", src, a.Type.Width)
		case a.Type.Width <= 8:
			expr = fmt.Sprintf("uint8(Field(%s, %d))", src, a.Type.Width)
		default:
			expr = fmt.Sprintf("Field(%s, %d)", src, a.Type.Width)
		}
		g.printf("\t\t\t%s: %s,\n", argFieldName(a.Name), expr)
	}
	g.printf("\t\t}, nil\n")
	return nil
}
