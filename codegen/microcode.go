// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"io"
	"sort"

	"github.com/pickle16/pickle16/isa"
)

// A fragment is the translation of one microinstruction token: the Go
// statements that emulate it and the phase that orders it within its step.
// Producers run in lower phases than their consumers, so a step like
// "r1 = r1 + r2" reads the old r1 before writing the new one.
//
// Phases:
//
//	0  register/pc/immediate reads onto the left/right/addr_base busses
//	1  bus transfers and ALU operations
//	2  effective address computation
//	3  memory read/write and pc update
//	4  mem_data routing
//	5  register writeback
//	6  instruction handover
//	7  halt
type fragment struct {
	code  []string
	phase int
}

// translateMicroinstruction maps one token of the closed microinstruction
// vocabulary to its emulation fragment. Unknown tokens are definition
// errors.
func translateMicroinstruction(token string) (fragment, error) {
	switch token {
	case "pc->left":
		return fragment{[]string{"leftBus := c.pc"}, 0}, nil
	case "pc->addr_base":
		return fragment{[]string{"addrBaseBus := c.pc"}, 0}, nil
	case "zero->left":
		return fragment{[]string{"leftBus := arch.Word(0)"}, 0}, nil
	case "f2->left":
		return fragment{[]string{"leftBus := c.GetGpr(arch.Gpr(arch.Field(op, 3)))"}, 0}, nil
	case "f3->left":
		return fragment{[]string{"leftBus := c.GetGpr(arch.Gpr(arch.Field(op>>3, 3)))"}, 0}, nil
	case "f4->right":
		return fragment{[]string{"rightBus := c.GetGpr(arch.Gpr(arch.Field(op>>6, 3)))"}, 0}, nil
	case "f5->right":
		return fragment{[]string{"rightBus := c.GetGpr(arch.Gpr(arch.Field(op>>10, 3)))"}, 0}, nil
	case "f6->right":
		return fragment{[]string{"rightBus := c.GetCr(arch.ControlRegister(arch.Field(op>>9, 3)))"}, 0}, nil
	case "f7->right":
		return fragment{[]string{"rightBus := arch.SignExtendField(op>>3, 8)"}, 0}, nil

	case "right->addr_base":
		return fragment{[]string{"addrBaseBus := rightBus"}, 1}, nil
	case "left->mem_data":
		return fragment{[]string{"memData := leftBus"}, 1}, nil
	case "alu_add->result":
		return fragment{[]string{"resultBus := leftBus + rightBus"}, 1}, nil
	case "alu_and->result":
		return fragment{[]string{"resultBus := leftBus & rightBus"}, 1}, nil
	case "alu_or->result":
		return fragment{[]string{"resultBus := leftBus | rightBus"}, 1}, nil
	case "alu_xor->result":
		return fragment{[]string{"resultBus := leftBus ^ rightBus"}, 1}, nil
	case "alu_sub->result":
		return fragment{[]string{"resultBus := leftBus - rightBus"}, 1}, nil
	case "alu_upsample->result":
		return fragment{[]string{"resultBus := (leftBus & 0xff) | (rightBus&0xff)<<8"}, 1}, nil

	case "f8->addr_offset":
		return fragment{[]string{"memAddress := addrBaseBus + arch.SignExtendField(op>>3, 7)"}, 2}, nil
	case "zero->addr_offset":
		return fragment{[]string{"memAddress := addrBaseBus"}, 2}, nil
	case "one->addr_offset":
		return fragment{[]string{"memAddress := addrBaseBus + 1"}, 2}, nil
	case "program_segment":
		return fragment{[]string{"segment = SegmentProgram"}, 2}, nil

	case "mem_address->pc":
		return fragment{[]string{"c.pc = memAddress"}, 3}, nil
	case "read_mem_data":
		return fragment{[]string{
			"memData, err := c.readMemory(VirtualAddressFromWord(memAddress), segment, mem)",
			"if err != nil {",
			"\treturn err",
			"}",
		}, 3}, nil
	case "write_mem_data":
		return fragment{[]string{
			"if err := c.writeMemory(VirtualAddressFromWord(memAddress), segment, mem, memData); err != nil {",
			"\treturn err",
			"}",
		}, 3}, nil

	case "mem_data->instruction":
		return fragment{[]string{"c.nextInstruction = memData"}, 4}, nil
	case "mem_data->result":
		return fragment{[]string{"resultBus := memData"}, 4}, nil

	case "result->f1":
		return fragment{[]string{"c.setGpr(arch.Gpr(arch.Field(op, 3)), resultBus)"}, 5}, nil
	case "result->f6":
		return fragment{[]string{
			"if err := c.SetCr(arch.ControlRegister(arch.Field(op>>9, 3)), resultBus); err != nil {",
			"\treturn err",
			"}",
		}, 5}, nil

	case "end_instruction":
		return fragment{[]string{"c.endInstruction()"}, 6}, nil
	case "break":
		return fragment{[]string{"return ErrBreak"}, 7}, nil
	}
	return fragment{}, &UnknownMicroinstructionError{Token: token}
}

// substituteStep expands $name tokens in a microcode step. Substitution is
// one level deep: a substitution's expansion is taken literally.
func substituteStep(step []string, substitutions map[string][]string) ([]string, error) {
	var out []string
	for _, token := range step {
		if len(token) > 0 && token[0] == '$' {
			expansion, ok := substitutions[token[1:]]
			if !ok {
				return nil, &BadSubstitutionError{Token: token}
			}
			out = append(out, expansion...)
			continue
		}
		out = append(out, token)
	}
	return out, nil
}

// stepAccessesMemory reports whether a (substituted) step contains a memory
// access. Only those steps get the `segment` local; Go rejects unused
// variables.
func stepAccessesMemory(step []string) bool {
	for _, token := range step {
		if token == "read_mem_data" || token == "write_mem_data" {
			return true
		}
	}
	return false
}

// GenerateMicrocode writes the microcode dispatch for the cpu package: one
// arm per (opcode, step) pair, a terminal arm per instruction, and the
// invalid-instruction family.
func GenerateMicrocode(set *isa.InstructionSet, w io.Writer) error {
	g := &emitter{w: w}
	g.printf("// Code generated by isagen from pickle16.json5. DO NOT EDIT.\n\n")
	g.printf("package cpu\n\n")
	g.printf("import \"github.com/pickle16/pickle16/arch\"\n\n")
	g.printf("// dispatchStep executes one microcode step of the current instruction.\n")
	g.printf("func (c *CPU) dispatchStep(mem PhysicalMemory) error {\n")
	g.printf("\top := c.currentInstruction\n")
	g.printf("\topcode, err := arch.DecodeOpcode(op)\n")
	g.printf("\tif err != nil {\n")
	if set.InvalidMicrocode == nil {
		g.printf("\t\treturn &MissingMicrocodeError{Mnemonic: \"invalid instruction\", PC: c.pc}\n")
	} else {
		g.printf("\t\tswitch c.step {\n")
		if err := emitSteps(g, "\t\t", set.InvalidMicrocode, set.Substitutions); err != nil {
			return err
		}
		g.printf("\t\tdefault:\n")
		g.printf("\t\t\treturn &InvariantError{Msg: \"invalid instruction has only %d steps\"}\n", len(set.InvalidMicrocode))
		g.printf("\t\t}\n")
		g.printf("\t\treturn nil\n")
	}
	g.printf("\t}\n")
	g.printf("\tswitch opcode {\n")
	for _, inst := range set.Instructions {
		g.printf("\tcase arch.Op%s:\n", mnemonicToCamel(inst.Mnemonic))
		if inst.Microcode == nil {
			g.printf("\t\treturn &MissingMicrocodeError{Mnemonic: %q, PC: c.pc}\n", inst.Mnemonic)
			continue
		}
		g.printf("\t\tswitch c.step {\n")
		if err := emitSteps(g, "\t\t", inst.Microcode, set.Substitutions); err != nil {
			return err
		}
		g.printf("\t\tdefault:\n")
		g.printf("\t\t\treturn &InvariantError{Msg: \"instruction %s has only %d steps\"}\n", inst.Mnemonic, len(inst.Microcode))
		g.printf("\t\t}\n")
	}
	g.printf("\tdefault:\n")
	g.printf("\t\treturn &InvariantError{Msg: \"opcode out of range\"}\n")
	g.printf("\t}\n")
	g.printf("\treturn nil\n")
	g.printf("}\n")
	return g.err
}

func emitSteps(g *emitter, indent string, microcode [][]string, substitutions map[string][]string) error {
	for stepIndex, step := range microcode {
		tokens, err := substituteStep(step, substitutions)
		if err != nil {
			return err
		}
		frags := make([]fragment, 0, len(tokens))
		for _, token := range tokens {
			f, err := translateMicroinstruction(token)
			if err != nil {
				return err
			}
			f.code[0] += " // " + token
			frags = append(frags, f)
		}
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].phase < frags[j].phase })

		g.printf("%scase %d:\n", indent, stepIndex)
		if stepAccessesMemory(tokens) {
			g.printf("%s\tsegment := SegmentData\n", indent)
		}
		for _, f := range frags {
			for _, line := range f.code {
				g.printf("%s\t%s\n", indent, line)
			}
		}
	}
	return nil
}
