// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"io"

	"github.com/pickle16/pickle16/isa"
)

// GenerateParse writes the assembler's generated file: one match arm per
// mnemonic that consumes the instruction's comma-separated operand list and
// returns the typed instruction.
func GenerateParse(set *isa.InstructionSet, w io.Writer) error {
	g := &emitter{w: w}
	g.printf("// Code generated by isagen from pickle16.json5. DO NOT EDIT.\n\n")
	g.printf("package asm\n\n")
	g.printf("import \"github.com/pickle16/pickle16/arch\"\n\n")
	g.printf("// parseMnemonic parses the operand list of a known mnemonic. The bool\n")
	g.printf("// result is false when the mnemonic is not part of the instruction set.\n")
	g.printf("func (p *parser) parseMnemonic(mnemonic string) (arch.Instruction, bool, error) {\n")
	g.printf("\tswitch mnemonic {\n")
	for _, inst := range set.Instructions {
		name := mnemonicToCamel(inst.Mnemonic)
		g.printf("\tcase %q:\n", inst.Mnemonic)
		for i, a := range inst.Args {
			if i > 0 {
				g.printf("\t\tif _, err := p.expect(tokComma); err != nil {\n")
				g.printf("\t\t\treturn nil, true, err\n")
				g.printf("\t\t}\n")
			}
			switch {
			case a.Type.Kind == isa.ArgGpr:
				g.printf("\t\t%s, err := p.gprOperand()\n", a.Name)
			case a.Type.Kind == isa.ArgControlRegister:
				g.printf("\t\t%s, err := p.crOperand()\n", a.Name)
			case a.Type.Signed && a.Type.Width <= 8:
				g.printf("\t\t%s, err := p.immS8(%d)\n", a.Name, a.Type.Width)
			case a.Type.Signed:
				g.printf("\t\t%s, err := p.immS16(%d)\n", a.Name, a.Type.Width)
			case a.Type.Width <= 8:
				g.printf("\t\t%s, err := p.immU8(%d)\n", a.Name, a.Type.Width)
			default:
				g.printf("\t\t%s, err := p.immU16(%d)\n", a.Name, a.Type.Width)
			}
			g.printf("\t\tif err != nil {\n")
			g.printf("\t\t\treturn nil, true, err\n")
			g.printf("\t\t}\n")
		}
		if len(inst.Args) == 0 {
			g.printf("\t\treturn arch.%s{}, true, nil\n", name)
			continue
		}
		g.printf("\t\treturn arch.%s{\n", name)
		for _, a := range inst.Args {
			g.printf("\t\t\t%s: %s,\n", argFieldName(a.Name), a.Name)
		}
		g.printf("\t\t}, true, nil\n")
	}
	g.printf("\t}\n")
	g.printf("\treturn nil, false, nil\n")
	g.printf("}\n")
	return g.err
}
