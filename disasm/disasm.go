// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm renders pickle16 memory images back into assembly
// mnemonics.
package disasm

import (
	"fmt"
	"io"

	"github.com/pickle16/pickle16/arch"
)

// A Line is one disassembled word.
type Line struct {
	Addr arch.Word
	Word arch.Word
	Text string
}

// Disassemble decodes every word of an image. Words with invalid opcodes
// render as a placeholder; the disassembler has no way to tell code from
// data.
func Disassemble(words []arch.Word, base arch.Word) []Line {
	lines := make([]Line, 0, len(words))
	for i, w := range words {
		text := "<invalid instruction>"
		if inst, err := arch.DecodeInstruction(w); err == nil {
			text = inst.String()
		}
		lines = append(lines, Line{
			Addr: base + arch.Word(i),
			Word: w,
			Text: text,
		})
	}
	return lines
}

// Print writes a listing of the image to w.
func Print(w io.Writer, words []arch.Word, base arch.Word) {
	for _, line := range Disassemble(words, base) {
		fmt.Fprintf(w, "%#06x: %04x  %s\n", line.Addr, line.Word, line.Text)
	}
}
