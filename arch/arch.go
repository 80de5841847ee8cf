// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch defines the architectural types shared by the emulator, the
// assembler and the disassembler: machine words, register names, and the
// Instruction type generated from the instruction set definition.
package arch

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go run github.com/pickle16/pickle16/cmd/isagen -def ../isa/pickle16.json5 -arch . -cpu ../cpu -asm ../asm

// A Word is the machine's native 16-bit quantity. Registers, instructions
// and memory cells are all words.
type Word = uint16

// A Gpr names one of the eight general purpose registers r0-r7.
// r0 always reads as zero.
type Gpr uint8

func (g Gpr) String() string {
	return fmt.Sprintf("r%d", uint8(g))
}

// Valid reports whether the register index is in range.
func (g Gpr) Valid() bool {
	return g < 8
}

// ParseGpr parses a register name of the form r0-r7.
func ParseGpr(s string) (Gpr, bool) {
	if !strings.HasPrefix(s, "r") {
		return 0, false
	}
	n, err := strconv.ParseUint(s[1:], 10, 8)
	if err != nil || n > 7 {
		return 0, false
	}
	return Gpr(n), true
}

// A ControlRegister names one of the eight special registers addressed by
// ldcr/stcr.
type ControlRegister uint8

const (
	AluStatus ControlRegister = iota
	CpuStatus
	ContextID
	IntCause
	IntBase
	IntPc
	MMUAddr
	MMUData
)

var controlRegisterNames = []string{
	"AluStatus",
	"CpuStatus",
	"ContextID",
	"IntCause",
	"IntBase",
	"IntPc",
	"MMUAddr",
	"MMUData",
}

func (cr ControlRegister) String() string {
	if int(cr) < len(controlRegisterNames) {
		return controlRegisterNames[cr]
	}
	return fmt.Sprintf("cr%d", uint8(cr))
}

// ParseControlRegister parses a control register's enumerator name.
// Names are case sensitive.
func ParseControlRegister(s string) (ControlRegister, bool) {
	for i, name := range controlRegisterNames {
		if s == name {
			return ControlRegister(i), true
		}
	}
	return 0, false
}

// An InvalidOpcodeError reports a word whose 7-bit opcode prefix does not
// select any instruction.
type InvalidOpcodeError struct {
	Word Word
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid instruction %#06x", e.Word)
}
