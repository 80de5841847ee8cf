// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"errors"
	"fmt"

	"github.com/pickle16/pickle16/arch"
)

// ErrBreak reports that the machine executed a break microinstruction and
// halted cleanly.
var ErrBreak = errors.New("break")

// A NonMappedPhysicalMemoryError reports a translated access that hit an
// address no device claims.
type NonMappedPhysicalMemoryError struct {
	Address PhysicalMemoryAddress
	PC      arch.Word
}

func (e *NonMappedPhysicalMemoryError) Error() string {
	return fmt.Sprintf("attempting to access non-mapped physical memory at %s (pc = %#06x)", e.Address, e.PC)
}

// A MissingMicrocodeError reports execution of an instruction whose
// definition has no microcode yet.
type MissingMicrocodeError struct {
	Mnemonic string
	PC       arch.Word
}

func (e *MissingMicrocodeError) Error() string {
	return fmt.Sprintf("instruction %s has no microcode defined (pc = %#06x)", e.Mnemonic, e.PC)
}

// A MemoryAccessError reports a failed virtual memory access (the page
// fault path; interrupt delivery is not implemented).
type MemoryAccessError struct {
	PC arch.Word
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("error when accessing memory (pc = %#06x)", e.PC)
}

// A ReservedBitError reports a reserved bit position written as nonzero.
type ReservedBitError struct {
	Type  string
	Value arch.Word
}

func (e *ReservedBitError) Error() string {
	return fmt.Sprintf("reserved bit position written as nonzero when writing %s (value: %#06x)", e.Type, e.Value)
}

// An InvariantError reports an internal state that the microcode should
// make unreachable.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "cpu invariant violated: " + e.Msg
}
