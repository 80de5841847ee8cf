// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the microcoded pickle16 CPU emulator. The
// instruction semantics live in the microcode dispatch generated from the
// instruction set definition; this package provides the register file, the
// MMU, and the step machinery the microcode drives.
package cpu

import (
	"math/rand"

	"github.com/pickle16/pickle16/arch"
)

// A CPU holds the complete processor state. The zero-adjacent constructor
// New starts from cleared state; NewRandomized seeds every word from a
// pseudo-random source so that tests cannot depend on uninitialized state.
//
// Public state is readable through accessors but is mutated only by Step
// (and Reset).
type CPU struct {
	gpr [7]arch.Word // r1..r7; r0 is hard-wired to zero

	pc arch.Word

	aluFlags  arch.Word
	cpuStatus CpuStatus
	contextID arch.Word // 6 bits
	intCause  arch.Word
	intBase   arch.Word
	intPc     arch.Word
	mmuAddr   arch.Word

	step               uint8 // microcode step index, 0..3
	currentInstruction arch.Word
	nextInstruction    arch.Word

	pageTable [PageTableSize]PageTableRecord

	ended bool // set by endInstruction within the current step
}

// New returns a CPU in the reset state.
func New() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// NewRandomized returns a CPU whose entire state was filled from the given
// seed before applying the reset. State the reset does not touch stays
// random, which is what a real power-up looks like.
func NewRandomized(seed int64) *CPU {
	rng := rand.New(rand.NewSource(seed))
	c := &CPU{}
	for i := range c.gpr {
		c.gpr[i] = arch.Word(rng.Uint32())
	}
	c.pc = arch.Word(rng.Uint32())
	c.aluFlags = arch.Word(rng.Uint32())
	c.contextID = arch.Word(rng.Uint32()) & contextIDMask
	c.intCause = arch.Word(rng.Uint32())
	c.intBase = arch.Word(rng.Uint32())
	c.intPc = arch.Word(rng.Uint32())
	c.mmuAddr = arch.Word(rng.Uint32())
	c.currentInstruction = arch.Word(rng.Uint32())
	c.nextInstruction = arch.Word(rng.Uint32())
	for i := range c.pageTable {
		c.pageTable[i] = PageTableRecordFromWord(arch.Word(rng.Uint32()))
	}
	c.Reset()
	return c
}

// Reset puts the CPU into the reboot state: pc 0, status cleared, step 0,
// and a zero word (a harmless add r0, r0, r0) in the current instruction
// register. Everything else is left alone.
func (c *CPU) Reset() {
	c.pc = 0
	c.cpuStatus = CpuStatus{}
	c.step = 0
	c.currentInstruction = 0
}

// PC returns the program counter, which addresses the currently executing
// instruction.
func (c *CPU) PC() arch.Word {
	return c.pc
}

// StepIndex returns the current microcode step index.
func (c *CPU) StepIndex() uint8 {
	return c.step
}

// NextInstruction returns the prefetched instruction word.
func (c *CPU) NextInstruction() arch.Word {
	return c.nextInstruction
}

// GetGpr reads a general purpose register. r0 reads as zero.
func (c *CPU) GetGpr(index arch.Gpr) arch.Word {
	if index == 0 {
		return 0
	}
	return c.gpr[index-1]
}

// setGpr writes a general purpose register. Writes to r0 are discarded.
func (c *CPU) setGpr(index arch.Gpr, value arch.Word) {
	if index > 0 {
		c.gpr[index-1] = value
	}
}

// GetCr reads a control register.
func (c *CPU) GetCr(index arch.ControlRegister) arch.Word {
	switch index {
	case arch.AluStatus:
		return c.aluFlags
	case arch.CpuStatus:
		return c.cpuStatus.Word()
	case arch.ContextID:
		return c.contextID
	case arch.IntCause:
		return c.intCause
	case arch.IntBase:
		return c.intBase
	case arch.IntPc:
		return c.intPc
	case arch.MMUAddr:
		return c.mmuAddr
	case arch.MMUData:
		return c.pageTable[c.mmuAddr&(PageTableSize-1)].Word()
	}
	return 0
}

// SetCr writes a control register. CpuStatus and ContextID validate their
// packed representations; MMUData interprets the value as a page table
// record and stores it at the index in MMUAddr.
func (c *CPU) SetCr(index arch.ControlRegister, value arch.Word) error {
	switch index {
	case arch.AluStatus:
		c.aluFlags = value
	case arch.CpuStatus:
		status, err := CpuStatusFromWord(value)
		if err != nil {
			return err
		}
		c.cpuStatus = status
	case arch.ContextID:
		if value&^arch.Word(contextIDMask) != 0 {
			return &ReservedBitError{Type: "ContextID", Value: value}
		}
		c.contextID = value
	case arch.IntCause:
		c.intCause = value
	case arch.IntBase:
		c.intBase = value
	case arch.IntPc:
		c.intPc = value
	case arch.MMUAddr:
		c.mmuAddr = value
	case arch.MMUData:
		c.pageTable[c.mmuAddr&(PageTableSize-1)] = PageTableRecordFromWord(value)
	}
	return nil
}

// Step advances the CPU by one microcode step. It returns ErrBreak when the
// machine halts cleanly, and a typed error on memory faults, malformed
// control register writes, or missing microcode.
func (c *CPU) Step(mem PhysicalMemory) error {
	c.ended = false
	if err := c.dispatchStep(mem); err != nil {
		return err
	}
	if !c.ended {
		c.step++
	}
	return nil
}

// endInstruction hands execution over to the prefetched instruction.
func (c *CPU) endInstruction() {
	c.currentInstruction = c.nextInstruction
	c.step = 0
	c.ended = true
}

// readMemory translates a virtual address and loads a word through the
// physical memory capability.
func (c *CPU) readMemory(addr VirtualMemoryAddress, segment Segment, mem PhysicalMemory) (arch.Word, error) {
	phys, ok := c.translate(addr, segment, false)
	if !ok {
		return 0, c.pageFault(addr, segment)
	}
	v, ok := mem.Read(phys.Uint32())
	if !ok {
		return 0, &NonMappedPhysicalMemoryError{Address: phys, PC: c.pc}
	}
	return v, nil
}

// writeMemory translates a virtual address and stores a word through the
// physical memory capability.
func (c *CPU) writeMemory(addr VirtualMemoryAddress, segment Segment, mem PhysicalMemory, value arch.Word) error {
	phys, ok := c.translate(addr, segment, true)
	if !ok {
		return c.pageFault(addr, segment)
	}
	if !mem.Write(phys.Uint32(), value) {
		return &NonMappedPhysicalMemoryError{Address: phys, PC: c.pc}
	}
	return nil
}

// translate maps a virtual address to a physical one. With the MMU off,
// the data segment maps to frame 0 and the program segment to frame
// 0x2000, a fixed bank switch onto the boot ROM window.
func (c *CPU) translate(addr VirtualMemoryAddress, segment Segment, write bool) (PhysicalMemoryAddress, bool) {
	if !c.cpuStatus.MmuEnabled {
		frame := uint32(0)
		if segment == SegmentProgram {
			frame = 1 << 13
		}
		return PhysicalMemoryAddress{FrameNumber: frame, Offset: addr.Offset}, true
	}

	index := PageTableIndex{
		ContextID:  c.contextID,
		Segment:    segment,
		PageNumber: addr.PageNumber,
	}
	page := c.pageTable[index.Index()]
	if (write && !page.Writable) || (!write && !page.Readable) {
		return PhysicalMemoryAddress{}, false
	}
	return PhysicalMemoryAddress{FrameNumber: page.FrameNumber, Offset: addr.Offset}, true
}

// pageFault records the fault cause and fails the access. Delivering the
// fault through the interrupt vector is not implemented; IntCause and
// IntBase exist so kernel code can be written against them.
func (c *CPU) pageFault(addr VirtualMemoryAddress, segment Segment) error {
	c.intCause = addr.Word()
	return &MemoryAccessError{PC: c.pc}
}
