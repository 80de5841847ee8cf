// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/pickle16/pickle16/arch"
)

// Virtual address geometry: a 16-bit virtual address is a 6-bit page number
// and a 10-bit page offset. The page table is indexed by 6-bit context id,
// 1-bit segment and 6-bit page number. Physical addresses are 24 bits: a
// 14-bit frame number and the 10-bit offset.
const (
	PageOffsetBits  = 10
	PageNumberBits  = 6
	FrameNumberBits = 14
	ContextIDBits   = 6

	PageTableIndexBits = ContextIDBits + 1 + PageNumberBits
	PageTableSize      = 1 << PageTableIndexBits

	pageOffsetMask  = 1<<PageOffsetBits - 1
	pageNumberMask  = 1<<PageNumberBits - 1
	frameNumberMask = 1<<FrameNumberBits - 1
	contextIDMask   = 1<<ContextIDBits - 1
)

// CpuStatus is the unpacked CpuStatus control register. Only the low three
// bits of the word form are meaningful; the rest are reserved and must be
// zero.
type CpuStatus struct {
	InterruptEnabled bool
	KernelMode       bool
	MmuEnabled       bool
}

const cpuStatusMask arch.Word = 0x0007

// Word packs the status into its register representation.
func (s CpuStatus) Word() arch.Word {
	var w arch.Word
	if s.InterruptEnabled {
		w |= 1
	}
	if s.KernelMode {
		w |= 1 << 1
	}
	if s.MmuEnabled {
		w |= 1 << 2
	}
	return w
}

// CpuStatusFromWord unpacks a status word, failing if any reserved bit is
// set.
func CpuStatusFromWord(w arch.Word) (CpuStatus, error) {
	if w&^cpuStatusMask != 0 {
		return CpuStatus{}, &ReservedBitError{Type: "CpuStatus", Value: w}
	}
	return CpuStatus{
		InterruptEnabled: w&1 != 0,
		KernelMode:       w&(1<<1) != 0,
		MmuEnabled:       w&(1<<2) != 0,
	}, nil
}

// A VirtualMemoryAddress is a 16-bit address split into page number and
// offset.
type VirtualMemoryAddress struct {
	PageNumber arch.Word // 6 bits
	Offset     arch.Word // 10 bits
}

// VirtualAddressFromWord splits an address word. Total: every word is a
// valid virtual address.
func VirtualAddressFromWord(w arch.Word) VirtualMemoryAddress {
	return VirtualMemoryAddress{
		PageNumber: w >> PageOffsetBits,
		Offset:     w & pageOffsetMask,
	}
}

// Word reassembles the address word.
func (a VirtualMemoryAddress) Word() arch.Word {
	return a.PageNumber<<PageOffsetBits | a.Offset
}

func (a VirtualMemoryAddress) String() string {
	return fmt.Sprintf("%#06x", a.Word())
}

// A Segment selects one of the two virtual segments.
type Segment uint8

const (
	SegmentData Segment = iota
	SegmentProgram
)

func (s Segment) String() string {
	if s == SegmentProgram {
		return "program"
	}
	return "data"
}

// A PhysicalMemoryAddress is a 24-bit address split into frame number and
// offset.
type PhysicalMemoryAddress struct {
	FrameNumber uint32 // 14 bits
	Offset      arch.Word
}

// PhysicalAddressFromUint32 splits a 24-bit physical address. Values above
// 24 bits are rejected.
func PhysicalAddressFromUint32(v uint32) (PhysicalMemoryAddress, error) {
	if v >= 1<<(FrameNumberBits+PageOffsetBits) {
		return PhysicalMemoryAddress{}, &ReservedBitError{Type: "PhysicalMemoryAddress", Value: arch.Word(v)}
	}
	return PhysicalMemoryAddress{
		FrameNumber: v >> PageOffsetBits,
		Offset:      arch.Word(v & pageOffsetMask),
	}, nil
}

// Uint32 reassembles the 24-bit address.
func (a PhysicalMemoryAddress) Uint32() uint32 {
	return a.FrameNumber<<PageOffsetBits | uint32(a.Offset)
}

func (a PhysicalMemoryAddress) String() string {
	return fmt.Sprintf("%#09x", a.Uint32())
}

// A PageTableIndex addresses one page table record: context id, segment and
// page number packed into 13 bits.
type PageTableIndex struct {
	ContextID  arch.Word // 6 bits
	Segment    Segment
	PageNumber arch.Word // 6 bits
}

// Index returns the flat table index.
func (i PageTableIndex) Index() int {
	return int(i.ContextID)<<(PageNumberBits+1) |
		int(i.Segment)<<PageNumberBits |
		int(i.PageNumber)
}

// PageTableIndexFromWord unpacks a 13-bit index word. Values with bits
// above the index width set are rejected.
func PageTableIndexFromWord(w arch.Word) (PageTableIndex, error) {
	if w >= PageTableSize {
		return PageTableIndex{}, &ReservedBitError{Type: "PageTableIndex", Value: w}
	}
	return PageTableIndex{
		ContextID:  w >> (PageNumberBits + 1),
		Segment:    Segment(w >> PageNumberBits & 1),
		PageNumber: w & pageNumberMask,
	}, nil
}

// A PageTableRecord is one entry of the page table. The word form is
// readable(15) | writable(14) | frame_number(13..0), so every word is a
// valid record.
type PageTableRecord struct {
	Readable    bool
	Writable    bool
	FrameNumber uint32 // 14 bits
}

// PageTableRecordFromWord unpacks a record as written to MMUData.
func PageTableRecordFromWord(w arch.Word) PageTableRecord {
	return PageTableRecord{
		Readable:    w&(1<<15) != 0,
		Writable:    w&(1<<14) != 0,
		FrameNumber: uint32(w & frameNumberMask),
	}
}

// Word packs the record for reading back through MMUData.
func (r PageTableRecord) Word() arch.Word {
	var w arch.Word
	if r.Readable {
		w |= 1 << 15
	}
	if r.Writable {
		w |= 1 << 14
	}
	return w | arch.Word(r.FrameNumber&frameNumberMask)
}
