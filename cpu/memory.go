// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "github.com/pickle16/pickle16/arch"

// The PhysicalMemory interface presents physical memory to the CPU. All
// memory accesses the microcode performs go through it, after address
// translation.
//
// Addresses are 24 bits wide. Read and Write report false when the access
// is not mapped for some reason (a hole in the address space, or writing
// ROM); the CPU turns that into a NonMappedPhysicalMemoryError.
type PhysicalMemory interface {
	// MaxAddress returns the highest address the device answers for.
	MaxAddress() uint32

	// Read loads the word at the address.
	Read(addr uint32) (arch.Word, bool)

	// Write stores a word at the address.
	Write(addr uint32, v arch.Word) bool
}
