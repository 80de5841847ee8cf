// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mem provides the physical memory devices of a pickle16 system:
// word-addressed RAM, boot ROM, and the system bus that routes 24-bit
// physical addresses to devices.
package mem

import "github.com/pickle16/pickle16/arch"

// RAM is a flat read/write word memory starting at address zero of its
// window.
type RAM struct {
	data []arch.Word
}

// NewRAM creates a RAM holding size words.
func NewRAM(size uint32) *RAM {
	return &RAM{data: make([]arch.Word, size)}
}

// MaxAddress returns the highest backed address.
func (m *RAM) MaxAddress() uint32 {
	return uint32(len(m.data) - 1)
}

// Read loads the word at addr. Reads beyond the backing store are
// unmapped.
func (m *RAM) Read(addr uint32) (arch.Word, bool) {
	if addr >= uint32(len(m.data)) {
		return 0, false
	}
	return m.data[addr], true
}

// Write stores a word at addr.
func (m *RAM) Write(addr uint32, v arch.Word) bool {
	if addr >= uint32(len(m.data)) {
		return false
	}
	m.data[addr] = v
	return true
}

// ROM is a flat read-only word memory. Writes report an unmapped access.
type ROM struct {
	data []arch.Word
}

// NewROM creates a ROM over the given image.
func NewROM(image []arch.Word) *ROM {
	return &ROM{data: image}
}

// MaxAddress returns the highest backed address.
func (m *ROM) MaxAddress() uint32 {
	return uint32(len(m.data) - 1)
}

// Read loads the word at addr.
func (m *ROM) Read(addr uint32) (arch.Word, bool) {
	if addr >= uint32(len(m.data)) {
		return 0, false
	}
	return m.data[addr], true
}

// Write always fails; the ROM is not writable.
func (m *ROM) Write(addr uint32, v arch.Word) bool {
	return false
}
