// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"fmt"

	"github.com/pickle16/pickle16/arch"
	"github.com/pickle16/pickle16/cpu"
)

// Fixed physical address map. The lower half of the 24-bit space belongs
// to RAM; the upper half is divided into eight 1 MiW device windows, the
// first of which holds the boot ROM. Attach accepts device indices up to
// NumDevices-1, but windows 8 and above lie beyond the 24-bit space, so
// Read and Write never reach them.
//
//	0x000000 - 0x7fffff  RAM
//	0x800000 - 0x8fffff  ROM (device 0)
//	0x900000 - 0x9fffff  device 1
//	...
//	0xf00000 - 0xffffff  device 7
const (
	DeviceBase   = 0x800000
	DeviceWindow = 0x100000
	NumDevices   = 16
)

// A Bus routes physical addresses to the RAM or to one of the device
// windows. Windows are disjoint by construction, so mappings cannot
// overlap; addresses inside an unbound window are unmapped.
type Bus struct {
	ram     *RAM
	devices [NumDevices]cpu.PhysicalMemory
}

// NewBus creates a bus with the given RAM and boot ROM (device 0).
func NewBus(ram *RAM, rom *ROM) *Bus {
	b := &Bus{ram: ram}
	b.devices[0] = rom
	return b
}

// Attach binds a device window. Device 0 is the boot ROM; rebinding it or
// using an out-of-range index is an error.
func (b *Bus) Attach(device int, m cpu.PhysicalMemory) error {
	if device <= 0 || device >= NumDevices {
		return fmt.Errorf("device index %d out of range", device)
	}
	if b.devices[device] != nil {
		return fmt.Errorf("device %d already attached", device)
	}
	if m.MaxAddress() >= DeviceWindow {
		return fmt.Errorf("device %d larger than its window", device)
	}
	b.devices[device] = m
	return nil
}

// MaxAddress returns the top of the physical address space. Not every
// address below it is mapped.
func (b *Bus) MaxAddress() uint32 {
	return 1<<24 - 1
}

// Read routes a load to the owning device.
func (b *Bus) Read(addr uint32) (arch.Word, bool) {
	if addr < DeviceBase {
		return b.ram.Read(addr)
	}
	device := (addr - DeviceBase) / DeviceWindow
	if b.devices[device] == nil {
		return 0, false
	}
	return b.devices[device].Read(addr % DeviceWindow)
}

// Write routes a store to the owning device.
func (b *Bus) Write(addr uint32, v arch.Word) bool {
	if addr < DeviceBase {
		return b.ram.Write(addr, v)
	}
	device := (addr - DeviceBase) / DeviceWindow
	if b.devices[device] == nil {
		return false
	}
	return b.devices[device].Write(addr%DeviceWindow, v)
}
