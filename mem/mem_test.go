// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"testing"

	"github.com/pickle16/pickle16/arch"
)

func TestRAMReadWrite(t *testing.T) {
	ram := NewRAM(16)
	if !ram.Write(3, 0x1234) {
		t.Fatal("write failed")
	}
	if v, ok := ram.Read(3); !ok || v != 0x1234 {
		t.Errorf("read = %#06x, %v", v, ok)
	}
	if _, ok := ram.Read(16); ok {
		t.Error("read past the end succeeded")
	}
	if ram.Write(16, 1) {
		t.Error("write past the end succeeded")
	}
	if ram.MaxAddress() != 15 {
		t.Errorf("MaxAddress = %d", ram.MaxAddress())
	}
}

func TestROMIsReadOnly(t *testing.T) {
	rom := NewROM([]arch.Word{0xaaaa, 0xbbbb})
	if v, ok := rom.Read(1); !ok || v != 0xbbbb {
		t.Errorf("read = %#06x, %v", v, ok)
	}
	if rom.Write(1, 0) {
		t.Error("ROM write succeeded")
	}
	if v, _ := rom.Read(1); v != 0xbbbb {
		t.Error("ROM content changed")
	}
}

func TestBusRouting(t *testing.T) {
	ram := NewRAM(0x1000)
	rom := NewROM([]arch.Word{0x1111, 0x2222})
	bus := NewBus(ram, rom)

	// RAM window.
	if !bus.Write(0x10, 0xbeef) {
		t.Fatal("RAM write through bus failed")
	}
	if v, ok := bus.Read(0x10); !ok || v != 0xbeef {
		t.Errorf("RAM read through bus = %#06x, %v", v, ok)
	}

	// ROM window at device 0.
	if v, ok := bus.Read(0x800001); !ok || v != 0x2222 {
		t.Errorf("ROM read through bus = %#06x, %v", v, ok)
	}
	if bus.Write(0x800001, 0) {
		t.Error("ROM write through bus succeeded")
	}

	// Holes: RAM beyond its backing store, unbound device windows.
	if _, ok := bus.Read(0x1000); ok {
		t.Error("read of unbacked RAM address succeeded")
	}
	if _, ok := bus.Read(0x900000); ok {
		t.Error("read of unbound device window succeeded")
	}
	if _, ok := bus.Read(0xffffff); ok {
		t.Error("read of device 7 window succeeded")
	}
}

func TestBusAttach(t *testing.T) {
	bus := NewBus(NewRAM(16), NewROM(nil))
	dev := NewRAM(0x100)
	if err := bus.Attach(3, dev); err != nil {
		t.Fatal(err)
	}
	if !bus.Write(0xb00005, 0x7777) {
		t.Fatal("device write failed")
	}
	if v, ok := bus.Read(0xb00005); !ok || v != 0x7777 {
		t.Errorf("device read = %#06x, %v", v, ok)
	}
	if v, _ := dev.Read(5); v != 0x7777 {
		t.Errorf("device cell = %#06x", v)
	}

	if err := bus.Attach(3, dev); err == nil {
		t.Error("double attach succeeded")
	}
	if err := bus.Attach(0, dev); err == nil {
		t.Error("attaching over the ROM succeeded")
	}
	if err := bus.Attach(16, dev); err == nil {
		t.Error("out of range attach succeeded")
	}
	if err := bus.Attach(4, NewRAM(DeviceWindow+1)); err == nil {
		t.Error("oversized device attach succeeded")
	}
}
