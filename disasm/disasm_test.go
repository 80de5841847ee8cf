// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pickle16/pickle16/arch"
)

func TestDisassemble(t *testing.T) {
	lines := Disassemble([]arch.Word{0x0000, 0xffff, 0xe000}, 0x10)
	if len(lines) != 3 {
		t.Fatalf("line count = %d", len(lines))
	}
	tests := []struct {
		addr arch.Word
		text string
	}{
		{0x10, "add r0, r0, r0"},
		{0x11, "break"},
		{0x12, "<invalid instruction>"},
	}
	for i, tt := range tests {
		if lines[i].Addr != tt.addr || lines[i].Text != tt.text {
			t.Errorf("line %d = %+v, want %#04x %q", i, lines[i], tt.addr, tt.text)
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, []arch.Word{0x1829}, 0)
	if !strings.Contains(buf.String(), "ldi r1, 5") {
		t.Errorf("output = %q", buf.String())
	}
}
