// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package monitor implements a line-oriented machine monitor for the
// pickle16 emulator: step the CPU, inspect registers and memory, and
// disassemble, from an interactive prompt.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/pickle16/pickle16/arch"
	"github.com/pickle16/pickle16/cpu"
	"github.com/pickle16/pickle16/disasm"
)

var errQuit = errors.New("quit")

// A Monitor drives one CPU and its memory from a command stream.
type Monitor struct {
	cpu     *cpu.CPU
	mem     cpu.PhysicalMemory
	input   *bufio.Scanner
	output  *bufio.Writer
	lastCmd *cmd.Selection
	halted  bool
}

// New creates a monitor for the given CPU and memory.
func New(c *cpu.CPU, mem cpu.PhysicalMemory) *Monitor {
	return &Monitor{cpu: c, mem: mem}
}

// RunCommands reads commands from r and writes results to w. When
// interactive, a prompt is displayed. An empty line repeats the previous
// command, which makes single-stepping pleasant.
func (m *Monitor) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	m.input = bufio.NewScanner(r)
	m.output = bufio.NewWriter(w)

	for {
		if interactive {
			m.printf("* ")
			m.flush()
		}
		if !m.input.Scan() {
			break
		}
		if err := m.processCommand(strings.TrimSpace(m.input.Text())); err != nil {
			if err == errQuit {
				break
			}
			m.printf("ERROR: %v\n", err)
		}
	}
	m.flush()
}

func (m *Monitor) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			m.printf("Command not found.\n")
			return nil
		case err == cmd.ErrAmbiguous:
			m.printf("Command is ambiguous.\n")
			return nil
		case err != nil:
			return err
		}
	} else if m.lastCmd != nil {
		c = *m.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		m.displayCommands(c.Command.Subtree)
		return nil
	}

	m.lastCmd = &c

	handler := c.Command.Data.(func(*Monitor, cmd.Selection) error)
	err := handler(m, c)
	m.flush()
	return err
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.output, format, args...)
}

func (m *Monitor) flush() {
	m.output.Flush()
}

func (m *Monitor) displayCommands(tree *cmd.Tree) {
	m.printf("%s commands:\n", tree.Title)
	for _, c := range tree.Commands {
		if c.Brief != "" {
			m.printf("    %-10s  %s\n", c.Name, c.Brief)
		}
	}
}

func (m *Monitor) cmdHelp(c cmd.Selection) error {
	m.displayCommands(cmds)
	return nil
}

func (m *Monitor) cmdQuit(c cmd.Selection) error {
	return errQuit
}

func (m *Monitor) cmdReset(c cmd.Selection) error {
	m.cpu.Reset()
	m.halted = false
	m.printf("CPU reset.\n")
	return nil
}

// cmdStep executes n microcode steps (default 1), stopping on any CPU
// error.
func (m *Monitor) cmdStep(c cmd.Selection) error {
	n := int64(1)
	if len(c.Args) > 0 {
		var err error
		n, err = strconv.ParseInt(c.Args[0], 0, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid step count %q", c.Args[0])
		}
	}
	for i := int64(0); i < n && !m.halted; i++ {
		if err := m.cpu.Step(m.mem); err != nil {
			m.reportStop(err)
			break
		}
	}
	m.showRegisters()
	return nil
}

// cmdRun executes until the CPU stops or the step budget runs out.
func (m *Monitor) cmdRun(c cmd.Selection) error {
	budget := int64(1_000_000)
	if len(c.Args) > 0 {
		var err error
		budget, err = strconv.ParseInt(c.Args[0], 0, 63)
		if err != nil || budget < 1 {
			return fmt.Errorf("invalid step budget %q", c.Args[0])
		}
	}
	if m.halted {
		m.printf("Machine is halted; use reset.\n")
		return nil
	}
	steps := int64(0)
	for ; steps < budget; steps++ {
		if err := m.cpu.Step(m.mem); err != nil {
			m.reportStop(err)
			break
		}
	}
	m.printf("Executed %d steps.\n", steps)
	m.showRegisters()
	return nil
}

func (m *Monitor) reportStop(err error) {
	if err == cpu.ErrBreak {
		m.halted = true
		m.printf("Break at pc=%#06x.\n", m.cpu.PC())
		return
	}
	m.printf("CPU stopped: %v\n", err)
}

func (m *Monitor) cmdRegisters(c cmd.Selection) error {
	m.showRegisters()
	return nil
}

func (m *Monitor) showRegisters() {
	m.printf("pc=%04x step=%d next=%04x", m.cpu.PC(), m.cpu.StepIndex(), m.cpu.NextInstruction())
	for i := arch.Gpr(0); i < 8; i++ {
		m.printf(" r%d=%04x", i, m.cpu.GetGpr(i))
	}
	m.printf("\n")
}

// cmdRegister displays one register by (possibly abbreviated) name.
func (m *Monitor) cmdRegister(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return errors.New("usage: reg <name>")
	}
	read, err := registers.Find(strings.ToLower(c.Args[0]))
	if err != nil {
		return fmt.Errorf("unknown register %q", c.Args[0])
	}
	m.printf("%s = %04x\n", c.Args[0], read(m.cpu))
	return nil
}

// cmdMemory dumps words at a physical address.
func (m *Monitor) cmdMemory(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return errors.New("usage: mem <addr> [count]")
	}
	addr, err := strconv.ParseUint(c.Args[0], 0, 24)
	if err != nil {
		return fmt.Errorf("invalid address %q", c.Args[0])
	}
	count := uint64(8)
	if len(c.Args) > 1 {
		count, err = strconv.ParseUint(c.Args[1], 0, 16)
		if err != nil {
			return fmt.Errorf("invalid count %q", c.Args[1])
		}
	}
	for i := uint64(0); i < count; i++ {
		v, ok := m.mem.Read(uint32(addr + i))
		if !ok {
			m.printf("%06x: <unmapped>\n", addr+i)
			continue
		}
		m.printf("%06x: %04x\n", addr+i, v)
	}
	return nil
}

// cmdDisassemble decodes words at a physical address.
func (m *Monitor) cmdDisassemble(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return errors.New("usage: dis <addr> [count]")
	}
	addr, err := strconv.ParseUint(c.Args[0], 0, 24)
	if err != nil {
		return fmt.Errorf("invalid address %q", c.Args[0])
	}
	count := uint64(8)
	if len(c.Args) > 1 {
		count, err = strconv.ParseUint(c.Args[1], 0, 16)
		if err != nil {
			return fmt.Errorf("invalid count %q", c.Args[1])
		}
	}
	words := make([]arch.Word, 0, count)
	for i := uint64(0); i < count; i++ {
		v, ok := m.mem.Read(uint32(addr + i))
		if !ok {
			break
		}
		words = append(words, v)
	}
	disasm.Print(m.output, words, arch.Word(addr))
	return nil
}
