// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"

	"github.com/pickle16/pickle16/arch"
	"github.com/pickle16/pickle16/cpu"
)

var cmds *cmd.Tree

func init() {
	cmds = cmd.NewTree("pickle16")
	cmds.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for monitor commands.",
		Usage:       "help",
		Data:        (*Monitor).cmdHelp,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "step",
		Brief:       "Execute microcode steps",
		Description: "Execute one microcode step, or a count of steps.",
		Usage:       "step [<count>]",
		Data:        (*Monitor).cmdStep,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "run",
		Brief:       "Run until the machine stops",
		Description: "Run until break, an error, or the step budget is exhausted.",
		Usage:       "run [<max-steps>]",
		Data:        (*Monitor).cmdRun,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "registers",
		Brief:       "Display all registers",
		Description: "Display the program counter, step index and register file.",
		Usage:       "registers",
		Data:        (*Monitor).cmdRegisters,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "reg",
		Brief:       "Display one register",
		Description: "Display a register by name. Names may be abbreviated: r0-r7, pc, step, next, and control register names.",
		Usage:       "reg <name>",
		Data:        (*Monitor).cmdRegister,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "mem",
		Brief:       "Dump physical memory",
		Description: "Dump words starting at a 24-bit physical address.",
		Usage:       "mem <addr> [<count>]",
		Data:        (*Monitor).cmdMemory,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "dis",
		Brief:       "Disassemble physical memory",
		Description: "Disassemble words starting at a 24-bit physical address.",
		Usage:       "dis <addr> [<count>]",
		Data:        (*Monitor).cmdDisassemble,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Reset the CPU to its reboot state. Memory is untouched.",
		Usage:       "reset",
		Data:        (*Monitor).cmdReset,
	})
	cmds.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Leave the monitor",
		Description: "Leave the monitor.",
		Usage:       "quit",
		Data:        (*Monitor).cmdQuit,
	})
}

// registers resolves abbreviated register names to read accessors.
var registers = prefixtree.New[func(*cpu.CPU) arch.Word]()

func init() {
	for i := 0; i < 8; i++ {
		g := arch.Gpr(i)
		registers.Add(g.String(), func(c *cpu.CPU) arch.Word { return c.GetGpr(g) })
	}
	registers.Add("pc", (*cpu.CPU).PC)
	registers.Add("step", func(c *cpu.CPU) arch.Word { return arch.Word(c.StepIndex()) })
	registers.Add("next", (*cpu.CPU).NextInstruction)
	for cr := arch.AluStatus; cr <= arch.MMUData; cr++ {
		cr := cr
		registers.Add(strings.ToLower(cr.String()), func(c *cpu.CPU) arch.Word { return c.GetCr(cr) })
	}
}
