// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p16emu boots a pickle16 system from an Intel-HEX ROM image and runs it
// until the machine breaks or fails.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pickle16/pickle16/arch"
	"github.com/pickle16/pickle16/cpu"
	"github.com/pickle16/pickle16/image"
	"github.com/pickle16/pickle16/mem"
	"github.com/pickle16/pickle16/monitor"
)

const ramWords = 1 << 20 // 1 MiW to start

func main() {
	var randomize bool
	var seed int64
	var maxSteps int64
	var interactive bool

	root := &cobra.Command{
		Use:          "p16emu <rom.hex>",
		Short:        "pickle16 emulator",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := image.Load(args[0])
			if err != nil {
				return err
			}
			bus := mem.NewBus(mem.NewRAM(ramWords), mem.NewROM(rom))

			var c *cpu.CPU
			if randomize {
				c = cpu.NewRandomized(seed)
			} else {
				c = cpu.New()
			}

			if interactive {
				monitor.New(c, bus).RunCommands(os.Stdin, os.Stdout, true)
				return nil
			}
			return run(c, bus, maxSteps)
		},
	}
	root.Flags().BoolVar(&randomize, "randomize", false, "start from randomized CPU state")
	root.Flags().Int64Var(&seed, "seed", 0, "seed for --randomize")
	root.Flags().Int64Var(&maxSteps, "max-steps", 0, "stop after this many microcode steps (0 = no limit)")
	root.Flags().BoolVar(&interactive, "monitor", false, "start the interactive monitor instead of running")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(c *cpu.CPU, bus *mem.Bus, maxSteps int64) error {
	steps := int64(0)
	for maxSteps == 0 || steps < maxSteps {
		err := c.Step(bus)
		steps++
		if err == nil {
			continue
		}
		if errors.Is(err, cpu.ErrBreak) {
			fmt.Printf("Machine halted after %d steps.\n", steps)
			printState(c)
			return nil
		}
		printState(c)
		return err
	}
	return fmt.Errorf("step budget of %d exhausted", maxSteps)
}

func printState(c *cpu.CPU) {
	fmt.Printf("pc=%04x step=%d next=%04x\n", c.PC(), c.StepIndex(), c.NextInstruction())
	for i := arch.Gpr(1); i < 8; i++ {
		fmt.Printf("r%d=%04x ", i, c.GetGpr(i))
	}
	fmt.Println()
}
