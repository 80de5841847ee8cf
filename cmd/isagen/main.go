// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// isagen regenerates the Go sources derived from the instruction set
// definition. It is normally run through go generate in the arch package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"

	"github.com/pickle16/pickle16/codegen"
	"github.com/pickle16/pickle16/isa"
)

func main() {
	def := flag.String("def", "isa/pickle16.json5", "instruction set definition file")
	archDir := flag.String("arch", "arch", "output directory for the arch package")
	cpuDir := flag.String("cpu", "cpu", "output directory for the cpu package")
	asmDir := flag.String("asm", "asm", "output directory for the asm package")
	flag.Parse()

	if err := run(*def, *archDir, *cpuDir, *asmDir); err != nil {
		fmt.Fprintf(os.Stderr, "isagen: %v\n", err)
		os.Exit(1)
	}
}

func run(def, archDir, cpuDir, asmDir string) error {
	set, err := isa.Load(def)
	if err != nil {
		return err
	}

	outputs := []struct {
		path     string
		generate func(*isa.InstructionSet, io.Writer) error
	}{
		{filepath.Join(archDir, "instruction_gen.go"), codegen.GenerateInstructions},
		{filepath.Join(cpuDir, "microcode_gen.go"), codegen.GenerateMicrocode},
		{filepath.Join(asmDir, "parse_gen.go"), codegen.GenerateParse},
	}
	for _, out := range outputs {
		var buf bytes.Buffer
		if err := out.generate(set, &buf); err != nil {
			return err
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("%s: %w", out.path, err)
		}
		if err := os.WriteFile(out.path, src, 0666); err != nil {
			return err
		}
	}
	return nil
}
