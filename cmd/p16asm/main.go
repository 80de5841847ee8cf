// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p16asm assembles pickle16 source files into an Intel-HEX image.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pickle16/pickle16/asm"
	"github.com/pickle16/pickle16/image"
)

func main() {
	var output string
	var verbose bool

	root := &cobra.Command{
		Use:           "p16asm [-o out.hex] <file>...",
		Short:         "pickle16 assembler",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := asm.AssembleFiles(args, verbose, os.Stderr)
			if err != nil {
				return err
			}
			return image.Save(output, result.Image)
		},
	}
	root.Flags().StringVarP(&output, "output", "o", "out.hex", "output image file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace the assembly")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
