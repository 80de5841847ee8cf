// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// p16dis disassembles a pickle16 Intel-HEX image.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pickle16/pickle16/arch"
	"github.com/pickle16/pickle16/disasm"
	"github.com/pickle16/pickle16/image"
)

func main() {
	var base uint16

	root := &cobra.Command{
		Use:          "p16dis <image.hex>",
		Short:        "pickle16 disassembler",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := image.Load(args[0])
			if err != nil {
				return err
			}
			disasm.Print(os.Stdout, words, arch.Word(base))
			return nil
		},
	}
	root.Flags().Uint16Var(&base, "base", 0, "address of the image's first word")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
