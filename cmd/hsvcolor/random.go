// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/hsv/base/randx"
	"cogentcore.org/hsv/colors"
	"github.com/spf13/cobra"
)

func newRandomCmd(flags *rootFlags) *cobra.Command {
	var seed int64
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("invalid count %d: must be >= 0", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = flags.cfg.Seed
			}
			var rnd []randx.Rand
			if seed != 0 {
				rnd = append(rnd, randx.NewSysRand(seed))
			}
			cs := make([]*colors.Color, count)
			for i := range cs {
				cs[i] = colors.Random(rnd...)
			}
			return flags.print(cmd.OutOrStdout(), cs...)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "the random seed; 0 uses the global source")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "the number of colors to print")

	return cmd
}
