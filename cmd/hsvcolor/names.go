// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/hsv/base/errors"
	"cogentcore.org/hsv/colors"
	"github.com/spf13/cobra"
)

func newNamesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List all of the named colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := colors.Names()
			docs := make([]colorDoc, len(names))
			for i, name := range names {
				docs[i] = newColorDoc(errors.Must1(colors.FromName(name)))
				docs[i].Name = name
			}
			return flags.printDocs(cmd.OutOrStdout(), docs)
		},
	}
}
