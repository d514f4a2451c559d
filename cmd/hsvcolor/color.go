// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"cogentcore.org/hsv/colors"
	"github.com/spf13/cobra"
)

// transformFlags are the flags shared by the commands that build a
// single color. Each one that is set is applied in the order of
// the fields below, and the complement is taken last.
type transformFlags struct {
	red, green, blue       float64
	hue, saturation, value float64
	rotate                 float64
	saturate, desaturate   float64
	lighten, darken        float64
	complement             bool
}

func addTransformFlags(cmd *cobra.Command, tf *transformFlags) {
	fs := cmd.Flags()
	fs.Float64Var(&tf.red, "red", 0, "set the red component (0-255)")
	fs.Float64Var(&tf.green, "green", 0, "set the green component (0-255)")
	fs.Float64Var(&tf.blue, "blue", 0, "set the blue component (0-255)")
	fs.Float64Var(&tf.hue, "hue", 0, "set the hue (degrees)")
	fs.Float64Var(&tf.saturation, "saturation", 0, "set the saturation (0-100)")
	fs.Float64Var(&tf.value, "value", 0, "set the value (0-100)")
	fs.Float64Var(&tf.rotate, "rotate", 0, "rotate the hue by the given degrees")
	fs.Float64Var(&tf.saturate, "saturate", 0, "increase the saturation by the given amount")
	fs.Float64Var(&tf.desaturate, "desaturate", 0, "decrease the saturation by the given amount")
	fs.Float64Var(&tf.lighten, "lighten", 0, "increase the value by the given amount")
	fs.Float64Var(&tf.darken, "darken", 0, "decrease the value by the given amount")
	fs.BoolVar(&tf.complement, "complement", false, "replace the color with its complement")
}

// apply applies the transformations whose flags were set to c.
func (tf *transformFlags) apply(cmd *cobra.Command, c *colors.Color) error {
	steps := []struct {
		flag   string
		amount float64
		fun    func(float64) (*colors.Color, error)
	}{
		{"red", tf.red, c.SetRed},
		{"green", tf.green, c.SetGreen},
		{"blue", tf.blue, c.SetBlue},
		{"hue", tf.hue, c.SetHue},
		{"saturation", tf.saturation, c.SetSaturation},
		{"value", tf.value, c.SetValue},
		{"rotate", tf.rotate, c.RotateHue},
		{"saturate", tf.saturate, c.Saturate},
		{"desaturate", tf.desaturate, c.Desaturate},
		{"lighten", tf.lighten, c.Lighten},
		{"darken", tf.darken, c.Darken},
	}
	for _, st := range steps {
		if !cmd.Flags().Changed(st.flag) {
			continue
		}
		if _, err := st.fun(st.amount); err != nil {
			return fmt.Errorf("--%s: %w", st.flag, err)
		}
		slog.Debug("applied transformation", "flag", st.flag, "amount", st.amount, "color", c)
	}
	if tf.complement {
		c.Complement()
		slog.Debug("applied transformation", "flag", "complement", "color", c)
	}
	return nil
}

// newColorCmd returns a command that builds a color from its
// arguments with the given function, transforms it, and prints it.
func newColorCmd(flags *rootFlags, use, short string, nargs int, build func(args []string) (*colors.Color, error)) *cobra.Command {
	tf := &transformFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(args)
			if err != nil {
				return err
			}
			slog.Info("built color", "args", args, "color", c)
			if err := tf.apply(cmd, c); err != nil {
				return err
			}
			return flags.print(cmd.OutOrStdout(), c)
		},
	}
	addTransformFlags(cmd, tf)
	return cmd
}

func newHexCmd(flags *rootFlags) *cobra.Command {
	return newColorCmd(flags, "hex <hex>", "Print the color with the given 3 or 6 digit hex code", 1,
		func(args []string) (*colors.Color, error) {
			return colors.FromHex(args[0])
		})
}

func newRGBCmd(flags *rootFlags) *cobra.Command {
	return newColorCmd(flags, "rgb <red> <green> <blue>", "Print the color with the given RGB components", 3,
		func(args []string) (*colors.Color, error) {
			v, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			return colors.FromRGB(v[0], v[1], v[2])
		})
}

func newHSVCmd(flags *rootFlags) *cobra.Command {
	return newColorCmd(flags, "hsv <hue> <saturation> <value>", "Print the color with the given HSV components", 3,
		func(args []string) (*colors.Color, error) {
			v, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			return colors.FromHSV(v[0], v[1], v[2])
		})
}

func newNameCmd(flags *rootFlags) *cobra.Command {
	return newColorCmd(flags, "name <name>", "Print the named color, e.g. cornflowerBlue", 1,
		func(args []string) (*colors.Color, error) {
			return colors.FromName(args[0])
		})
}

func parseFloats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		v[i] = f
	}
	return v, nil
}
