// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lumeninfo prints the colors of a palette file with ANSI swatches and
// a summary line per color. With no argument it prints the web color
// names.
//
// Usage:
//
//	lumeninfo             - print the SVG 1.1 web colors
//	lumeninfo colors.txt  - print a palette in the line format
//	lumeninfo colors.toml - print a palette in the TOML format
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lumencolor/lumen/ansi"
	"github.com/lumencolor/lumen/palette"
)

var rootCmd = &cobra.Command{
	Use:   "lumeninfo [palette-file]",
	Short: "Print palette colors with ANSI swatches",
	Long: `lumeninfo prints every color of a palette file with a terminal color
swatch, its sRGB and HSV values, its relative luminance, and the base
colors it reads as. The file format is chosen by extension (.toml for
TOML, the line format otherwise); with no file, the SVG 1.1 web color
names are printed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pal := palette.Web()
		if len(args) == 1 {
			var err error
			pal, err = palette.Open(args[0])
			if err != nil {
				return err
			}
		}
		printPalette(pal)
		return nil
	},
}

func printPalette(pal *palette.Palette) {
	for _, set := range pal.Sets() {
		fmt.Printf("Colorset %q:\n", set.Name)
		for _, c := range set.Colors {
			name, _ := pal.Name(c)
			fmt.Printf("  %s %-22s %s\n", ansi.Swatch(c), "'"+name+"':", palette.Info(c))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
