// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"

	"github.com/lumencolor/lumen"
)

// ColorInfo is a one-line summary of a color: its sRGB bytes, HSV
// form, relative luminance, and shade analysis.
type ColorInfo struct {
	Color  lumen.SRGB
	HSV    lumen.HSV
	Lum    float32
	Shades []lumen.ShadeWeight
}

// Info summarizes c.
func Info(c lumen.SRGB) ColorInfo {
	return ColorInfo{
		Color:  c,
		HSV:    lumen.ToHSV(c),
		Lum:    lumen.Luminance(c),
		Shades: lumen.Shades(c),
	}
}

func (ci ColorInfo) String() string {
	rgba := ci.Color.AsRGBA()
	var b strings.Builder
	fmt.Fprintf(&b, "sRGB: (%3d, %3d, %3d), HSV: (%s), lum: %3.0f%%, ",
		rgba.R, rgba.G, rgba.B, ci.HSV, ci.Lum*100)

	switch len(ci.Shades) {
	case 0:
		b.WriteString("is a shade of nothing")
	case 1:
		fmt.Fprintf(&b, "is a shade of %s", ci.Shades[0].Color)
	default:
		b.WriteString("is shades of ")
		for i, s := range ci.Shades {
			switch {
			case i == 0:
			case i == len(ci.Shades)-1:
				b.WriteString(" and ")
			default:
				b.WriteString(", ")
			}
			b.WriteString(s.Color.String())
		}
	}
	b.WriteString(".")
	return b.String()
}
