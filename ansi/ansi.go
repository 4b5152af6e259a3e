// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ansi renders colors from [lumen] as 24-bit terminal escape
// sequences. It is pure formatting over the values the numeric core
// produces; the profile is pinned to true color so the output does not
// depend on the ambient terminal.
package ansi

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/lumencolor/lumen"
	"github.com/lumencolor/lumen/cie"
)

const profile = termenv.TrueColor

// midGrayLuminance is the relative luminance of the mid encoded gray,
// the border between backgrounds that need a white foreground and ones
// that need black.
var midGrayLuminance = cie.SRGBToLinearComp(0.5)

// hex returns the 6-digit hex form of c that termenv colors parse.
// Alpha is dropped; terminals have no use for it.
func hex(c lumen.SRGB) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}

// Fg returns text with c as its 24-bit foreground color, followed by a
// reset sequence.
func Fg(c lumen.SRGB, text string) string {
	return profile.String(text).Foreground(profile.Color(hex(c))).String()
}

// Bg returns text with c as its 24-bit background color, followed by a
// reset sequence. The foreground is set to white or black, whichever
// contrasts more with c's relative luminance.
func Bg(c lumen.SRGB, text string) string {
	s := profile.String(text).Background(profile.Color(hex(c)))
	if lumen.Luminance(c) < midGrayLuminance {
		s = s.Foreground(profile.Color("#ffffff"))
	} else {
		s = s.Foreground(profile.Color("#000000"))
	}
	return s.String()
}

// Swatch returns a small color block for previewing c in a terminal.
func Swatch(c lumen.SRGB) string {
	return Bg(c, "    ")
}
