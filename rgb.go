// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lumencolor/lumen/cie"
)

// RGB is an RGB color with a straight (non-premultiplied) alpha
// channel, tagged at the type level with its colorspace S. The color
// channels are normalized to [0, 1] in the encoding of S; alpha is
// colorspace-independent.
type RGB[S Space] struct {
	R, G, B, A float32
}

// SRGB is a gamma-encoded sRGB color.
type SRGB = RGB[SRGBSpace]

// LinRGB is a linear-light RGB color.
type LinRGB = RGB[LinearSpace]

// New returns an opaque color in the colorspace S with the given
// channel values, clamped to [0, 1].
func New[S Space](r, g, b float32) RGB[S] {
	return NewA[S](r, g, b, 1)
}

// NewA returns a color in the colorspace S with the given channel and
// alpha values, all clamped to [0, 1].
func NewA[S Space](r, g, b, a float32) RGB[S] {
	return RGB[S]{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// Convert converts c into the colorspace To, applying the transfer
// curve to each color channel and copying alpha unchanged. Converting
// a color to its own colorspace returns it unchanged.
func Convert[To, From Space](c RGB[From]) RGB[To] {
	var from From
	if _, same := any(from).(To); same {
		return RGB[To]{c.R, c.G, c.B, c.A}
	}
	var to To
	return RGB[To]{
		R: to.fromLinear(from.toLinear(c.R)),
		G: to.fromLinear(from.toLinear(c.G)),
		B: to.fromLinear(from.toLinear(c.B)),
		A: c.A,
	}
}

// AsLinear returns c converted to the linear colorspace.
func (c RGB[S]) AsLinear() LinRGB {
	return Convert[LinearSpace](c)
}

// AsSRGB returns c converted to the gamma-encoded sRGB colorspace.
func (c RGB[S]) AsSRGB() SRGB {
	return Convert[SRGBSpace](c)
}

// WithAlpha returns c with its alpha set to a, clamped to [0, 1].
func (c RGB[S]) WithAlpha(a float32) RGB[S] {
	c.A = clamp01(a)
	return c
}

// RGBA implements [color.Color]. The returned values are
// alpha-premultiplied and gamma-encoded, regardless of c's colorspace.
func (c RGB[S]) RGBA() (r, g, b, a uint32) {
	e := c.AsSRGB()
	r = uint32(e.R*e.A*65535 + 0.5)
	g = uint32(e.G*e.A*65535 + 0.5)
	b = uint32(e.B*e.A*65535 + 0.5)
	a = uint32(e.A*65535 + 0.5)
	return
}

// AsRGBA returns the standard 8-bit alpha-premultiplied [color.RGBA]
// form of c, gamma-encoded.
func (c RGB[S]) AsRGBA() color.RGBA {
	e := c.AsSRGB()
	r, g, b, a := cie.SRGBFloatToUint8(e.R, e.G, e.B, e.A)
	return color.RGBA{r, g, b, a}
}

// String returns a CSS-like representation of c, such as
// "color(srgb 1 0 0)", including alpha only when not fully opaque.
func (c RGB[S]) String() string {
	var s S
	if c.A < 1 {
		return fmt.Sprintf("color(%s %.4g %.4g %.4g / %.4g)", s.name(), c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("color(%s %.4g %.4g %.4g)", s.name(), c.R, c.G, c.B)
}

// FromColor returns the gamma-encoded sRGB form of any [color.Color],
// un-premultiplying the alpha.
func FromColor(ci color.Color) SRGB {
	if c, ok := ci.(SRGB); ok {
		return c
	}
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return SRGB{}
	}
	fa := float32(a) / 65535
	return SRGB{
		R: float32(r) / 65535 / fa,
		G: float32(g) / 65535 / fa,
		B: float32(b) / 65535 / fa,
		A: fa,
	}
}

// FromRGB returns an opaque sRGB color from 8-bit channel values.
func FromRGB(r, g, b uint8) SRGB {
	return SRGB{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// FromRGBA returns an sRGB color from 8-bit channel values with a
// straight (non-premultiplied) 8-bit alpha.
func FromRGBA(r, g, b, a uint8) SRGB {
	return SRGB{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Model converts any [color.Color] to the [SRGB] type.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// FromHex parses a hex color string into an sRGB color. It accepts 3-,
// 6-, and 8-digit forms, with or without a leading #: "F5A" (each
// digit doubled), "RRGGBB", and "RRGGBBAA".
func FromHex(hex string) (SRGB, error) {
	h := strings.TrimPrefix(hex, "#")
	var b []byte
	switch len(h) {
	case 3:
		b = []byte{h[0], h[0], h[1], h[1], h[2], h[2], 'f', 'f'}
	case 6:
		b = append([]byte(h), 'f', 'f')
	case 8:
		b = []byte(h)
	default:
		return SRGB{}, fmt.Errorf("lumen.FromHex: invalid length for hex color %q", hex)
	}
	v, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return SRGB{}, fmt.Errorf("lumen.FromHex: invalid hex color %q: %w", hex, err)
	}
	return FromRGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// AsHex returns the hex string form of any [color.Color], with a
// leading # and a trailing alpha byte only when not fully opaque.
func AsHex(ci color.Color) string {
	c := FromColor(ci)
	r, g, b := uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5)
	if c.A < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, uint8(c.A*255+0.5))
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Add returns the channelwise sum of two linear colors, clamped to
// gamut. The alpha of a is kept.
func Add(a, b LinRGB) LinRGB {
	return NewA[LinearSpace](a.R+b.R, a.G+b.G, a.B+b.B, a.A)
}

// Sub returns the channelwise difference of two linear colors, clamped
// to gamut. The alpha of a is kept.
func Sub(a, b LinRGB) LinRGB {
	return NewA[LinearSpace](a.R-b.R, a.G-b.G, a.B-b.B, a.A)
}

// Mul returns the channelwise product of two linear colors. The alpha
// of a is kept.
func Mul(a, b LinRGB) LinRGB {
	return NewA[LinearSpace](a.R*b.R, a.G*b.G, a.B*b.B, a.A)
}

// MulScalar returns c with each color channel multiplied by s and
// clamped to gamut. Alpha is kept.
func MulScalar(c LinRGB, s float32) LinRGB {
	return NewA[LinearSpace](c.R*s, c.G*s, c.B*s, c.A)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
