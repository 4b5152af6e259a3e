// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// HSV is a hue, saturation, value color with a straight alpha channel.
// Hue is in degrees [0, 360) and wraps; the other channels are
// normalized to [0, 1].
//
// HSV is by convention defined over gamma-encoded sRGB values only, as
// in terminals and design tools, so it carries no colorspace tag:
// conversions to and from [RGB] always go through [SRGB].
type HSV struct {
	H, S, V, A float32
}

// NewHSV returns an opaque HSV color. Hue is wrapped into [0, 360);
// saturation and value are clamped to [0, 1].
func NewHSV(h, s, v float32) HSV {
	return NewHSVA(h, s, v, 1)
}

// NewHSVA returns an HSV color with the given straight alpha. Hue is
// wrapped into [0, 360); the other channels are clamped to [0, 1].
func NewHSVA(h, s, v, a float32) HSV {
	return HSV{wrapHue(h), clamp01(s), clamp01(v), clamp01(a)}
}

// Normalize returns h in canonical form: black (value 0) has zero
// saturation and hue, and any gray (saturation 0) has zero hue.
// [ToHSV] already returns canonical values; Normalize is for HSV
// values constructed directly.
func (h HSV) Normalize() HSV {
	if h.V == 0 {
		return HSV{A: h.A}
	}
	if h.S == 0 {
		h.H = 0
	}
	return h
}

// ToHSV converts a gamma-encoded color to HSV using the standard
// max/min hue-sector decomposition, copying alpha unchanged.
// Achromatic colors yield zero hue and saturation, so the result is
// always in the canonical form of [HSV.Normalize].
func ToHSV(c SRGB) HSV {
	max := math32.Max(c.R, math32.Max(c.G, c.B))
	min := math32.Min(c.R, math32.Min(c.G, c.B))
	delta := max - min

	h := HSV{V: max, A: c.A}
	if max > 0 {
		h.S = delta / max
	}
	if delta == 0 {
		return h
	}
	switch max {
	case c.R:
		h.H = 60 * math32.Mod((c.G-c.B)/delta, 6)
	case c.G:
		h.H = 60 * ((c.B-c.R)/delta + 2)
	default:
		h.H = 60 * ((c.R-c.G)/delta + 4)
	}
	if h.H < 0 {
		h.H += 360
	}
	return h
}

// AsSRGB converts h to a gamma-encoded color using the chroma /
// intermediate / minimum decomposition over the six 60 degree hue
// sectors, copying alpha unchanged. A linear result requires a
// subsequent [RGB.AsLinear].
func (h HSV) AsSRGB() SRGB {
	hue := wrapHue(h.H) / 60
	chroma := h.S * h.V
	x := chroma * (1 - math32.Abs(math32.Mod(hue, 2)-1))
	min := h.V - chroma

	var r, g, b float32
	switch int(hue) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return NewA[SRGBSpace](r+min, g+min, b+min, h.A)
}

// RGBA implements [color.Color]; the returned values are
// alpha-premultiplied, gamma-encoded sRGB.
func (h HSV) RGBA() (r, g, b, a uint32) {
	return h.AsSRGB().RGBA()
}

// AsRGBA returns the standard 8-bit alpha-premultiplied [color.RGBA]
// form of h.
func (h HSV) AsRGBA() color.RGBA {
	return h.AsSRGB().AsRGBA()
}

// HSVModel converts any [color.Color] to the [HSV] type.
var HSVModel = color.ModelFunc(func(c color.Color) color.Color {
	if h, ok := c.(HSV); ok {
		return h
	}
	return ToHSV(FromColor(c))
})

func (h HSV) String() string {
	if h.A < 1 {
		return fmt.Sprintf("hsv(%.4g, %.4g, %.4g, %.4g)", h.H, h.S, h.V, h.A)
	}
	return fmt.Sprintf("hsv(%.4g, %.4g, %.4g)", h.H, h.S, h.V)
}

// wrapHue wraps an angle in degrees into [0, 360).
func wrapHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
