// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"slices"

	"github.com/chewxy/math32"
)

// Shade is a coarse perceptual brightness bucket derived from relative
// luminance.
type Shade int32

const (
	ShadeDark Shade = iota
	ShadeMid
	ShadeLight
)

func (s Shade) String() string {
	switch s {
	case ShadeDark:
		return "dark"
	case ShadeMid:
		return "mid"
	default:
		return "light"
	}
}

// Luminance thresholds for [ClassifyShade]. Colors below DarkLuminance
// read as dark, colors above LightLuminance read as light.
const (
	DarkLuminance  float32 = 0.045
	LightLuminance float32 = 0.40
)

// ClassifyShade buckets a relative luminance value: dark below
// [DarkLuminance], light above [LightLuminance], mid otherwise. Both
// boundary values themselves classify as mid.
func ClassifyShade(lum float32) Shade {
	switch {
	case lum < DarkLuminance:
		return ShadeDark
	case lum <= LightLuminance:
		return ShadeMid
	default:
		return ShadeLight
	}
}

// ShadeOf returns the shade bucket of c's relative luminance.
func ShadeOf[S Space](c RGB[S]) Shade {
	return ClassifyShade(Luminance(c))
}

// ShadeWeight is one entry of a [Shades] analysis: a base color and
// its normalized weight in (0, 1].
type ShadeWeight struct {
	Color  BaseColor
	Weight float32
}

// Tuning constants for [Shades]. The borders are picked by eye.
const (
	// how many degrees from a base hue a shade can be
	shadeHueMargin = 60.0 * 0.75

	// luminance under this is just black, regardless of hue
	shadeBlackCutoff = 0.005

	// saturation under this is grayscale without any hue shade
	shadeGreyscaleSat = 0.05

	shadeWhiteMaxSat = 0.35
	shadeWhiteMinLum = LightLuminance

	shadeGreyMaxSat = 0.45
	shadeGreyMaxLum = 0.80
	shadeGreyMinLum = 0.03

	shadeBlackMaxLum = DarkLuminance
)

var shadeHues = [...]struct {
	hue   float32
	color BaseColor
}{
	{60, Yellow}, {120, Green}, {180, Cyan}, {240, Blue}, {300, Magenta},
}

// Shades analyzes which base colors c reads as, returning weights
// normalized to sum to 1 and sorted descending. A color can be a shade
// of several: hues within [shadeHueMargin] of a base hue contribute in
// proportion to their distance, and the grayscale shades contribute by
// the saturation and luminance borders above. Very dark colors are
// only black.
func Shades(c SRGB) []ShadeWeight {
	lum := Luminance(c)
	if lum < shadeBlackCutoff {
		return []ShadeWeight{{Black, 1}}
	}

	hsv := ToHSV(c)
	var shades []ShadeWeight
	var sum float32

	if hsv.S > shadeGreyscaleSat {
		// red sits on the hue wraparound, so measure distance to 0 both ways
		dist := hsv.H
		if dist > 180 {
			dist = 360 - hsv.H
		}
		if dist <= shadeHueMargin {
			amount := 1 - dist/shadeHueMargin
			sum += amount
			shades = append(shades, ShadeWeight{Red, amount})
		}
		for _, sh := range shadeHues {
			dist := math32.Abs(hsv.H - sh.hue)
			if dist <= shadeHueMargin {
				amount := 1 - dist/shadeHueMargin
				sum += amount
				shades = append(shades, ShadeWeight{sh.color, amount})
			}
		}
	}

	if lum <= shadeBlackMaxLum {
		sum++
		shades = append(shades, ShadeWeight{Black, 1})
	} else if lum >= shadeWhiteMinLum && hsv.S <= shadeWhiteMaxSat {
		sum++
		shades = append(shades, ShadeWeight{White, 1})
	}
	if hsv.S <= shadeGreyMaxSat && lum >= shadeGreyMinLum && lum <= shadeGreyMaxLum {
		sum++
		shades = append(shades, ShadeWeight{Grey, 1})
	}

	slices.SortStableFunc(shades, func(a, b ShadeWeight) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
	for i := range shades {
		shades[i].Weight /= sum
	}
	return shades
}
