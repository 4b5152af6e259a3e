// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the standard sRGB transfer functions and related
// scalar helpers, operating on normalized float32 channel values.
package cie

import "github.com/chewxy/math32"

// SRGBGamma is the exponent of the power segment of the sRGB transfer
// curve.
const SRGBGamma = 2.4

// Relative luminance channel weights for linear sRGB, per ITU-R BT.709.
const (
	LumR = 0.2126
	LumG = 0.7152
	LumB = 0.0722
)

// SRGBToLinearComp converts a gamma-encoded sRGB component to linear.
// Input is not clamped: values outside [0, 1] are extrapolated by the
// same piecewise formula.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, SRGBGamma)
}

// SRGBFromLinearComp converts a linear component to gamma-encoded sRGB.
// Input is not clamped: values outside [0, 1] are extrapolated by the
// same piecewise formula.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/SRGBGamma) - 0.055
}

// SRGBToLinear converts gamma-encoded sRGB channel values to linear.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear converts linear channel values to gamma-encoded sRGB.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}

// RelativeLuminance returns the relative luminance of the given linear
// channel values, as the BT.709 weighted sum. The result is not
// clamped; for in-gamut input it is in [0, 1].
func RelativeLuminance(rl, gl, bl float32) float32 {
	return LumR*rl + LumG*gl + LumB*bl
}

// SRGBFloatToUint8 converts 0-1 normalized float sRGB channel values
// to alpha-premultiplied 0-255 uint8 values.
func SRGBFloatToUint8(r, g, b, a float32) (ru, gu, bu, au uint8) {
	ru = uint8(r*a*255 + 0.5)
	gu = uint8(g*a*255 + 0.5)
	bu = uint8(b*a*255 + 0.5)
	au = uint8(a*255 + 0.5)
	return
}

// SRGBUint8ToFloat converts alpha-premultiplied 0-255 uint8 sRGB
// channel values to 0-1 normalized, alpha-independent floats.
func SRGBUint8ToFloat(r, g, b, a uint8) (rf, gf, bf, af float32) {
	af = float32(a) / 255
	rf = float32(r) / 255 / af
	gf = float32(g) / 255 / af
	bf = float32(b) / 255 / af
	return
}
