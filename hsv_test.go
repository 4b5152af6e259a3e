// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumencolor/lumen/tolassert"
)

func TestNewHSV(t *testing.T) {
	tests := []struct {
		h, s, v float32
		want    HSV
	}{
		{-90, 2, -5, HSV{270, 1, 0, 1}},
		{400, 2, -5, HSV{40, 1, 0, 1}},
		{720.5, 0.5, 0.5, HSV{0.5, 0.5, 0.5, 1}},
		{60, 0, 0.5, HSV{60, 0, 0.5, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewHSV(tt.h, tt.s, tt.v))
	}
	assert.Equal(t, HSV{10, 0.2, 0.8, 0.5}, NewHSVA(10, 0.2, 0.8, 0.5))
}

func TestHSVNormalize(t *testing.T) {
	assert.Equal(t, HSV{0, 0, 0, 1}, NewHSV(50, 0.25, 0).Normalize())
	assert.Equal(t, HSV{0, 0, 0.8, 1}, NewHSV(45, 0, 0.8).Normalize())
	assert.Equal(t, HSV{0, 0, 0, 0.5}, NewHSVA(10, 0.2, 0, 0.5).Normalize())
	c := NewHSV(120, 0.5, 0.5)
	assert.Equal(t, c, c.Normalize())
}

func TestToHSV(t *testing.T) {
	assert.Equal(t, HSV{0, 1, 1, 1}, ToHSV(New[SRGBSpace](1, 0, 0)))
	assert.Equal(t, HSV{60, 1, 1, 1}, ToHSV(New[SRGBSpace](1, 1, 0)))
	assert.Equal(t, HSV{120, 1, 1, 1}, ToHSV(New[SRGBSpace](0, 1, 0)))
	assert.Equal(t, HSV{180, 1, 1, 1}, ToHSV(New[SRGBSpace](0, 1, 1)))
	assert.Equal(t, HSV{240, 1, 1, 1}, ToHSV(New[SRGBSpace](0, 0, 1)))
	assert.Equal(t, HSV{300, 1, 1, 1}, ToHSV(New[SRGBSpace](1, 0, 1)))
}

// Achromatic colors must always come out with zero hue and saturation,
// so gray round-trips are deterministic.
func TestToHSVAchromatic(t *testing.T) {
	assert.Equal(t, HSV{0, 0, 0, 1}, ToHSV(New[SRGBSpace](0, 0, 0)))
	assert.Equal(t, HSV{0, 0, 0.5, 1}, ToHSV(New[SRGBSpace](0.5, 0.5, 0.5)))
	assert.Equal(t, HSV{0, 0, 1, 1}, ToHSV(New[SRGBSpace](1, 1, 1)))
}

func TestHSVToRGB(t *testing.T) {
	assert.Equal(t, SRGB{1, 0, 0, 1}, NewHSV(0, 1, 1).AsSRGB())
	assert.Equal(t, SRGB{0, 1, 0, 1}, NewHSV(120, 1, 1).AsSRGB())
	assert.Equal(t, SRGB{0, 0, 1, 1}, NewHSV(240, 1, 1).AsSRGB())
	// grays ignore hue entirely
	assert.Equal(t, SRGB{0.5, 0.5, 0.5, 1}, NewHSV(200, 0, 0.5).AsSRGB())
	assert.Equal(t, SRGB{0, 0, 0, 1}, NewHSV(200, 1, 0).AsSRGB())
}

func TestHSVRoundTripBytes(t *testing.T) {
	orig := FromRGB(128, 255, 55)
	back := ToHSV(orig).AsSRGB().AsRGBA()
	assert.Equal(t, color.RGBA{128, 255, 55, 255}, back)
}

func TestHSVRoundTripSweep(t *testing.T) {
	steps := []float32{0, 0.25, 0.5, 0.75, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				c := New[SRGBSpace](r, g, b)
				back := ToHSV(c).AsSRGB()
				tolassert.EqualTol(t, c.R, back.R, 1e-5)
				tolassert.EqualTol(t, c.G, back.G, 1e-5)
				tolassert.EqualTol(t, c.B, back.B, 1e-5)
			}
		}
	}
}

func TestHSVColorInterface(t *testing.T) {
	assert.Equal(t, HSV{0, 1, 1, 1}, HSVModel.Convert(color.RGBA{255, 0, 0, 255}).(HSV))
	h := NewHSV(120, 1, 1)
	assert.Equal(t, h, HSVModel.Convert(h).(HSV))

	r, g, b, a := h.RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, h.AsRGBA())
}

func TestHSVString(t *testing.T) {
	assert.Equal(t, "hsv(120, 1, 1)", NewHSV(120, 1, 1).String())
	assert.Equal(t, "hsv(0, 0, 0.5, 0.25)", NewHSVA(0, 0, 0.5, 0.25).String())
}
