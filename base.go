// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import "strconv"

// BaseColor is one of the nine basic colors that [Shades] classifies
// against: the three grayscale shades and the six primary and
// secondary hues.
type BaseColor int32

const (
	Black BaseColor = iota
	Grey
	White
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta

	BaseColorN
)

var baseColorNames = [BaseColorN]string{
	"black", "grey", "white", "red", "yellow", "green", "cyan", "blue", "magenta",
}

func (b BaseColor) String() string {
	if b < 0 || b >= BaseColorN {
		return "BaseColor(" + strconv.Itoa(int(b)) + ")"
	}
	return baseColorNames[b]
}

// BaseColors returns all base color values, in declaration order.
func BaseColors() []BaseColor {
	bs := make([]BaseColor, BaseColorN)
	for i := range bs {
		bs[i] = BaseColor(i)
	}
	return bs
}

// AsSRGB returns the gamma-encoded sRGB value of b.
func (b BaseColor) AsSRGB() SRGB {
	switch b {
	case Black:
		return FromRGB(0, 0, 0)
	case Grey:
		return FromRGB(128, 128, 128)
	case White:
		return FromRGB(255, 255, 255)
	case Red:
		return FromRGB(255, 0, 0)
	case Yellow:
		return FromRGB(255, 255, 0)
	case Green:
		return FromRGB(0, 255, 0)
	case Cyan:
		return FromRGB(0, 255, 255)
	case Blue:
		return FromRGB(0, 0, 255)
	default:
		return FromRGB(255, 0, 255)
	}
}

// AsHSV returns the HSV value of b.
func (b BaseColor) AsHSV() HSV {
	switch b {
	case Black:
		return NewHSV(0, 0, 0)
	case Grey:
		return NewHSV(0, 0, 0.5)
	case White:
		return NewHSV(0, 0, 1)
	case Red:
		return NewHSV(0, 1, 1)
	case Yellow:
		return NewHSV(60, 1, 1)
	case Green:
		return NewHSV(120, 1, 1)
	case Cyan:
		return NewHSV(180, 1, 1)
	case Blue:
		return NewHSV(240, 1, 1)
	default:
		return NewHSV(300, 1, 1)
	}
}
