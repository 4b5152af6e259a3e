// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

// Blend mixes two linear colors, keeping ratio of a and 1-ratio of b
// per channel, alpha included. Blending is only defined in linear
// space; encoded colors must convert first. Ratio is clamped to [0, 1].
func Blend(a, b LinRGB, ratio float32) LinRGB {
	ratio = clamp01(ratio)
	inv := 1 - ratio
	return LinRGB{
		R: a.R*ratio + b.R*inv,
		G: a.G*ratio + b.G*inv,
		B: a.B*ratio + b.B*inv,
		A: a.A*ratio + b.A*inv,
	}
}

// AlphaBlend composites fg over bg in linear space using fg's straight
// alpha (the source-over rule). A fully transparent result is black.
func AlphaBlend(bg, fg LinRGB) LinRGB {
	fa := clamp01(fg.A)
	ba := clamp01(bg.A)
	outA := fa + ba*(1-fa)
	if outA == 0 {
		return LinRGB{}
	}
	blend := func(f, b float32) float32 {
		return (f*fa + b*ba*(1-fa)) / outA
	}
	return LinRGB{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: outA,
	}
}
