// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import "github.com/lumencolor/lumen/cie"

// Luminance returns the relative luminance of c: the BT.709 weighted
// sum of its linear channel values, converting first if c is encoded.
// The result approximates perceived brightness, with 0 darkest and 1
// lightest for in-gamut colors; it is not reclamped.
//
// Alpha is ignored: luminance is defined over opaque color only.
// Callers that need alpha-aware results must composite first, e.g.
// with [AlphaBlend].
func Luminance[S Space](c RGB[S]) float32 {
	l := c.AsLinear()
	return cie.RelativeLuminance(l.R, l.G, l.B)
}
