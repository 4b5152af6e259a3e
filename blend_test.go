// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumencolor/lumen/tolassert"
)

func TestBlend(t *testing.T) {
	a := New[LinearSpace](1, 0, 0)
	b := New[LinearSpace](0, 1, 0)

	assert.Equal(t, a, Blend(a, b, 1))
	assert.Equal(t, b, Blend(a, b, 0))

	mid := Blend(a, b, 0.5)
	tolassert.Equal(t, 0.5, mid.R)
	tolassert.Equal(t, 0.5, mid.G)
	tolassert.Equal(t, 0, mid.B)

	// out-of-range ratios clamp to the endpoints
	assert.Equal(t, a, Blend(a, b, 2))
	assert.Equal(t, b, Blend(a, b, -1))
}

func TestAlphaBlend(t *testing.T) {
	bg := New[LinearSpace](0.2, 0.2, 0.2)
	fg := NewA[LinearSpace](1, 0, 0, 0.5)

	out := AlphaBlend(bg, fg)
	tolassert.Equal(t, 0.6, out.R)
	tolassert.Equal(t, 0.1, out.G)
	tolassert.Equal(t, 0.1, out.B)
	tolassert.Equal(t, 1, out.A)

	// fully transparent foreground leaves the background
	assert.Equal(t, bg, AlphaBlend(bg, bg.WithAlpha(0)))
	clear := AlphaBlend(bg, NewA[LinearSpace](1, 1, 1, 0))
	assert.Equal(t, bg, clear)

	// fully opaque foreground replaces it
	opaque := New[LinearSpace](0, 0, 1)
	assert.Equal(t, opaque, AlphaBlend(bg, opaque))

	// transparent over transparent is transparent black
	assert.Equal(t, LinRGB{}, AlphaBlend(LinRGB{}, LinRGB{}))
}
