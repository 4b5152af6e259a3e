// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lumen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumencolor/lumen/tolassert"
)

func TestBaseColor(t *testing.T) {
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "magenta", Magenta.String())
	assert.Equal(t, "BaseColor(42)", BaseColor(42).String())

	assert.Equal(t, FromRGB(255, 0, 255), Magenta.AsSRGB())
	assert.Equal(t, FromRGB(128, 128, 128), Grey.AsSRGB())
	assert.Equal(t, HSV{300, 1, 1, 1}, Magenta.AsHSV())

	assert.Len(t, BaseColors(), int(BaseColorN))
}

// The sRGB and HSV tables must describe the same colors. Grey is only
// approximate: 128/255 is not exactly 0.5.
func TestBaseColorTablesAgree(t *testing.T) {
	for _, b := range BaseColors() {
		want := b.AsHSV()
		have := ToHSV(b.AsSRGB())
		tolassert.EqualTol(t, want.H, have.H, 0.01)
		tolassert.EqualTol(t, want.S, have.S, 0.01)
		tolassert.EqualTol(t, want.V, have.V, 0.01)
	}
}
