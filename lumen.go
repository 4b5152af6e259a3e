// Copyright (c) 2026, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lumen provides colorspace-aware color types and conversions:
// an [RGB] value type generic over its colorspace (gamma-encoded sRGB
// or linear light), an [HSV] model defined over encoded values,
// relative luminance, and coarse shade classification.
//
// The colorspace is part of the type, so linear and encoded channel
// values cannot be mixed without an explicit conversion. All values are
// immutable: conversions return new values and never mutate their
// input. Channel values are float32, normalized to [0, 1]; alpha is
// straight (not premultiplied) and is never gamma-encoded.
//
// The package does not validate against NaN or infinite inputs; such
// values propagate through the arithmetic as they would anywhere else.
package lumen

import "github.com/lumencolor/lumen/cie"

// Space is a colorspace marker for [RGB] values. It is implemented
// only by [SRGBSpace] and [LinearSpace]; the unexported methods seal
// the set of spaces so that every conversion between them goes through
// the sRGB transfer curve in [cie].
type Space interface {
	// toLinear maps one encoded channel value to linear light.
	toLinear(v float32) float32
	// fromLinear maps one linear channel value to this space's encoding.
	fromLinear(v float32) float32
	// name is the CSS-style name of the space, used by [RGB.String].
	name() string
}

// SRGBSpace marks channel values as gamma-encoded sRGB, the form
// conventionally stored in 8-bit image and display formats.
type SRGBSpace struct{}

func (SRGBSpace) toLinear(v float32) float32   { return cie.SRGBToLinearComp(v) }
func (SRGBSpace) fromLinear(v float32) float32 { return cie.SRGBFromLinearComp(v) }
func (SRGBSpace) name() string                 { return "srgb" }

// LinearSpace marks channel values as linear light, proportional to
// physical intensity.
type LinearSpace struct{}

func (LinearSpace) toLinear(v float32) float32   { return v }
func (LinearSpace) fromLinear(v float32) float32 { return v }
func (LinearSpace) name() string                 { return "srgb-linear" }
