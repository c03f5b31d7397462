// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"

	"cogentcore.org/shade/math32"
)

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-100, ranges enforced).
func Lighten(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L += amount / 100
	h.L = math32.Clamp01(h.L)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-100, ranges enforced).
func Darken(c color.Color, amount float32) color.RGBA {
	h := FromColor(c)
	h.L -= amount / 100
	h.L = math32.Clamp01(h.L)
	return h.AsRGBA()
}

// Shade returns the color with its lightness and saturation both
// multiplied by the given factor and clamped, leaving hue and alpha
// unchanged. Factors below 1 darken and desaturate; factors above 1
// lighten and saturate. This is the relative shading transform used
// by symbolic shade color expressions.
func Shade(c color.Color, factor float32) color.RGBA {
	h := FromColor(c)
	h.L = math32.Clamp01(h.L * factor)
	h.S = math32.Clamp01(h.S * factor)
	return h.AsRGBA()
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 0.6).
func IsLight(c color.Color) bool {
	return FromColor(c).L >= 0.6
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 0.6).
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast
// with the given color (white or black), based on [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
