// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides a hue, saturation, and lightness color model,
// used for the relative color transforms in the shade styling system.
package hsl

import (
	"fmt"
	"image/color"

	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/math32"
)

// HSL represents the hue, saturation, lightness, and alpha of a color.
type HSL struct {

	// Hue in degrees, 0-360.
	H float32

	// Saturation, 0-1.
	S float32

	// Lightness, 0-1.
	L float32

	// Alpha, 0-1.
	A float32
}

// New returns a new opaque HSL color from the given hue (0-360),
// saturation (0-1), and lightness (0-1).
func New(h, s, l float32) HSL {
	return HSL{h, s, l, 1}
}

// Model is the [color.Model] for the [HSL] color type.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	h := HSL{}
	h.SetColor(c)
	return h
}

// FromColor returns the given color as an [HSL] color.
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// SetColor sets the HSL values from the given color.
func (h *HSL) SetColor(c color.Color) {
	n := colors.AsNRGBA(c)
	hue, s, l := rgbToHSL(float32(n.R)/255, float32(n.G)/255, float32(n.B)/255)
	h.H, h.S, h.L = hue, s, l
	h.A = float32(n.A) / 255
}

// SetUint32 sets the HSL values from the given alpha-premultiplied
// 16-bit RGBA values, as returned by [color.Color.RGBA].
func (h *HSL) SetUint32(r, g, b, a uint32) {
	h.SetColor(color.RGBA64{uint16(r), uint16(g), uint16(b), uint16(a)})
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	r, g, b := hslToRGB(h.H, h.S, h.L)
	return colors.AsRGBA(color.NRGBA{
		R: uint8(math32.Round(r * 255)),
		G: uint8(math32.Round(g * 255)),
		B: uint8(math32.Round(b * 255)),
		A: uint8(math32.Round(h.A * 255)),
	})
}

// RGBA implements the [color.Color] interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// rgbToHSL converts RGB components (0-1) to hue (0-360),
// saturation (0-1), and lightness (0-1).
func rgbToHSL(r, g, b float32) (h, s, l float32) {
	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// hslToRGB converts hue (0-360), saturation (0-1), and lightness (0-1)
// to RGB components (0-1).
func hslToRGB(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	h = math32.Mod(h, 360) / 360
	if h < 0 {
		h += 1
	}
	r = hueToRGB(p, q, h+1.0/3)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3)
	return r, g, b
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
