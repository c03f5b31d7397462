// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides basic color representation, manipulation,
// and naming for the shade styling system.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/shade/math32"
	"golang.org/x/image/colornames"
)

// AsRGBA returns the given color as an alpha-premultiplied [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non-alpha-premultiplied
// [color.NRGBA].
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromRGB makes a new opaque RGBA color from the given
// RGB uint8 values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromNRGBA makes a new RGBA color from the given
// non-alpha-premultiplied RGBA uint8 values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// WithAF32 returns the given color with the non-alpha-premultiplied
// alpha set to the given float32 value between 0 and 1.
func WithAF32(c color.Color, a float32) color.RGBA {
	n := AsNRGBA(c)
	n.A = uint8(math32.Round(math32.Clamp01(a) * 255))
	return AsRGBA(n)
}

// ApplyOpacity multiplies the given color's existing alpha
// by the given opacity factor between 0 and 1.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	n := AsNRGBA(c)
	a := math32.Clamp01(opacity) * float32(n.A) / 255
	return WithAF32(c, a)
}

// Clearer returns a color that is the given percent (0-100)
// more transparent.
func Clearer(c color.Color, pct float32) color.RGBA {
	f := math32.Clamp(pct, 0, 100) / 100
	n := AsNRGBA(c)
	return WithAF32(c, float32(n.A)/255-f)
}

// Opaquer returns a color that is the given percent (0-100)
// more opaque.
func Opaquer(c color.Color, pct float32) color.RGBA {
	f := math32.Clamp(pct, 0, 100) / 100
	n := AsNRGBA(c)
	return WithAF32(c, float32(n.A)/255+f)
}

// FromName returns the color with the given standard CSS color name,
// or an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromHex parses the given hex color string ("#RGB", "#RRGGBB", or
// "#RRGGBBAA", leading # optional) and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 3:
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	case 8:
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// AsHex returns the color as a hex string: "#RRGGBB" when fully
// opaque, "#RRGGBBAA" otherwise.
func AsHex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// AsString returns the canonical textual form of the color:
// "rgb(r,g,b)" when fully opaque, "rgba(r,g,b,a)" otherwise,
// with channels 0-255 and alpha as a fraction of 1.
func AsString(c color.Color) string {
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	a := math32.Round(float32(n.A)/255*1000) / 1000
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B,
		strconv.FormatFloat(float64(a), 'f', -1, 32))
}
