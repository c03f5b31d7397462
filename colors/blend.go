// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/shade/math32"
)

// BlendRGB returns a linear per-channel blend in RGB space of the
// given colors, with pct (0-100) of x and the rest y. The blend
// operates on non-alpha-premultiplied channels, including alpha.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	fx := math32.Clamp(pct, 0, 100) / 100
	fy := 1 - fx
	nx := AsNRGBA(x)
	ny := AsNRGBA(y)
	blend := func(a, b uint8) uint8 {
		return uint8(math32.Round(float32(a)*fx + float32(b)*fy))
	}
	return AsRGBA(color.NRGBA{
		R: blend(nx.R, ny.R),
		G: blend(nx.G, ny.G),
		B: blend(nx.B, ny.B),
		A: blend(nx.A, ny.A),
	})
}
