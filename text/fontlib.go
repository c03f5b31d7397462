// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"cogentcore.org/shade/base/errors"
)

// Builtin fonts from the Go font family, parsed on first use.
var (
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
	italicFont  *sfnt.Font
	fontOnce    sync.Once
)

func loadFonts() {
	regularFont = errors.Log1(opentype.Parse(goregular.TTF))
	boldFont = errors.Log1(opentype.Parse(gobold.TTF))
	italicFont = errors.Log1(opentype.Parse(goitalic.TTF))
}

// Regular returns a builtin Go Regular face at the given point size.
func Regular(points float32) (font.Face, error) {
	fontOnce.Do(loadFonts)
	return newFace(regularFont, points)
}

// Bold returns a builtin Go Bold face at the given point size.
func Bold(points float32) (font.Face, error) {
	fontOnce.Do(loadFonts)
	return newFace(boldFont, points)
}

// Italic returns a builtin Go Italic face at the given point size.
func Italic(points float32) (font.Face, error) {
	fontOnce.Do(loadFonts)
	return newFace(italicFont, points)
}

func newFace(f *sfnt.Font, points float32) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(points),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
