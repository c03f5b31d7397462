// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides a minimal laid-out glyph run model: the input
// that the shadow and text painting operations consume. It lays out a
// single line of text along the baseline using font advances and
// kerning; it is not a shaping or typesetting engine.
package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"cogentcore.org/shade/math32"
)

// Glyph is one laid-out glyph in a [Run].
type Glyph struct {

	// Rune is the rune this glyph renders.
	Rune rune

	// Dot is the glyph's baseline drawing position relative to the
	// run origin.
	Dot math32.Vector2
}

// Run is a laid-out glyph run: a sequence of glyphs positioned
// relative to a common origin on the baseline. A Run is independent
// of any drawing target; painters position it by their current point.
type Run struct {

	// Face is the font face the run was laid out with.
	Face font.Face

	// Glyphs are the laid-out glyphs in text order. Runes without a
	// glyph in Face are skipped, matching font.Drawer behavior.
	Glyphs []Glyph

	// Advance is the total advance width of the run.
	Advance float32
}

// NewRun lays out the given single-line text in the given face,
// accumulating advances and kerning along the baseline.
func NewRun(face font.Face, txt string) *Run {
	tr := &Run{Face: face}
	var dot fixed.Int26_6
	prev := rune(-1)
	for _, r := range txt {
		if prev >= 0 {
			dot += face.Kern(prev, r)
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			prev = r
			continue
		}
		tr.Glyphs = append(tr.Glyphs, Glyph{Rune: r, Dot: math32.Vec2(math32.FromFixed(dot), 0)})
		dot += adv
		prev = r
	}
	tr.Advance = math32.FromFixed(dot)
	return tr
}

// Height returns the face's line height.
func (tr *Run) Height() float32 {
	return math32.FromFixed(tr.Face.Metrics().Height)
}

// Ascent returns the face's ascent above the baseline.
func (tr *Run) Ascent() float32 {
	return math32.FromFixed(tr.Face.Metrics().Ascent)
}

func (tr *Run) String() string {
	rs := make([]rune, len(tr.Glyphs))
	for i, g := range tr.Glyphs {
		rs[i] = g.Rune
	}
	return string(rs)
}
