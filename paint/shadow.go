// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"cogentcore.org/shade/styles"
	"cogentcore.org/shade/text"
)

// Canvas is the set of painting operations that shadow drawing needs
// from a rendering target. [*Painter] implements it; other backends
// can too.
type Canvas interface {

	// Saved calls the given function with the current painting state
	// saved, restoring it after the function returns.
	Saved(fun func())

	// HasCurrent returns whether there is a current point.
	HasCurrent() bool

	// MoveTo sets the current point to the specified point.
	MoveTo(x, y float32)

	// RelMoveTo moves the current point by the given offset.
	RelMoveTo(dx, dy float32)

	// SetFillColor sets the current fill source to the given color.
	SetFillColor(c color.RGBA)

	// FillRun fills the glyphs of the given run with the current fill
	// source, with the run origin placed at the current point, which
	// is not advanced.
	FillRun(run *text.Run)
}

// DrawTextShadows paints each layer of the given resolved shadow list
// under the given glyph run, at the canvas's current point. Layers
// paint in reverse list order, so that the first layer ends up on top
// where layers overlap. Each layer is painted with the painting state
// saved: the current point is moved by the layer's offset, the fill
// source is set to the layer's color, the run is filled, and then the
// current point is moved back, leaving the canvas exactly as it was.
// If there is no current point, it is first set to the origin.
//
// The layers' blur radii and spread distances do not alter the
// painted geometry here; they are carried for the blur and shape
// stages of a fuller pipeline.
//
// It panics if the list is not resolved; resolve it first with
// [styles.Shadows.Resolve].
func DrawTextShadows(cv Canvas, sh *styles.Shadows, run *text.Run) {
	if !sh.Resolved() {
		panic("paint.DrawTextShadows: shadow list is not resolved")
	}
	if !cv.HasCurrent() {
		cv.MoveTo(0, 0)
	}
	// the first layer is the top layer, so painting goes in reverse
	for i := sh.Len() - 1; i >= 0; i-- {
		el := sh.At(i)
		dx, dy := float32(el.OffsetX), float32(el.OffsetY)
		cv.Saved(func() {
			cv.RelMoveTo(dx, dy)
			cv.SetFillColor(el.Color())
			cv.FillRun(run)
			cv.RelMoveTo(-dx, -dy)
		})
	}
}
