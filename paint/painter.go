// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides a minimal raster painter for filling glyph
// runs, with the save / restore state model and current point
// semantics used by the shadow drawing code.
package paint

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/math32"
	"cogentcore.org/shade/text"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Painter paints onto an [image.RGBA]. It holds a current fill source
// and a stack of saved fill sources, and a current point that text is
// filled relative to. The current point is part of the path state, not
// the saved state: [Painter.Restore] never changes it.
type Painter struct {

	// Image is the target raster image.
	Image *image.RGBA

	fill       image.Image
	stack      []image.Image
	hasCurrent bool
	current    math32.Vector2
}

// NewPainter returns a new [Painter] associated with a new
// [image.RGBA] of the given width and height.
func NewPainter(width, height int) *Painter {
	img := image.NewRGBA(image.Rectangle{Max: image.Pt(width, height)})
	return &Painter{Image: img, fill: colors.Uniform(color.RGBA{A: 255})}
}

// NewPainterFromImage returns a new [Painter] associated with an
// [image.RGBA] copy of the given image. It does not paint onto the
// given image.
func NewPainterFromImage(img image.Image) *Painter {
	return &Painter{Image: clone.AsRGBA(img), fill: colors.Uniform(color.RGBA{A: 255})}
}

// Save pushes the current fill source onto the saved state stack.
func (pc *Painter) Save() {
	pc.stack = append(pc.stack, pc.fill)
}

// Restore pops the most recently saved state off the stack, making it
// current again. The current point is untouched. Restoring with no
// saved state logs an error and does nothing.
func (pc *Painter) Restore() {
	n := len(pc.stack)
	if n == 0 {
		slog.Error("programmer error: paint.Painter.Restore: no saved state")
		return
	}
	pc.fill = pc.stack[n-1]
	pc.stack = pc.stack[:n-1]
}

// Saved calls the given function between [Painter.Save] and
// [Painter.Restore], so that any state changes it makes are unwound
// even if it panics.
func (pc *Painter) Saved(fun func()) {
	pc.Save()
	defer pc.Restore()
	fun()
}

// HasCurrent returns whether there is a current point.
func (pc *Painter) HasCurrent() bool {
	return pc.hasCurrent
}

// Current returns the current point. It is the zero point if
// [Painter.HasCurrent] is false.
func (pc *Painter) Current() math32.Vector2 {
	return pc.current
}

// MoveTo sets the current point to the specified point.
func (pc *Painter) MoveTo(x, y float32) {
	pc.current = math32.Vec2(x, y)
	pc.hasCurrent = true
}

// RelMoveTo moves the current point by the given offset. If there is
// no current point, it is equivalent to MoveTo(dx, dy).
func (pc *Painter) RelMoveTo(dx, dy float32) {
	if !pc.hasCurrent {
		pc.MoveTo(dx, dy)
		return
	}
	pc.current = pc.current.Add(math32.Vec2(dx, dy))
}

// SetFillColor sets the current fill source to the given color.
func (pc *Painter) SetFillColor(c color.RGBA) {
	pc.fill = colors.Uniform(c)
}

// FillColor returns the current fill source as a color. It is the
// zero color if the source is not a uniform color.
func (pc *Painter) FillColor() color.RGBA {
	return colors.ToUniform(pc.fill)
}

// FillRun fills the glyphs of the given run with the current fill
// source, with the run origin placed at the current point. If there is
// no current point, it is first set to the origin. The current point
// is not advanced.
func (pc *Painter) FillRun(run *text.Run) {
	if !pc.hasCurrent {
		pc.MoveTo(0, 0)
	}
	cb := pc.Image.Bounds()
	d := &font.Drawer{
		Dst:  pc.Image,
		Src:  pc.fill,
		Face: run.Face,
	}
	for _, g := range run.Glyphs {
		d.Dot = pc.current.Add(g.Dot).ToFixed()
		dr, mask, maskp, _, ok := d.Face.Glyph(d.Dot, g.Rune)
		if !ok {
			continue
		}
		idr := dr.Intersect(cb)
		if idr.Empty() {
			continue
		}
		if dr.Min.X < cb.Min.X {
			maskp.X += cb.Min.X - dr.Min.X
		}
		if dr.Min.Y < cb.Min.Y {
			maskp.Y += cb.Min.Y - dr.Min.Y
		}
		draw.DrawMask(d.Dst, idr, d.Src, image.Point{}, mask, maskp, draw.Over)
	}
}
