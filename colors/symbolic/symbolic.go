// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbolic provides symbolic color expressions: named or
// computed color references that must be resolved against a theme's
// named color set before they have a concrete value.
package symbolic

import (
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/shade/base/errors"
	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/colors/hsl"
	"cogentcore.org/shade/math32"
)

// Color is a symbolic color expression. Expressions are immutable once
// constructed and can be freely shared between shadow elements, themes,
// and other expressions.
type Color interface {

	// Resolve returns the concrete color that this expression evaluates
	// to in the given context, or an error if any named reference in the
	// expression cannot be found there.
	Resolve(ctx Context) (color.RGBA, error)

	// String returns the canonical textual form of the expression.
	String() string
}

// Context supplies the named symbolic colors that [Named] references
// resolve through. It is implemented by [cogentcore.org/shade/theme.Theme].
type Context interface {

	// ColorLookup returns the symbolic color registered under the given
	// name, if there is one.
	ColorLookup(name string) (Color, bool)
}

// ErrNameNotFound indicates that a named color reference is not present
// in the resolution context.
var ErrNameNotFound = errors.New("symbolic color name not found in context")

// Literal is a concrete color carried as an expression. It resolves to
// itself in any context.
type Literal struct {
	Color color.RGBA
}

// NewLiteral returns a [Literal] expression for the given color.
func NewLiteral(c color.Color) *Literal {
	return &Literal{Color: colors.AsRGBA(c)}
}

func (l *Literal) Resolve(ctx Context) (color.RGBA, error) {
	return l.Color, nil
}

func (l *Literal) String() string {
	return colors.AsString(l.Color)
}

// Named is a reference to a color registered by name in the resolution
// context. The context's expression for that name is itself resolved
// against the same context, so names may refer to other names or to
// computed expressions; cyclic definitions are a caller error.
type Named struct {
	Name string
}

// NewNamed returns a [Named] reference to the given color name.
func NewNamed(name string) *Named {
	return &Named{Name: name}
}

func (n *Named) Resolve(ctx Context) (color.RGBA, error) {
	if ctx == nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", n.Name, ErrNameNotFound)
	}
	sc, ok := ctx.ColorLookup(n.Name)
	if !ok {
		return color.RGBA{}, fmt.Errorf("%q: %w", n.Name, ErrNameNotFound)
	}
	return sc.Resolve(ctx)
}

func (n *Named) String() string {
	return "@" + n.Name
}

// Shade is a relative shading of another expression: the resolved
// color's lightness and saturation are multiplied by Factor and
// clamped (see [hsl.Shade]).
type Shade struct {
	Color  Color
	Factor float32
}

// NewShade returns a [Shade] of the given expression by the given factor.
func NewShade(c Color, factor float32) *Shade {
	return &Shade{Color: c, Factor: factor}
}

func (s *Shade) Resolve(ctx Context) (color.RGBA, error) {
	c, err := s.Color.Resolve(ctx)
	if err != nil {
		return color.RGBA{}, err
	}
	return hsl.Shade(c, s.Factor), nil
}

func (s *Shade) String() string {
	return fmt.Sprintf("shade(%s, %s)", s.Color, formatFactor(s.Factor))
}

// Alpha multiplies the alpha of another expression's resolved color
// by Factor, clamped to [0, 1].
type Alpha struct {
	Color  Color
	Factor float32
}

// NewAlpha returns an [Alpha] of the given expression by the given factor.
func NewAlpha(c Color, factor float32) *Alpha {
	return &Alpha{Color: c, Factor: factor}
}

func (a *Alpha) Resolve(ctx Context) (color.RGBA, error) {
	c, err := a.Color.Resolve(ctx)
	if err != nil {
		return color.RGBA{}, err
	}
	return colors.ApplyOpacity(c, a.Factor), nil
}

func (a *Alpha) String() string {
	return fmt.Sprintf("alpha(%s, %s)", a.Color, formatFactor(a.Factor))
}

// Mix linearly interpolates between two expressions' resolved colors,
// channel-wise including alpha, with Factor the fraction of Color2.
type Mix struct {
	Color1 Color
	Color2 Color
	Factor float32
}

// NewMix returns a [Mix] of the given expressions by the given factor.
func NewMix(c1, c2 Color, factor float32) *Mix {
	return &Mix{Color1: c1, Color2: c2, Factor: factor}
}

func (m *Mix) Resolve(ctx Context) (color.RGBA, error) {
	c1, err := m.Color1.Resolve(ctx)
	if err != nil {
		return color.RGBA{}, err
	}
	c2, err := m.Color2.Resolve(ctx)
	if err != nil {
		return color.RGBA{}, err
	}
	f := math32.Clamp01(m.Factor)
	return colors.BlendRGB((1-f)*100, c1, c2), nil
}

func (m *Mix) String() string {
	return fmt.Sprintf("mix(%s, %s, %s)", m.Color1, m.Color2, formatFactor(m.Factor))
}

// MapContext returns a [Context] backed by the given map, for direct
// use where a full theme is not needed.
func MapContext(m map[string]Color) Context {
	return mapContext(m)
}

type mapContext map[string]Color

func (mc mapContext) ColorLookup(name string) (Color, bool) {
	sc, ok := mc[name]
	return sc, ok
}

// formatFactor renders a factor with the minimal digits that
// round-trip its value.
func formatFactor(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
