// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the text-shadow styling model: ordered
// multi-layer shadow lists whose colors are symbolic references,
// resolved against a theme into concrete paintable lists, with
// canonical CSS-shorthand serialization.
package styles

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/colors/symbolic"
)

// Shadow is one text-shadow layer. A layer is either symbolic (it
// carries an unresolved symbolic color expression) or concrete (it
// carries a resolved color); the two states are mutually exclusive.
// Symbolic layers are made with [NewShadow] and by [Shadows.Append];
// concrete layers arise only from [Shadows.Resolve].
type Shadow struct {

	// OffsetX is the horizontal offset of the shadow in pixels.
	// Positive moves it right, negative moves it left.
	OffsetX int

	// OffsetY is the vertical offset of the shadow in pixels.
	// Positive moves it down, negative moves it up.
	OffsetY int

	// Blur is the blur radius of the shadow. Well-formed input is
	// non-negative; no range is enforced at this layer.
	Blur int

	// Spread is the CSS spread distance of the shadow. It is carried
	// and serialized but not consumed by painting at this layer.
	Spread int

	// Inset specifies whether the shadow is inset rather than outset.
	// It affects only serialization at this layer.
	Inset bool

	// color is the concrete color. It is meaningful only when
	// symbolic is nil.
	color color.RGBA

	// symbolic is the unresolved symbolic color expression.
	// It is nil in a concrete layer.
	symbolic symbolic.Color
}

// NewShadow returns a new symbolic shadow layer with the given
// geometry and symbolic color expression, which must be non-nil.
func NewShadow(offsetX, offsetY, blur, spread int, inset bool, sc symbolic.Color) Shadow {
	if sc == nil {
		panic("styles.NewShadow: symbolic color must be non-nil")
	}
	return Shadow{OffsetX: offsetX, OffsetY: offsetY, Blur: blur, Spread: spread, Inset: inset, symbolic: sc}
}

// Concrete returns whether the layer carries a concrete resolved
// color (as opposed to an unresolved symbolic expression).
func (s *Shadow) Concrete() bool {
	return s.symbolic == nil
}

// Color returns the layer's concrete color. It panics if the layer is
// still symbolic: consuming an unresolved layer's color is a caller
// contract violation, not a recoverable condition.
func (s *Shadow) Color() color.RGBA {
	if s.symbolic != nil {
		panic("styles.Shadow.Color: layer is unresolved (symbolic color present)")
	}
	return s.color
}

// Symbolic returns the layer's symbolic color expression, or nil if
// the layer is concrete.
func (s *Shadow) Symbolic() symbolic.Color {
	return s.symbolic
}

// String returns the canonical textual form of the layer:
// an optional "inset" token, the two offsets, the blur radius only if
// it is nonzero, the spread only if it is nonzero, and the color text,
// space-separated in that fixed order.
func (s *Shadow) String() string {
	b := &strings.Builder{}
	if s.Inset {
		b.WriteString("inset ")
	}
	fmt.Fprintf(b, "%d %d ", s.OffsetX, s.OffsetY)
	if s.Blur != 0 {
		fmt.Fprintf(b, "%d ", s.Blur)
	}
	if s.Spread != 0 {
		fmt.Fprintf(b, "%d ", s.Spread)
	}
	if s.symbolic != nil {
		b.WriteString(s.symbolic.String())
	} else {
		b.WriteString(colors.AsString(s.color))
	}
	return b.String()
}

// Shadows is an ordered list of shadow layers. Insertion order is
// significant: it is both the serialization order and the basis of
// paint order. The list is reference counted so that the surrounding
// style engine can cache and share resolved lists; counts are not
// atomic and all access must be confined to one goroutine. A list is
// created by [NewShadows] with a count of 1 and destroyed when the
// count reaches zero; using a destroyed (or zero-value) list panics.
type Shadows struct {
	els      []Shadow
	resolved bool
	refs     int
}

// NewShadows returns a new empty unresolved shadow list with a
// reference count of 1.
func NewShadows() *Shadows {
	return &Shadows{refs: 1}
}

// checkAlive panics if the list has been destroyed or was not made
// with [NewShadows].
func (ss *Shadows) checkAlive(op string) {
	if ss.refs <= 0 {
		panic("styles.Shadows." + op + ": use of destroyed or uninitialized shadow list")
	}
}

// Ref adds a reference to the list and returns the same list.
func (ss *Shadows) Ref() *Shadows {
	ss.checkAlive("Ref")
	ss.refs++
	return ss
}

// Unref removes a reference from the list. When the last reference is
// removed, the list releases its layers and becomes unusable; any
// further operation on it panics. Callers must not unreference a list
// they do not hold a reference to.
func (ss *Shadows) Unref() {
	ss.checkAlive("Unref")
	ss.refs--
	if ss.refs > 0 {
		return
	}
	for i := range ss.els {
		ss.els[i].symbolic = nil
	}
	ss.els = nil
}

// Append adds a new symbolic shadow layer with the given geometry and
// symbolic color to the end of the list, preserving existing order.
// It panics if the list is already resolved: resolved lists are
// immutable by contract.
func (ss *Shadows) Append(offsetX, offsetY, blur, spread int, inset bool, sc symbolic.Color) {
	ss.checkAlive("Append")
	if ss.resolved {
		panic("styles.Shadows.Append: list is already resolved")
	}
	ss.els = append(ss.els, NewShadow(offsetX, offsetY, blur, spread, inset, sc))
}

// Len returns the number of layers in the list.
func (ss *Shadows) Len() int {
	ss.checkAlive("Len")
	return len(ss.els)
}

// At returns the layer at the given index. The returned layer must be
// treated as read-only.
func (ss *Shadows) At(i int) *Shadow {
	ss.checkAlive("At")
	return &ss.els[i]
}

// Resolved returns whether every layer in the list is concrete.
// It is set only by [Shadows.Resolve], never by [Shadows.Append].
func (ss *Shadows) Resolved() bool {
	ss.checkAlive("Resolved")
	return ss.resolved
}

// ResolveError is the error reported when a shadow list cannot be
// resolved against a context. It wraps the underlying symbolic color
// resolution error.
type ResolveError struct {

	// Index is the position in the list of the layer that failed.
	Index int

	// Err is the underlying symbolic color resolution error.
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("styles: resolving shadow layer %d: %v", e.Index, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Resolve returns a shadow list in which every layer carries a
// concrete color, by resolving each layer's symbolic expression
// against the given context, in list order. If the list is already
// resolved, it returns a new reference to the same list. Otherwise it
// builds a fresh list (with its own reference count of 1) sharing no
// mutable state with this one, which is never modified. On the first
// layer that fails it abandons the whole operation and returns a
// [ResolveError]: no partially resolved list is ever observable, and
// the remaining layers' expressions are not resolved at all.
func (ss *Shadows) Resolve(ctx symbolic.Context) (*Shadows, error) {
	ss.checkAlive("Resolve")
	if ss.resolved {
		return ss.Ref(), nil
	}
	rs := NewShadows()
	for i := range ss.els {
		el := &ss.els[i]
		c, err := el.symbolic.Resolve(ctx)
		if err != nil {
			rs.Unref()
			return nil, &ResolveError{Index: i, Err: err}
		}
		rs.els = append(rs.els, Shadow{
			OffsetX: el.OffsetX,
			OffsetY: el.OffsetY,
			Blur:    el.Blur,
			Spread:  el.Spread,
			Inset:   el.Inset,
			color:   c,
		})
	}
	rs.resolved = true
	return rs, nil
}

// String returns the canonical textual form of the list: the layers'
// forms joined with ", " in list order. An empty list has no textual
// form, reported by the false second return, never as "".
func (ss *Shadows) String() (string, bool) {
	ss.checkAlive("String")
	if len(ss.els) == 0 {
		return "", false
	}
	b := &strings.Builder{}
	for i := range ss.els {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ss.els[i].String())
	}
	return b.String(), true
}
