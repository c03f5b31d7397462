// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides named color themes: ordered sets of named
// symbolic colors that shadow declarations and other style values
// resolve against.
package theme

import (
	"image/color"
	"log/slog"
	"strings"

	"cogentcore.org/shade/base/errors"
	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/colors/symbolic"
	"github.com/jinzhu/copier"
)

// Theme is an ordered registry of named symbolic colors. It implements
// [symbolic.Context], so it can be passed directly to resolution.
// The zero value is usable; [New] also sets the theme name.
type Theme struct {

	// Name is the name of the theme.
	Name string

	// Colors are the named colors, in the order they were set.
	Colors []NamedColor

	// indexes is the name-to-index lookup map for Colors.
	indexes map[string]int
}

// NamedColor is one named symbolic color in a [Theme].
type NamedColor struct {

	// Name is the color's name in the theme, e.g. "bg_color".
	Name string

	// Color is the symbolic color expression registered under Name.
	Color symbolic.Color
}

// New returns a new empty [Theme] with the given name.
func New(name string) *Theme {
	return &Theme{Name: name}
}

// SetColor registers the given symbolic color under the given name,
// replacing any existing registration while keeping its position.
func (th *Theme) SetColor(name string, sc symbolic.Color) {
	if th.indexes == nil {
		th.indexes = map[string]int{}
	}
	if i, ok := th.indexes[name]; ok {
		th.Colors[i].Color = sc
		return
	}
	th.indexes[name] = len(th.Colors)
	th.Colors = append(th.Colors, NamedColor{Name: name, Color: sc})
}

// SetLiteral registers the given concrete color under the given name,
// as a [symbolic.Literal].
func (th *Theme) SetLiteral(name string, c color.Color) {
	th.SetColor(name, symbolic.NewLiteral(c))
}

// ColorLookup returns the symbolic color registered under the given
// name. It implements [symbolic.Context].
func (th *Theme) ColorLookup(name string) (symbolic.Color, bool) {
	i, ok := th.indexes[name]
	if !ok {
		return nil, false
	}
	return th.Colors[i].Color, true
}

// ColorNames returns the registered color names in registration order.
func (th *Theme) ColorNames() []string {
	nms := make([]string, len(th.Colors))
	for i, nc := range th.Colors {
		nms[i] = nc.Name
	}
	return nms
}

// Len returns the number of registered colors.
func (th *Theme) Len() int {
	return len(th.Colors)
}

// CopyFrom copies the name and colors of the given theme into this
// one, replacing its current contents. Color expressions themselves
// are immutable and are shared, not duplicated.
func (th *Theme) CopyFrom(fr *Theme) {
	th.Colors = nil
	err := copier.CopyWithOption(th, fr, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("theme.Theme.CopyFrom", "err", err)
	}
	th.reindex()
}

// reindex rebuilds the name-to-index map from Colors.
func (th *Theme) reindex() {
	th.indexes = make(map[string]int, len(th.Colors))
	for i, nc := range th.Colors {
		th.indexes[nc.Name] = i
	}
}

func (th *Theme) String() string {
	b := &strings.Builder{}
	b.WriteString(th.Name)
	b.WriteString(" {")
	for i, nc := range th.Colors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(nc.Name)
		b.WriteString(": ")
		b.WriteString(nc.Color.String())
	}
	b.WriteString("}")
	return b.String()
}

// Default returns the builtin default theme, a light palette with the
// standard named colors that widget style declarations refer to.
func Default() *Theme {
	th := New("default")
	set := func(name, hex string) {
		th.SetLiteral(name, errors.Log1(colors.FromHex(hex)))
	}
	set("bg_color", "#f6f5f4")
	set("fg_color", "#2e3436")
	set("base_color", "#ffffff")
	set("text_color", "#000000")
	set("selected_bg_color", "#3584e4")
	set("selected_fg_color", "#ffffff")
	set("tooltip_bg_color", "#343434")
	set("tooltip_fg_color", "#ffffff")
	return th
}
