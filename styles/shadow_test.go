// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"testing"

	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/colors/symbolic"
	"cogentcore.org/shade/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func black() symbolic.Color {
	return symbolic.NewLiteral(colors.FromRGB(0, 0, 0))
}

func TestStringOrder(t *testing.T) {
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(1, 1, 0, 0, false, symbolic.NewLiteral(colors.FromRGB(255, 0, 0)))
	ss.Append(2, 2, 0, 0, false, symbolic.NewNamed("shadow_color"))
	ss.Append(-3, 0, 4, 0, false, symbolic.NewLiteral(colors.FromRGB(0, 0, 255)))

	s, ok := ss.String()
	require.True(t, ok)
	assert.Equal(t, "1 1 rgb(255,0,0), 2 2 @shadow_color, -3 0 4 rgb(0,0,255)", s)
}

func TestStringZeroSuppression(t *testing.T) {
	tests := []struct {
		blur, spread int
		want         string
	}{
		{0, 0, "2 2 rgb(0,0,0)"},
		{3, 0, "2 2 3 rgb(0,0,0)"},
		{0, 5, "2 2 5 rgb(0,0,0)"},
		{3, 5, "2 2 3 5 rgb(0,0,0)"},
		{-3, 0, "2 2 -3 rgb(0,0,0)"},
	}
	for _, tt := range tests {
		ss := NewShadows()
		ss.Append(2, 2, tt.blur, tt.spread, false, black())
		s, ok := ss.String()
		require.True(t, ok)
		assert.Equal(t, tt.want, s)
		ss.Unref()
	}
}

func TestStringInset(t *testing.T) {
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(0, 1, 0, 0, true, black())
	s, ok := ss.String()
	require.True(t, ok)
	assert.Equal(t, "inset 0 1 rgb(0,0,0)", s)
}

func TestStringEmpty(t *testing.T) {
	ss := NewShadows()
	defer ss.Unref()
	s, ok := ss.String()
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

func TestResolve(t *testing.T) {
	th := theme.Default()
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(0, 1, 2, 0, false, symbolic.NewNamed("fg_color"))
	ss.Append(0, -1, 0, 0, false, symbolic.NewAlpha(symbolic.NewNamed("bg_color"), 0.5))

	rs, err := ss.Resolve(th)
	require.NoError(t, err)
	defer rs.Unref()

	assert.True(t, rs.Resolved())
	require.Equal(t, 2, rs.Len())
	assert.True(t, rs.At(0).Concrete())
	assert.Equal(t, colors.FromRGB(46, 52, 54), rs.At(0).Color())
	faded := colors.ApplyOpacity(colors.FromRGB(246, 245, 244), 0.5)
	assert.Equal(t, faded, rs.At(1).Color())

	// geometry is copied verbatim
	assert.Equal(t, 0, rs.At(0).OffsetX)
	assert.Equal(t, 1, rs.At(0).OffsetY)
	assert.Equal(t, 2, rs.At(0).Blur)

	// resolved lists serialize with concrete color text
	s, ok := rs.String()
	require.True(t, ok)
	assert.Equal(t, "0 1 2 rgb(46,52,54), 0 -1 "+colors.AsString(faded), s)
}

func TestResolveIdempotent(t *testing.T) {
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(1, 1, 0, 0, false, black())

	rs, err := ss.Resolve(nil)
	require.NoError(t, err)

	rs2, err := rs.Resolve(nil)
	require.NoError(t, err)
	assert.Same(t, rs, rs2)
	assert.Equal(t, 2, rs.refs)

	rs2.Unref()
	rs.Unref()
}

// countingContext counts name lookups so that tests can verify that
// resolution stops at the first failure.
type countingContext struct {
	m       map[string]symbolic.Color
	lookups int
}

func (cc *countingContext) ColorLookup(name string) (symbolic.Color, bool) {
	cc.lookups++
	sc, ok := cc.m[name]
	return sc, ok
}

func TestResolveFailFast(t *testing.T) {
	cc := &countingContext{m: map[string]symbolic.Color{
		"good": symbolic.NewLiteral(colors.FromRGB(1, 2, 3)),
	}}

	ss := NewShadows()
	defer ss.Unref()
	ss.Append(1, 0, 0, 0, false, symbolic.NewNamed("good"))
	ss.Append(2, 0, 0, 0, false, symbolic.NewNamed("missing"))
	ss.Append(3, 0, 0, 0, false, symbolic.NewNamed("good"))

	rs, err := ss.Resolve(cc)
	assert.Nil(t, rs)
	require.Error(t, err)

	re := &ResolveError{}
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 1, re.Index)
	assert.ErrorIs(t, err, symbolic.ErrNameNotFound)

	// the third layer was never consulted
	assert.Equal(t, 2, cc.lookups)
}

func TestResolveNonDestructive(t *testing.T) {
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(1, 1, 0, 0, false, black())
	before, _ := ss.String()

	rs, err := ss.Resolve(nil)
	require.NoError(t, err)
	defer rs.Unref()

	assert.False(t, ss.Resolved())
	assert.NotNil(t, ss.At(0).Symbolic())
	after, _ := ss.String()
	assert.Equal(t, before, after)

	// the source can still grow after a resolve
	ss.Append(2, 2, 0, 0, false, black())
	assert.Equal(t, 2, ss.Len())
	assert.Equal(t, 1, rs.Len())
}

func TestRefCounting(t *testing.T) {
	ss := NewShadows()
	ss.Append(1, 1, 0, 0, false, black())

	assert.Same(t, ss, ss.Ref())
	assert.Equal(t, 2, ss.refs)

	ss.Unref()
	// still alive after the first unref
	assert.Equal(t, 1, ss.refs)
	assert.Equal(t, 1, ss.Len())
	assert.NotNil(t, ss.els)

	ss.Unref()
	// destroyed exactly now: layers released, further use panics
	assert.Nil(t, ss.els)
	assert.Panics(t, func() { ss.Unref() })
	assert.Panics(t, func() { ss.Ref() })
	assert.Panics(t, func() { ss.Len() })
	assert.Panics(t, func() { ss.String() })
}

func TestContractViolations(t *testing.T) {
	assert.Panics(t, func() { NewShadow(0, 0, 0, 0, false, nil) })

	var zero Shadows
	assert.Panics(t, func() { zero.Append(1, 1, 0, 0, false, black()) })

	ss := NewShadows()
	defer ss.Unref()
	ss.Append(1, 1, 0, 0, false, black())
	assert.Panics(t, func() { ss.At(0).Color() })

	rs, err := ss.Resolve(nil)
	require.NoError(t, err)
	defer rs.Unref()
	assert.Panics(t, func() { rs.Append(1, 1, 0, 0, false, black()) })
	assert.Nil(t, rs.At(0).Symbolic())
}

func ExampleShadows_String() {
	ss := NewShadows()
	defer ss.Unref()
	ss.Append(0, 1, 0, 0, false, symbolic.NewNamed("shadow_color"))
	ss.Append(0, -1, 2, 0, true, symbolic.NewShade(symbolic.NewNamed("bg_color"), 0.9))
	s, _ := ss.String()
	fmt.Println(s)
	// Output: 0 1 @shadow_color, inset 0 -1 2 shade(@bg_color, 0.9)
}
