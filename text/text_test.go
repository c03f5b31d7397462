// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestNewRun(t *testing.T) {
	face, err := Regular(16)
	require.NoError(t, err)

	tr := NewRun(face, "Hello")
	assert.Equal(t, "Hello", tr.String())
	require.Len(t, tr.Glyphs, 5)

	assert.Equal(t, float32(0), tr.Glyphs[0].Dot.X)
	for i := 1; i < len(tr.Glyphs); i++ {
		assert.Greater(t, tr.Glyphs[i].Dot.X, tr.Glyphs[i-1].Dot.X)
	}
	assert.Greater(t, tr.Advance, tr.Glyphs[4].Dot.X)

	for _, g := range tr.Glyphs {
		assert.Equal(t, float32(0), g.Dot.Y)
	}

	assert.Greater(t, tr.Height(), float32(0))
	assert.Greater(t, tr.Ascent(), float32(0))
}

func TestRunEmpty(t *testing.T) {
	face, err := Regular(16)
	require.NoError(t, err)

	tr := NewRun(face, "")
	assert.Empty(t, tr.Glyphs)
	assert.Equal(t, float32(0), tr.Advance)
	assert.Equal(t, "", tr.String())
}

func TestFaces(t *testing.T) {
	for _, fun := range []func(float32) (font.Face, error){Regular, Bold, Italic} {
		face, err := fun(12)
		require.NoError(t, err)
		tr := NewRun(face, "shadow")
		assert.Len(t, tr.Glyphs, 6)
		assert.Greater(t, tr.Advance, float32(0))
	}

	small, err := Regular(12)
	require.NoError(t, err)
	big, err := Regular(24)
	require.NoError(t, err)
	assert.Greater(t, NewRun(big, "shadow").Advance, NewRun(small, "shadow").Advance)
}
