// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstruct(t *testing.T) {
	assert.Equal(t, color.RGBA{20, 40, 60, 255}, FromRGB(20, 40, 60))
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
	assert.Equal(t, color.NRGBA{}, AsNRGBA(nil))

	// premultiplication at half alpha
	assert.Equal(t, color.RGBA{128, 128, 128, 128}, AsRGBA(color.NRGBA{255, 255, 255, 128}))
	assert.Equal(t, AsRGBA(color.NRGBA{200, 100, 50, 128}), FromNRGBA(200, 100, 50, 128))
}

func TestAlpha(t *testing.T) {
	c := FromRGB(200, 100, 50)
	half := WithAF32(c, 0.5)
	assert.Equal(t, uint8(128), half.A)
	assert.Equal(t, AsRGBA(color.NRGBA{200, 100, 50, 128}), half)

	quarter := ApplyOpacity(half, 0.5)
	assert.Equal(t, uint8(64), quarter.A)

	assert.Equal(t, uint8(128), Clearer(c, 50).A)
	assert.Equal(t, uint8(255), Opaquer(half, 50).A)
}

func TestFromName(t *testing.T) {
	c, err := FromName("royalblue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{65, 105, 225, 255}, c)

	c, err = FromName("White")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	_, err = FromName("not-a-color")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	c, err := FromHex("#663399")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{102, 51, 153, 255}, c)

	c, err = FromHex("639")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{102, 51, 153, 255}, c)

	c, err = FromHex("#66339980")
	assert.NoError(t, err)
	assert.Equal(t, FromNRGBA(102, 51, 153, 128), c)

	_, err = FromHex("#1234")
	assert.Error(t, err)

	assert.Equal(t, "#663399", AsHex(FromRGB(102, 51, 153)))
	// 0 and 255 channels survive the premultiplied round trip at any alpha
	assert.Equal(t, "#FF00FF80", AsHex(FromNRGBA(255, 0, 255, 128)))
	assert.Equal(t, "", AsHex(nil))
}

func ExampleAsString() {
	fmt.Println(AsString(FromRGB(255, 0, 0)))
	fmt.Println(AsString(FromNRGBA(0, 0, 255, 51)))
	// Output:
	// rgb(255,0,0)
	// rgba(0,0,255,0.2)
}

func ExampleBlendRGB() {
	fmt.Println(BlendRGB(30, color.RGBA{173, 216, 230, 255}, color.RGBA{0, 0, 139, 255}))
	// Output: {52 65 166 255}
}

func TestUniform(t *testing.T) {
	c := FromRGB(10, 20, 30)
	img := Uniform(c)
	assert.Equal(t, c, ToUniform(img))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}
