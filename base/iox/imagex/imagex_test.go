// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRows returns a 3x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		im.SetRGBA(x, 0, red)
		im.SetRGBA(x, 1, blue)
	}
	return im
}

func writeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	fn := filepath.Join(t.TempDir(), name)
	f, err := os.Create(fn)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return fn
}

func TestOpenPNG(t *testing.T) {
	fn := writeFile(t, "boomer.png", func(f *os.File) error { return png.Encode(f, twoRows()) })

	im, format, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, format)
	assert.Equal(t, image.Pt(3, 2), im.Bounds().Size())
}

func TestOpenBMP(t *testing.T) {
	fn := writeFile(t, "boomer.bmp", func(f *os.File) error { return bmp.Encode(f, twoRows()) })

	_, format, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, BMP, format)
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "boomer.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenNotImage(t *testing.T) {
	fn := writeFile(t, "boomer.png", func(f *os.File) error {
		_, err := f.WriteString("this is not a picture\n")
		return err
	})
	_, _, err := Open(fn)
	assert.ErrorIs(t, err, ErrNotImage)

	fn = writeFile(t, "doc.png", func(f *os.File) error {
		_, err := f.WriteString("%PDF-1.4\n%comment\n")
		return err
	})
	_, _, err = Open(fn)
	assert.ErrorIs(t, err, ErrNotImage)
	assert.Contains(t, err.Error(), "application/pdf")

	fn = writeFile(t, "empty.png", func(f *os.File) error { return nil })
	_, _, err = Open(fn)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestOpenRGBA(t *testing.T) {
	fn := writeFile(t, "boomer.png", func(f *os.File) error { return png.Encode(f, twoRows()) })

	im, err := OpenRGBA(fn, false)
	require.NoError(t, err)
	assert.Equal(t, red, im.RGBAAt(0, 0))
	assert.Equal(t, blue, im.RGBAAt(0, 1))

	im, err = OpenRGBA(fn, true)
	require.NoError(t, err)
	assert.Equal(t, blue, im.RGBAAt(0, 0))
	assert.Equal(t, red, im.RGBAAt(2, 1))
}

func TestAsRGBA(t *testing.T) {
	src := twoRows()
	assert.Same(t, src, AsRGBA(src))

	sub := src.SubImage(image.Rect(1, 1, 3, 2))
	rgba := AsRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 1), rgba.Rect)
	assert.Equal(t, blue, rgba.RGBAAt(0, 0))

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 255})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, AsRGBA(gray).RGBAAt(0, 0))

	assert.Nil(t, AsRGBA(nil))
}

func TestPixels(t *testing.T) {
	src := twoRows()
	assert.Len(t, Pixels(src), 3*2*4)

	sub := src.SubImage(image.Rect(0, 1, 2, 2)).(*image.RGBA)
	pix := Pixels(sub)
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0, 255, 255}, pix)
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("psd")
	assert.Error(t, err)
	assert.Equal(t, "WebP", WebP.String())
}
