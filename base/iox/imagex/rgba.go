// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// AsRGBA returns the image as an [image.RGBA] whose bounds start at the
// origin. An origin-based RGBA image is returned directly, anything else
// is converted into a new image.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// FlipY returns a copy of the image with its rows in reverse order,
// so that the first row of pixels is the bottom of the picture, which is
// where OpenGL texture coordinates start.
func FlipY(src image.Image) *image.RGBA {
	return transform.FlipV(AsRGBA(src))
}

// Pixels returns the pixels of img as tightly packed RGBA8 rows,
// copying only when the image stride has padding.
func Pixels(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	row := 4 * w
	if img.Stride == row {
		return img.Pix[:row*h]
	}
	pix := make([]byte, row*h)
	for y := 0; y < h; y++ {
		copy(pix[y*row:(y+1)*row], img.Pix[y*img.Stride:])
	}
	return pix
}

// OpenRGBA opens the given image file and returns it as origin-based
// RGBA8, flipped vertically if flip is set. An image with no pixels is
// an error, as it cannot back a texture.
func OpenRGBA(filename string, flip bool) (*image.RGBA, error) {
	im, _, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if im.Bounds().Empty() {
		return nil, fmt.Errorf("imagex.OpenRGBA %q: image has no pixels", filename)
	}
	if flip {
		return FlipY(im), nil
	}
	return AsRGBA(im), nil
}
