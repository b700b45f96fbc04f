// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "cogentcore.org/glframe/shaders"

// Variants are the kinds of frame the renderer draws.
type Variants int32 //enums:enum -transform lower

const (
	// Colored is a triangle of interpolated vertex colors.
	Colored Variants = iota

	// Textured is a vertex-colored triangle modulated by the image.
	Textured

	// Flipped is Textured with the image rows flipped on load, so that
	// its first row is at texture coordinate v = 0.
	Flipped

	// Transform is Flipped with positions transformed by a matrix
	// uniform.
	Transform

	// Scaled is a white textured triangle drawn with the precompiled
	// quad shader, transformed by a matrix and a scale uniform.
	Scaled
)

// HasTexture returns whether the variant samples the image.
func (v Variants) HasTexture() bool {
	return v != Colored
}

// FlipImage returns whether the image rows are flipped on load.
func (v Variants) FlipImage() bool {
	return v >= Flipped
}

// UniformSize returns the size of the vertex stage uniform block, or 0.
func (v Variants) UniformSize() int {
	switch v {
	case Transform:
		return shaders.TransformParamsSize
	case Scaled:
		return shaders.VSParamsSize
	}
	return 0
}
