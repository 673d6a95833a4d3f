// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Texture is an image used by a material.
type Texture struct {
	Resource

	// Name is an optional name for the texture.
	Name string

	// Source is the location of the image, typically a file name or URL.
	Source string

	// FlipY is whether the image is flipped vertically when it is uploaded.
	FlipY bool
}

// NewTexture returns a texture for the given image source.
func NewTexture(source string) *Texture {
	return &Texture{Source: source, FlipY: true}
}
