// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/fiber/math32"
)

// Sides are the faces of a surface that are drawn.
type Sides int32

const (
	// FrontSide draws only front facing surfaces.
	FrontSide Sides = iota

	// BackSide draws only back facing surfaces.
	BackSide

	// DoubleSide draws both.
	DoubleSide
)

// Material is the interface for all surface descriptions used by a [Mesh].
type Material interface {
	Disposer

	// AsMaterial returns the [MaterialBase] of the material.
	AsMaterial() *MaterialBase
}

// MaterialBase holds the properties shared by all materials.
type MaterialBase struct {
	Resource

	// Name is an optional name for the material.
	Name string

	// Color is the main color of the surface.
	Color math32.Color

	// Opacity is the alpha of the surface, used when Transparent is set.
	Opacity float32

	// Transparent is whether the surface is drawn with transparency.
	Transparent bool

	// Wireframe draws the surface as lines.
	Wireframe bool

	// Side is which faces are drawn.
	Side Sides

	// Map is the optional color texture.
	Map *Texture
}

// AsMaterial returns the [MaterialBase] for this material.
func (mt *MaterialBase) AsMaterial() *MaterialBase {
	return mt
}

// Defaults sets default surface parameters.
func (mt *MaterialBase) Defaults() {
	mt.Color = math32.NewColorHex(0xffffff)
	mt.Opacity = 1
}

// IsTransparent returns whether the material needs blending.
func (mt *MaterialBase) IsTransparent() bool {
	return mt.Transparent && mt.Opacity < 1
}

// MeshBasicMaterial is a material that is not affected by lights.
type MeshBasicMaterial struct {
	MaterialBase
}

// MeshStandardMaterial is a physically based metallic-roughness material.
type MeshStandardMaterial struct {
	MaterialBase

	// Roughness is how rough the surface is, from 0 (mirror) to 1 (diffuse).
	Roughness float32

	// Metalness is how metallic the surface is, from 0 to 1.
	Metalness float32

	// Emissive is the color the surface emits regardless of lighting.
	Emissive math32.Color
}

// MeshPhongMaterial is a material with specular highlights.
type MeshPhongMaterial struct {
	MaterialBase

	// Shininess is the specular exponent.
	Shininess float32

	// Specular is the color of the highlights.
	Specular math32.Color
}

// NewMeshBasicMaterial returns a basic material with default parameters.
func NewMeshBasicMaterial() *MeshBasicMaterial {
	mt := &MeshBasicMaterial{}
	mt.Defaults()
	return mt
}

// NewMeshStandardMaterial returns a standard material with default parameters.
func NewMeshStandardMaterial() *MeshStandardMaterial {
	mt := &MeshStandardMaterial{Roughness: 1}
	mt.Defaults()
	return mt
}

// NewMeshPhongMaterial returns a phong material with default parameters.
func NewMeshPhongMaterial() *MeshPhongMaterial {
	mt := &MeshPhongMaterial{Shininess: 30}
	mt.Defaults()
	mt.Specular = math32.NewColorHex(0x111111)
	return mt
}

// test for impl
var (
	_ Material = &MeshBasicMaterial{}
	_ Material = &MeshStandardMaterial{}
	_ Material = &MeshPhongMaterial{}
)
