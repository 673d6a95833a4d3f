// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/tree"
)

// Light is the interface for all lights.
type Light interface {
	Node

	// AsLight returns the [LightBase] of the light.
	AsLight() *LightBase
}

// LightBase holds the properties shared by all lights.
type LightBase struct {
	Object3D
	Resource

	// Color is the color of the light.
	Color math32.Color

	// Intensity is the strength of the light.
	Intensity float32
}

// AsLight returns the [LightBase] for this light.
func (lb *LightBase) AsLight() *LightBase {
	return lb
}

func (lb *LightBase) defaults(lt Light, color math32.Color, intensity float32) {
	lb.Object3D.Defaults()
	tree.InitNode(lt)
	lb.Color = color
	lb.Intensity = intensity
}

// AmbientLight lights all objects equally from all directions.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new ambient light.
func NewAmbientLight(color math32.Color, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.defaults(lt, color, intensity)
	return lt
}

// DirectionalLight is a light infinitely far away shining from its
// position towards the origin.
type DirectionalLight struct {
	LightBase
}

// NewDirectionalLight returns a new directional light.
func NewDirectionalLight(color math32.Color, intensity float32) *DirectionalLight {
	lt := &DirectionalLight{}
	lt.defaults(lt, color, intensity)
	lt.Position.Set(0, 1, 0)
	return lt
}

// PointLight shines in all directions from its position.
type PointLight struct {
	LightBase

	// Distance is the maximum range of the light, where 0 is unlimited.
	Distance float32

	// Decay is the amount the light dims with distance.
	Decay float32
}

// NewPointLight returns a new point light.
func NewPointLight(color math32.Color, intensity, distance, decay float32) *PointLight {
	lt := &PointLight{Distance: distance, Decay: decay}
	lt.defaults(lt, color, intensity)
	return lt
}

// SpotLight shines in a cone from its position.
type SpotLight struct {
	LightBase

	// Distance is the maximum range of the light, where 0 is unlimited.
	Distance float32

	// Angle is the angle of the cone in radians.
	Angle float32

	// Penumbra is the fraction of the cone that is attenuated, from 0 to 1.
	Penumbra float32

	// Decay is the amount the light dims with distance.
	Decay float32
}

// NewSpotLight returns a new spot light.
func NewSpotLight(color math32.Color, intensity, distance, angle, penumbra, decay float32) *SpotLight {
	lt := &SpotLight{Distance: distance, Angle: angle, Penumbra: math32.Clamp(penumbra, 0, 1), Decay: decay}
	lt.defaults(lt, color, intensity)
	lt.Position.Set(0, 1, 0)
	return lt
}

// test for impl
var (
	_ Light = &AmbientLight{}
	_ Light = &DirectionalLight{}
	_ Light = &PointLight{}
	_ Light = &SpotLight{}
)
