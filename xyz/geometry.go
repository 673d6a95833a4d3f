// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/fiber/math32"
)

// Geometry is the interface for all shapes that can be used by a [Mesh].
type Geometry interface {
	Disposer

	// AsGeometry returns the [BufferGeometry] holding the vertex data.
	AsGeometry() *BufferGeometry

	// BBox returns the bounding box of the geometry.
	BBox() math32.Box3
}

// GeometryGroup is a range of indexes drawn with one of the
// materials of a mesh.
type GeometryGroup struct {
	Start         int
	Count         int
	MaterialIndex int
}

// BufferGeometry is a geometry defined directly by its vertex data.
// It is the base of all other geometry types.
type BufferGeometry struct {
	Resource

	// Name is an optional name for the geometry.
	Name string

	// Positions are the vertex positions.
	Positions []math32.Vector3

	// Indexes are optional triangle indexes into Positions.
	Indexes []uint32

	// Groups split the indexes for use with multiple materials.
	Groups []GeometryGroup
}

// AsGeometry returns the [BufferGeometry] for this geometry.
func (gm *BufferGeometry) AsGeometry() *BufferGeometry {
	return gm
}

// BBox returns the bounding box of all positions.
func (gm *BufferGeometry) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range gm.Positions {
		bb.ExpandByPoint(p)
	}
	return bb
}

// AddGroup adds a material group to the geometry.
func (gm *BufferGeometry) AddGroup(start, count, materialIndex int) {
	gm.Groups = append(gm.Groups, GeometryGroup{Start: start, Count: count, MaterialIndex: materialIndex})
}

// setBox sets the positions to the corners of the given box.
func (gm *BufferGeometry) setBox(min, max math32.Vector3) {
	gm.Positions = gm.Positions[:0]
	for i := range 8 {
		p := min
		if i&1 != 0 {
			p.X = max.X
		}
		if i&2 != 0 {
			p.Y = max.Y
		}
		if i&4 != 0 {
			p.Z = max.Z
		}
		gm.Positions = append(gm.Positions, p)
	}
}

// BoxGeometry is a rectangular cuboid centered on the origin.
type BoxGeometry struct {
	BufferGeometry
	Width  float32
	Height float32
	Depth  float32
}

// NewBoxGeometry returns a box with the given size.
func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	bx := &BoxGeometry{Width: width, Height: height, Depth: depth}
	half := math32.Vec3(width, height, depth).MulScalar(0.5)
	bx.setBox(half.MulScalar(-1), half)
	for i, f := range boxFaces {
		bx.Indexes = append(bx.Indexes, f[0], f[1], f[2], f[0], f[2], f[3])
		if i%2 == 1 {
			// one group per face pair: x, y, z
			bx.AddGroup((i-1)*6, 12, i/2)
		}
	}
	return bx
}

// boxFaces are the corners of each box face in [BufferGeometry.setBox]
// order, counter-clockwise seen from outside: -x, +x, -y, +y, -z, +z.
var boxFaces = [6][4]uint32{
	{0, 4, 6, 2}, {1, 3, 7, 5},
	{0, 1, 5, 4}, {2, 6, 7, 3},
	{0, 2, 3, 1}, {4, 5, 7, 6},
}

// SphereGeometry is a sphere centered on the origin.
type SphereGeometry struct {
	BufferGeometry
	Radius         float32
	WidthSegments  int
	HeightSegments int
}

// NewSphereGeometry returns a sphere with the given radius and segments.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *SphereGeometry {
	sp := &SphereGeometry{Radius: radius, WidthSegments: max(3, widthSegments), HeightSegments: max(2, heightSegments)}
	bb := math32.Sphere{Radius: radius}.BoundingBox()
	sp.setBox(bb.Min, bb.Max)
	return sp
}

// PlaneGeometry is a rectangle in the XY plane centered on the origin.
type PlaneGeometry struct {
	BufferGeometry
	Width  float32
	Height float32
}

// NewPlaneGeometry returns a plane with the given size.
func NewPlaneGeometry(width, height float32) *PlaneGeometry {
	pl := &PlaneGeometry{Width: width, Height: height}
	half := math32.Vec3(width, height, 0).MulScalar(0.5)
	pl.setBox(half.MulScalar(-1), half)
	return pl
}

// CylinderGeometry is a cylinder along the Y axis centered on the origin,
// with possibly different top and bottom radii.
type CylinderGeometry struct {
	BufferGeometry
	RadiusTop      float32
	RadiusBottom   float32
	Height         float32
	RadialSegments int
}

// NewCylinderGeometry returns a cylinder with the given dimensions.
func NewCylinderGeometry(radiusTop, radiusBottom, height float32, radialSegments int) *CylinderGeometry {
	cy := &CylinderGeometry{RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, RadialSegments: max(3, radialSegments)}
	r := math32.Max(radiusTop, radiusBottom)
	cy.setBox(math32.Vec3(-r, -height/2, -r), math32.Vec3(r, height/2, r))
	return cy
}

// test for impl
var (
	_ Geometry = &BufferGeometry{}
	_ Geometry = &BoxGeometry{}
	_ Geometry = &SphereGeometry{}
	_ Geometry = &PlaneGeometry{}
	_ Geometry = &CylinderGeometry{}
)
