// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned bounding box. A box with Max less than Min on
// any axis is empty, and bounds nothing.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns the box between the given corners.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Min: Vec3(x0, y0, z0), Max: Vec3(x1, y1, z1)}
}

// B3Empty returns an empty box, which any extension replaces.
func B3Empty() Box3 {
	return Box3{Min: Vector3Scalar(Infinity), Max: Vector3Scalar(-Infinity)}
}

// IsEmpty returns whether the box bounds nothing.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box to contain the given point.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min, b.Max = b.Min.Min(p), b.Max.Max(p)
}

// ExpandByBox grows the box to contain the given box, if it is not empty.
func (b *Box3) ExpandByBox(o Box3) {
	if !o.IsEmpty() {
		b.Min, b.Max = b.Min.Min(o.Min), b.Max.Max(o.Max)
	}
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether the point is inside the box or on its faces.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// BoundingSphere returns the smallest sphere around the box.
func (b Box3) BoundingSphere() Sphere {
	return Sphere{Center: b.Center(), Radius: b.Size().Length() / 2}
}

// Sphere is a sphere given by its center and radius.
type Sphere struct {
	Center Vector3
	Radius float32
}

// ContainsPoint returns whether the point is inside the sphere or on it.
func (s Sphere) ContainsPoint(p Vector3) bool {
	return p.DistanceTo(s.Center) <= s.Radius
}

// BoundingBox returns the smallest box around the sphere.
func (s Sphere) BoundingBox() Box3 {
	r := Vector3Scalar(s.Radius)
	return Box3{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
