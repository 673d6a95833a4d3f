// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/fiber/base/reflectx"
)

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

// SetValue implements [reflectx.Setter]. It accepts another [Vector3],
// a single number (applied to all components), or a sequence of three numbers.
func (v *Vector3) SetValue(a any) error {
	switch x := a.(type) {
	case Vector3:
		*v = x
		return nil
	case *Vector3:
		*v = *x
		return nil
	}
	fs, err := reflectx.ToFloat32s(a)
	if err != nil {
		return fmt.Errorf("math32.Vector3.SetValue: %w", err)
	}
	switch len(fs) {
	case 1:
		v.SetScalar(fs[0])
	case 3:
		v.Set(fs[0], fs[1], fs[2])
	default:
		return fmt.Errorf("math32.Vector3.SetValue: need 1 or 3 values, got %d", len(fs))
	}
	return nil
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// Min returns min of this vector components vs. other vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vec3(Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z))
}

// Max returns max of this vector components vs. other vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vec3(Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z))
}

// Dot returns the dot product of this vector with other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the length squared of this vector.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Length()
}

// String returns a compact representation of the vector.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
