// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/fiber/base/reflectx"
)

// Euler is a rotation expressed as angles in radians around the
// X, Y and Z axes, applied in XYZ order.
type Euler struct {
	X float32
	Y float32
	Z float32
}

// Set sets the rotation angles, in radians.
func (e *Euler) Set(x, y, z float32) {
	e.X = x
	e.Y = y
	e.Z = z
}

// SetDegrees sets the rotation angles from degrees.
func (e *Euler) SetDegrees(x, y, z float32) {
	e.Set(DegToRad(x), DegToRad(y), DegToRad(z))
}

// SetValue implements [reflectx.Setter]. It accepts another [Euler]
// or a sequence of three angles in radians.
func (e *Euler) SetValue(a any) error {
	if x, ok := a.(Euler); ok {
		*e = x
		return nil
	}
	fs, err := reflectx.ToFloat32s(a)
	if err != nil {
		return fmt.Errorf("math32.Euler.SetValue: %w", err)
	}
	if len(fs) != 3 {
		return fmt.Errorf("math32.Euler.SetValue: need 3 angles, got %d", len(fs))
	}
	e.Set(fs[0], fs[1], fs[2])
	return nil
}
