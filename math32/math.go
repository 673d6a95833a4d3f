// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// for the 3D scene graph, built on chewxy/math32.
package math32

import (
	"github.com/chewxy/math32"
)

// Pi is the ratio of a circle's circumference to its diameter.
const Pi = math32.Pi

// Infinity is positive infinity.
var Infinity = math32.Inf(1)

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * Pi / 180
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return Max(lo, Min(x, hi))
}
