// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/lucasb-eyer/go-colorful"

	"cogentcore.org/fiber/base/reflectx"
)

// Color is an RGB color with components in the [0, 1] range.
type Color struct {
	R float32
	G float32
	B float32
}

// NewColorHex returns the [Color] for the given 0xRRGGBB value.
func NewColorHex(hex uint32) Color {
	return Color{
		R: float32(hex>>16&0xff) / 255,
		G: float32(hex>>8&0xff) / 255,
		B: float32(hex&0xff) / 255,
	}
}

// Set sets the color components.
func (c *Color) Set(r, g, b float32) {
	c.R = Clamp(r, 0, 1)
	c.G = Clamp(g, 0, 1)
	c.B = Clamp(b, 0, 1)
}

// SetValue implements [reflectx.Setter]. It accepts another [Color],
// a [color.Color], a hex string such as "#ff8800", an integer 0xRRGGBB
// value, or a sequence of three components in the [0, 1] range.
func (c *Color) SetValue(a any) error {
	switch x := a.(type) {
	case Color:
		*c = x
		return nil
	case string:
		cf, err := colorful.Hex(x)
		if err != nil {
			return fmt.Errorf("math32.Color.SetValue: %w", err)
		}
		c.Set(float32(cf.R), float32(cf.G), float32(cf.B))
		return nil
	case color.Color:
		cf, ok := colorful.MakeColor(x)
		if !ok {
			return fmt.Errorf("math32.Color.SetValue: fully transparent color %v", x)
		}
		c.Set(float32(cf.R), float32(cf.G), float32(cf.B))
		return nil
	}
	if k := reflect.ValueOf(a).Kind(); k >= reflect.Int && k <= reflect.Uintptr {
		h, err := reflectx.ToInt(a)
		if err != nil {
			return fmt.Errorf("math32.Color.SetValue: %w", err)
		}
		*c = NewColorHex(uint32(h))
		return nil
	}
	fs, err := reflectx.ToFloat32s(a)
	if err != nil {
		return fmt.Errorf("math32.Color.SetValue: %w", err)
	}
	if len(fs) != 3 {
		return fmt.Errorf("math32.Color.SetValue: need 3 components, got %d", len(fs))
	}
	c.Set(fs[0], fs[1], fs[2])
	return nil
}

// RGBA returns the color as an opaque [color.RGBA].
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R*255 + 0.5), G: uint8(c.G*255 + 0.5), B: uint8(c.B*255 + 0.5), A: 255}
}

// Hex returns the "#rrggbb" representation of the color.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hex()
}
