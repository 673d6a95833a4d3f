// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"slices"

	"cogentcore.org/fiber/base/reflectx"
	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/tree"
)

// Constructor makes a new object from loosely typed constructor arguments,
// as they appear in declarative scene documents.
type Constructor func(args ...any) (any, error)

// Entry is one named constructor of the [Namespace].
type Entry struct {
	Name string
	New  Constructor
}

// Namespace returns the constructors of all the object types of this
// package, keyed by type name, in a stable order.
func Namespace() []Entry {
	return []Entry{
		{"Object3D", func(a ...any) (any, error) {
			ob := &Object3D{}
			ob.Defaults()
			tree.InitNode(ob)
			return ob, nil
		}},
		{"Scene", func(a ...any) (any, error) { return NewScene(), nil }},
		{"Group", func(a ...any) (any, error) { return NewGroup(), nil }},
		{"Mesh", newMeshArgs},
		{"BufferGeometry", func(a ...any) (any, error) { return &BufferGeometry{}, nil }},
		{"BoxGeometry", func(a ...any) (any, error) {
			ar := args{typ: "BoxGeometry", list: a}
			return ar.done(NewBoxGeometry(ar.float(0, 1), ar.float(1, 1), ar.float(2, 1)))
		}},
		{"SphereGeometry", func(a ...any) (any, error) {
			ar := args{typ: "SphereGeometry", list: a}
			return ar.done(NewSphereGeometry(ar.float(0, 1), ar.int(1, 32), ar.int(2, 16)))
		}},
		{"PlaneGeometry", func(a ...any) (any, error) {
			ar := args{typ: "PlaneGeometry", list: a}
			return ar.done(NewPlaneGeometry(ar.float(0, 1), ar.float(1, 1)))
		}},
		{"CylinderGeometry", func(a ...any) (any, error) {
			ar := args{typ: "CylinderGeometry", list: a}
			return ar.done(NewCylinderGeometry(ar.float(0, 1), ar.float(1, 1), ar.float(2, 1), ar.int(3, 32)))
		}},
		{"MeshBasicMaterial", func(a ...any) (any, error) {
			ar := args{typ: "MeshBasicMaterial", list: a}
			mt := NewMeshBasicMaterial()
			ar.params(0, mt)
			return ar.done(mt)
		}},
		{"MeshStandardMaterial", func(a ...any) (any, error) {
			ar := args{typ: "MeshStandardMaterial", list: a}
			mt := NewMeshStandardMaterial()
			ar.params(0, mt)
			return ar.done(mt)
		}},
		{"MeshPhongMaterial", func(a ...any) (any, error) {
			ar := args{typ: "MeshPhongMaterial", list: a}
			mt := NewMeshPhongMaterial()
			ar.params(0, mt)
			return ar.done(mt)
		}},
		{"Texture", func(a ...any) (any, error) {
			ar := args{typ: "Texture", list: a}
			return ar.done(NewTexture(ar.string(0, "")))
		}},
		{"AmbientLight", func(a ...any) (any, error) {
			ar := args{typ: "AmbientLight", list: a}
			return ar.done(NewAmbientLight(ar.color(0, 0xffffff), ar.float(1, 1)))
		}},
		{"DirectionalLight", func(a ...any) (any, error) {
			ar := args{typ: "DirectionalLight", list: a}
			return ar.done(NewDirectionalLight(ar.color(0, 0xffffff), ar.float(1, 1)))
		}},
		{"PointLight", func(a ...any) (any, error) {
			ar := args{typ: "PointLight", list: a}
			return ar.done(NewPointLight(ar.color(0, 0xffffff), ar.float(1, 1), ar.float(2, 0), ar.float(3, 2)))
		}},
		{"SpotLight", func(a ...any) (any, error) {
			ar := args{typ: "SpotLight", list: a}
			return ar.done(NewSpotLight(ar.color(0, 0xffffff), ar.float(1, 1), ar.float(2, 0),
				ar.float(3, math32.Pi/3), ar.float(4, 0), ar.float(5, 2)))
		}},
		{"PerspectiveCamera", func(a ...any) (any, error) {
			ar := args{typ: "PerspectiveCamera", list: a}
			return ar.done(NewPerspectiveCamera(ar.float(0, 50), ar.float(1, 1), ar.float(2, 0.1), ar.float(3, 2000)))
		}},
		{"OrthographicCamera", func(a ...any) (any, error) {
			ar := args{typ: "OrthographicCamera", list: a}
			return ar.done(NewOrthographicCamera(ar.float(0, -1), ar.float(1, 1), ar.float(2, 1), ar.float(3, -1),
				ar.float(4, 0.1), ar.float(5, 2000)))
		}},
	}
}

func newMeshArgs(a ...any) (any, error) {
	ms := NewMesh(nil, nil)
	if len(a) > 0 && a[0] != nil {
		gm, ok := a[0].(Geometry)
		if !ok {
			return nil, fmt.Errorf("xyz.Mesh: argument 0: %T is not a Geometry", a[0])
		}
		ms.Geometry = gm
	}
	if len(a) > 1 && a[1] != nil {
		switch mt := a[1].(type) {
		case Material:
			ms.Material = mt
		case []Material:
			ms.Materials = mt
		default:
			return nil, fmt.Errorf("xyz.Mesh: argument 1: %T is not a Material", a[1])
		}
	}
	return ms, nil
}

// args reads constructor arguments with defaults, recording
// the first conversion error.
type args struct {
	typ  string
	list []any
	err  error
}

func (ar *args) get(i int) (any, bool) {
	if i >= len(ar.list) || ar.list[i] == nil {
		return nil, false
	}
	return ar.list[i], true
}

func (ar *args) fail(i int, err error) {
	if ar.err == nil {
		ar.err = fmt.Errorf("xyz.%s: argument %d: %w", ar.typ, i, err)
	}
}

func (ar *args) float(i int, def float32) float32 {
	v, ok := ar.get(i)
	if !ok {
		return def
	}
	f, err := reflectx.ToFloat32(v)
	if err != nil {
		ar.fail(i, err)
		return def
	}
	return f
}

func (ar *args) int(i int, def int) int {
	v, ok := ar.get(i)
	if !ok {
		return def
	}
	n, err := reflectx.ToInt(v)
	if err != nil {
		ar.fail(i, err)
		return def
	}
	return n
}

func (ar *args) string(i int, def string) string {
	v, ok := ar.get(i)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		ar.fail(i, fmt.Errorf("%T is not a string", v))
		return def
	}
	return s
}

func (ar *args) color(i int, def uint32) math32.Color {
	c := math32.NewColorHex(def)
	v, ok := ar.get(i)
	if !ok {
		return c
	}
	if err := c.SetValue(v); err != nil {
		ar.fail(i, err)
	}
	return c
}

// params sets the fields of obj from a map of parameters, as in
// material constructors.
func (ar *args) params(i int, obj any) {
	v, ok := ar.get(i)
	if !ok {
		return
	}
	m, ok := v.(map[string]any)
	if !ok {
		ar.fail(i, fmt.Errorf("%T is not a parameter map", v))
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := reflectx.SetPath(obj, k, m[k]); err != nil {
			ar.fail(i, err)
			return
		}
	}
}

func (ar *args) done(obj any) (any, error) {
	if ar.err != nil {
		return nil, ar.err
	}
	return obj, nil
}
