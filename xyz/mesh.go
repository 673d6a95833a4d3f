// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/tree"
)

// Mesh is a node rendered with a geometry and a material.
// The geometry and material are resources attached to the mesh,
// not children of it.
type Mesh struct {
	Object3D

	// Geometry is the shape of the mesh.
	Geometry Geometry

	// Material is the surface of the mesh.
	Material Material

	// Materials are per-group materials for geometries with groups.
	// When set they take precedence over Material.
	Materials []Material
}

// NewMesh returns a new initialized mesh with the given geometry
// and material, either of which may be nil.
func NewMesh(geom Geometry, mat Material) *Mesh {
	ms := &Mesh{Geometry: geom, Material: mat}
	ms.Defaults()
	tree.InitNode(ms)
	return ms
}

// BBox returns the bounding box of the geometry of the mesh,
// which is empty if there is no geometry.
func (ms *Mesh) BBox() math32.Box3 {
	if ms.Geometry == nil {
		return math32.B3Empty()
	}
	return ms.Geometry.BBox()
}

// subtreeBBox returns the union of the bounding boxes of the
// meshes under the given node.
func subtreeBBox(ob *Object3D) math32.Box3 {
	bb := math32.B3Empty()
	ob.WalkDown(func(k tree.Node) bool {
		if ms, ok := k.(*Mesh); ok {
			bb.ExpandByBox(ms.BBox())
		}
		return tree.Continue
	})
	return bb
}

var _ Node = &Mesh{}
