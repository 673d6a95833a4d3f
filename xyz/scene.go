// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/tree"
)

// Scene is the root of a scene graph. It is the distinguished document
// object of a tree and is never a child of another node.
type Scene struct {
	Object3D
	Resource

	// Background is the clear color of the scene.
	Background math32.Color

	// Environment is an optional texture used for image based lighting.
	Environment *Texture
}

// NewScene returns a new initialized scene.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Object3D.Name = "scene"
	sc.Defaults()
	tree.InitNode(sc)
	return sc
}

// Defaults sets the default scene parameters.
func (sc *Scene) Defaults() {
	sc.Object3D.Defaults()
	sc.Background = math32.NewColorHex(0x000000)
}

// IsRoot reports that a scene is a root document object.
func (sc *Scene) IsRoot() bool { return true }

// Group collects nodes so that they can be transformed together.
// It has no geometry or material of its own.
type Group struct {
	Object3D
}

// NewGroup returns a new initialized group.
func NewGroup() *Group {
	gp := &Group{}
	gp.Defaults()
	tree.InitNode(gp)
	return gp
}

// BBox returns the union of the bounding boxes of all meshes under the group,
// ignoring transforms.
func (gp *Group) BBox() math32.Box3 {
	return subtreeBBox(&gp.Object3D)
}

// test for impl
var (
	_ Node = &Scene{}
	_ Node = &Group{}
)
