// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a retained 3D scene graph: a tree of [Object3D] nodes
// (scenes, groups, meshes, lights, cameras) that reference geometry,
// material and texture resources which live outside the tree and are
// released with Dispose. It does not render anything itself.
package xyz

import (
	"maps"

	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/tree"
)

// Node is the interface for all nodes in the scene graph.
type Node interface {
	tree.Node

	// AsObject returns the [Object3D] of this node.
	AsObject() *Object3D
}

// Disposer is implemented by objects that hold resources which must be
// released explicitly when they are no longer used.
type Disposer interface {
	Dispose()
}

// Object3D is the base type for all nodes in the scene graph.
// It holds the local transform of the node relative to its parent.
type Object3D struct {
	tree.NodeBase

	// Position is the position of the node relative to its parent.
	Position math32.Vector3

	// Rotation is the rotation of the node relative to its parent.
	Rotation math32.Euler

	// Scale is the scale of the node relative to its parent.
	Scale math32.Vector3

	// Visible is whether the node and its children are shown.
	Visible bool

	// UserData holds arbitrary application data for the node.
	UserData map[string]any
}

// AsObject returns the [Object3D] for this node.
func (ob *Object3D) AsObject() *Object3D {
	return ob
}

// Defaults sets the default transform and visibility.
func (ob *Object3D) Defaults() {
	ob.Scale.SetScalar(1)
	ob.Visible = true
}

// AsNode returns the given value as a [Node] and its [Object3D],
// or nil, nil if it is not a scene graph node.
func AsNode(v any) (Node, *Object3D) {
	n, ok := v.(Node)
	if !ok || n == nil {
		return nil, nil
	}
	return n, n.AsObject()
}

// Add adds the given nodes as children of this node, moving them from
// any previous parent.
func (ob *Object3D) Add(kids ...Node) {
	for _, k := range kids {
		ob.AddChild(k)
	}
}

// Remove removes the given nodes from the children of this node.
// Nodes that are not children are ignored.
func (ob *Object3D) Remove(kids ...Node) {
	for _, k := range kids {
		ob.RemoveChild(k)
	}
}

// ObjectByName returns the first node in the subtree under this node
// (including itself) that has the given name, or nil.
func (ob *Object3D) ObjectByName(name string) Node {
	var found Node
	ob.WalkDown(func(k tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		if n, _ := AsNode(k); n != nil && k.AsTree().Name == name {
			found = n
			return tree.Break
		}
		return tree.Continue
	})
	return found
}

// CopyTransform copies the name, transform, visibility and user data of
// the given node onto this node. Children and parent are not copied.
func (ob *Object3D) CopyTransform(from *Object3D) {
	ob.Name = from.Name
	ob.Position = from.Position
	ob.Rotation = from.Rotation
	ob.Scale = from.Scale
	ob.Visible = from.Visible
	ob.UserData = maps.Clone(from.UserData)
}
