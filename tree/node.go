// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the native parent/child structure of the
// scene graph, centered on the [Node] interface. A node has at most
// one parent and an ordered list of children; adding a node that
// already has a parent moves it.
package tree

// Node is an interface that all scene graph nodes satisfy. The core
// functionality of a node is defined on [NodeBase], and all higher-level
// node types must embed it. This interface only contains the functionality
// that higher-level types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// OnAdd is called when the node is added to a parent,
	// after its Parent has been set. It does nothing by default.
	OnAdd()

	// OnRemove is called when the node is removed from its parent,
	// after its Parent has been cleared. It does nothing by default.
	OnRemove()
}

// InitNode sets [NodeBase.This] of the given node to the node itself,
// which allows methods defined on [NodeBase] to refer to the full node.
// It must be called once on every node before it is used; the constructors
// of higher-level types do this, and [NodeBase.AddChild] and
// [NodeBase.InsertChild] do it for children. It is safe to call it
// more than once.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
	}
}

// IsRoot returns whether the given node has no parent.
func IsRoot(n Node) bool {
	return n == nil || n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	for !IsRoot(n) {
		n = n.AsTree().Parent
	}
	return n
}

// Children returns a copy of the children of the given node,
// which is safe to iterate while the node's children are modified.
func Children(n Node) []Node {
	kids := n.AsTree().Children
	if len(kids) == 0 {
		return nil
	}
	return append([]Node(nil), kids...)
}
