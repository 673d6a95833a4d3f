// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the scene graph tree. You must use NodeBase as an embedded struct
// in all higher-level node types, and initialize the node with [InitNode].
type NodeBase struct {

	// Name is the name of this node. It is used for paths and debugging,
	// and need not be unique.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	This Node `copier:"-" json:"-" xml:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. You should not set this field directly; use
	// [NodeBase.AddChild], [NodeBase.InsertChild] and [NodeBase.RemoveChild].
	Parent Node `copier:"-" json:"-" xml:"-"`

	// Children is the ordered list of children of this node. All of them have this
	// node as their parent. It can be read directly, but should only be modified
	// through the NodeBase child methods so that parents stay consistent.
	Children []Node `copier:"-" json:",omitempty"`

	// index is the last known index of this node in its parent,
	// used as a starting point for finding it next time.
	index int
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// OnAdd is a placeholder implementation of [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// OnRemove is a placeholder implementation of [Node.OnRemove] that does nothing.
func (n *NodeBase) OnRemove() {}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// Path returns the path to this node from the tree root,
// using node names separated by / delimeters. Unnamed nodes
// are shown by their index in their parent.
func (n *NodeBase) Path() string {
	name := n.Name
	if name == "" {
		name = "[" + strconv.Itoa(n.IndexInParent()) + "]"
	}
	name = strings.ReplaceAll(name, "/", `\\`)
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + name
	}
	return "/" + name
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.self(), n.index)
	if idx >= 0 {
		n.index = idx
	}
	return idx
}

// self returns [NodeBase.This], falling back on the NodeBase itself
// for nodes that were never initialized.
func (n *NodeBase) self() Node {
	if n.This != nil {
		return n.This
	}
	return n
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	for _, k := range n.Children {
		if k.AsTree().Name == name {
			return k
		}
	}
	return nil
}

// Adding, inserting and removing children:

// AddChild adds the given child at the end of the children list.
// If the child already has a parent (including this node), it is
// removed from that parent first, so adding moves the child.
func (n *NodeBase) AddChild(kid Node) {
	n.InsertChild(kid, len(n.Children))
}

// InsertChild inserts the given child at the given position in the
// children list, clamped to the valid range. The position is interpreted
// after the child has been removed from any existing parent. A node can
// not be added to itself.
func (n *NodeBase) InsertChild(kid Node, index int) {
	if kid == nil {
		return
	}
	this := n.self()
	InitNode(kid)
	if kid == this {
		slog.Error("tree.NodeBase.InsertChild: cannot add node as a child of itself", "node", n.Path())
		return
	}
	if kb := kid.AsTree(); kb.Parent != nil {
		kb.Parent.AsTree().RemoveChild(kid)
	}
	index = max(0, min(index, len(n.Children)))
	n.Children = slices.Insert(n.Children, index, kid)
	kb := kid.AsTree()
	kb.Parent = this
	kb.index = index
	kid.OnAdd()
}

// RemoveChild removes the given child from the children list without
// destroying it, clearing its parent. It returns false if the node is
// not a child of this node.
func (n *NodeBase) RemoveChild(kid Node) bool {
	if kid == nil {
		return false
	}
	idx := IndexOf(n.Children, kid, kid.AsTree().index)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	kid.OnRemove()
	return true
}

// Clear removes all children of this node, clearing their parents.
func (n *NodeBase) Clear() {
	kids := n.Children
	n.Children = nil
	for _, k := range kids {
		k.AsTree().Parent = nil
		k.OnRemove()
	}
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner. It stops walking the current branch of the tree
// if the function returns [Break] and keeps walking if it returns [Continue].
// The children of each node are snapshotted before they are visited, so the
// function may modify the tree.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	walkDown(n.self(), fun)
}

func walkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range Children(n) {
		walkDown(k, fun)
	}
}

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break]. It returns whether
// walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.self()
	for cur != nil {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur { // prevent loops
			break
		}
		cur = parent
	}
	return true
}
