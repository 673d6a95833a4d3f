// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"log/slog"
	"slices"

	"cogentcore.org/fiber/tree"
)

// AppendChild makes child the last child of parent: attached to its slot
// if it has an [Attach], else a native child if both are scene graph
// nodes, else a listed object of parent. A child that is already linked
// is moved. The update of the child is finalized and its tree is
// invalidated once.
func (r *Renderer) AppendChild(parent, child *Instance) {
	if !r.link(parent, child, nil) {
		return
	}
	slog.Debug("fiber.Renderer.AppendChild", "parent", parent, "child", child, "relation", child.local.Relation)
	r.finalize(child)
	r.invalidate(child)
}

// InsertBefore is like [Renderer.AppendChild], but places child
// immediately before the given sibling. If before is nil or not a
// child of parent, child is appended.
func (r *Renderer) InsertBefore(parent, child, before *Instance) {
	if !r.link(parent, child, before) {
		return
	}
	slog.Debug("fiber.Renderer.InsertBefore", "parent", parent, "child", child, "before", before, "relation", child.local.Relation)
	r.finalize(child)
	r.invalidate(child)
}

// RemoveChild removes child from parent and, depending on the given
// disposal mode, disposes it and its subtree. The tree of parent is
// invalidated once. Removing a child that has already been removed
// does nothing.
func (r *Renderer) RemoveChild(parent, child *Instance, mode Disposal) {
	if parent == nil || child == nil {
		return
	}
	if !r.release(parent, child, mode) {
		return
	}
	slog.Debug("fiber.Renderer.RemoveChild", "parent", parent, "child", child, "mode", mode)
	r.invalidate(parent)
}

// ensureLocal gives an instance that was made outside of the renderer an
// empty local state in the tree of the given parent.
func (r *Renderer) ensureLocal(child, parent *Instance) {
	if child.local == nil {
		child.local = &LocalState{MemoizedProps: Props{"args": []any{}}}
		child.local.Type = typeName(child)
	}
	if child.local.Root == nil && parent.local != nil {
		child.local.Root = parent.local.Root
	}
	r.register(child)
}

// link is the single place where a child is bound to a parent. It moves
// a child that is already linked, keeping both sides of every relation
// consistent. It returns false if nothing was linked.
func (r *Renderer) link(parent, child, before *Instance) bool {
	if parent == nil || child == nil || parent == child {
		return false
	}
	if child.IsRoot() {
		slog.Error("fiber.Renderer.link: a root can not have a parent", "parent", parent, "child", child)
		return false
	}
	r.ensureLocal(parent, parent)
	r.ensureLocal(child, parent)
	cl, pl := child.local, parent.local
	if cl.Parent != nil {
		r.unlink(cl.Parent, child)
	}
	cl.released = false

	pn, pok := parent.Node()
	cn, cok := child.Node()
	switch {
	case cl.Attach != nil:
		r.attach(parent, child)
		cl.Relation = AttachedChild
		pl.Objects = insertBefore(pl.Objects, child, before)
	case pok && cok:
		pb := pn.AsTree()
		idx := len(pb.Children)
		if bn, ok := before.Node(); ok {
			if bi := tree.IndexOf(pb.Children, bn, bn.AsTree().IndexInParent()); bi >= 0 {
				idx = bi
			}
		}
		pb.InsertChild(cn, idx)
		cl.Relation = SceneChild
	default:
		cl.Relation = ListedChild
		pl.Objects = insertBefore(pl.Objects, child, before)
	}
	cl.Parent = parent
	return true
}

// insertBefore inserts the instance into the list before the given one,
// or at the end if before is not in the list.
func insertBefore(list []*Instance, inst, before *Instance) []*Instance {
	if before != nil {
		if i := slices.Index(list, before); i >= 0 {
			return slices.Insert(list, i, inst)
		}
	}
	return append(list, inst)
}

// unlink is the single place where a child is unbound from its parent:
// it clears the parent link, removes the child from the objects of the
// parent, and reverses the attachment or native membership of the child.
func (r *Renderer) unlink(parent, child *Instance) {
	cl := child.local
	cl.Parent = nil
	if parent.local != nil {
		parent.local.Objects = slices.DeleteFunc(parent.local.Objects, func(e *Instance) bool { return e == child })
	}
	switch cl.Relation {
	case AttachedChild:
		r.detach(child)
	case SceneChild:
		r.removeNative(parent, child)
	default:
		// not linked by the renderer, but possibly added natively outside of it
		if cn, ok := child.Node(); ok {
			if pn, ok := parent.Node(); ok && cn.AsTree().Parent == pn {
				r.removeNative(parent, child)
			}
		}
	}
	cl.Relation = Detached
}

// removeNative removes the child from the native children of parent
// and releases its interaction registrations.
func (r *Renderer) removeNative(parent, child *Instance) {
	pn, pok := parent.Node()
	cn, cok := child.Node()
	if pok && cok {
		pn.AsTree().RemoveChild(cn)
	}
	root := child.Root()
	if root == nil {
		root = parent.Root()
	}
	r.teardown(root, child)
}
