// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"log/slog"

	"cogentcore.org/fiber/tree"
)

// Disposer is implemented by objects that release resources in Dispose.
type Disposer interface {
	Dispose()
}

// shouldDispose returns whether the instance is disposed in the given mode.
func (cl *LocalState) shouldDispose(mode Disposal) bool {
	switch mode {
	case ForceDispose:
		return true
	case ForceKeep:
		return false
	}
	return !cl.Primitive && !cl.keep
}

// release is one step of the disposal walk: it unlinks child from parent,
// releases the subtree of child with the disposal decision for child, clears
// the local state of child and disposes it if it should be. It returns
// false if there was nothing to release.
func (r *Renderer) release(parent, child *Instance, mode Disposal) bool {
	cl := child.local
	if cl == nil {
		// never managed: only undo a native membership
		cn, cok := child.Node()
		pn, pok := parent.Node()
		if !cok || !pok || cn.AsTree().Parent != pn {
			return false
		}
		pn.AsTree().RemoveChild(cn)
		return true
	}
	if cl.released && cl.Relation == Detached {
		return false
	}
	slog.Debug("fiber.Renderer.release", "parent", parent, "child", child, "mode", mode)
	root := cl.Root
	if cl.Parent != nil {
		r.unlink(cl.Parent, child)
	} else {
		r.unlink(parent, child)
	}

	dispose := cl.shouldDispose(mode)
	if !cl.Primitive {
		sub := ForceKeep
		if dispose {
			sub = ForceDispose
		}
		for _, o := range child.Objects() {
			r.release(child, o, sub)
		}
		r.releaseChildren(child, sub)
	}

	cl.Root = nil
	cl.Objects = nil
	cl.Handlers = nil
	cl.EventCount = 0
	cl.MemoizedProps = nil
	r.unregister(child)
	if cl.Primitive {
		cl.released = true
	} else {
		child.local = nil
	}

	if dispose && !isRootObject(child.Object) {
		if d, ok := child.Object.(Disposer); ok {
			d.Dispose()
		}
		r.disposed(root, child)
	}
	return true
}

// releaseChildren releases the native children of the given instance.
// Native children that are not managed are removed, and disposed when
// the mode is [ForceDispose].
func (r *Renderer) releaseChildren(inst *Instance, mode Disposal) {
	n, ok := inst.Node()
	if !ok {
		return
	}
	for _, k := range tree.Children(n) {
		if ki, ok := r.InstanceOf(k); ok && ki.local != nil {
			r.release(inst, ki, mode)
			continue
		}
		n.AsTree().RemoveChild(k)
		if mode == ForceDispose && !isRootObject(k) {
			if d, ok := k.(Disposer); ok {
				d.Dispose()
			}
		}
	}
}
