// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/fiber/base/reflectx"
	"cogentcore.org/fiber/tree"
)

// SwitchInstance replaces a linked instance with a new instance of the
// given type and props, as needed when its args change. The children and
// objects of the old instance are moved to the new one, the old instance
// is removed and disposed as by [Renderer.RemoveChild] with [Inherit],
// and the new instance takes its place in the parent. The tree is
// invalidated once.
//
// It returns the instance that holds the position afterwards: the old
// instance if it has no parent (nothing is done), or if it is a primitive
// switched to the same object (its props are applied).
func (r *Renderer) SwitchInstance(inst *Instance, typ string, props Props) (*Instance, error) {
	if inst == nil || inst.local == nil || inst.local.Parent == nil {
		return inst, nil
	}
	cl := inst.local
	parent := cl.Parent
	primitive := CanonicalName(typ) == r.primitiveType()
	if primitive && cl.Primitive && reflectx.Same(props["object"], inst.Object) {
		return inst, r.ApplyProps(inst, props)
	}

	ni, err := r.CreateInstance(typ, props, cl.Root)
	if err != nil {
		return inst, fmt.Errorf("fiber.Renderer.SwitchInstance: %w", err)
	}
	if ni == inst {
		return inst, nil
	}
	if !primitive {
		r.moveChildren(inst, ni)
	}
	for _, o := range inst.Objects() {
		r.link(ni, o, nil)
		r.finalize(o)
	}
	cl.Objects = nil

	before := r.nextSibling(parent, inst)
	r.release(parent, inst, Inherit)
	r.link(parent, ni, before)
	r.finalize(ni)
	slog.Debug("fiber.Renderer.SwitchInstance", "old", inst, "new", ni, "parent", parent)
	r.invalidate(parent)
	return ni, nil
}

// moveChildren moves the native children of one instance to another.
func (r *Renderer) moveChildren(from, to *Instance) {
	fn, ok := from.Node()
	if !ok {
		return
	}
	tn, tok := to.Node()
	for _, k := range tree.Children(fn) {
		if ki, ok := r.InstanceOf(k); ok && ki.local != nil {
			r.link(to, ki, nil)
			r.finalize(ki)
			continue
		}
		if tok {
			tn.AsTree().AddChild(k)
		}
	}
	fn.AsTree().Clear()
}

// nextSibling returns the instance that follows inst in its parent,
// in the native children or the objects of the parent, or nil.
func (r *Renderer) nextSibling(parent, inst *Instance) *Instance {
	switch inst.local.Relation {
	case SceneChild:
		n, _ := inst.Node()
		pn, ok := parent.Node()
		if !ok {
			return nil
		}
		kids := pn.AsTree().Children
		i := n.AsTree().IndexInParent()
		if i < 0 {
			return nil
		}
		for _, k := range kids[i+1:] {
			if ki, ok := r.InstanceOf(k); ok {
				return ki
			}
		}
	default:
		objs := parent.local.Objects
		if i := slices.Index(objs, inst); i >= 0 && i+1 < len(objs) {
			return objs[i+1]
		}
	}
	return nil
}
