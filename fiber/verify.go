// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"slices"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/base/reflectx"
)

// Verify checks the structural invariants of the subtree of the given
// instance and returns all violations joined into one error:
// every child with a parent is in exactly one of the native children and
// the objects of that parent, the parent link and relation of every child
// match that membership, attached slots hold their child, roots have no
// parent, and every instance is live in the renderer.
func (r *Renderer) Verify(inst *Instance) error {
	var errs []error
	r.verify(inst, &errs)
	return errors.Join(errs...)
}

func (r *Renderer) verify(inst *Instance, errs *[]error) {
	fail := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("fiber.Renderer.Verify: "+format, args...))
	}
	cl := inst.local
	if cl == nil {
		fail("%v has no local state", inst)
		return
	}
	if live, ok := r.instances[inst.handle]; !ok || live != inst {
		fail("%v is not live", inst)
	}
	if inst.IsRoot() && cl.Parent != nil {
		fail("root %v has parent %v", inst, cl.Parent)
	}
	pn, native := inst.Node()
	for i, o := range cl.Objects {
		if o.local == nil {
			fail("object %d of %v has no local state", i, inst)
			continue
		}
		if slices.Index(cl.Objects, o) != i {
			fail("%v is listed twice in %v", o, inst)
		}
		if o.local.Parent != inst {
			fail("%v is listed in %v but has parent %v", o, inst, o.local.Parent)
		}
		switch o.local.Relation {
		case ListedChild:
		case AttachedChild:
			at := o.local.Attach
			if o.local.attached && at.Attach == nil && reflectx.IsPointer(o.Object) && getSlot(inst.Object, at.Slot) != o.Object {
				fail("slot %q of %v does not hold %v", at.Slot, inst, o)
			}
		default:
			fail("%v is listed in %v with relation %v", o, inst, o.local.Relation)
		}
		if cn, ok := o.Node(); ok && native && cn.AsTree().Parent == pn {
			fail("%v is both listed in and a native child of %v", o, inst)
		}
		r.verify(o, errs)
	}
	for _, k := range r.Children(inst) {
		if k.local == nil {
			fail("native child %v of %v has no local state", k, inst)
			continue
		}
		if k.local.Parent != inst {
			fail("%v is a native child of %v but has parent %v", k, inst, k.local.Parent)
		}
		if k.local.Relation != SceneChild {
			fail("%v is a native child of %v with relation %v", k, inst, k.local.Relation)
		}
		r.verify(k, errs)
	}
	if p := cl.Parent; p != nil && p.local != nil {
		switch cl.Relation {
		case SceneChild:
			cn, _ := inst.Node()
			ppn, ok := p.Node()
			if !ok || cn.AsTree().Parent != ppn {
				fail("%v has parent %v but is not its native child", inst, p)
			}
		case ListedChild, AttachedChild:
			if !slices.Contains(p.local.Objects, inst) {
				fail("%v has parent %v but is not in its objects", inst, p)
			}
		default:
			fail("%v has parent %v but is detached", inst, p)
		}
	}
}
