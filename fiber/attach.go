// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/fiber/base/reflectx"
)

// Attach describes how a child binds to a slot of its parent instead of
// becoming a native child of it, such as a geometry bound to the geometry
// field of a mesh.
//
// Slot is a property path on the parent object, such as "material" or
// "material.map". A final "-N" selects element N of a slice field, as in
// "materials-1", growing the slice as needed.
//
// If Attach is set it is called instead of assigning the slot. Detach
// then reverses it; if Detach is nil, the slot (if any) is restored to
// its previous value.
type Attach struct {
	Slot   string
	Attach func(parent, child *Instance)
	Detach func(parent, child *Instance)
}

func (at *Attach) String() string {
	if at == nil {
		return ""
	}
	if at.Attach != nil {
		return "func:" + at.Slot
	}
	return at.Slot
}

// slotPath splits an attach slot into its property path and element index.
func slotPath(slot string) (path string, index int, indexed bool) {
	i := strings.LastIndexByte(slot, '-')
	if i <= 0 {
		return slot, 0, false
	}
	n, err := strconv.Atoi(slot[i+1:])
	if err != nil || n < 0 {
		return slot, 0, false
	}
	return slot[:i], n, true
}

// getSlot returns the current value of the slot on the given object,
// or nil if it is unset or does not exist.
func getSlot(obj any, slot string) any {
	path, idx, indexed := slotPath(slot)
	if indexed {
		path += "." + strconv.Itoa(idx)
	}
	v, err := reflectx.GetPath(obj, path)
	if err != nil {
		return nil
	}
	return v
}

// setSlot assigns the slot on the given object, returning its previous value.
func setSlot(obj any, slot string, value any) (previous any, err error) {
	path, idx, indexed := slotPath(slot)
	if indexed {
		return reflectx.SetPathIndex(obj, path, idx, value)
	}
	previous = getSlot(obj, slot)
	return previous, reflectx.SetPath(obj, path, value)
}

// attach binds the child to its slot on the parent, recording how to
// reverse it.
func (r *Renderer) attach(parent, child *Instance) {
	cl := child.local
	at := cl.Attach
	if at.Attach != nil {
		if at.Slot != "" {
			cl.previousAttach = getSlot(parent.Object, at.Slot)
		}
		at.Attach(parent, child)
		prev := cl.previousAttach
		cl.detach = func() {
			switch {
			case at.Detach != nil:
				at.Detach(parent, child)
			case at.Slot != "":
				if _, err := setSlot(parent.Object, at.Slot, prev); err != nil {
					slog.Error("fiber.Renderer.detach: restoring slot", "slot", at.Slot, "parent", parent, "err", err)
				}
			}
		}
		cl.attached = true
		return
	}
	prev, err := setSlot(parent.Object, at.Slot, child.Object)
	if err != nil {
		slog.Error("fiber.Renderer.attach: setting slot", "slot", at.Slot, "parent", parent, "child", child, "err", err)
		return
	}
	cl.previousAttach = prev
	cl.detach = func() {
		if _, err := setSlot(parent.Object, at.Slot, prev); err != nil {
			slog.Error("fiber.Renderer.detach: restoring slot", "slot", at.Slot, "parent", parent, "err", err)
		}
	}
	cl.attached = true
}

// detach reverses the attachment of the child. It does nothing if the
// child is not attached.
func (r *Renderer) detach(child *Instance) {
	cl := child.local
	if cl == nil || !cl.attached {
		return
	}
	detach := cl.detach
	cl.attached = false
	cl.detach = nil
	cl.previousAttach = nil
	if detach != nil {
		detach()
	}
}
