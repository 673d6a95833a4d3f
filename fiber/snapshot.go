// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"cogentcore.org/fiber/tree"
)

// Snapshot is a serializable view of the structure of an instance and
// its subtree.
type Snapshot struct {
	Type      string      `json:"type" yaml:"type" msgpack:"type"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Handle    Handle      `json:"handle,omitempty" yaml:"handle,omitempty" msgpack:"handle,omitempty"`
	Relation  string      `json:"relation" yaml:"relation" msgpack:"relation"`
	Slot      string      `json:"slot,omitempty" yaml:"slot,omitempty" msgpack:"slot,omitempty"`
	Primitive bool        `json:"primitive,omitempty" yaml:"primitive,omitempty" msgpack:"primitive,omitempty"`
	Children  []*Snapshot `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
	Objects   []*Snapshot `json:"objects,omitempty" yaml:"objects,omitempty" msgpack:"objects,omitempty"`
}

// Unmanaged is the relation of native children without an instance.
const Unmanaged = "Unmanaged"

// Snapshot returns a snapshot of the given instance and its subtree.
func (r *Renderer) Snapshot(inst *Instance) *Snapshot {
	if inst == nil {
		return nil
	}
	sn := &Snapshot{Type: typeName(inst), Handle: inst.handle}
	if cl := inst.local; cl != nil {
		sn.Relation = cl.Relation.String()
		sn.Primitive = cl.Primitive
		if cl.Attach != nil {
			sn.Slot = cl.Attach.String()
		}
		for _, o := range cl.Objects {
			sn.Objects = append(sn.Objects, r.Snapshot(o))
		}
	} else {
		sn.Relation = Unmanaged
	}
	if n, ok := inst.Node(); ok {
		sn.Name = n.AsTree().Name
		for _, k := range n.AsTree().Children {
			ki, ok := r.InstanceOf(k)
			if !ok {
				ki = &Instance{Object: k}
			}
			sn.Children = append(sn.Children, r.Snapshot(ki))
		}
	}
	return sn
}

// Children returns the managed native children of the given instance.
func (r *Renderer) Children(inst *Instance) []*Instance {
	n, ok := inst.Node()
	if !ok {
		return nil
	}
	var kids []*Instance
	for _, k := range tree.Children(n) {
		if ki, ok := r.InstanceOf(k); ok {
			kids = append(kids, ki)
		}
	}
	return kids
}

// Count returns the number of nodes in the snapshot, including itself.
func (sn *Snapshot) Count() int {
	if sn == nil {
		return 0
	}
	n := 1
	for _, k := range sn.Children {
		n += k.Count()
	}
	for _, o := range sn.Objects {
		n += o.Count()
	}
	return n
}
