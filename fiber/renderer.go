// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fiber keeps a retained scene graph in sync with a declarative
// tree of node descriptions. A reconciler decides which nodes should
// exist; a [Renderer] constructs the matching [Instance] values, places
// them as native children, attached slot values or listed objects of
// their parents, and tears them down again with recursive disposal.
//
// All methods of a [Renderer] must be called from a single goroutine.
package fiber

import (
	"cogentcore.org/fiber/base/reflectx"
)

// Invalidator is notified that the tree containing an instance must be
// rendered again. It is called exactly once for every externally visible
// structural change.
type Invalidator interface {
	Invalidate(inst *Instance)
}

// DisposeTracker is notified after an instance has been disposed.
type DisposeTracker interface {
	Disposed(root *Store, inst *Instance)
}

// EventTeardown releases the interaction registrations of a native
// instance that is removed from the scene graph.
type EventTeardown interface {
	RemoveInteractivity(root *Store, inst *Instance)
}

// AttachRule gives the default attachment slot for types whose
// canonical name ends in Suffix.
type AttachRule struct {
	Suffix string `toml:"suffix" yaml:"suffix" json:"suffix"`
	Slot   string `toml:"slot" yaml:"slot" json:"slot"`
}

// DefaultAutoAttach are the default [Renderer.AutoAttach] rules.
var DefaultAutoAttach = []AttachRule{
	{Suffix: "Geometry", Slot: "geometry"},
	{Suffix: "Material", Slot: "material"},
}

// DefaultPrimitiveType is the default [Renderer.PrimitiveType].
const DefaultPrimitiveType = "primitive"

// Renderer creates, links and disposes instances. It owns the arena of
// live instances, addressed by [Handle] and by object.
type Renderer struct {

	// Catalogue is the catalogue of constructible types.
	// If nil, [DefaultCatalogue] is used.
	Catalogue *Catalogue

	// Applier applies props onto instances.
	// If nil, a [ReflectApplier] is used.
	Applier PropertyApplier

	// Invalidator is notified of changes.
	// If nil, the [Store] of the changed instance is invalidated.
	Invalidator Invalidator

	// Tracker is notified of disposals.
	// If nil, the OnDispose function of the [Store] is called.
	Tracker DisposeTracker

	// Teardown releases interaction registrations.
	// If nil, [Store.RemoveInteractivity] is used.
	Teardown EventTeardown

	// AutoAttach are the rules used to infer the attachment slot of
	// types created without an explicit attach prop.
	AutoAttach []AttachRule

	// PrimitiveType is the type name used to adopt external objects.
	PrimitiveType string

	instances map[Handle]*Instance
	objects   map[any]*Instance
	last      Handle
}

// NewRenderer returns a new renderer using the given catalogue,
// which may be nil to use the [DefaultCatalogue].
func NewRenderer(cat *Catalogue) *Renderer {
	return &Renderer{
		Catalogue:     cat,
		AutoAttach:    DefaultAutoAttach,
		PrimitiveType: DefaultPrimitiveType,
	}
}

func (r *Renderer) catalogue() *Catalogue {
	if r.Catalogue != nil {
		return r.Catalogue
	}
	return DefaultCatalogue
}

func (r *Renderer) applier() PropertyApplier {
	if r.Applier != nil {
		return r.Applier
	}
	return ReflectApplier{}
}

func (r *Renderer) primitiveType() string {
	if r.PrimitiveType != "" {
		return CanonicalName(r.PrimitiveType)
	}
	return CanonicalName(DefaultPrimitiveType)
}

// Arena:

// register adds the instance to the arena if it is not already live.
func (r *Renderer) register(inst *Instance) {
	if inst.handle != 0 {
		return
	}
	if r.instances == nil {
		r.instances = make(map[Handle]*Instance)
		r.objects = make(map[any]*Instance)
	}
	r.last++
	inst.handle = r.last
	r.instances[inst.handle] = inst
	if reflectx.IsPointer(inst.Object) {
		r.objects[inst.Object] = inst
	}
}

// unregister removes the instance from the arena.
func (r *Renderer) unregister(inst *Instance) {
	if inst.handle == 0 {
		return
	}
	delete(r.instances, inst.handle)
	if reflectx.IsPointer(inst.Object) && r.objects[inst.Object] == inst {
		delete(r.objects, inst.Object)
	}
	inst.handle = 0
}

// Lookup returns the live instance with the given handle.
func (r *Renderer) Lookup(h Handle) (*Instance, bool) {
	inst, ok := r.instances[h]
	return inst, ok
}

// InstanceOf returns the live instance managing the given object.
// Only pointer objects can be found.
func (r *Renderer) InstanceOf(obj any) (*Instance, bool) {
	if !reflectx.IsPointer(obj) {
		return nil, false
	}
	inst, ok := r.objects[obj]
	return inst, ok
}

// Len returns the number of live instances.
func (r *Renderer) Len() int {
	return len(r.instances)
}

// Notifications:

func (r *Renderer) invalidate(inst *Instance) {
	if inst == nil {
		return
	}
	if r.Invalidator != nil {
		r.Invalidator.Invalidate(inst)
		return
	}
	if root := inst.Root(); root != nil {
		root.Invalidate()
	}
}

func (r *Renderer) disposed(root *Store, inst *Instance) {
	if r.Tracker != nil {
		r.Tracker.Disposed(root, inst)
		return
	}
	if root != nil && root.OnDispose != nil {
		root.OnDispose(inst)
	}
}

func (r *Renderer) teardown(root *Store, inst *Instance) {
	if r.Teardown != nil {
		r.Teardown.RemoveInteractivity(root, inst)
		return
	}
	if root != nil {
		root.RemoveInteractivity(inst)
	}
}
