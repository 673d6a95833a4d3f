// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"reflect"
	"slices"
	"strconv"

	"cogentcore.org/fiber/tree"
)

// Handle is the stable address of a live [Instance] in a [Renderer].
// The zero Handle is never used.
type Handle uint64

// Relation is how a child instance is bound to its structural parent.
type Relation int32

const (
	// Detached means the instance has no structural parent.
	Detached Relation = iota

	// SceneChild means the instance is in the native child list of its parent.
	SceneChild

	// ListedChild means the instance is in the Objects list of its parent
	// because it has no native graph representation there.
	ListedChild

	// AttachedChild means the instance is bound to a slot of its parent
	// with an [Attach] descriptor. It is also in the Objects list of its parent.
	AttachedChild
)

func (rl Relation) String() string {
	switch rl {
	case Detached:
		return "Detached"
	case SceneChild:
		return "SceneChild"
	case ListedChild:
		return "ListedChild"
	case AttachedChild:
		return "AttachedChild"
	}
	return "Relation(" + strconv.Itoa(int(rl)) + ")"
}

// Disposal is the disposal mode passed to [Renderer.RemoveChild] and
// threaded down through the removed subtree.
type Disposal int32

const (
	// Inherit disposes an instance unless it is a primitive or its props
	// opt out of disposal with a nil dispose value.
	Inherit Disposal = iota

	// ForceDispose disposes the instance regardless of its props.
	ForceDispose

	// ForceKeep never disposes the instance.
	ForceKeep
)

func (ds Disposal) String() string {
	switch ds {
	case Inherit:
		return "Inherit"
	case ForceDispose:
		return "ForceDispose"
	case ForceKeep:
		return "ForceKeep"
	}
	return "Disposal(" + strconv.Itoa(int(ds)) + ")"
}

// Handler is an event handler given in props with an "on" key,
// such as onClick or onUpdate.
type Handler func(inst *Instance)

// LocalState is the bookkeeping attached to every managed object.
// It is created once and then only changed by the [Renderer].
type LocalState struct {

	// Type is the canonical type name the instance was made from.
	Type string

	// Root is the store of the tree the instance belongs to.
	Root *Store

	// Parent is the structural parent, or nil if the instance is detached.
	Parent *Instance

	// Objects are the children that are not native scene graph children:
	// attached children and children listed without a native representation.
	Objects []*Instance

	// Primitive is whether the object is owned outside of this package.
	Primitive bool

	// Attach is how the instance binds to its parent, or nil to be a
	// native or listed child.
	Attach *Attach

	// Relation is how the instance is currently bound to Parent.
	Relation Relation

	// MemoizedProps are the last applied props, always including args.
	MemoizedProps Props

	// EventCount is the number of interaction handlers.
	EventCount int

	// Handlers are the event handlers from props, by prop name.
	Handlers map[string]Handler

	// keep is set by a nil dispose prop.
	keep bool

	// released is set when a primitive has been removed; its state is
	// kept so that it can be linked again.
	released bool

	// previousAttach is the value of the parent slot before attaching.
	previousAttach any

	// attached is whether the instance is currently bound to a slot.
	attached bool

	// detach reverses the current attachment.
	detach func()
}

// Instance is a managed object of the scene graph together with its
// [LocalState]. Instances are created by [Renderer.CreateInstance]
// and identified by pointer and by [Handle].
type Instance struct {

	// Object is the underlying graph object.
	Object any

	handle Handle
	local  *LocalState
}

// Local returns the local state of the instance, which is nil
// once a non-primitive instance has been removed.
func (in *Instance) Local() *LocalState {
	if in == nil {
		return nil
	}
	return in.local
}

// Handle returns the handle of the instance, or 0 if it is not live.
func (in *Instance) Handle() Handle {
	return in.handle
}

// Parent returns the structural parent of the instance.
func (in *Instance) Parent() *Instance {
	if in.local == nil {
		return nil
	}
	return in.local.Parent
}

// Root returns the store of the instance.
func (in *Instance) Root() *Store {
	if in.local == nil {
		return nil
	}
	return in.local.Root
}

// Objects returns a copy of the non-native children of the instance.
func (in *Instance) Objects() []*Instance {
	if in.local == nil {
		return nil
	}
	return slices.Clone(in.local.Objects)
}

// IsPrimitive returns whether the instance wraps an external object.
func (in *Instance) IsPrimitive() bool {
	return in.local != nil && in.local.Primitive
}

// Node returns the object as a native scene graph node.
func (in *Instance) Node() (tree.Node, bool) {
	if in == nil {
		return nil, false
	}
	n, ok := in.Object.(tree.Node)
	return n, ok && n != nil
}

// IsRoot returns whether the instance is a root document object,
// which never has a parent and is never disposed.
func (in *Instance) IsRoot() bool {
	if in.local != nil && in.local.Root != nil && in.local.Root.Scene == in {
		return true
	}
	return isRootObject(in.Object)
}

// String returns the type and handle of the instance.
func (in *Instance) String() string {
	if in == nil {
		return "<nil>"
	}
	return typeName(in) + "#" + strconv.FormatUint(uint64(in.handle), 10)
}

// rooter is implemented by root document objects.
type rooter interface {
	IsRoot() bool
}

func isRootObject(obj any) bool {
	r, ok := obj.(rooter)
	return ok && r.IsRoot()
}

// typeName returns the catalogue type name of the instance if it has
// one, or else the name of the Go type of its object.
func typeName(in *Instance) string {
	if in.local != nil && in.local.Type != "" {
		return in.local.Type
	}
	if in.Object == nil {
		return "nil"
	}
	t := reflect.TypeOf(in.Object)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
