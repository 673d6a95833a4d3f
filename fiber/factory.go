// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"log/slog"
	"strings"
)

// CreateInstance creates a new instance of the given declarative type
// with the given props in the tree of the given store. The type name is
// canonicalized with [CanonicalName] and looked up in the catalogue,
// except for the primitive type, which adopts the object given in the
// "object" prop instead of constructing one. The "args" prop is passed
// to the constructor; the "attach" prop, or else an [AttachRule] for the
// type, says how the instance binds to its parent. All other props are
// applied without notification, and errors applying them are logged.
//
// It returns [ErrMissingRoot], [ErrInvalidAttach], [ErrMissingObject],
// [ErrManagedObject], [ErrUnknownType] or [ErrInvalidArgs], in which case
// no instance is made.
func (r *Renderer) CreateInstance(typ string, props Props, root *Store) (*Instance, error) {
	if root == nil {
		return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w", typ, ErrMissingRoot)
	}
	name := CanonicalName(typ)
	att, err := attachOf(props["attach"])
	if err != nil {
		return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w", typ, err)
	}
	if att == nil {
		att = r.inferAttach(name)
	}
	primitive := name == r.primitiveType()

	var obj any
	var ctor Constructor
	if primitive {
		obj = props["object"]
		if obj == nil {
			return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w", typ, ErrMissingObject)
		}
	} else {
		var ok bool
		ctor, ok = r.catalogue().Lookup(name)
		if !ok {
			if sg, ok := r.catalogue().Suggest(name); ok {
				return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w: %s is not in the catalogue (did you mean %s?)", typ, ErrUnknownType, name, sg)
			}
			return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w: %s is not in the catalogue", typ, ErrUnknownType, name)
		}
	}
	args, err := props.Args()
	if err != nil {
		return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w", typ, err)
	}
	if !primitive {
		obj, err = ctor(args...)
		if err != nil {
			return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w: %w", typ, ErrInvalidArgs, err)
		}
		if obj == nil {
			return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w: constructor returned nil", typ, ErrInvalidArgs)
		}
	}

	inst, err := r.adopt(obj, primitive)
	if err != nil {
		return nil, fmt.Errorf("fiber.Renderer.CreateInstance %q: %w", typ, err)
	}
	cl := inst.local
	cl.Type = name
	cl.Root = root
	cl.Primitive = primitive
	cl.Attach = att
	cl.MemoizedProps = nil
	cl.keep = false
	if err := r.setProps(inst, props); err != nil {
		slog.Warn("fiber.Renderer.CreateInstance: applying props", "type", name, "err", err)
	}
	cl.MemoizedProps["args"] = args
	r.register(inst)
	slog.Debug("fiber.Renderer.CreateInstance", "inst", inst, "primitive", primitive, "attach", att)
	return inst, nil
}

// adopt returns the instance for the given object. A primitive object
// that is already managed by a primitive keeps its instance and local
// state, so that the same external object is never managed twice. An
// object managed by any other instance can not be adopted.
func (r *Renderer) adopt(obj any, primitive bool) (*Instance, error) {
	if primitive {
		if inst, ok := r.InstanceOf(obj); ok && inst.local != nil {
			if !inst.local.Primitive {
				return nil, fmt.Errorf("%w: %s", ErrManagedObject, inst.local.Type)
			}
			return inst, nil
		}
	}
	return &Instance{Object: obj, local: &LocalState{}}, nil
}

// inferAttach returns the attachment for the given canonical type name
// from the [Renderer.AutoAttach] rules, or nil.
func (r *Renderer) inferAttach(name string) *Attach {
	for _, rule := range r.AutoAttach {
		if rule.Suffix != "" && strings.HasSuffix(name, rule.Suffix) {
			return &Attach{Slot: rule.Slot}
		}
	}
	return nil
}

// attachOf returns the attachment described by an attach prop.
func attachOf(v any) (*Attach, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case string:
		if a == "" {
			return nil, nil
		}
		return &Attach{Slot: a}, nil
	case Attach:
		return &a, nil
	case *Attach:
		if a == nil {
			return nil, nil
		}
		c := *a
		return &c, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidAttach, v)
}
