// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/base/reflectx"
)

// Props are the properties of a declarative node, keyed by property name.
// Nested properties are addressed with dots or dashes ("material.color",
// "position-x"). Keys starting with "on" and an upper-case letter are
// event handlers.
type Props map[string]any

// reserved props configure the instance itself and are never applied
// onto the object.
var reserved = map[string]bool{
	"children": true,
	"key":      true,
	"ref":      true,
	"args":     true,
	"attach":   true,
	"object":   true,
	"dispose":  true,
}

// IsReserved returns whether the given prop name is reserved.
func IsReserved(key string) bool {
	return reserved[key]
}

// IsHandler returns whether the given prop name is an event handler.
func IsHandler(key string) bool {
	if !strings.HasPrefix(key, "on") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key[2:])
	return unicode.IsUpper(r)
}

// Args returns the args prop as a sequence. A missing or nil args prop
// is an empty, non-nil sequence.
func (p Props) Args() ([]any, error) {
	v, ok := p["args"]
	if !ok || v == nil {
		return []any{}, nil
	}
	s, ok := reflectx.ToSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidArgs, v)
	}
	return slices.Clone(s), nil
}

// Clone returns a copy of the props. The args sequence is copied;
// other values are shared.
func (p Props) Clone() Props {
	c := maps.Clone(p)
	if c == nil {
		c = Props{}
	}
	if a, ok := reflectx.ToSlice(c["args"]); ok {
		c["args"] = slices.Clone(a)
	}
	return c
}

// PropertyApplier applies props onto the object of an instance. Reserved
// props and event handlers have already been handled and must be ignored.
type PropertyApplier interface {
	ApplyProps(inst *Instance, props Props) error
}

// ReflectApplier is the default [PropertyApplier]. It sets each prop on
// the struct field or map entry at the prop path, using
// [reflectx.SetPath]. Props are applied in sorted order.
type ReflectApplier struct{}

// ApplyProps implements [PropertyApplier].
func (ReflectApplier) ApplyProps(inst *Instance, props Props) error {
	var errs []error
	for _, k := range slices.Sorted(maps.Keys(props)) {
		if IsReserved(k) || IsHandler(k) {
			continue
		}
		path := strings.ReplaceAll(k, "-", ".")
		if err := reflectx.SetPath(inst.Object, path, props[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// setProps applies the given props onto the instance without any
// notification: handlers, the dispose opt-out, the applier and the
// memoized props. The memoized args are only set by construction.
func (r *Renderer) setProps(inst *Instance, props Props) error {
	cl := inst.local
	for k, v := range props {
		if !IsHandler(k) {
			continue
		}
		var h Handler
		switch fn := v.(type) {
		case nil:
		case Handler:
			h = fn
		case func(*Instance):
			h = fn
		default:
			slog.Error("fiber.Renderer.ApplyProps: handler is not a function", "inst", inst, "prop", k, "type", fmt.Sprintf("%T", v))
			continue
		}
		if h == nil {
			delete(cl.Handlers, k)
			continue
		}
		if cl.Handlers == nil {
			cl.Handlers = make(map[string]Handler)
		}
		cl.Handlers[k] = h
	}
	cl.EventCount = 0
	for k := range cl.Handlers {
		if k != "onUpdate" {
			cl.EventCount++
		}
	}
	if v, ok := props["dispose"]; ok {
		cl.keep = v == nil || v == false
	}
	err := r.applier().ApplyProps(inst, props)

	memo := cl.MemoizedProps.Clone()
	for k, v := range props {
		if k != "children" && k != "args" {
			memo[k] = v
		}
	}
	if _, ok := memo["args"]; !ok {
		memo["args"] = []any{}
	}
	cl.MemoizedProps = memo
	return err
}

// ApplyProps applies the given props onto a live instance after it has
// been created, merging them into its memoized props. The args of an
// instance can not change this way; use [Renderer.SwitchInstance]. If
// the instance is linked into a tree, its update is finalized and the
// tree is invalidated. Errors from the applier are returned after all
// props have been applied.
func (r *Renderer) ApplyProps(inst *Instance, props Props) error {
	if inst == nil || inst.local == nil {
		return nil
	}
	err := r.setProps(inst, props)
	if inst.local.Parent != nil || inst.IsRoot() {
		r.finalize(inst)
		r.invalidate(inst)
	}
	return err
}

// finalize is the update finalization step run whenever an instance is
// linked or updated: it registers interactive scene children with the
// store and calls the onUpdate handler.
func (r *Renderer) finalize(inst *Instance) {
	cl := inst.local
	if cl == nil {
		return
	}
	if cl.EventCount > 0 && cl.Relation == SceneChild && cl.Root != nil {
		cl.Root.addInteractive(inst)
	}
	if h := cl.Handlers["onUpdate"]; h != nil {
		h(inst)
	}
}
