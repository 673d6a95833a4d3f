// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"slices"
)

// MaxFrames is the maximum number of pending frames of a [Store].
const MaxFrames = 60

// Size is the size of the view of a [Store] in pixels.
type Size struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// Aspect returns the width / height ratio, or 1 for an empty size.
func (sz Size) Aspect() float32 {
	if sz.Height == 0 {
		return 1
	}
	return sz.Width / sz.Height
}

// Store is the root context of a tree: the scene instance at its root
// and the render state the scene is shown with.
type Store struct {

	// Scene is the root instance of the tree.
	Scene *Instance

	// Size is the size of the view.
	Size Size

	// Camera is the default camera of the view, if any.
	Camera *Instance

	// OnDispose, if set, is called after an instance of the tree has been
	// disposed.
	OnDispose func(inst *Instance)

	frames      int
	interaction []*Instance
}

// Invalidate requests that the scene is rendered again.
func (st *Store) Invalidate() {
	st.frames = min(st.frames+1, MaxFrames)
}

// Frames returns the number of pending frames.
func (st *Store) Frames() int {
	return st.frames
}

// Advance consumes one pending frame, returning false if there were none.
func (st *Store) Advance() bool {
	if st.frames == 0 {
		return false
	}
	st.frames--
	return true
}

// SetSize sets the size of the view and updates the aspect of the
// camera, then invalidates the store.
func (st *Store) SetSize(width, height float32) {
	st.Size = Size{Width: width, Height: height}
	if st.Camera != nil {
		if cm, ok := st.Camera.Object.(interface{ SetAspect(aspect float32) }); ok {
			cm.SetAspect(st.Size.Aspect())
		}
	}
	st.Invalidate()
}

// Interaction returns the instances with interaction handlers that are
// currently in the scene, in the order they were added.
func (st *Store) Interaction() []*Instance {
	return slices.Clone(st.interaction)
}

func (st *Store) addInteractive(inst *Instance) {
	if !slices.Contains(st.interaction, inst) {
		st.interaction = append(st.interaction, inst)
	}
}

// RemoveInteractivity removes the given instance from the interaction list.
func (st *Store) RemoveInteractivity(inst *Instance) {
	st.interaction = slices.DeleteFunc(st.interaction, func(e *Instance) bool { return e == inst })
}

func (st *Store) String() string {
	return fmt.Sprintf("Store(%v, %d frames)", st.Scene, st.frames)
}

// CreateRoot makes the given root document object, typically a scene,
// the root of a new tree and returns its store. The scene instance is
// a live instance of the renderer that never has a parent.
func (r *Renderer) CreateRoot(scene any) (*Store, error) {
	if scene == nil {
		return nil, fmt.Errorf("fiber.Renderer.CreateRoot: %w: nil scene", ErrMissingRoot)
	}
	if inst, ok := r.InstanceOf(scene); ok {
		return nil, fmt.Errorf("fiber.Renderer.CreateRoot: %w: object is already managed as %v", ErrMissingRoot, inst)
	}
	st := &Store{}
	inst := &Instance{Object: scene}
	inst.local = &LocalState{Root: st, MemoizedProps: Props{"args": []any{}}}
	inst.local.Type = typeName(inst)
	st.Scene = inst
	r.register(inst)
	return st, nil
}

// Unmount removes and disposes everything under the scene of the given
// store, then removes the scene instance itself from the renderer. The
// scene object is cleared but not disposed.
func (r *Renderer) Unmount(st *Store) {
	if st == nil || st.Scene == nil || st.Scene.local == nil {
		return
	}
	scene := st.Scene
	for _, o := range scene.Objects() {
		r.release(scene, o, ForceDispose)
	}
	r.releaseChildren(scene, ForceDispose)
	if n, ok := scene.Node(); ok {
		n.AsTree().Clear()
	}
	st.interaction = nil
	scene.local.Objects = nil
	r.unregister(scene)
	r.invalidate(scene)
}
