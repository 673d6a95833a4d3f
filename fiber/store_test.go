// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fiber/base/errors"
	. "cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/xyz"
)

func TestStoreFrames(t *testing.T) {
	st := &Store{}
	assert.False(t, st.Advance())
	st.Invalidate()
	st.Invalidate()
	assert.Equal(t, 2, st.Frames())
	assert.True(t, st.Advance())
	assert.Equal(t, 1, st.Frames())
	for range 2 * MaxFrames {
		st.Invalidate()
	}
	assert.Equal(t, MaxFrames, st.Frames())
}

func TestStoreSetSize(t *testing.T) {
	r, st, _ := newTree(t)
	cam := create(t, r, st, "perspectiveCamera", Props{"args": []any{60, 1, 0.1, 100}})
	r.AppendChild(st.Scene, cam)
	st.Camera = cam
	frames := st.Frames()
	st.SetSize(800, 400)
	assert.Equal(t, Size{Width: 800, Height: 400}, st.Size)
	assert.Equal(t, float32(2), cam.Object.(*xyz.PerspectiveCamera).Aspect)
	assert.Equal(t, frames+1, st.Frames())
	assert.Equal(t, float32(1), Size{}.Aspect())
}

func TestCreateRoot(t *testing.T) {
	r := NewRenderer(xyzCatalogue())
	sc := xyz.NewScene()
	st, err := r.CreateRoot(sc)
	require.NoError(t, err)
	assert.Same(t, sc, st.Scene.Object)
	assert.True(t, st.Scene.IsRoot())
	assert.Equal(t, "Scene", st.Scene.Local().Type)
	assert.Equal(t, 1, r.Len())

	_, err = r.CreateRoot(sc)
	assert.True(t, errors.Is(err, ErrMissingRoot))
	_, err = r.CreateRoot(nil)
	assert.True(t, errors.Is(err, ErrMissingRoot))

	// a group can also be the root of a tree
	gst, err := r.CreateRoot(xyz.NewGroup())
	require.NoError(t, err)
	assert.True(t, gst.Scene.IsRoot())
}

func TestSnapshot(t *testing.T) {
	r, st, _ := newTree(t)
	gp := named(t, r, st, "g")
	r.AppendChild(st.Scene, gp)
	ms := create(t, r, st, "mesh", Props{"name": "m"})
	r.AppendChild(gp, ms)
	r.AppendChild(ms, create(t, r, st, "boxGeometry", nil))
	ext := xyz.NewGroup()
	ext.Name = "ext"
	gp.Object.(*xyz.Group).AddChild(ext)

	sn := r.Snapshot(st.Scene)
	require.NotNil(t, sn)
	assert.Equal(t, "Scene", sn.Type)
	assert.Equal(t, "scene", sn.Name)
	assert.Equal(t, "Detached", sn.Relation)
	assert.Equal(t, 5, sn.Count())

	g := sn.Children[0]
	assert.Equal(t, "g", g.Name)
	assert.Equal(t, "SceneChild", g.Relation)
	require.Len(t, g.Children, 2)
	assert.Equal(t, Unmanaged, g.Children[1].Relation)
	m := g.Children[0]
	require.Len(t, m.Objects, 1)
	assert.Equal(t, "BoxGeometry", m.Objects[0].Type)
	assert.Equal(t, "geometry", m.Objects[0].Slot)
	assert.Equal(t, "AttachedChild", m.Objects[0].Relation)
	assert.Nil(t, r.Snapshot(nil))
}

func TestVerifyDetectsDrift(t *testing.T) {
	r, st, _ := newTree(t)
	gp := named(t, r, st, "g")
	r.AppendChild(st.Scene, gp)
	require.NoError(t, r.Verify(st.Scene))

	// moving the node natively behind the renderer's back breaks the invariants
	other := xyz.NewGroup()
	other.AddChild(gp.Object.(*xyz.Group))
	assert.Error(t, r.Verify(gp))
}
