// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/xyz"
)

func TestAppendChildNative(t *testing.T) {
	r, st, sc := newTree(t)
	ms := create(t, r, st, "mesh", Props{"name": "m"})
	r.AppendChild(st.Scene, ms)

	assert.Equal(t, []string{"m"}, childNames(sc))
	assert.Equal(t, st.Scene, ms.Parent())
	assert.Equal(t, SceneChild, ms.Local().Relation)
	assert.Empty(t, st.Scene.Objects())
	assert.Equal(t, []*Instance{ms}, r.Children(st.Scene))
	assert.Equal(t, 1, st.Frames())
	assert.NoError(t, r.Verify(st.Scene))
}

func TestAppendChildAttach(t *testing.T) {
	r, st, _ := newTree(t)
	ms := create(t, r, st, "mesh", nil)
	r.AppendChild(st.Scene, ms)
	geo := create(t, r, st, "boxGeometry", nil)
	mat := create(t, r, st, "meshStandardMaterial", Props{"color": "#ff0000"})
	r.AppendChild(ms, geo)
	r.AppendChild(ms, mat)

	mesh := ms.Object.(*xyz.Mesh)
	assert.Same(t, geo.Object, mesh.Geometry)
	assert.Same(t, mat.Object, mesh.Material)
	assert.False(t, mesh.HasChildren())
	assert.Equal(t, []*Instance{geo, mat}, ms.Objects())
	assert.Equal(t, AttachedChild, geo.Local().Relation)
	assert.Equal(t, ms, geo.Parent())
	assert.NoError(t, r.Verify(st.Scene))
}

func TestAppendChildListed(t *testing.T) {
	r, st, sc := newTree(t)
	tex := create(t, r, st, "texture", Props{"args": []any{"wood.png"}})
	r.AppendChild(st.Scene, tex)
	assert.Equal(t, ListedChild, tex.Local().Relation)
	assert.Equal(t, []*Instance{tex}, st.Scene.Objects())
	assert.False(t, sc.HasChildren())
	assert.NoError(t, r.Verify(st.Scene))
}

func TestAppendRemoveRoundTrip(t *testing.T) {
	r, st, sc := newTree(t)
	a := named(t, r, st, "a")
	r.AppendChild(st.Scene, a)
	tex := create(t, r, st, "texture", nil)
	r.AppendChild(st.Scene, tex)
	kids := childNames(sc)
	objs := st.Scene.Objects()

	for _, typ := range []string{"group", "texture", "boxGeometry"} {
		child := create(t, r, st, typ, nil)
		r.AppendChild(st.Scene, child)
		r.RemoveChild(st.Scene, child, Inherit)
		assert.Equal(t, kids, childNames(sc), typ)
		assert.Equal(t, objs, st.Scene.Objects(), typ)
	}
	assert.NoError(t, r.Verify(st.Scene))
}

func TestInsertBefore(t *testing.T) {
	r, st, sc := newTree(t)
	a, b, c, d := named(t, r, st, "a"), named(t, r, st, "b"), named(t, r, st, "c"), named(t, r, st, "d")
	r.AppendChild(st.Scene, a)
	r.AppendChild(st.Scene, b)
	r.AppendChild(st.Scene, c)

	r.InsertBefore(st.Scene, d, b)
	assert.Equal(t, []string{"a", "d", "b", "c"}, childNames(sc))

	// already present: placed relative to the other siblings
	r.InsertBefore(st.Scene, c, a)
	assert.Equal(t, []string{"c", "a", "d", "b"}, childNames(sc))
	r.InsertBefore(st.Scene, c, b)
	assert.Equal(t, []string{"a", "d", "c", "b"}, childNames(sc))
	r.InsertBefore(st.Scene, a, c)
	assert.Equal(t, []string{"d", "a", "c", "b"}, childNames(sc))

	// unknown sibling appends
	e := named(t, r, st, "e")
	r.InsertBefore(st.Scene, e, named(t, r, st, "stray"))
	assert.Equal(t, []string{"d", "a", "c", "b", "e"}, childNames(sc))
	r.InsertBefore(st.Scene, e, nil)
	assert.Equal(t, []string{"d", "a", "c", "b", "e"}, childNames(sc))
	assert.NoError(t, r.Verify(st.Scene))
}

func TestInsertBeforeAllOrders(t *testing.T) {
	names := []string{"a", "b", "c"}
	for bi := range names {
		r, st, sc := newTree(t)
		var sibs []*Instance
		for _, nm := range names {
			s := named(t, r, st, nm)
			r.AppendChild(st.Scene, s)
			sibs = append(sibs, s)
		}
		x := named(t, r, st, "x")
		r.InsertBefore(st.Scene, x, sibs[bi])
		got := childNames(sc)
		require.Len(t, got, 4)
		assert.Equal(t, "x", got[bi])
		assert.Equal(t, names[bi], got[bi+1])
	}
}

func TestInsertBeforeObjects(t *testing.T) {
	r, st, _ := newTree(t)
	t1 := create(t, r, st, "texture", nil)
	t2 := create(t, r, st, "texture", nil)
	t3 := create(t, r, st, "texture", nil)
	r.AppendChild(st.Scene, t1)
	r.AppendChild(st.Scene, t2)
	r.InsertBefore(st.Scene, t3, t2)
	assert.Equal(t, []*Instance{t1, t3, t2}, st.Scene.Objects())
}

func TestMoveBetweenParents(t *testing.T) {
	r, st, sc := newTree(t)
	p1, p2 := named(t, r, st, "p1"), named(t, r, st, "p2")
	r.AppendChild(st.Scene, p1)
	r.AppendChild(st.Scene, p2)
	kid := named(t, r, st, "kid")
	r.AppendChild(p1, kid)
	r.AppendChild(p2, kid)

	assert.False(t, p1.Object.(*xyz.Group).HasChildren())
	assert.Equal(t, []string{"kid"}, childNames(p2.Object.(*xyz.Group)))
	assert.Equal(t, p2, kid.Parent())
	assert.Equal(t, []string{"p1", "p2"}, childNames(sc))

	// a geometry moved between meshes is detached from the first
	m1, m2 := create(t, r, st, "mesh", nil), create(t, r, st, "mesh", nil)
	r.AppendChild(st.Scene, m1)
	r.AppendChild(st.Scene, m2)
	geo := create(t, r, st, "sphereGeometry", nil)
	r.AppendChild(m1, geo)
	r.AppendChild(m2, geo)
	assert.Nil(t, m1.Object.(*xyz.Mesh).Geometry)
	assert.Same(t, geo.Object, m2.Object.(*xyz.Mesh).Geometry)
	assert.Empty(t, m1.Objects())
	assert.NoError(t, r.Verify(st.Scene))
}

func TestLinkRefused(t *testing.T) {
	r, st, sc := newTree(t)
	gp := named(t, r, st, "g")
	r.AppendChild(gp, st.Scene)
	assert.Nil(t, st.Scene.Parent())
	assert.False(t, gp.Object.(*xyz.Group).HasChildren())

	r.AppendChild(gp, gp)
	assert.Nil(t, gp.Parent())

	r.AppendChild(st.Scene, nil)
	r.InsertBefore(nil, gp, nil)
	r.RemoveChild(st.Scene, nil, Inherit)
	assert.False(t, sc.HasChildren())
	assert.Equal(t, 0, st.Frames())
}

func TestAppendExternalInstance(t *testing.T) {
	r, st, sc := newTree(t)
	ext := &Instance{Object: xyz.NewGroup()}
	r.AppendChild(st.Scene, ext)
	cl := ext.Local()
	require.NotNil(t, cl)
	assert.Equal(t, "Group", cl.Type)
	assert.Equal(t, st, cl.Root)
	assert.Equal(t, []any{}, cl.MemoizedProps["args"])
	assert.NotZero(t, ext.Handle())
	assert.Equal(t, 1, sc.NumChildren())
	assert.NoError(t, r.Verify(st.Scene))
}

func TestOneInvalidationPerCall(t *testing.T) {
	r, st, _ := newTree(t)
	iv := &invalidations{}
	r.Invalidator = iv

	gp := named(t, r, st, "g")
	r.AppendChild(st.Scene, gp)
	assert.Equal(t, 1, iv.count)
	assert.Equal(t, gp, iv.last)

	ms := create(t, r, st, "mesh", nil)
	r.AppendChild(gp, ms)
	r.AppendChild(ms, create(t, r, st, "boxGeometry", nil))
	r.AppendChild(ms, create(t, r, st, "meshBasicMaterial", nil))
	iv.count = 0
	r.RemoveChild(st.Scene, gp, Inherit)
	assert.Equal(t, 1, iv.count)
	assert.Equal(t, st.Scene, iv.last)
}
