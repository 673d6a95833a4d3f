// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/fiber"
	. "cogentcore.org/fiber/scenefile"
	"cogentcore.org/fiber/xyz"
)

func newRenderer(t *testing.T) (*fiber.Renderer, *fiber.Store, *xyz.Scene) {
	t.Helper()
	cat := fiber.NewCatalogue()
	for _, e := range xyz.Namespace() {
		cat.Set(e.Name, fiber.Constructor(e.New))
	}
	r := fiber.NewRenderer(cat)
	sc := xyz.NewScene()
	st, err := r.CreateRoot(sc)
	require.NoError(t, err)
	return r, st, sc
}

func childNames(n xyz.Node) []string {
	var names []string
	for _, k := range n.AsTree().Children {
		names = append(names, k.AsTree().Name)
	}
	return names
}

func mount(t *testing.T) (*Tree, *xyz.Scene) {
	t.Helper()
	r, st, sc := newRenderer(t)
	doc, err := Open("testdata/scene.yaml")
	require.NoError(t, err)
	tr, err := Mount(r, st, doc)
	require.NoError(t, err)
	return tr, sc
}

func drain(st *fiber.Store) {
	for st.Advance() {
	}
}

func TestKeys(t *testing.T) {
	keys := Keys([]*Node{{Type: "mesh"}, {Type: "mesh", Key: "a"}, {Type: "Mesh"}, {Type: "group"}})
	assert.Equal(t, []string{"Mesh#0", "a", "Mesh#1", "Group#0"}, keys)
}

func TestNodeProps(t *testing.T) {
	n := &Node{Type: "mesh", Key: "box", Args: []any{1}, Attach: "geometry", Props: map[string]any{"visible": false}}
	p := n.InstanceProps()
	assert.Equal(t, fiber.Props{"args": []any{1}, "attach": "geometry", "name": "box", "visible": false}, p)
	n.Props["name"] = "other"
	assert.Equal(t, "other", n.InstanceProps()["name"])
	assert.Equal(t, fiber.Props{}, (&Node{Type: "group"}).InstanceProps())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("version: 2.0.0\n"))
	assert.True(t, errors.Is(err, ErrVersion), err)
	_, err = Parse([]byte("version: nope\n"))
	assert.True(t, errors.Is(err, ErrVersion), err)
	_, err = Parse([]byte("children:\n  - key: a\n"))
	assert.True(t, errors.Is(err, ErrNoType), err)
	_, err = Parse([]byte("children:\n  - {type: group, key: a}\n  - {type: mesh, key: a}\n"))
	assert.True(t, errors.Is(err, ErrDuplicateKey), err)
	_, err = Parse([]byte("childs: []\n"))
	assert.Error(t, err)

	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Children)
	doc, err = Parse([]byte(`{"version": "1.2.0", "children": [{"type": "group"}]}`))
	require.NoError(t, err)
	assert.Len(t, doc.Children, 1)
}

func TestMount(t *testing.T) {
	tr, sc := mount(t)
	assert.Equal(t, []string{"world", "camera"}, childNames(sc))
	assert.InDelta(t, 32.0/255, sc.Background.R, 1e-5)

	world, ok := tr.Find("world")
	require.True(t, ok)
	gp := world.Inst.Object.(*xyz.Group)
	assert.Equal(t, float32(1), gp.Position.Y)
	assert.Equal(t, []string{"box", "lamp"}, childNames(gp))

	box, ok := tr.Find("world", "box")
	require.True(t, ok)
	ms := box.Inst.Object.(*xyz.Mesh)
	require.IsType(t, &xyz.BoxGeometry{}, ms.Geometry)
	mt, ok := ms.Material.(*xyz.MeshStandardMaterial)
	require.True(t, ok)
	assert.Equal(t, float32(1), mt.Color.R)
	assert.Equal(t, float32(0), mt.Color.G)
	assert.Len(t, box.Inst.Objects(), 2)

	_, ok = tr.Find("world", "nope")
	assert.False(t, ok)
	cam, ok := tr.Find("camera")
	require.True(t, ok)
	assert.Equal(t, float32(60), cam.Inst.Object.(*xyz.PerspectiveCamera).Fov)

	assert.NoError(t, tr.Renderer.Verify(tr.Store.Scene))
	assert.Positive(t, tr.Store.Frames())
}

func TestMountSkipsBadNodes(t *testing.T) {
	r, st, sc := newRenderer(t)
	doc, err := Parse([]byte(`
children:
  - {type: group, key: a}
  - type: teapot
    key: b
    children:
      - {type: group, key: c}
  - {type: group, key: d}
`))
	require.NoError(t, err)
	tr, err := Mount(r, st, doc)
	assert.True(t, errors.Is(err, fiber.ErrUnknownType), err)
	assert.Equal(t, []string{"a", "d"}, childNames(sc))
	assert.Len(t, tr.Root.Children, 2)
	assert.Equal(t, 3, r.Len())
}

func TestPatchUnchanged(t *testing.T) {
	tr, _ := mount(t)
	drain(tr.Store)
	n := tr.Renderer.Len()
	doc, err := Open("testdata/scene.yaml")
	require.NoError(t, err)
	require.NoError(t, tr.Patch(doc))
	assert.Equal(t, 0, tr.Store.Frames())
	assert.Equal(t, n, tr.Renderer.Len())
}

func TestPatchArgsSwitches(t *testing.T) {
	tr, _ := mount(t)
	box, _ := tr.Find("world", "box")
	ms := box.Inst.Object.(*xyz.Mesh)
	old := ms.Geometry.(*xyz.BoxGeometry)
	mt := ms.Material

	doc, _ := Open("testdata/scene.yaml")
	doc.Children[0].Children[0].Children[0].Args = []any{2, 2, 2}
	require.NoError(t, tr.Patch(doc))
	assert.NotSame(t, old, ms.Geometry)
	assert.IsType(t, &xyz.BoxGeometry{}, ms.Geometry)
	assert.Equal(t, 1, old.DisposeCount())
	assert.Same(t, mt, ms.Material)
	assert.NoError(t, tr.Renderer.Verify(tr.Store.Scene))
}

func TestPatchProps(t *testing.T) {
	tr, _ := mount(t)
	box, _ := tr.Find("world", "box")
	ms := box.Inst.Object.(*xyz.Mesh)
	mt := ms.Material.(*xyz.MeshStandardMaterial)
	drain(tr.Store)

	doc, _ := Open("testdata/scene.yaml")
	doc.Children[0].Children[0].Children[1].Props = map[string]any{"color": "#0000ff"}
	require.NoError(t, tr.Patch(doc))
	assert.Same(t, mt, ms.Material)
	assert.Equal(t, float32(0), mt.Color.R)
	assert.Equal(t, float32(1), mt.Color.B)
	assert.Equal(t, 0, mt.DisposeCount())
	assert.Equal(t, 1, tr.Store.Frames())
}

func TestPatchTypeSwitchKeepsPosition(t *testing.T) {
	tr, _ := mount(t)
	world, _ := tr.Find("world")
	gp := world.Inst.Object.(*xyz.Group)
	lamp, _ := tr.Find("world", "lamp")
	old := lamp.Inst.Object.(*xyz.PointLight)

	doc, _ := Open("testdata/scene.yaml")
	doc.Children[0].Children = append(doc.Children[0].Children, &Node{Type: "group", Key: "after"})
	doc.Children[0].Children[1].Type = "ambientLight"
	require.NoError(t, tr.Patch(doc))
	assert.Equal(t, []string{"box", "lamp", "after"}, childNames(gp))
	assert.IsType(t, &xyz.AmbientLight{}, gp.Children[1])
	assert.Equal(t, 1, old.DisposeCount())
	assert.NoError(t, tr.Renderer.Verify(tr.Store.Scene))
}

func TestPatchRemoveAndReorder(t *testing.T) {
	tr, sc := mount(t)
	world, _ := tr.Find("world")
	gp := world.Inst.Object.(*xyz.Group)
	lamp, _ := tr.Find("world", "lamp")
	light := lamp.Inst.Object.(*xyz.PointLight)
	box, _ := tr.Find("world", "box")
	ms := box.Inst.Object.(*xyz.Mesh)

	doc, _ := Open("testdata/scene.yaml")
	w := doc.Children[0]
	w.Children = []*Node{{Type: "group", Key: "first"}, w.Children[0]}
	doc.Children[0], doc.Children[1] = doc.Children[1], doc.Children[0]
	require.NoError(t, tr.Patch(doc))

	assert.Equal(t, []string{"camera", "world"}, childNames(sc))
	assert.Equal(t, []string{"first", "box"}, childNames(gp))
	assert.Equal(t, 1, light.DisposeCount())
	assert.Same(t, ms, gp.Children[1])
	_, ok := tr.Renderer.InstanceOf(light)
	assert.False(t, ok)
	assert.NoError(t, tr.Renderer.Verify(tr.Store.Scene))

	require.NoError(t, tr.Patch(&Document{}))
	assert.Empty(t, sc.Children)
	assert.Equal(t, 1, tr.Renderer.Len())
}
