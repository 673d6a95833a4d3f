// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/math32"
	"cogentcore.org/fiber/xyz"
)

func TestIsHandler(t *testing.T) {
	assert.True(t, IsHandler("onClick"))
	assert.True(t, IsHandler("onUpdate"))
	assert.False(t, IsHandler("on"))
	assert.False(t, IsHandler("online"))
	assert.False(t, IsHandler("color"))
	assert.True(t, IsReserved("args"))
	assert.True(t, IsReserved("dispose"))
	assert.False(t, IsReserved("position"))
}

func TestPropsArgs(t *testing.T) {
	args, err := Props{}.Args()
	require.NoError(t, err)
	assert.NotNil(t, args)
	assert.Empty(t, args)

	args, err = Props{"args": []float32{1, 2}}.Args()
	require.NoError(t, err)
	assert.Equal(t, []any{float32(1), float32(2)}, args)

	_, err = Props{"args": 3}.Args()
	assert.ErrorIs(t, err, ErrInvalidArgs)
	_, err = Props{"args": []byte("abc")}.Args()
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestPropsClone(t *testing.T) {
	p := Props{"args": []any{1, 2}, "name": "x"}
	c := p.Clone()
	c["name"] = "y"
	c["args"].([]any)[0] = 5
	assert.Equal(t, "x", p["name"])
	assert.Equal(t, 1, p["args"].([]any)[0])
	assert.NotNil(t, Props(nil).Clone())
}

func TestApplyProps(t *testing.T) {
	r, st, _ := newTree(t)
	ms := create(t, r, st, "mesh", Props{"name": "m"})
	mat := create(t, r, st, "meshPhongMaterial", nil)
	r.AppendChild(st.Scene, ms)
	r.AppendChild(ms, mat)
	frames := st.Frames()

	err := r.ApplyProps(ms, Props{"position": []any{1, 2, 3}, "material-color": "#0000ff", "args": []any{9}})
	require.NoError(t, err)
	mesh := ms.Object.(*xyz.Mesh)
	assert.Equal(t, math32.Vec3(1, 2, 3), mesh.Position)
	assert.Equal(t, math32.Color{B: 1}, mat.Object.(*xyz.MeshPhongMaterial).Color)
	assert.Equal(t, frames+1, st.Frames())

	memo := ms.Local().MemoizedProps
	assert.Equal(t, "m", memo["name"])
	assert.Equal(t, []any{1, 2, 3}, memo["position"])
	assert.Equal(t, []any{}, memo["args"], "args only change by switching")

	err = r.ApplyProps(ms, Props{"nope": 1, "visible": false})
	assert.Error(t, err)
	assert.False(t, mesh.Visible)

	// not linked: no invalidation
	lone := named(t, r, st, "lone")
	frames = st.Frames()
	require.NoError(t, r.ApplyProps(lone, Props{"visible": false}))
	assert.Equal(t, frames, st.Frames())
	assert.NoError(t, r.ApplyProps(nil, Props{"visible": false}))
}

func TestHandlers(t *testing.T) {
	r, st, _ := newTree(t)
	updates := 0
	gp := create(t, r, st, "group", Props{
		"onClick":  Handler(func(inst *Instance) {}),
		"onUpdate": func(inst *Instance) { updates++ },
		"onHover":  "not a function",
	})
	cl := gp.Local()
	assert.Len(t, cl.Handlers, 2)
	assert.Equal(t, 1, cl.EventCount)
	assert.Zero(t, updates)

	r.AppendChild(st.Scene, gp)
	assert.Equal(t, 1, updates)
	assert.Equal(t, []*Instance{gp}, st.Interaction())

	require.NoError(t, r.ApplyProps(gp, Props{"onClick": nil}))
	assert.Equal(t, 2, updates)
	assert.Equal(t, 0, cl.EventCount)

	require.NoError(t, r.ApplyProps(gp, Props{"onClick": func(inst *Instance) {}}))
	r.RemoveChild(st.Scene, gp, Inherit)
	assert.Empty(t, st.Interaction())
}

func TestCustomApplier(t *testing.T) {
	r, st, _ := newTree(t)
	ap := &recordApplier{}
	r.Applier = ap
	create(t, r, st, "group", Props{"name": "g", "args": []any{}})
	assert.Equal(t, 1, ap.calls)
	assert.Equal(t, "g", ap.last["name"])
}

type recordApplier struct {
	calls int
	last  Props
}

func (ra *recordApplier) ApplyProps(inst *Instance, props Props) error {
	ra.calls++
	ra.last = props
	return nil
}
