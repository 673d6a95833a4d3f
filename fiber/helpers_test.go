// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/xyz"
)

func xyzCatalogue() *Catalogue {
	cat := NewCatalogue()
	for _, e := range xyz.Namespace() {
		cat.Set(e.Name, Constructor(e.New))
	}
	return cat
}

// newTree returns a renderer using the xyz types and the store of a new scene.
func newTree(t *testing.T) (*Renderer, *Store, *xyz.Scene) {
	t.Helper()
	r := NewRenderer(xyzCatalogue())
	sc := xyz.NewScene()
	st, err := r.CreateRoot(sc)
	require.NoError(t, err)
	return r, st, sc
}

func create(t *testing.T, r *Renderer, st *Store, typ string, props Props) *Instance {
	t.Helper()
	inst, err := r.CreateInstance(typ, props, st)
	require.NoError(t, err)
	require.NotNil(t, inst)
	return inst
}

func named(t *testing.T, r *Renderer, st *Store, name string) *Instance {
	t.Helper()
	return create(t, r, st, "group", Props{"name": name})
}

// childNames returns the names of the native children of the given node.
func childNames(n xyz.Node) []string {
	var names []string
	for _, k := range n.AsTree().Children {
		names = append(names, k.AsTree().Name)
	}
	return names
}

type invalidations struct {
	count int
	last  *Instance
}

func (iv *invalidations) Invalidate(inst *Instance) {
	iv.count++
	iv.last = inst
}
