// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/fiber/tree"
	"cogentcore.org/fiber/tree/testdata"
)

func testTree() (*testdata.Item, *testdata.Item) {
	root := testdata.NewItem("root")
	a := testdata.NewItem("a")
	b := testdata.NewItem("b")
	a1 := testdata.NewItem("a1")
	a2 := testdata.NewItem("a2")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	a.AddChild(a2)
	return root, a2
}

func TestWalkDown(t *testing.T) {
	root, _ := testTree()
	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, names)
}

func TestWalkDownBreak(t *testing.T) {
	root, _ := testTree()
	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}

func TestWalkDownRemoving(t *testing.T) {
	root, _ := testTree()
	count := 0
	root.WalkDown(func(n Node) bool {
		count++
		if p := n.AsTree().Parent; p != nil {
			p.AsTree().RemoveChild(n)
		}
		return Continue
	})
	assert.Equal(t, 5, count)
	assert.False(t, root.HasChildren())
}

func TestWalkUp(t *testing.T) {
	_, leaf := testTree()
	var names []string
	done := leaf.WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"a2", "a", "root"}, names)

	done = leaf.WalkUp(func(n Node) bool {
		return n.AsTree().Name != "a"
	})
	assert.False(t, done)
}
