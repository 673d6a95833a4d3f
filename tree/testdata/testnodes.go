// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides node types for tests of package tree.
package testdata

import "cogentcore.org/fiber/tree"

// Item is a simple node that records how often it was added and removed.
type Item struct {
	tree.NodeBase

	Adds    int
	Removes int
}

// NewItem returns a new initialized [Item] with the given name.
func NewItem(name string) *Item {
	it := &Item{}
	it.Name = name
	tree.InitNode(it)
	return it
}

func (it *Item) OnAdd()    { it.Adds++ }
func (it *Item) OnRemove() { it.Removes++ }
