// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/fiber/base/errors"
	"cogentcore.org/fiber/base/plan"
	"cogentcore.org/fiber/fiber"
)

// Mounted is a node of a document that is mounted in a renderer.
type Mounted struct {

	// Node is the document node, or nil for the scene.
	Node *Node

	// Inst is the instance made for the node.
	Inst *fiber.Instance

	// Children are the mounted child nodes, in document order.
	Children []*Mounted

	key string
}

// PlanName returns the key of the node among its siblings.
func (m *Mounted) PlanName() string {
	return m.key
}

// Key returns the key of the node among its siblings.
func (m *Mounted) Key() string {
	return m.key
}

// Tree is a document mounted under the scene of a store.
type Tree struct {
	Renderer *fiber.Renderer
	Store    *fiber.Store

	// Doc is the document the tree was last patched to.
	Doc *Document

	// Root is the mounted scene.
	Root *Mounted
}

// Mount mounts the given document under the scene of the given store.
// Nodes that can not be made are skipped along with their subtree, and
// the errors are returned joined together with the tree.
func Mount(r *fiber.Renderer, st *fiber.Store, doc *Document) (*Tree, error) {
	t := &Tree{Renderer: r, Store: st, Root: &Mounted{Inst: st.Scene}}
	return t, t.Patch(doc)
}

// Find returns the mounted node with the given path of keys.
func (t *Tree) Find(keys ...string) (*Mounted, bool) {
	m := t.Root
	for _, k := range keys {
		var next *Mounted
		for _, c := range m.Children {
			if c.key == k {
				next = c
				break
			}
		}
		if next == nil {
			return nil, false
		}
		m = next
	}
	return m, true
}

// Patch reconciles the mounted tree with the given document by key:
// nodes that are gone are removed and disposed, nodes whose type, args or
// attach changed are switched to a new instance, nodes whose props changed
// get the new props, new nodes are made and inserted, and moved nodes are
// reinserted at their new position.
func (t *Tree) Patch(doc *Document) error {
	if doc == nil {
		doc = &Document{}
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	var errs []error
	if t.Doc == nil || !reflect.DeepEqual(t.Doc.Scene, doc.Scene) {
		if len(doc.Scene) > 0 {
			if err := t.Renderer.ApplyProps(t.Store.Scene, doc.Scene); err != nil {
				errs = append(errs, fmt.Errorf("scenefile.Tree.Patch: scene: %w", err))
			}
		}
	}
	t.patch(t.Root, doc.Children, "", &errs)
	t.Doc = doc
	return errors.Join(errs...)
}

func (t *Tree) patch(parent *Mounted, nodes []*Node, path string, errs *[]error) {
	r := t.Renderer
	keys := Keys(nodes)
	placed := map[*Mounted]bool{}
	kids, _ := plan.Update(parent.Children, len(nodes), func(i int) string { return keys[i] }, plan.Edits[*Mounted]{
		New: func(key string, i int) *Mounted {
			m := &Mounted{key: key}
			placed[m] = true
			return m
		},
		Destroy: func(m *Mounted) {
			r.RemoveChild(parent.Inst, m.Inst, fiber.Inherit)
		},
		Move: func(m *Mounted, from, to int) {
			placed[m] = true
		},
	})

	for i, m := range kids {
		n := nodes[i]
		np := path + "/" + keys[i]
		switch {
		case m.Inst == nil:
			inst, err := r.CreateInstance(n.Type, n.InstanceProps(), t.Store)
			if err != nil {
				*errs = append(*errs, fmt.Errorf("scenefile: %s: %w", np, err))
				continue
			}
			m.Inst = inst
		case changedInstance(m.Node, n):
			inst, err := r.SwitchInstance(m.Inst, n.Type, n.InstanceProps())
			if err != nil {
				*errs = append(*errs, fmt.Errorf("scenefile: %s: %w", np, err))
			}
			m.Inst = inst
		case !reflect.DeepEqual(m.Node.Props, n.Props):
			if err := r.ApplyProps(m.Inst, n.InstanceProps()); err != nil {
				*errs = append(*errs, fmt.Errorf("scenefile: %s: %w", np, err))
			}
		}
		m.Node = n
		t.patch(m, n.Children, np, errs)
	}

	made := kids[:0]
	for _, m := range kids {
		if m.Inst != nil {
			made = append(made, m)
		}
	}
	parent.Children = made

	// place from the end, so that the sibling each node is placed
	// before is already in its final position
	for i := len(made) - 1; i >= 0; i-- {
		m := made[i]
		if !placed[m] {
			continue
		}
		var before *fiber.Instance
		for _, s := range made[i+1:] {
			if sameList(m.Inst, s.Inst) {
				before = s.Inst
				break
			}
		}
		r.InsertBefore(parent.Inst, m.Inst, before)
	}
	if len(placed) > 0 {
		slog.Debug("scenefile.Tree.Patch", "parent", parent.Inst, "placed", len(placed))
	}
}

// changedInstance returns whether the node needs a new instance:
// its type, args or attach differ from the mounted node.
func changedInstance(old, n *Node) bool {
	if fiber.CanonicalName(old.Type) != fiber.CanonicalName(n.Type) || old.Attach != n.Attach {
		return true
	}
	if len(old.Args) == 0 && len(n.Args) == 0 {
		return false
	}
	return !reflect.DeepEqual(old.Args, n.Args)
}

// sameList returns whether two siblings are ordered in the same list of
// their parent: both native children, or both objects.
func sameList(a, b *fiber.Instance) bool {
	return native(a) == native(b)
}

func native(inst *fiber.Instance) bool {
	_, ok := inst.Node()
	return ok && inst.Local().Attach == nil
}
