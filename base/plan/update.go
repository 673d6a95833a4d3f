// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides a mechanism for updating a slice to contain a
// target list of elements, generating minimal edits to modify the current
// slice contents to match the target. Elements are matched by unique
// name strings, such as the keys of the nodes of a declarative document.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Edits are the callbacks of [Update]; any of them can be nil except New.
type Edits[T Namer] struct {

	// New is called to make the element with the given name
	// that is needed at the given index.
	New func(name string, i int) T

	// Destroy is called on every element that is deleted from the slice.
	Destroy func(e T)

	// Move is called on every element that is kept but moved from index
	// from to index to of the slice being updated.
	Move func(e T, from, to int)

	// Keep is called on every element that is kept in place.
	Keep func(e T, i int)
}

// Update ensures that the elements of the slice contain
// the elements according to the plan, specified by unique
// element names, with n = total number of items in the target slice.
// Elements whose names are not in the plan are destroyed first,
// then missing elements are made and kept ones moved into place,
// in target order.
// It returns the updated slice and whether any changes were made.
func Update[T Namer](s []T, n int, name func(i int) string, ed Edits[T]) (r []T, mods bool) {
	names := make([]string, n)
	nmap := make(map[string]int, n)
	for i := range n {
		nm := name(i)
		names[i] = nm
		if _, has := nmap[nm]; has {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		nmap[nm] = i
	}
	// first remove anything we don't want
	r = s
	for i := len(r) - 1; i >= 0; i-- {
		if _, ok := nmap[r[i].PlanName()]; !ok {
			mods = true
			if ed.Destroy != nil {
				ed.Destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
		}
	}
	// next add and move items as needed; in order so guaranteed
	for i, tn := range names {
		ci := -1
		if i < len(r) {
			ci = slices.IndexFunc(r[i:], func(e T) bool { return e.PlanName() == tn })
			if ci >= 0 {
				ci += i
			}
		}
		switch {
		case ci < 0: // item not currently on the list
			mods = true
			r = slices.Insert(r, i, ed.New(tn, i))
		case ci != i:
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, i, e)
			if ed.Move != nil {
				ed.Move(e, ci, i)
			}
		default:
			if ed.Keep != nil {
				ed.Keep(r[i], i)
			}
		}
	}
	return
}
