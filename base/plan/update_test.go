// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nameObj struct {
	name string
}

func (n *nameObj) PlanName() string {
	return n.name
}

func names(items []*nameObj) []string {
	nms := make([]string, len(items))
	for i, it := range items {
		nms[i] = it.name
	}
	return nms
}

type recorder struct {
	made, destroyed, moved, kept []string
}

func (rc *recorder) edits() Edits[*nameObj] {
	return Edits[*nameObj]{
		New: func(name string, i int) *nameObj {
			rc.made = append(rc.made, name)
			return &nameObj{name: name}
		},
		Destroy: func(e *nameObj) { rc.destroyed = append(rc.destroyed, e.name) },
		Move:    func(e *nameObj, from, to int) { rc.moved = append(rc.moved, e.name) },
		Keep:    func(e *nameObj, i int) { rc.kept = append(rc.kept, e.name) },
	}
}

func update(s []*nameObj, target []string, rc *recorder) ([]*nameObj, bool) {
	return Update(s, len(target), func(i int) string { return target[i] }, rc.edits())
}

func TestUpdate(t *testing.T) {
	var s []*nameObj
	rc := &recorder{}
	s, changed := update(s, []string{"a", "b", "c"}, rc)
	assert.Equal(t, []string{"a", "b", "c"}, names(s))
	assert.Equal(t, []string{"a", "b", "c"}, rc.made)
	assert.True(t, changed)

	a := s[0]
	rc = &recorder{}
	s, changed = update(s, []string{"a", "aa", "b", "c"}, rc)
	assert.Equal(t, []string{"a", "aa", "b", "c"}, names(s))
	assert.Equal(t, []string{"aa"}, rc.made)
	assert.Equal(t, []string{"a", "b", "c"}, rc.kept)
	assert.Same(t, a, s[0])
	assert.True(t, changed)

	rc = &recorder{}
	s, changed = update(s, []string{"a", "aa", "bb", "c"}, rc)
	assert.Equal(t, []string{"a", "aa", "bb", "c"}, names(s))
	assert.Equal(t, []string{"b"}, rc.destroyed)
	assert.Equal(t, []string{"bb"}, rc.made)
	assert.True(t, changed)

	rc = &recorder{}
	s, changed = update(s, []string{"aa", "bb", "c"}, rc)
	assert.Equal(t, []string{"aa", "bb", "c"}, names(s))
	assert.Equal(t, []string{"a"}, rc.destroyed)
	assert.True(t, changed)

	rc = &recorder{}
	s, changed = update(s, []string{"aa", "bb", "c"}, rc)
	assert.Equal(t, []string{"aa", "bb", "c"}, names(s))
	assert.Empty(t, rc.made)
	assert.Empty(t, rc.destroyed)
	assert.Empty(t, rc.moved)
	assert.False(t, changed)
}

func TestUpdateMove(t *testing.T) {
	var s []*nameObj
	s, _ = update(s, []string{"a", "b", "c"}, &recorder{})
	rc := &recorder{}
	s, changed := update(s, []string{"c", "a", "b"}, rc)
	assert.Equal(t, []string{"c", "a", "b"}, names(s))
	assert.Equal(t, []string{"c"}, rc.moved)
	assert.Equal(t, []string{"a", "b"}, rc.kept)
	assert.True(t, changed)
}

func TestUpdateNilCallbacks(t *testing.T) {
	s := []*nameObj{{name: "x"}, {name: "y"}}
	target := []string{"y", "z"}
	s, changed := Update(s, len(target), func(i int) string { return target[i] }, Edits[*nameObj]{
		New: func(name string, i int) *nameObj { return &nameObj{name: name} },
	})
	assert.Equal(t, []string{"y", "z"}, names(s))
	assert.True(t, changed)
}
