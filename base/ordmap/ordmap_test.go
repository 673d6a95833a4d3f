// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())

	v, ok := om.ValueByKeyTry("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = om.ValueByKeyTry("nope")
	assert.False(t, ok)

	om.Add("key0", 10)
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())
	v, _ = om.ValueByKeyTry("key0")
	assert.Equal(t, 10, v)
}

func TestZeroMap(t *testing.T) {
	var om Map[string, bool]
	om.Add("a", true)
	v, ok := om.ValueByKeyTry("a")
	assert.True(t, ok)
	assert.True(t, v)
}
