// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order in which
// keys were first added, while also providing fast key-based lookup.
// Replacing the value of an existing key keeps its position.
package ordmap

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map. The map stores an index
// into the slice that has the key and value.
type Map[K comparable, V any] struct {

	// Order is the ordered list of keys and values, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Add adds a new value for the given key. If the key already exists,
// its value is replaced in place, otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKeyTry returns the value for the given key and whether it was found.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	idx, has := om.Map[key]
	if !has {
		var zv V
		return zv, false
	}
	return om.Order[idx].Value, true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}
