// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Resource is embedded in types that hold graphics resources outside of
// the scene graph, such as geometries, materials and textures. It records
// how many times the resource has been disposed.
type Resource struct {
	disposed int
}

// Dispose releases the resource. Disposing more than once is a defect of
// the caller and is visible in [Resource.DisposeCount].
func (rs *Resource) Dispose() {
	rs.disposed++
}

// DisposeCount returns the number of times Dispose has been called.
func (rs *Resource) DisposeCount() int {
	return rs.disposed
}

// IsDisposed returns whether Dispose has been called.
func (rs *Resource) IsDisposed() bool {
	return rs.disposed > 0
}
