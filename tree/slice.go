// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument allows
// for an optimized bidirectional search outward from a guess at where
// the node might be, which is a key speedup for large slices.
// If no value is specified for startIndex, it starts in the middle.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	n := len(slice)
	if n == 0 || child == nil {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	for up, down := si, si-1; up < n || down >= 0; up, down = up+1, down-1 {
		if up < n && slice[up] == child {
			return up
		}
		if down >= 0 && slice[down] == child {
			return down
		}
	}
	return -1
}
