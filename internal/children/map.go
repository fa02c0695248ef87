// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package children

import (
	"iter"
	"maps"
)

// Map is the child store for generic alphabets.
// The iteration order of All is unspecified.
type Map[S comparable, N any] map[S]N

var _ Children[rune, *int] = Map[rune, *int](nil)

// Get returns the child at sym.
func (m Map[S, N]) Get(sym S) (kid N, ok bool) {
	kid, ok = m[sym]
	return
}

// Insert kid at sym. Inserting into a nil Map panics.
func (m Map[S, N]) Insert(sym S, kid N) {
	m[sym] = kid
}

// Delete removes and returns the child at sym.
func (m Map[S, N]) Delete(sym S) (kid N, ok bool) {
	if kid, ok = m[sym]; ok {
		delete(m, sym)
	}
	return
}

// Len returns the number of children.
func (m Map[S, N]) Len() int {
	return len(m)
}

// All returns an iterator over all children in unspecified order.
func (m Map[S, N]) All() iter.Seq2[S, N] {
	return maps.All(m)
}
