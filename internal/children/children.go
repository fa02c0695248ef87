// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package children implements the child stores of a trie node.
//
// Two stores satisfy the same [Children] interface:
//
//   - Map:   a plain Go map for large, sparse or non-contiguous alphabets
//   - Bytes: an adaptive array for the byte alphabet, empty, single slot
//     or dense 256-slot array, depending on the number of children
//
// A store owns its children exclusively, the trie above never
// shares a child between two parents.
package children

import "iter"

// Children is the capability a trie node needs from its child store.
type Children[S comparable, N any] interface {
	// Get returns the child at sym and true, or false if there is none.
	Get(sym S) (N, bool)

	// Insert kid at sym, an existing child at sym is overwritten.
	Insert(sym S, kid N)

	// Delete removes and returns the child at sym.
	// Deleting a missing child is a no-op, reported as false.
	Delete(sym S) (N, bool)

	// Len returns the number of children.
	Len() int

	// All returns an iterator over all children with their symbols.
	All() iter.Seq2[S, N]
}
