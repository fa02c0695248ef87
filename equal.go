// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"github.com/gaissmai/keytrie/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// equal reports whether t and o store the same keys with equal payloads.
//
// Both tries are minimal, the same set of keys has the same shape,
// comparing the keys is sufficient. Only one lock is held at a time.
func (t *trie[S, V, K]) equal(o *trie[S, V, K]) bool {
	if t == o {
		return true
	}

	items := t.all()

	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.size != len(items) {
		return false
	}

	for _, it := range items {
		n := o.findKey(it.key)
		if n == nil || !n.isTerminal() {
			return false
		}

		if !value.Equal(it.val, n.entry.val) {
			return false
		}
	}

	return true
}
