// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"github.com/gaissmai/keytrie/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], the Clone methods of the maps use it
// to copy the payload, otherwise the payload is copied by assignment.
type Cloner[V any] interface {
	Clone() V
}

// cloneInto copies the whole trie t into the empty trie c.
func (t *trie[S, V, K]) cloneInto(c *trie[S, V, K]) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var mk K
	cloneFn := value.CloneFnFactory[V]()

	t.root.cloneRec(&c.root, cloneFn, mk)
	c.size = t.size
}

// cloneRec copies n and all its descendants into dst.
func (n *node[S, V]) cloneRec(dst *node[S, V], cloneFn value.CloneFunc[V], mk kidsMaker[S, V]) {
	if n.isTerminal() {
		dst.entry = &entry[V]{val: cloneFn(n.entry.val)}
	}

	for sym, kid := range n.allChildren() {
		c := new(node[S, V])
		kid.cloneRec(c, cloneFn, mk)
		dst.addChild(sym, c, mk)
	}
}
