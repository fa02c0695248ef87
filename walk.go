// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"slices"
)

// item is a stored key with its payload, collected during a walk.
type item[S comparable, V any] struct {
	key []S
	val V
}

// collectRec appends all stored keys below n in preorder,
// path is the key of n. With ordered child stores the
// result is in lexicographic order.
func (n *node[S, V]) collectRec(path []S, items []item[S, V]) []item[S, V] {
	if n.isTerminal() {
		items = append(items, item[S, V]{key: slices.Clone(path), val: n.entry.val})
	}

	for sym, kid := range n.allChildren() {
		items = kid.collectRec(append(path, sym), items)
	}
	return items
}

// all returns a snapshot of all stored keys.
//
// The façades iterate over the snapshot, the lock is released
// before the first yield and the loop body may modify the trie.
func (t *trie[S, V, K]) all() []item[S, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root.collectRec(make([]S, 0, 32), make([]item[S, V], 0, t.size))
}

// withPrefix returns a snapshot of all stored keys starting with prefix.
func (t *trie[S, V, K]) withPrefix(prefix []S) []item[S, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.findKey(prefix)
	if n == nil {
		return nil
	}

	return n.collectRec(slices.Clone(prefix), nil)
}

// hkey is a stored key in the key hierarchy: every key is nested
// under the longest stored key that is a prefix of it.
type hkey[S comparable, V any] struct {
	key  []S
	val  V
	subs []hkey[S, V]
}

// hierarchy returns the key hierarchy of the trie,
// cmpKeys sorts the siblings if the child stores are unordered.
func (t *trie[S, V, K]) hierarchy(cmpKeys func(a, b []S) int) []hkey[S, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var mk K
	if mk.ordered() {
		cmpKeys = nil
	}

	// the stored empty key is the prefix of all others
	if t.root.isTerminal() {
		return []hkey[S, V]{{
			key:  []S{},
			val:  t.root.entry.val,
			subs: t.root.hierarchyRec(nil, cmpKeys),
		}}
	}

	return t.root.hierarchyRec(nil, cmpKeys)
}

// hierarchyRec returns the terminal nodes below n that are not
// below another terminal node, each with its own sub hierarchy.
func (n *node[S, V]) hierarchyRec(path []S, cmpKeys func(a, b []S) int) []hkey[S, V] {
	var result []hkey[S, V]

	for sym, kid := range n.allChildren() {
		path := append(path, sym)

		if !kid.isTerminal() {
			result = append(result, kid.hierarchyRec(path, cmpKeys)...)
			continue
		}

		key := slices.Clone(path)
		result = append(result, hkey[S, V]{
			key:  key,
			val:  kid.entry.val,
			subs: kid.hierarchyRec(key, cmpKeys),
		})
	}

	if cmpKeys != nil {
		slices.SortFunc(result, func(a, b hkey[S, V]) int { return cmpKeys(a.key, b.key) })
	}

	return result
}
