// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"sync"
)

// trie is the engine behind all façades.
//
// S is the symbol type of the keys, V the payload and K selects the child
// store of the nodes. The zero value is an empty trie ready to use.
//
// Every method takes the lock, lookups share it, mutations own it.
// The lock is not reentrant, only the update callback runs while it is held.
type trie[S comparable, V any, K kidsMaker[S, V]] struct {
	mu sync.RWMutex

	// root represents the empty key, it is never pruned
	root node[S, V]

	// the number of stored keys
	size int
}

// insert the key with payload val. If the key is already present
// the payload is overwritten in place and false is returned.
func (t *trie[S, V, K]) insert(key []S, val V) (added bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, added = t.insertLocked(key, val)
	return
}

// insertLocked walks the existing path of key and creates the missing tail.
// The caller holds the write lock.
func (t *trie[S, V, K]) insertLocked(key []S, val V) (*entry[V], bool) {
	var mk K
	n := &t.root

	// follow the existing nodes
	depth := 0
	for ; depth < len(key); depth++ {
		kid, ok := n.getChild(key[depth])
		if !ok {
			break
		}
		n = kid
	}

	// create the rest
	for _, sym := range key[depth:] {
		kid := new(node[S, V])
		n.addChild(sym, kid, mk)
		n = kid
	}

	added := n.setTerminal(val)
	if added {
		t.size++
	}

	return n.entry, added
}

// update the payload of key via callback, a missing key is inserted.
// The callback is called with the lock held, it must not call back into the trie.
func (t *trie[S, V, K]) update(key []S, cb func(V, bool) V) V {
	t.mu.Lock()
	defer t.mu.Unlock()

	var old V
	n := t.findKey(key)
	found := n != nil && n.isTerminal()
	if found {
		old = n.entry.val
	}

	val := cb(old, found)
	t.insertLocked(key, val)

	return val
}

// findKey follows key from the root and returns the reached node,
// terminal or not. Nil is returned if any symbol has no matching child.
// The caller holds the lock.
func (t *trie[S, V, K]) findKey(key []S) *node[S, V] {
	n := &t.root
	for _, sym := range key {
		kid, ok := n.getChild(sym)
		if !ok {
			return nil
		}
		n = kid
	}
	return n
}

// find returns the entry of key, or nil if key is not stored.
// A key that is only a prefix of stored keys is not stored.
func (t *trie[S, V, K]) find(key []S) *entry[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n := t.findKey(key); n != nil {
		return n.entry
	}
	return nil
}

// prefixFind returns the entry of the shortest stored key that is
// a prefix of key, key itself included, or nil if there is none.
//
// The first terminal node on the path stops the walk, the rest of key
// is not inspected.
func (t *trie[S, V, K]) prefixFind(key []S) *entry[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := &t.root

	// the stored empty key is a prefix of every key
	if n.isTerminal() {
		return n.entry
	}

	for _, sym := range key {
		kid, ok := n.getChild(sym)
		if !ok {
			return nil
		}
		n = kid

		if n.isTerminal() {
			return n.entry
		}
	}
	return nil
}

// erase removes key and returns its payload and true,
// or false if key was not stored.
//
// Clearing the terminal flag is all that is needed if key is a prefix of
// other keys. Otherwise the now useless nodes are pruned upwards,
// from the last node of key to the first node still needed,
// either as terminal of another key or as branch to other keys.
func (t *trie[S, V, K]) erase(key []S) (val V, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// record the nodes on the path, needed to prune upwards,
	// no heap allocs for the common short keys
	var buf [32]*node[S, V]
	stack := buf[:0]

	n := &t.root
	for _, sym := range key {
		kid, found := n.getChild(sym)
		if !found {
			return
		}

		// push parent
		stack = append(stack, n)
		n = kid
	}

	// key is only a prefix of other keys, or not a key at all
	if val, ok = n.clearTerminal(); !ok {
		return
	}
	t.size--

	// unwind, stack[depth] is the parent of the node at key[depth]
	for depth := len(stack) - 1; depth >= 0; depth-- {
		if n.isTerminal() || n.hasChildren() {
			break
		}

		parent := stack[depth]
		parent.removeChild(key[depth])
		n = parent
	}

	return val, true
}

// len returns the number of stored keys.
func (t *trie[S, V, K]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size
}
