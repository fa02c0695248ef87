// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"iter"

	"github.com/gaissmai/keytrie/internal/children"
)

// node is one symbol position on the path of some stored key.
//
// The edge label is not stored in the node, it is the symbol
// under which the parent holds this node in its child store.
type node[S comparable, V any] struct {
	// kids is nil iff the node has no children
	kids children.Children[S, *node[S, V]]

	// entry is non-nil iff the path to this node is a stored key,
	// a payload on a non-terminal node is not representable.
	entry *entry[V]
}

// entry is the payload of a terminal node.
type entry[V any] struct {
	val V

	// erased is set when the key is erased, a [Handle]
	// still holding this entry reports the key as gone.
	erased bool
}

// kidsMaker builds the child store of a node, the maker is a zero sized
// type parameter of the trie, selected by the façade at compile time.
type kidsMaker[S comparable, V any] interface {
	newKids() children.Children[S, *node[S, V]]

	// ordered reports whether the stores yield their children
	// in ascending symbol order.
	ordered() bool
}

// mapKids makes child stores for generic alphabets.
type mapKids[S comparable, V any] struct{}

func (mapKids[S, V]) newKids() children.Children[S, *node[S, V]] {
	return make(children.Map[S, *node[S, V]], 1)
}

func (mapKids[S, V]) ordered() bool { return false }

// byteKids makes the adaptive child stores for the byte alphabet.
type byteKids[V any] struct{}

func (byteKids[V]) newKids() children.Children[byte, *node[byte, V]] {
	return new(children.Bytes[*node[byte, V]])
}

func (byteKids[V]) ordered() bool { return true }

// isTerminal reports whether the path to n is a stored key.
func (n *node[S, V]) isTerminal() bool {
	return n.entry != nil
}

// hasChildren reports whether n has at least one child.
func (n *node[S, V]) hasChildren() bool {
	return n.kids != nil
}

// childCount returns the number of children.
func (n *node[S, V]) childCount() int {
	if n.kids == nil {
		return 0
	}
	return n.kids.Len()
}

// getChild returns the child at sym.
func (n *node[S, V]) getChild(sym S) (*node[S, V], bool) {
	if n.kids == nil {
		return nil, false
	}
	return n.kids.Get(sym)
}

// addChild hands the ownership of kid to n.
// Callers add a symbol only once per path.
func (n *node[S, V]) addChild(sym S, kid *node[S, V], mk kidsMaker[S, V]) {
	if n.kids == nil {
		n.kids = mk.newKids()
	}
	n.kids.Insert(sym, kid)
}

// removeChild unlinks the child at sym, the last removed child
// also releases the child store.
func (n *node[S, V]) removeChild(sym S) {
	if n.kids == nil {
		return
	}

	if _, ok := n.kids.Delete(sym); ok && n.kids.Len() == 0 {
		n.kids = nil
	}
}

// allChildren returns an iterator over the children of n.
func (n *node[S, V]) allChildren() iter.Seq2[S, *node[S, V]] {
	if n.kids == nil {
		return func(func(S, *node[S, V]) bool) {}
	}
	return n.kids.All()
}

// setTerminal marks n as terminal with payload val.
// An existing payload is overwritten in place and false is returned.
func (n *node[S, V]) setTerminal(val V) (added bool) {
	if n.entry != nil {
		n.entry.val = val
		return false
	}

	n.entry = &entry[V]{val: val}
	return true
}

// clearTerminal clears the terminal flag and returns the dropped payload.
func (n *node[S, V]) clearTerminal() (val V, ok bool) {
	e := n.entry
	if e == nil {
		return
	}

	var zero V
	val, e.val = e.val, zero
	e.erased = true
	n.entry = nil

	return val, true
}
