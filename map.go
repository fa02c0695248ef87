// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"io"
	"iter"
)

// Map maps keys, each key a sequence of comparable symbols, to values of type V.
// The children of a node are stored in a Go map, this suits large,
// sparse or non-contiguous alphabets. For byte strings use [StringMap].
//
// The zero value is an empty map ready to use. A Map is safe for
// concurrent use and must not be copied after first use.
type Map[S comparable, V any] struct {
	t trie[S, V, mapKids[S, V]]
}

// Insert adds key with val and reports whether key was new.
// If key is already present, its value is overwritten in place,
// live handles of key see the new value.
func (m *Map[S, V]) Insert(key []S, val V) bool {
	return m.t.insert(key, val)
}

// Update inserts or modifies the value of key via callback. The callback
// receives the current value and whether key is present, its result is
// stored and returned.
//
// The callback runs with the map locked, it must not call the map.
func (m *Map[S, V]) Update(key []S, cb func(val V, ok bool) V) V {
	return m.t.update(key, cb)
}

// Find returns the handle of key. A key that is only a prefix
// of stored keys is not found.
func (m *Map[S, V]) Find(key []S) Handle[V] {
	return newHandle(&m.t.mu, m.t.find(key))
}

// Get returns the value of key and true, or false if key is not present.
func (m *Map[S, V]) Get(key []S) (V, bool) {
	return m.Find(key).Value()
}

// PrefixFind returns the handle of the shortest stored key that is
// a prefix of key, key itself included.
func (m *Map[S, V]) PrefixFind(key []S) Handle[V] {
	return newHandle(&m.t.mu, m.t.prefixFind(key))
}

// Erase removes key and returns its value and true,
// or false if key was not present.
// Keys sharing a prefix with key are not affected.
func (m *Map[S, V]) Erase(key []S) (V, bool) {
	return m.t.erase(key)
}

// Len returns the number of keys in the map.
func (m *Map[S, V]) Len() int {
	return m.t.len()
}

// All returns an iterator over a snapshot of all keys and values,
// in no particular order. The map may be modified during the iteration.
func (m *Map[S, V]) All() iter.Seq2[[]S, V] {
	return func(yield func([]S, V) bool) {
		for _, it := range m.t.all() {
			if !yield(it.key, it.val) {
				return
			}
		}
	}
}

// Clone returns a copy of the map. Values implementing [Cloner]
// are deep cloned, all others are copied by assignment.
func (m *Map[S, V]) Clone() *Map[S, V] {
	c := new(Map[S, V])
	m.t.cloneInto(&c.t)
	return c
}

// Equal reports whether both maps contain the same keys with equal values.
// Values implementing [Equaler] decide themselves,
// all others are compared with [reflect.DeepEqual].
func (m *Map[S, V]) Equal(o *Map[S, V]) bool {
	return m.t.equal(&o.t)
}

// Fprint writes the key hierarchy of the map to w, see [StringMap.Fprint].
func (m *Map[S, V]) Fprint(w io.Writer) error {
	return m.t.fprint(w, sprintKey[S])
}

// String returns the key hierarchy as string, just a wrapper for [Map.Fprint].
func (m *Map[S, V]) String() string {
	return m.t.sprint(sprintKey[S])
}

// StringMap maps strings to values of type V, the keys are byte sequences.
//
// The children of a node are stored in an adaptive array: nothing,
// a single slot or a dense array directly indexed by the byte,
// depending on the number of children.
//
// The zero value is an empty map ready to use. A StringMap is safe for
// concurrent use and must not be copied after first use.
type StringMap[V any] struct {
	t trie[byte, V, byteKids[V]]
}

// Insert adds key with val and reports whether key was new.
// If key is already present, its value is overwritten in place,
// live handles of key see the new value.
func (m *StringMap[V]) Insert(key string, val V) bool {
	return m.t.insert([]byte(key), val)
}

// Update inserts or modifies the value of key via callback. The callback
// receives the current value and whether key is present, its result is
// stored and returned.
//
// The callback runs with the map locked, it must not call the map.
func (m *StringMap[V]) Update(key string, cb func(val V, ok bool) V) V {
	return m.t.update([]byte(key), cb)
}

// Find returns the handle of key. A key that is only a prefix
// of stored keys is not found.
//
//	Insert("hamster", 101)
//	Find("ham")     -> not found
//	Find("hamster") -> found, 101
func (m *StringMap[V]) Find(key string) Handle[V] {
	return newHandle(&m.t.mu, m.t.find([]byte(key)))
}

// Get returns the value of key and true, or false if key is not present.
func (m *StringMap[V]) Get(key string) (V, bool) {
	return m.Find(key).Value()
}

// PrefixFind returns the handle of the shortest stored key that is
// a prefix of key, key itself included.
//
//	Insert("ham", 99)
//	PrefixFind("hamster")    -> found, 99
//	PrefixFind("ham::small") -> found, 99
//	PrefixFind("hatter")     -> not found
func (m *StringMap[V]) PrefixFind(key string) Handle[V] {
	return newHandle(&m.t.mu, m.t.prefixFind([]byte(key)))
}

// Erase removes key and returns its value and true,
// or false if key was not present.
// Keys sharing a prefix with key are not affected.
func (m *StringMap[V]) Erase(key string) (V, bool) {
	return m.t.erase([]byte(key))
}

// Len returns the number of keys in the map.
func (m *StringMap[V]) Len() int {
	return m.t.len()
}

// All returns an iterator over a snapshot of all keys and values
// in lexicographic order. The map may be modified during the iteration.
func (m *StringMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, it := range m.t.all() {
			if !yield(string(it.key), it.val) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over a snapshot of all keys starting
// with prefix, prefix itself included, in lexicographic order.
func (m *StringMap[V]) WithPrefix(prefix string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, it := range m.t.withPrefix([]byte(prefix)) {
			if !yield(string(it.key), it.val) {
				return
			}
		}
	}
}

// Clone returns a copy of the map. Values implementing [Cloner]
// are deep cloned, all others are copied by assignment.
func (m *StringMap[V]) Clone() *StringMap[V] {
	c := new(StringMap[V])
	m.t.cloneInto(&c.t)
	return c
}

// Equal reports whether both maps contain the same keys with equal values.
// Values implementing [Equaler] decide themselves,
// all others are compared with [reflect.DeepEqual].
func (m *StringMap[V]) Equal(o *StringMap[V]) bool {
	return m.t.equal(&o.t)
}

// Fprint writes a hierarchical tree diagram of the keys with default
// formatted values to w. If w is nil, Fprint panics.
//
// A key is nested under the longest stored key that is its prefix,
// siblings are in lexicographic order.
//
//	▼
//	├─ "beer::" (1)
//	│  └─ "beer::budweiser" (2)
//	├─ "brewery::" (3)
//	└─ "ham" (4)
//	   └─ "hamster" (5)
func (m *StringMap[V]) Fprint(w io.Writer) error {
	return m.t.fprint(w, quoteBytes)
}

// String returns the key hierarchy as string, just a wrapper for [StringMap.Fprint].
func (m *StringMap[V]) String() string {
	return m.t.sprint(quoteBytes)
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [StringMap.Fprint].
func (m *StringMap[V]) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
