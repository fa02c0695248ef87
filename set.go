// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"io"
	"iter"
)

// Set is a set of keys, each key a sequence of comparable symbols.
// The children of a node are stored in a Go map, this suits large,
// sparse or non-contiguous alphabets. For byte strings use [StringSet].
//
// The zero value is an empty set ready to use. A Set is safe for
// concurrent use and must not be copied after first use.
type Set[S comparable] struct {
	t trie[S, struct{}, mapKids[S, struct{}]]
}

// Insert adds key to the set and reports whether it was new.
// Inserting an existing key is a no-op.
func (s *Set[S]) Insert(key []S) bool {
	return s.t.insert(key, struct{}{})
}

// Contains reports whether key is in the set. A key that is
// only a prefix of stored keys is not contained.
func (s *Set[S]) Contains(key []S) bool {
	return s.t.find(key) != nil
}

// PrefixContains reports whether any key in the set is a prefix
// of key, key itself included.
//
//	Insert("ham")
//	PrefixContains("hamster")    -> true
//	PrefixContains("ham::small") -> true
//	PrefixContains("hatter")     -> false
func (s *Set[S]) PrefixContains(key []S) bool {
	return s.t.prefixFind(key) != nil
}

// Erase removes key from the set and reports whether it was present.
// Keys sharing a prefix with key are not affected.
func (s *Set[S]) Erase(key []S) bool {
	_, ok := s.t.erase(key)
	return ok
}

// Len returns the number of keys in the set.
func (s *Set[S]) Len() int {
	return s.t.len()
}

// All returns an iterator over a snapshot of all keys, in no particular order.
// The set may be modified during the iteration.
func (s *Set[S]) All() iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		for _, it := range s.t.all() {
			if !yield(it.key) {
				return
			}
		}
	}
}

// Clone returns a copy of the set.
func (s *Set[S]) Clone() *Set[S] {
	c := new(Set[S])
	s.t.cloneInto(&c.t)
	return c
}

// Equal reports whether both sets contain the same keys.
func (s *Set[S]) Equal(o *Set[S]) bool {
	return s.t.equal(&o.t)
}

// Fprint writes the key hierarchy of the set to w, see [StringMap.Fprint].
func (s *Set[S]) Fprint(w io.Writer) error {
	return s.t.fprint(w, sprintKey[S])
}

// String returns the key hierarchy as string, just a wrapper for [Set.Fprint].
func (s *Set[S]) String() string {
	return s.t.sprint(sprintKey[S])
}

// StringSet is a set of strings, the keys are byte sequences.
//
// The children of a node are stored in an adaptive array: nothing,
// a single slot or a dense array directly indexed by the byte,
// depending on the number of children.
//
// The zero value is an empty set ready to use. A StringSet is safe for
// concurrent use and must not be copied after first use.
type StringSet struct {
	t trie[byte, struct{}, byteKids[struct{}]]
}

// Insert adds key to the set and reports whether it was new.
// Inserting an existing key is a no-op.
func (s *StringSet) Insert(key string) bool {
	return s.t.insert([]byte(key), struct{}{})
}

// Contains reports whether key is in the set. A key that is
// only a prefix of stored keys is not contained.
func (s *StringSet) Contains(key string) bool {
	return s.t.find([]byte(key)) != nil
}

// PrefixContains reports whether any key in the set is a prefix
// of key, key itself included.
//
//	Insert("beer::")
//	PrefixContains("beer::budweiser") -> true
//	PrefixContains("beer")            -> false
func (s *StringSet) PrefixContains(key string) bool {
	return s.t.prefixFind([]byte(key)) != nil
}

// Erase removes key from the set and reports whether it was present.
// Keys sharing a prefix with key are not affected.
func (s *StringSet) Erase(key string) bool {
	_, ok := s.t.erase([]byte(key))
	return ok
}

// Len returns the number of keys in the set.
func (s *StringSet) Len() int {
	return s.t.len()
}

// All returns an iterator over a snapshot of all keys in lexicographic order.
// The set may be modified during the iteration.
func (s *StringSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, it := range s.t.all() {
			if !yield(string(it.key)) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over a snapshot of all keys starting
// with prefix, prefix itself included, in lexicographic order.
func (s *StringSet) WithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, it := range s.t.withPrefix([]byte(prefix)) {
			if !yield(string(it.key)) {
				return
			}
		}
	}
}

// Clone returns a copy of the set.
func (s *StringSet) Clone() *StringSet {
	c := new(StringSet)
	s.t.cloneInto(&c.t)
	return c
}

// Equal reports whether both sets contain the same keys.
func (s *StringSet) Equal(o *StringSet) bool {
	return s.t.equal(&o.t)
}

// Fprint writes the key hierarchy of the set to w, see [StringMap.Fprint].
func (s *StringSet) Fprint(w io.Writer) error {
	return s.t.fprint(w, quoteBytes)
}

// String returns the key hierarchy as string, just a wrapper for [StringSet.Fprint].
func (s *StringSet) String() string {
	return s.t.sprint(quoteBytes)
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [StringSet.Fprint].
func (s *StringSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
