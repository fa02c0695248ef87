// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden is a simple and slow reference model for the tries,
// implemented as a slice of keys and values.
package golden

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Table is the golden reference, no trie involved.
type Table[V any] []TableItem[V]

type TableItem[V any] struct {
	Key string
	Val V
}

func (g TableItem[V]) String() string {
	return fmt.Sprintf("(%q, %v)", g.Key, g.Val)
}

// Insert key with val, an existing key gets the new value.
func (t *Table[V]) Insert(key string, val V) (added bool) {
	for i, item := range *t {
		if item.Key == key {
			(*t)[i].Val = val // de-dupe
			return false
		}
	}
	*t = append(*t, TableItem[V]{key, val})
	return true
}

// Delete key, returns the old value and true if key was present.
func (t *Table[V]) Delete(key string) (val V, exists bool) {
	for i, item := range *t {
		if item.Key == key {
			*t = slices.Delete(*t, i, i+1)
			return item.Val, true
		}
	}
	return val, false
}

// Get the value of key.
func (t Table[V]) Get(key string) (val V, ok bool) {
	for _, item := range t {
		if item.Key == key {
			return item.Val, true
		}
	}
	return val, false
}

// Update the value of key via callback, a missing key is inserted.
func (t *Table[V]) Update(key string, cb func(V, bool) V) (val V) {
	for i, item := range *t {
		if item.Key == key {
			val = cb(item.Val, true)
			(*t)[i].Val = val
			return val
		}
	}
	// new val
	val = cb(val, false)

	*t = append(*t, TableItem[V]{key, val})
	return val
}

// PrefixLookup returns the shortest stored key that is a prefix of key,
// key itself included.
func (t Table[V]) PrefixLookup(key string) (pfx string, val V, ok bool) {
	bestLen := len(key) + 1

	for _, item := range t {
		if strings.HasPrefix(key, item.Key) && len(item.Key) < bestLen {
			pfx, val, ok = item.Key, item.Val, true
			bestLen = len(item.Key)
		}
	}
	return pfx, val, ok
}

// AllSorted returns all keys in lexicographic order.
func (t Table[V]) AllSorted() []string {
	result := make([]string, 0, len(t))
	for _, item := range t {
		result = append(result, item.Key)
	}
	slices.Sort(result)
	return result
}

// WithPrefix returns all keys starting with prefix, in lexicographic order.
func (t Table[V]) WithPrefix(prefix string) []string {
	var result []string
	for _, item := range t {
		if strings.HasPrefix(item.Key, prefix) {
			result = append(result, item.Key)
		}
	}
	slices.Sort(result)
	return result
}

// Sort, inplace by key.
func (t *Table[V]) Sort() {
	slices.SortFunc(*t, func(a, b TableItem[V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
