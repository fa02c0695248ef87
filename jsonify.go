// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"encoding/json"
)

// ListElement is a stored key with payload in the key hierarchy of a [StringMap].
// Subs are the stored keys with Key as their longest stored prefix.
type ListElement[V any] struct {
	Key   string           `json:"key"`
	Value V                `json:"value"`
	Subs  []ListElement[V] `json:"subs,omitempty"`
}

// KeyElement is a stored key in the key hierarchy of a [StringSet].
type KeyElement struct {
	Key  string       `json:"key"`
	Subs []KeyElement `json:"subs,omitempty"`
}

// MarshalJSON dumps the map as a list of root keys with their subs,
// a list and not an object, because the order matters.
func (m *StringMap[V]) MarshalJSON() ([]byte, error) {
	list := m.DumpList()
	if list == nil {
		list = []ListElement[V]{}
	}
	return json.Marshal(list)
}

// DumpList dumps the key hierarchy of the map into a list of root keys
// and their subs, in lexicographic order.
func (m *StringMap[V]) DumpList() []ListElement[V] {
	return toListElements(m.t.hierarchy(nil))
}

func toListElements[V any](keys []hkey[byte, V]) []ListElement[V] {
	if len(keys) == 0 {
		return nil
	}

	elements := make([]ListElement[V], 0, len(keys))
	for _, k := range keys {
		elements = append(elements, ListElement[V]{
			Key:   string(k.key),
			Value: k.val,
			Subs:  toListElements(k.subs),
		})
	}
	return elements
}

// MarshalJSON dumps the set as a list of root keys with their subs.
func (s *StringSet) MarshalJSON() ([]byte, error) {
	list := s.DumpList()
	if list == nil {
		list = []KeyElement{}
	}
	return json.Marshal(list)
}

// DumpList dumps the key hierarchy of the set into a list of root keys
// and their subs, in lexicographic order.
func (s *StringSet) DumpList() []KeyElement {
	return toKeyElements(s.t.hierarchy(nil))
}

func toKeyElements(keys []hkey[byte, struct{}]) []KeyElement {
	if len(keys) == 0 {
		return nil
	}

	elements := make([]KeyElement, 0, len(keys))
	for _, k := range keys {
		elements = append(elements, KeyElement{
			Key:  string(k.key),
			Subs: toKeyElements(k.subs),
		})
	}
	return elements
}
