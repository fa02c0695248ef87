// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"sync"
)

// Handle is the result of a map lookup, either a found entry or nothing.
//
// The zero Handle is the not-found result. Handles of the same entry
// compare equal with ==, handles of different keys never do, even
// if the payloads are equal.
//
// A Handle stays usable after the lookup: Value and Store go through
// the lock of the map. Once the key is erased, the handle is stale,
// a later re-insert of the same key creates a new entry.
type Handle[V any] struct {
	mu *sync.RWMutex
	e  *entry[V]
}

// Found reports whether the lookup found the key.
func (h Handle[V]) Found() bool {
	return h.e != nil
}

// Value returns the payload and true,
// or false if nothing was found or the key was erased since.
func (h Handle[V]) Value() (val V, ok bool) {
	if h.e == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.e.erased {
		return
	}
	return h.e.val, true
}

// Store overwrites the payload of the entry, it returns false
// if nothing was found or the key was erased since.
func (h Handle[V]) Store(val V) bool {
	if h.e == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.e.erased {
		return false
	}

	h.e.val = val
	return true
}

// newHandle, nil entries make the not-found handle.
func newHandle[V any](mu *sync.RWMutex, e *entry[V]) Handle[V] {
	if e == nil {
		return Handle[V]{}
	}
	return Handle[V]{mu: mu, e: e}
}
