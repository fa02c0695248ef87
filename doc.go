// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package keytrie provides prefix trees (tries) for sequence typed keys,
// with exact lookup, prefix lookup and key to value mapping.
//
// keytrie offers four variants:
//
//   - StringSet:    set of byte strings
//   - StringMap[V]: byte strings to values of type V
//   - Set[S]:       set of keys []S for any comparable symbol type S
//   - Map[S, V]:    keys []S to values of type V
//
// The string variants store the children of a node in an adaptive array:
// nothing for leaves, a single slot for the long chains of unique suffixes
// and a dense array, directly indexed by the byte, as soon as a node branches.
// The generic variants store the children in a Go map.
//
// Insert and Erase keep the trie minimal at all times: erasing a key prunes
// all nodes that are neither needed by another key nor branch to one,
// erasing a key that is a prefix of other keys just unmarks it.
//
// PrefixContains and PrefixFind answer the question whether any stored key
// is a prefix of the given key, e.g. with the key "beer::" stored,
// "beer::budweiser" has a stored prefix, "beer" has none.
//
// All variants are safe for concurrent use. Lookups share a read lock,
// Insert, Update and Erase are serialized.
package keytrie
