// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides helpers for the generic payload V of the
// keytrie maps at runtime: equality, cloning and zero-sized type detection.
//
// Zero-sized payloads (struct{}, [0]byte) carry no information, the
// printers use IsZST to omit them from the output.
package value

import (
	"reflect"
)

// IsZST reports whether type V is a zero-sized type (ZST).
//
// The Go runtime returns the same address for all allocations of a
// zero-sized type, so two fresh allocations of V compare equal
// if and only if V is a ZST.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

// escapeToHeap must not be inlined, otherwise the compiler
// may prove the result of the comparison at compile time.
//
//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// otherwise reflect.DeepEqual is the fallback.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], Clone of the maps uses it to copy
// the payload.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc returns the (possibly cloned) value.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns CloneVal if V implements Cloner[V],
// otherwise CopyVal.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return CopyVal[V]
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. A nil Cloner receiver or a value
// without Clone method is returned unchanged.
func CloneVal[V any](val V) V {
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// CopyVal just copies the value.
func CopyVal[V any](val V) V {
	return val
}
