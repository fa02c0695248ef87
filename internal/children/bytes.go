// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package children

import (
	"iter"

	"github.com/gaissmai/keytrie/internal/bitset"
)

// Shape is the current representation of a [Bytes] store.
type Shape uint8

const (
	Empty  Shape = iota // no children
	Single              // exactly one child in the single slot
	Dense               // two or more children in the dense array
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Single:
		return "SINGLE"
	case Dense:
		return "DENSE"
	default:
		return "UNKNOWN"
	}
}

// Bytes is the adaptive child store for the byte alphabet.
//
// The representation always follows the number of children:
//
//	0 children: nothing allocated
//	1 child:    single slot, compared by symbol
//	>1 child:   dense [256] array, indexed by symbol
//
// Long unique suffixes are chains of single-child nodes, they stay small.
// Once a node branches, the child lookup is a plain array access.
type Bytes[N any] struct {
	count  int
	sym    byte      // valid iff count == 1
	single N         // valid iff count == 1
	dense  *dense[N] // non-nil iff count > 1
}

// dense is the uncompressed array, the bitset tracks the occupied slots.
type dense[N any] struct {
	bitset.BitSet256
	items [256]N
}

var _ Children[byte, *int] = (*Bytes[*int])(nil)

// Shape returns the current representation.
func (b *Bytes[N]) Shape() Shape {
	switch {
	case b.count == 0:
		return Empty
	case b.count == 1:
		return Single
	default:
		return Dense
	}
}

// Len returns the number of children.
func (b *Bytes[N]) Len() int {
	return b.count
}

// Get returns the child at sym.
func (b *Bytes[N]) Get(sym byte) (kid N, ok bool) {
	switch {
	case b.count == 1:
		if b.sym == sym {
			return b.single, true
		}
	case b.count > 1:
		if b.dense.Test(sym) {
			return b.dense.items[sym], true
		}
	}
	return
}

// Insert kid at sym. The second distinct symbol promotes the store
// to the dense array, the single child moves to its slot.
func (b *Bytes[N]) Insert(sym byte, kid N) {
	var zero N

	switch {
	case b.count == 0:
		b.sym, b.single = sym, kid
		b.count = 1

	case b.count == 1 && b.sym == sym:
		b.single = kid // overwrite

	case b.count == 1:
		d := new(dense[N])

		// relocate the single child
		d.Set(b.sym)
		d.items[b.sym] = b.single

		d.Set(sym)
		d.items[sym] = kid

		b.sym, b.single = 0, zero
		b.dense = d
		b.count = 2

	default:
		if !b.dense.Test(sym) {
			b.dense.Set(sym)
			b.count++
		}
		b.dense.items[sym] = kid
	}
}

// Delete removes and returns the child at sym. Removing the next-to-last
// child demotes the store to the single slot, the survivor moves there.
func (b *Bytes[N]) Delete(sym byte) (kid N, ok bool) {
	var zero N

	switch {
	case b.count == 0:
		return

	case b.count == 1:
		if b.sym != sym {
			return
		}
		kid = b.single

		b.sym, b.single = 0, zero
		b.count = 0

		return kid, true
	}

	d := b.dense
	if !d.Test(sym) {
		return
	}

	kid = d.items[sym]
	d.items[sym] = zero
	d.Clear(sym)
	b.count--

	if b.count == 1 {
		survivor, found := d.First()
		if !found {
			panic("logic error, dense array without survivor")
		}

		b.sym, b.single = survivor, d.items[survivor]
		b.dense = nil
	}

	return kid, true
}

// All returns an iterator over all children in ascending symbol order.
func (b *Bytes[N]) All() iter.Seq2[byte, N] {
	return func(yield func(byte, N) bool) {
		switch {
		case b.count == 1:
			yield(b.sym, b.single)

		case b.count > 1:
			for _, sym := range b.dense.Bytes(&[256]byte{}) {
				if !yield(sym, b.dense.items[sym]) {
					return
				}
			}
		}
	}
}
