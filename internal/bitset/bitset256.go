// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset for the 256 possible
// symbols of a byte alphabet.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the few needed parts for this project.
package bitset

import (
	"fmt"
	"math/bits"
)

//   i>>6 is the word index and i&63 the bit index within the word,
//   not factored out as functions to keep the methods inlineable.

// BitSet256 represents a fixed size bitset from [0..255],
// one bit for every possible byte symbol.
type BitSet256 [4]uint64

func (b *BitSet256) String() string {
	return fmt.Sprint(b.Bytes(&[256]byte{}))
}

// Set the bit for symbol c.
func (b *BitSet256) Set(c byte) {
	b[c>>6&3] |= 1 << (c & 63) // &3 is bounds check elimination (BCE)
}

// Clear the bit for symbol c.
func (b *BitSet256) Clear(c byte) {
	b[c>>6&3] &^= 1 << (c & 63)
}

// Test if the bit for symbol c is set.
func (b *BitSet256) Test(c byte) bool {
	return b[c>>6&3]&(1<<(c&63)) != 0
}

// First returns the lowest symbol in the set along with an ok code.
func (b *BitSet256) First() (c byte, ok bool) {
	for wIdx, word := range b {
		if word != 0 {
			return byte(wIdx<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return
}

// Next returns the lowest symbol in the set that is >= c,
// along with an ok code.
func (b *BitSet256) Next(c byte) (byte, bool) {
	wIdx := int(c >> 6)

	// the first (maybe partial) word
	if word := b[wIdx&3] >> (c & 63); word != 0 {
		return c + byte(bits.TrailingZeros64(word)), true
	}

	for wIdx++; wIdx < 4; wIdx++ {
		if word := b[wIdx]; word != 0 {
			return byte(wIdx<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// Bytes returns all set symbols in ascending order, the result
// is a slice of buf, without heap allocations.
func (b *BitSet256) Bytes(buf *[256]byte) []byte {
	size := 0
	for wIdx, word := range b {
		for ; word != 0; size++ {
			buf[size] = byte(wIdx<<6 + bits.TrailingZeros64(word))

			// clear the rightmost set bit
			word &= word - 1
		}
	}
	return buf[:size]
}

// IsEmpty returns true if no bit is set.
func (b *BitSet256) IsEmpty() bool {
	return b[0]|b[1]|b[2]|b[3] == 0
}

// Size is the number of set bits (popcount).
func (b *BitSet256) Size() int {
	return bits.OnesCount64(b[0]) +
		bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) +
		bits.OnesCount64(b[3])
}
