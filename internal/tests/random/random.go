// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random provides random key generators for tests and benchmarks.
//
// The generators take the prng as argument, tests with a fixed seed
// are reproducible.
package random

import (
	"math/rand/v2"
	"strings"
)

// Lower is a small alphabet, random keys over it share many prefixes.
const Lower = "abcdefghijklmnopqrstuvwxyz"

// Key returns a random key with 0..maxLen symbols out of alphabet.
func Key(prng *rand.Rand, alphabet string, maxLen int) string {
	n := prng.IntN(maxLen + 1)

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[prng.IntN(len(alphabet))])
	}
	return sb.String()
}

// Bytes returns a random key with 0..maxLen symbols out of the
// full byte range, invalid UTF-8 and NUL bytes included.
func Bytes(prng *rand.Rand, maxLen int) string {
	n := prng.IntN(maxLen + 1)

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(prng.UintN(256))
	}
	return string(buf)
}

// Runes returns a random rune key with 0..maxLen symbols,
// a mix of ASCII and some multibyte runes.
func Runes(prng *rand.Rand, maxLen int) []rune {
	const pool = "abcxyzäöüß€日本語"
	runes := []rune(pool)

	n := prng.IntN(maxLen + 1)
	key := make([]rune, n)
	for i := range key {
		key[i] = runes[prng.IntN(len(runes))]
	}
	return key
}

// Keys returns n distinct random keys over the alphabet [Lower].
//
// Every second key, on average, extends or truncates an earlier key,
// the result is rich in keys that are prefixes of other keys.
func Keys(prng *rand.Rand, n int) []string {
	const maxLen = 12

	seen := make(map[string]bool, n)
	keys := make([]string, 0, n)

	for len(keys) < n {
		var key string

		switch {
		case len(keys) == 0 || prng.IntN(2) == 0:
			key = Key(prng, Lower, maxLen)

		case prng.IntN(2) == 0:
			// extend an earlier key
			base := keys[prng.IntN(len(keys))]
			key = base + Key(prng, Lower, 4)

		default:
			// truncate an earlier key
			base := keys[prng.IntN(len(keys))]
			key = base[:prng.IntN(len(base)+1)]
		}

		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	return keys
}
