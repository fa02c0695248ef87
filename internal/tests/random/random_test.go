// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package random

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestKey(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for range 100 {
		key := Key(prng, Lower, 8)

		// length in range
		if len(key) > 8 {
			t.Errorf("key too long: %q", key)
		}

		// symbols out of alphabet
		for _, c := range key {
			if !strings.ContainsRune(Lower, c) {
				t.Errorf("key %q with symbol %q not in alphabet", key, c)
			}
		}
	}
}

func TestBytes(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for range 100 {
		if key := Bytes(prng, 16); len(key) > 16 {
			t.Errorf("key too long: %q", key)
		}
	}
}

func TestRunes(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for range 100 {
		key := Runes(prng, 5)
		if len(key) > 5 {
			t.Errorf("key too long: %q", string(key))
		}
		if !utf8.ValidString(string(key)) {
			t.Errorf("invalid runes: %q", string(key))
		}
	}
}

func TestKeys(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))
	keys := Keys(prng, 1_000)

	if len(keys) != 1_000 {
		t.Fatalf("Keys, got %d keys, want 1000", len(keys))
	}

	// distinct
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}

	// rich in prefixes
	prefixes := 0
	for _, k := range keys {
		for _, o := range keys {
			if k != o && strings.HasPrefix(o, k) {
				prefixes++
				break
			}
		}
	}
	if prefixes < 100 {
		t.Errorf("expected many keys being prefixes of others, got %d", prefixes)
	}
}

func TestKeysDeterministic(t *testing.T) {
	a := Keys(rand.New(rand.NewPCG(1, 2)), 100)
	b := Keys(rand.New(rand.NewPCG(1, 2)), 100)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different keys at %d: %q != %q", i, a[i], b[i])
		}
	}
}
