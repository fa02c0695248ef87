// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gaissmai/keytrie/internal/value"
)

// fprint writes the key hierarchy of t to w, see [StringMap.Fprint].
func (t *trie[S, V, K]) fprint(w io.Writer, fmtKey func([]S) string) error {
	if w == nil {
		panic("keytrie: Fprint to nil writer")
	}

	cmpKeys := func(a, b []S) int {
		return cmp.Compare(fmtKey(a), fmtKey(b))
	}

	keys := t.hierarchy(cmpKeys)
	if len(keys) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	// payload of zero sized types carries no information
	withVal := !value.IsZST[V]()

	return fprintRec(w, keys, "", fmtKey, withVal)
}

// fprintRec, the output is a hierarchical key tree.
func fprintRec[S comparable, V any](w io.Writer, keys []hkey[S, V], pad string, fmtKey func([]S) string, withVal bool) error {
	for i, k := range keys {
		glyph, spacer := "├─ ", "│  "
		if i == len(keys)-1 {
			glyph, spacer = "└─ ", "   "
		}

		var err error
		if withVal {
			_, err = fmt.Fprintf(w, "%s%s%s (%v)\n", pad, glyph, fmtKey(k.key), k.val)
		} else {
			_, err = fmt.Fprintf(w, "%s%s%s\n", pad, glyph, fmtKey(k.key))
		}
		if err != nil {
			return err
		}

		if err := fprintRec(w, k.subs, pad+spacer, fmtKey, withVal); err != nil {
			return err
		}
	}

	return nil
}

// sprint is the String() helper of all façades.
// If fprint returns an error, sprint panics.
func (t *trie[S, V, K]) sprint(fmtKey func([]S) string) string {
	w := new(strings.Builder)
	if err := t.fprint(w, fmtKey); err != nil {
		panic(err)
	}

	return w.String()
}

// quoteBytes formats byte keys, quoted and escaped.
func quoteBytes(key []byte) string {
	return strconv.Quote(string(key))
}

// sprintKey formats generic keys.
func sprintKey[S comparable](key []S) string {
	return fmt.Sprint(key)
}
