// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/keytrie/internal/children"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// shaper is implemented by the adaptive byte store.
type shaper interface {
	Shape() children.Shape
}

// nodeStats, the root is counted for the shapes but not as node.
type nodeStats struct {
	nodes     int
	terminals int
	dangling  int // non-terminal leaves, always zero in a minimal trie

	empty  int
	single int
	dense  int
	mapped int
}

// shape returns the representation of the child store of n.
func (n *node[S, V]) shape() string {
	switch kids := n.kids.(type) {
	case nil:
		return children.Empty.String()
	case shaper:
		return kids.Shape().String()
	default:
		return "MAP"
	}
}

// countShape adds the child store representation of n to the stats.
func (s *nodeStats) countShape(n interface{ shape() string }) {
	switch n.shape() {
	case "EMPTY":
		s.empty++
	case "SINGLE":
		s.single++
	case "DENSE":
		s.dense++
	case "MAP":
		s.mapped++
	}
}

// stats walks the whole trie.
func (t *trie[S, V, K]) stats() nodeStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var s nodeStats
	s.countShape(&t.root)
	t.root.statsRec(&s)

	return s
}

// statsRec, rec-descent the trie.
func (n *node[S, V]) statsRec(s *nodeStats) {
	for _, kid := range n.allChildren() {
		s.nodes++
		s.countShape(kid)

		if kid.isTerminal() {
			s.terminals++
		} else if !kid.hasChildren() {
			s.dangling++
		}

		kid.statsRec(s)
	}
}

// dumpString is just a wrapper for dump.
func (t *trie[S, V, K]) dumpString(fmtKey func([]S) string) string {
	w := new(strings.Builder)
	t.dump(w, fmtKey)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t *trie[S, V, K]) dump(w io.Writer, fmtKey func([]S) string) {
	s := t.stats()

	t.mu.RLock()
	defer t.mu.RUnlock()

	fmt.Fprintf(w, "### size(%d), nodes(%d)\n", t.size, s.nodes)
	t.root.dumpRec(w, nil, fmtKey)
}

// dumpRec, rec-descent the trie.
func (n *node[S, V]) dumpRec(w io.Writer, path []S, fmtKey func([]S) string) {
	depth := len(path)
	indent := strings.Repeat(".", depth)

	fmt.Fprintf(w, "%s[%s] depth: %d key: %s", indent, n.shape(), depth, fmtKey(path))

	if n.isTerminal() {
		fmt.Fprintf(w, " value: %v", n.entry.val)
	}
	fmt.Fprintln(w)

	for sym, kid := range n.allChildren() {
		kid.dumpRec(w, append(path, sym), fmtKey)
	}
}
