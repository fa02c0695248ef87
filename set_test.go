// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"slices"
	"testing"
)

func TestStringSetZeroValue(t *testing.T) {
	t.Parallel()

	var s StringSet

	if s.Len() != 0 {
		t.Errorf("Len, got %d, want 0", s.Len())
	}

	if s.Contains("") || s.Contains("ham") {
		t.Error("Contains on empty set must be false")
	}

	if s.PrefixContains("") || s.PrefixContains("ham") {
		t.Error("PrefixContains on empty set must be false")
	}

	if s.Erase("ham") {
		t.Error("Erase on empty set must be false")
	}

	for range s.All() {
		t.Error("All on empty set must not yield")
	}
}

func TestStringSetContains(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("ham")
	s.Insert("hamster")

	tests := []struct {
		key  string
		want bool
	}{
		{"ham", true},
		{"hamster", true},
		{"ha", false},
		{"hams", false},
		{"hamsters", false},
		{"", false},
		{"HAM", false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.key); got != tt.want {
			t.Errorf("Contains(%q), got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestStringSetPrefixContains(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("ham")
	s.Insert("beer::")
	s.Insert("brewery::")

	tests := []struct {
		key  string
		want bool
	}{
		{"hamster", true},
		{"ham::small", true},
		{"ham", true},
		{"hatter", false},
		{"ha", false},
		{"beer::budweiser", true},
		{"beer::", true},
		{"beer:", false},
		{"brewery::little-valley", true},
		{"brewer::little-valley", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := s.PrefixContains(tt.key); got != tt.want {
			t.Errorf("PrefixContains(%q), got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestStringSetInsertIdempotent(t *testing.T) {
	t.Parallel()

	s := new(StringSet)

	if !s.Insert("beer") {
		t.Error("first Insert must report a new key")
	}

	before := s.t.stats()

	if s.Insert("beer") {
		t.Error("second Insert must not report a new key")
	}

	if s.Len() != 1 {
		t.Errorf("Len, got %d, want 1", s.Len())
	}

	if after := s.t.stats(); after != before {
		t.Errorf("re-insert changed the structure, got %+v, want %+v", after, before)
	}
}

func TestStringSetErasePrunes(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("ham")
	s.Insert("hamster")

	// hamster was the only key below ham, its tail is pruned
	if !s.Erase("hamster") {
		t.Fatal("Erase(hamster) must be true")
	}

	if got := s.t.stats().nodes; got != 3 {
		t.Errorf("nodes after Erase(hamster), got %d, want 3", got)
	}

	if !s.Contains("ham") || s.Contains("hamster") {
		t.Error("ham must survive, hamster must be gone")
	}

	if !s.Erase("ham") {
		t.Fatal("Erase(ham) must be true")
	}

	if got := s.t.stats(); got.nodes != 0 || got.terminals != 0 {
		t.Errorf("after erasing all keys, got %+v, want no nodes", got)
	}

	if s.t.root.hasChildren() {
		t.Error("root must be childless after erasing all keys")
	}
}

func TestStringSetEraseKeepsPrefix(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("ham")
	s.Insert("hamster")

	// ham is a prefix of hamster, only the terminal flag is cleared
	if !s.Erase("ham") {
		t.Fatal("Erase(ham) must be true")
	}

	if got := s.t.stats(); got.nodes != 7 || got.terminals != 1 {
		t.Errorf("after Erase(ham), got %+v, want 7 nodes, 1 terminal", got)
	}

	if s.Contains("ham") || !s.Contains("hamster") {
		t.Error("ham must be gone, hamster must survive")
	}

	if s.PrefixContains("hamlet") {
		t.Error("PrefixContains(hamlet) must be false after Erase(ham)")
	}
}

func TestStringSetEraseAbsent(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("hamster")

	for _, key := range []string{"ham", "hamsters", "x", ""} {
		before := s.t.stats()

		if s.Erase(key) {
			t.Errorf("Erase(%q) of absent key must be false", key)
		}

		if after := s.t.stats(); after != before {
			t.Errorf("Erase(%q) of absent key changed the structure", key)
		}
	}

	if !s.Contains("hamster") || s.Len() != 1 {
		t.Error("hamster must survive")
	}
}

func TestStringSetCaseSensitive(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("stringSTRING")

	if s.Contains("stringstring") || s.Contains("STRINGSTRING") {
		t.Error("keys are case sensitive")
	}

	if !s.Contains("stringSTRING") {
		t.Error("Contains(stringSTRING) must be true")
	}
}

func TestStringSetEmptyKey(t *testing.T) {
	t.Parallel()

	s := new(StringSet)

	if !s.Insert("") {
		t.Fatal("Insert of empty key must report a new key")
	}

	if !s.Contains("") {
		t.Error("Contains(\"\") must be true")
	}

	// the empty key is a prefix of every key
	if !s.PrefixContains("anything") {
		t.Error("PrefixContains must be true with a stored empty key")
	}

	if s.t.stats().nodes != 0 {
		t.Error("the empty key lives in the root, no nodes expected")
	}

	if !s.Erase("") || s.Contains("") || s.Len() != 0 {
		t.Error("Erase of the empty key failed")
	}
}

func TestStringSetBinaryKeys(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	keys := []string{"\x00", "\x00\x00", "\xff", "a\x00b", "\xc3\x28"}

	for _, k := range keys {
		s.Insert(k)
	}

	for _, k := range keys {
		if !s.Contains(k) {
			t.Errorf("Contains(%q) must be true", k)
		}
	}

	if !s.PrefixContains("\x00abc") {
		t.Error("PrefixContains(\\x00abc) must be true")
	}
}

func TestStringSetAllSorted(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	for _, k := range []string{"brewery::", "ham", "beer::", "hamster", "", "beer::bud"} {
		s.Insert(k)
	}

	got := slices.Collect(s.All())
	want := []string{"", "beer::", "beer::bud", "brewery::", "ham", "hamster"}

	if !slices.Equal(got, want) {
		t.Errorf("All, got %q, want %q", got, want)
	}

	got = slices.Collect(s.WithPrefix("beer"))
	want = []string{"beer::", "beer::bud"}

	if !slices.Equal(got, want) {
		t.Errorf("WithPrefix(beer), got %q, want %q", got, want)
	}

	if got := slices.Collect(s.WithPrefix("wine")); len(got) != 0 {
		t.Errorf("WithPrefix(wine), got %q, want nothing", got)
	}
}

func TestStringSetModifyDuringAll(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	for _, k := range []string{"a", "b", "c"} {
		s.Insert(k)
	}

	// iteration works on a snapshot, no deadlock
	for k := range s.All() {
		s.Erase(k)
		s.Insert(k + k)
	}

	got := slices.Collect(s.All())
	if want := []string{"aa", "bb", "cc"}; !slices.Equal(got, want) {
		t.Errorf("All, got %q, want %q", got, want)
	}
}

func TestSetRunes(t *testing.T) {
	t.Parallel()

	s := new(Set[rune])
	s.Insert([]rune("日本"))
	s.Insert([]rune("日本語"))
	s.Insert([]rune("€"))

	if !s.Contains([]rune("日本語")) {
		t.Error("Contains(日本語) must be true")
	}

	if s.Contains([]rune("日")) {
		t.Error("Contains(日) must be false")
	}

	if !s.PrefixContains([]rune("日本人")) {
		t.Error("PrefixContains(日本人) must be true")
	}

	// one node per rune, not per byte
	if got := s.t.stats(); got.nodes != 4 || got.mapped == 0 {
		t.Errorf("stats, got %+v, want 4 nodes in maps", got)
	}

	if !s.Erase([]rune("日本")) || s.Len() != 2 {
		t.Error("Erase(日本) failed")
	}

	if !s.Contains([]rune("日本語")) {
		t.Error("日本語 must survive")
	}
}

func TestSetInts(t *testing.T) {
	t.Parallel()

	s := new(Set[int])
	s.Insert([]int{1, 2, 3})
	s.Insert([]int{1, 2})
	s.Insert(nil)

	if s.Len() != 3 {
		t.Errorf("Len, got %d, want 3", s.Len())
	}

	if !s.Contains([]int{}) {
		t.Error("the empty key is stored")
	}

	var n int
	for key := range s.All() {
		if !s.Contains(key) {
			t.Errorf("All yields %v, not contained", key)
		}
		n++
	}

	if n != 3 {
		t.Errorf("All, got %d keys, want 3", n)
	}
}

// pathNodes returns the nodes on the path of key.
func pathNodes(s *StringSet, key string) []*node[byte, struct{}] {
	var result []*node[byte, struct{}]

	n := &s.t.root
	for i := range len(key) {
		kid, ok := n.getChild(key[i])
		if !ok {
			break
		}
		result = append(result, kid)
		n = kid
	}
	return result
}

func TestStringSetErasePrefixKeepsPath(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("string")
	s.Insert("stringSTRING")

	before := pathNodes(s, "stringSTRING")

	if !s.Erase("string") {
		t.Fatal("Erase(string) must be true")
	}

	if s.Contains("string") || !s.Contains("stringSTRING") {
		t.Error("string must be gone, stringSTRING must survive")
	}

	// same node identities along the path
	if after := pathNodes(s, "stringSTRING"); !slices.Equal(before, after) || len(after) != 12 {
		t.Error("no node on the stringSTRING path may be removed")
	}
}

func TestStringSetEraseString(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	s.Insert("string")

	before := s.t.dumpString(quoteBytes)

	if s.Erase("string1") {
		t.Error("Erase(string1) must be false")
	}

	if after := s.t.dumpString(quoteBytes); after != before {
		t.Errorf("absent erase changed the structure:\n%s\n%s", before, after)
	}

	if !s.Erase("string") || s.t.root.hasChildren() {
		t.Error("after Erase(string) the root must be childless")
	}
}
