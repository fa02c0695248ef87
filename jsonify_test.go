// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package keytrie

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONEmpty(t *testing.T) {
	t.Parallel()

	for _, v := range []json.Marshaler{new(StringMap[int]), new(StringSet)} {
		got, err := v.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}

		if string(got) != "[]" {
			t.Errorf("MarshalJSON of empty trie, got %s, want []", got)
		}
	}
}

func TestJSONStringMap(t *testing.T) {
	t.Parallel()

	m := new(StringMap[int])
	m.Insert("hamster", 2)
	m.Insert("ham", 1)
	m.Insert("beer", 3)

	want := []ListElement[int]{
		{Key: "beer", Value: 3},
		{Key: "ham", Value: 1, Subs: []ListElement[int]{
			{Key: "hamster", Value: 2},
		}},
	}

	if diff := cmp.Diff(want, m.DumpList()); diff != "" {
		t.Errorf("DumpList mismatch (-want +got):\n%s", diff)
	}

	got, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	wantJSON := `[{"key":"beer","value":3},{"key":"ham","value":1,"subs":[{"key":"hamster","value":2}]}]`
	if string(got) != wantJSON {
		t.Errorf("MarshalJSON, got %s, want %s", got, wantJSON)
	}

	// round trip into the exported types
	var back []ListElement[int]
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONStringSet(t *testing.T) {
	t.Parallel()

	s := new(StringSet)
	for _, k := range []string{"beer::", "beer::bud", "brewery::"} {
		s.Insert(k)
	}

	want := []KeyElement{
		{Key: "beer::", Subs: []KeyElement{{Key: "beer::bud"}}},
		{Key: "brewery::"},
	}

	if diff := cmp.Diff(want, s.DumpList()); diff != "" {
		t.Errorf("DumpList mismatch (-want +got):\n%s", diff)
	}

	got, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	wantJSON := `[{"key":"beer::","subs":[{"key":"beer::bud"}]},{"key":"brewery::"}]`
	if string(got) != wantJSON {
		t.Errorf("MarshalJSON, got %s, want %s", got, wantJSON)
	}
}
