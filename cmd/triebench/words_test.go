// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	assert := assert.New(t)

	input := "ham\n  hamster \n\nham\nbeer\nwine\n"

	words, err := readWords(strings.NewReader(input), 100)
	require.NoError(t, err)
	assert.Equal([]string{"ham", "hamster", "beer", "wine"}, words)

	words, err = readWords(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal([]string{"ham", "hamster"}, words)

	_, err = readWords(strings.NewReader("\n \n"), 100)
	assert.ErrorIs(err, errNoWords)
}

func TestReadWordsFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "words")
	require.NoError(t, os.WriteFile(plain, []byte("a\nb\nc\n"), 0o644))

	words, err := readWordsFile(plain, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, words)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write([]byte("x\ny\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	zipped := filepath.Join(dir, "words.gz")
	require.NoError(t, os.WriteFile(zipped, buf.Bytes(), 0o644))

	words, err = readWordsFile(zipped, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, words)

	_, err = readWordsFile(filepath.Join(dir, "missing"), 10)
	assert.Error(t, err)
}

func TestGenerateWords(t *testing.T) {
	assert := assert.New(t)

	words, err := generateWords(42, 500)
	require.NoError(t, err)
	assert.Len(words, 500)

	// distinct
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	assert.Len(slices.Compact(sorted), 500)

	// reproducible
	again, err := generateWords(42, 500)
	require.NoError(t, err)
	assert.Equal(words, again)
}

func TestWriteWords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeWords(&buf, []string{"ham", "beer"}))
	assert.Equal(t, "ham\nbeer\n", buf.String())
}

func TestShuffled(t *testing.T) {
	assert := assert.New(t)

	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	a := shuffled(words, 2)
	assert.ElementsMatch(words, a)
	assert.Equal(a, shuffled(words, 2))

	// input untouched
	assert.Equal([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, words)
}
