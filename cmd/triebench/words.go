// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var errNoWords = errors.New("no words")

// loadWords returns the deduplicated words of the configured source.
func (c Config) loadWords() ([]string, error) {
	if c.Synthetic {
		return generateWords(c.Seed, c.Count)
	}
	return readWordsFile(c.WordsFile, c.Count)
}

// readWordsFile reads up to limit distinct words, one per line.
// Files ending with .gz are decompressed on the fly.
func readWordsFile(path string, limit int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		rgz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress word list: %w", err)
		}
		defer rgz.Close()
		r = rgz
	}

	return readWords(r, limit)
}

// readWords reads up to limit distinct words, one per line,
// surrounding whitespace is trimmed and empty lines are skipped.
func readWords(r io.Reader, limit int) ([]string, error) {
	seen := make(map[string]bool)
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(words) < limit {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	if len(words) == 0 {
		return nil, errNoWords
	}

	return words, nil
}

// generateWords returns n distinct synthetic words. The same seed
// gives the same words, seed 0 is random.
func generateWords(seed int64, n int) ([]string, error) {
	faker := gofakeit.New(seed)

	gens := []func() string{
		faker.Word,
		faker.Noun,
		faker.Username,
		faker.DomainName,
		func() string { return faker.Adjective() + "-" + faker.Noun() },
		func() string { return faker.Word() + "::" + faker.Word() },
	}

	seen := make(map[string]bool, n)
	words := make([]string, 0, n)

	// the generators repeat themselves, give up at some point
	for attempts := 0; len(words) < n; attempts++ {
		if attempts > 100*n {
			return nil, fmt.Errorf("failed to generate %d distinct words, got %d", n, len(words))
		}

		word := gens[faker.IntRange(0, len(gens)-1)]()
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	return words, nil
}

// writeWords writes the words, one per line.
func writeWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// shuffled returns a shuffled copy of words, the same seed
// gives the same order.
func shuffled(words []string, seed uint64) []string {
	prng := rand.New(rand.NewPCG(seed, seed))

	result := slices.Clone(words)
	prng.Shuffle(len(result), func(i, j int) { result[i], result[j] = result[j], result[i] })

	return result
}
