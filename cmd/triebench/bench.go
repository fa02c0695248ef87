// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gaissmai/keytrie"
	"golang.org/x/sync/errgroup"
)

// Config of a benchmark run.
type Config struct {
	Logger        *slog.Logger
	WordsFile     string
	Count         int
	Synthetic     bool
	Seed          int64
	Readers       int
	MetricsListen string
}

func (c Config) validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Readers <= 0 {
		return fmt.Errorf("readers must be positive, got %d", c.Readers)
	}
	if !c.Synthetic && c.WordsFile == "" {
		return errors.New("need a word list or --synthetic")
	}
	return nil
}

// the fixed shuffle seeds of the phases
const (
	seedInsert uint64 = 0
	seedExists uint64 = 2
	seedErase  uint64 = 55
)

// the suffix appended to the words in the prefix phase
const probeSuffix = "::probe"

// phase is the name and the per operation latencies of a benchmark phase.
type phase struct {
	name    string
	samples []time.Duration
}

// runBench runs all phases on one map, in this order:
// insert, exists, prefix, erase and mixed.
func runBench(ctx context.Context, cfg Config, words []string) ([]phase, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := new(keytrie.StringMap[int])

	steps := []struct {
		name string
		fn   func(*keytrie.StringMap[int], []string) ([]time.Duration, error)
	}{
		{"insert", benchInsert},
		{"exists", benchExists},
		{"prefix", benchPrefix},
		{"erase", benchErase},
	}

	results := make([]phase, 0, len(steps)+1)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		samples, err := step.fn(m, words)
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", step.name, err)
		}
		logger.Debug("phase done", "phase", step.name, "samples", len(samples), "duration", time.Since(start))

		results = append(results, phase{name: step.name, samples: samples})
	}

	start := time.Now()
	samples, err := benchMixed(ctx, m, words, cfg.Readers)
	if err != nil {
		return nil, fmt.Errorf("phase mixed: %w", err)
	}
	logger.Debug("phase done", "phase", "mixed", "samples", len(samples), "duration", time.Since(start))

	return append(results, phase{name: "mixed", samples: samples}), nil
}

// benchInsert inserts every word with its index as value.
func benchInsert(m *keytrie.StringMap[int], words []string) ([]time.Duration, error) {
	samples := make([]time.Duration, 0, len(words))

	for i, word := range shuffled(words, seedInsert) {
		start := time.Now()
		m.Insert(word, i)
		samples = append(samples, time.Since(start))
	}

	if m.Len() != len(words) {
		return nil, fmt.Errorf("inserted %d words, map has %d", len(words), m.Len())
	}
	return samples, nil
}

// benchExists looks up every word, all must be found.
func benchExists(m *keytrie.StringMap[int], words []string) ([]time.Duration, error) {
	samples := make([]time.Duration, 0, len(words))

	for _, word := range shuffled(words, seedExists) {
		start := time.Now()
		h := m.Find(word)
		samples = append(samples, time.Since(start))

		if !h.Found() {
			return nil, fmt.Errorf("failed to find value %q", word)
		}
	}
	return samples, nil
}

// benchPrefix looks up the shortest stored prefix of every word plus a
// suffix, at least the word itself must be found.
func benchPrefix(m *keytrie.StringMap[int], words []string) ([]time.Duration, error) {
	samples := make([]time.Duration, 0, len(words))

	for _, word := range shuffled(words, seedExists) {
		probe := word + probeSuffix

		start := time.Now()
		h := m.PrefixFind(probe)
		samples = append(samples, time.Since(start))

		if !h.Found() {
			return nil, fmt.Errorf("failed to find a prefix of %q", probe)
		}
	}
	return samples, nil
}

// benchErase erases every word, the map must be empty afterwards.
func benchErase(m *keytrie.StringMap[int], words []string) ([]time.Duration, error) {
	samples := make([]time.Duration, 0, len(words))

	for _, word := range shuffled(words, seedErase) {
		start := time.Now()
		_, ok := m.Erase(word)
		samples = append(samples, time.Since(start))

		if !ok {
			return nil, fmt.Errorf("failed to erase %q", word)
		}
	}

	if n := m.Len(); n != 0 {
		return nil, fmt.Errorf("map not empty after erase, %d words left", n)
	}
	return samples, nil
}

// benchMixed measures lookups of concurrent readers while one writer
// inserts all words. Only the reader latencies are sampled.
func benchMixed(ctx context.Context, m *keytrie.StringMap[int], words []string, readers int) ([]time.Duration, error) {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for i, word := range shuffled(words, seedInsert) {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			m.Insert(word, i)
		}
		return nil
	})

	perReader := make([][]time.Duration, readers)
	for r := range readers {
		eg.Go(func() error {
			samples := make([]time.Duration, 0, len(words))

			for i, word := range shuffled(words, seedExists+uint64(r)) {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				start := time.Now()
				m.Find(word)
				samples = append(samples, time.Since(start))
			}

			perReader[r] = samples
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if m.Len() != len(words) {
		return nil, fmt.Errorf("inserted %d words, map has %d", len(words), m.Len())
	}

	var samples []time.Duration
	for _, s := range perReader {
		samples = append(samples, s...)
	}
	return samples, nil
}
