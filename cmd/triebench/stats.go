// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"slices"
	"strings"
	"time"
)

// number of bins and bar levels of the sparkline histogram
const (
	sparkBins   = 32
	sparkLevels = 8
)

// Stats are the latency statistics of a phase.
type Stats struct {
	Name    string
	Samples int
	Median  time.Duration
	P5      time.Duration
	P95     time.Duration
	P99     time.Duration
	Mean    time.Duration
	StdDev  time.Duration

	// sorted samples, input for the histogram
	sorted []time.Duration
}

// computeStats, the percentiles are nearest rank on the sorted samples.
func computeStats(name string, samples []time.Duration) Stats {
	s := Stats{Name: name, Samples: len(samples)}
	if len(samples) == 0 {
		return s
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	s.sorted = sorted

	n := len(sorted)
	s.Median = sorted[n*50/100]
	s.P5 = sorted[n*5/100]
	s.P95 = sorted[n*95/100]
	s.P99 = sorted[n*99/100]

	var sum float64
	for _, d := range sorted {
		sum += float64(d)
	}
	mean := sum / float64(n)
	s.Mean = time.Duration(mean)

	if n > 1 {
		var accum float64
		for _, d := range sorted {
			accum += (float64(d) - mean) * (float64(d) - mean)
		}
		s.StdDev = time.Duration(math.Sqrt(accum / float64(n-1)))
	}

	return s
}

// sparkRange is the common histogram range of all phases,
// from the smallest 5th to the largest 95th percentile.
func sparkRange(stats []Stats) (lo, hi time.Duration) {
	lo = time.Duration(math.MaxInt64)
	for _, s := range stats {
		if s.Samples == 0 {
			continue
		}
		lo = min(lo, s.P5)
		hi = max(hi, s.P95)
	}

	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// histogram counts the sorted samples in sparkBins equal bins over [lo, hi],
// samples outside the range are not counted.
func histogram(sorted []time.Duration, lo, hi time.Duration) []int {
	bins := make([]int, sparkBins)

	width := float64(hi-lo) / sparkBins
	for _, d := range sorted {
		if d < lo || d > hi {
			continue
		}

		idx := sparkBins - 1
		if width > 0 {
			idx = min(int(float64(d-lo)/width), sparkBins-1)
		}
		bins[idx]++
	}

	return bins
}

// sparkline renders the bins with the block elements ▁ to █,
// scaled between the smallest and the largest bin.
func sparkline(bins []int) string {
	if len(bins) == 0 {
		return ""
	}

	lo, hi := slices.Min(bins), slices.Max(bins)
	rng := hi - lo + 1

	var sb strings.Builder
	for _, h := range bins {
		level := ((h - lo + 1) * (sparkLevels - 1)) / rng
		sb.WriteRune('▁' + rune(level))
	}
	return sb.String()
}
