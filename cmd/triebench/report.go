// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type reportFormat int

const (
	formatTable reportFormat = iota
	formatMarkdown
)

func parseFormat(s string) (reportFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return formatTable, nil
	case "markdown", "md":
		return formatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown report format %q, want table or markdown", s)
	}
}

// micros formats d in µs with three decimals.
func micros(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Microsecond))
}

// renderReport prints one row per phase, the histograms
// of all phases share the same range.
func renderReport(w io.Writer, phases []phase, format reportFormat) error {
	stats := make([]Stats, 0, len(phases))
	for _, p := range phases {
		stats = append(stats, computeStats(p.name, p.samples))
	}

	lo, hi := sparkRange(stats)

	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)

	outputTable.AppendHeader(table.Row{"Phase", "Samples", "Median", "5th", "95th", "99th", "Mean", "Std Dev", "Histogram of samples"})
	for _, s := range stats {
		outputTable.AppendRow(table.Row{
			s.Name,
			s.Samples,
			micros(s.Median),
			micros(s.P5),
			micros(s.P95),
			micros(s.P99),
			micros(s.Mean),
			micros(s.StdDev),
			sparkline(histogram(s.sorted, lo, hi)),
		})
	}

	outputTable.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	caption := fmt.Sprintf("latencies in µs, histogram range %s µs .. %s µs", micros(lo), micros(hi))

	switch format {
	case formatMarkdown:
		outputTable.RenderMarkdown()
		_, err := fmt.Fprintf(w, "\n%s\n", caption)
		return err
	default:
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetCaption(caption)
		outputTable.Render()
		return nil
	}
}
