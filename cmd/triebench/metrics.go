// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "triebench_op_duration_seconds",
	Help:    "Latency of a single trie operation, by benchmark phase",
	Buckets: prometheus.ExponentialBucketsRange(0.00000001, 0.001, 20),
}, []string{"op"})

var opCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "triebench_ops_total",
	Help: "Number of measured trie operations, by benchmark phase",
}, []string{"op"})

// observe the samples of all phases, after the run
// to keep the metrics out of the measured loops.
func observe(phases []phase) {
	for _, p := range phases {
		hist := opDuration.WithLabelValues(p.name)
		for _, d := range p.samples {
			hist.Observe(d.Seconds())
		}
		opCount.WithLabelValues(p.name).Add(float64(len(p.samples)))
	}
}

// runMetrics serves the prometheus registry on /metrics,
// the returned func stops the server.
func runMetrics(logger *slog.Logger, listen string) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "listen", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start metrics endpoint", "err", err)
			// NOTE: not halting the benchmark here
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("failed to stop metrics endpoint", "err", err)
		}
	}
}
