// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge adapts fmindex to external collaborator systems:
// metrics, caching, persistence, and decompression. None of these are
// part of the core index; fmindex never imports this package.
package bridge

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-query latency and frequency for a running
// fmindex.Index, using Prometheus collectors rather than the
// probabilistic sketches (HyperLogLog, DDSketch, Count-Min Sketch) a
// dedicated analytics library would use.
type Metrics struct {
	total       prometheus.Counter
	latency     prometheus.Histogram
	patternFreq *prometheus.CounterVec
}

// NewMetrics builds a Metrics collector and registers it with reg. reg
// may be nil, in which case the collectors are left unregistered and the
// caller may register them itself.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		total: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fmindex_search_queries_total",
			Help: "Total number of search queries executed.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fmindex_search_latency_seconds",
			Help:    "Search query latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		patternFreq: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fmindex_search_pattern_total",
			Help: "Query count keyed by a truncated pattern digest.",
		}, []string{"pattern_digest"}),
	}
	if reg != nil {
		reg.MustRegister(m.total, m.latency, m.patternFreq)
	}
	return m
}

// RecordQuery records one executed query's pattern and latency.
func (m *Metrics) RecordQuery(pattern []byte, latencySeconds float64) {
	m.total.Inc()
	m.latency.Observe(latencySeconds)
	m.patternFreq.WithLabelValues(patternDigest(pattern)).Inc()
}

// patternDigest truncates a SHA-256 digest of pattern to 16 hex
// characters: a fixed-length label whatever the pattern's length, with
// collisions unlikely in practice. Each distinct pattern still gets its
// own CounterVec series.
func patternDigest(pattern []byte) string {
	sum := sha256.Sum256(pattern)
	return hex.EncodeToString(sum[:8])
}
