// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package bridge

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MetricsSink persists per-query timing and result-count history as a
// time series, keyed by timestamp, in a pure-Go (cgo-free) SQLite
// database.
type MetricsSink struct {
	db *sql.DB
}

// OpenMetricsSink opens (creating if necessary) a SQLite database at
// path and prepares its query-metrics table.
func OpenMetricsSink(path string) (*MetricsSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS query_metrics (
	timestamp_ms INTEGER NOT NULL,
	result_count INTEGER NOT NULL,
	latency_us   REAL NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bridge: preparing query_metrics table: %w", err)
	}
	return &MetricsSink{db: db}, nil
}

// RecordQuery records one query's timestamp, result count, and
// latency.
func (s *MetricsSink) RecordQuery(timestampMs int64, resultCount int, latencyUs float64) error {
	_, err := s.db.Exec(
		`INSERT INTO query_metrics (timestamp_ms, result_count, latency_us) VALUES (?, ?, ?)`,
		timestampMs, resultCount, latencyUs,
	)
	return err
}

// QueryLatency returns (timestamp, latency) pairs recorded in
// [start, end].
func (s *MetricsSink) QueryLatency(start, end int64) ([]TimeSeriesPoint, error) {
	return s.scan(start, end, "latency_us")
}

// QueryResults returns (timestamp, result_count) pairs recorded in
// [start, end].
func (s *MetricsSink) QueryResults(start, end int64) ([]TimeSeriesPoint, error) {
	return s.scan(start, end, "result_count")
}

// TimeSeriesPoint is one sample of a MetricsSink time series.
type TimeSeriesPoint struct {
	TimestampMs int64
	Value       float64
}

func (s *MetricsSink) scan(start, end int64, column string) ([]TimeSeriesPoint, error) {
	query := fmt.Sprintf(
		`SELECT timestamp_ms, %s FROM query_metrics WHERE timestamp_ms BETWEEN ? AND ? ORDER BY timestamp_ms`,
		column,
	)
	rows, err := s.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TimeSeriesPoint
	for rows.Next() {
		var p TimeSeriesPoint
		if err := rows.Scan(&p.TimestampMs, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Flush closes the underlying database connection.
func (s *MetricsSink) Flush() error {
	return s.db.Close()
}
