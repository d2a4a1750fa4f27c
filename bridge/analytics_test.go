package bridge

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	for i := 0; i < 50; i++ {
		m.RecordQuery([]byte("hello"), 0.0001)
	}
	m.RecordQuery([]byte("world"), 0.0002)

	assert.InDelta(t, 51, testutil.ToFloat64(m.total), 1e-9)
}

func TestPatternDigestDeterministic(t *testing.T) {
	assert.Equal(t, patternDigest([]byte("hello")), patternDigest([]byte("hello")))
	assert.NotEqual(t, patternDigest([]byte("hello")), patternDigest([]byte("world")))
}
