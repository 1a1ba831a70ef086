package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return m, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter(MetricStatementParsed, nil)
	m.IncrementCounter(MetricStatementParsed, nil)
	m.IncrementCounter(MetricStatementRejected, map[string]string{"code": "INGEST_004"})
	m.IncrementCounter(MetricCategorizationSkipped, map[string]string{"reason": SkipReasonCircuitOpen})
	m.IncrementCounter(MetricStoreColumnStripped, map[string]string{"column": "category_confidence"})
	m.IncrementCounter(MetricGoalRecomputeFailed, nil)
	m.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.statementsTotal.WithLabelValues("parsed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statementsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statementRejections.WithLabelValues("INGEST_004")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.categorizationTotal.WithLabelValues("skipped", SkipReasonCircuitOpen)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeColumnsStripped.WithLabelValues("category_confidence")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.goalRecomputeFailures))
}

func TestPrometheusMetrics_GaugesAndHistograms(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordGauge(MetricTotalIncome, 3000.25, nil)
	m.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": "classifier"})
	m.RecordGauge(MetricBatchSize, 40, nil)
	m.RecordProcessingTime(MetricIngestionDuration, 120*time.Millisecond)

	assert.Equal(t, 3000.25, testutil.ToFloat64(m.totalIncome))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("classifier")))

	count, err := testutil.GatherAndCount(reg, "ingestion_duration_milliseconds", "ingestion_batch_size")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		newTestMetrics(t)
		newTestMetrics(t)
	})
}
