package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricStatementParsed       = "statement.parsed"
	MetricStatementRejected     = "statement.rejected"
	MetricCategorizationDone    = "categorization.completed"
	MetricCategorizationSkipped = "categorization.skipped"
	MetricCategoryRegistryError = "category.registry.failed"
	MetricStoreWriteFailed      = "store.write.failed"
	MetricStoreColumnStripped   = "store.column.stripped"
	MetricIncomeMonthFailed     = "income.month.failed"
	MetricGoalRecomputeFailed   = "goal.recompute.failed"
	MetricIngestionDuration     = "ingestion"
	MetricClassifierDuration    = "classifier.predict"
	MetricBatchSize             = "ingestion.batch_size"
	MetricTotalIncome           = "income.total"
	MetricCircuitBreakerState   = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	statementsTotal          *prometheus.CounterVec
	statementRejections      *prometheus.CounterVec
	categorizationTotal      *prometheus.CounterVec
	categoryRegistryFailures prometheus.Counter
	storeWriteFailures       *prometheus.CounterVec
	storeColumnsStripped     *prometheus.CounterVec
	incomeMonthFailures      prometheus.Counter
	goalRecomputeFailures    prometheus.Counter
	ingestionDuration        prometheus.Histogram
	classifierDuration       prometheus.Histogram
	batchSize                prometheus.Histogram
	totalIncome              prometheus.Gauge
	circuitBreakerState      *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the pipeline collectors on reg. A nil reg
// means the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		statementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_processed_total",
				Help: "Total number of statement files processed",
			},
			[]string{"status"},
		),
		statementRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rejections_total",
				Help: "Total number of rejected statement files by error code",
			},
			[]string{"code"},
		),
		categorizationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorization_batches_total",
				Help: "Total number of categorization batches by outcome",
			},
			[]string{"outcome", "reason"},
		),
		categoryRegistryFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_registry_failures_total",
				Help: "Total number of failed category registry lookups",
			},
		),
		storeWriteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_write_failures_total",
				Help: "Total number of failed transaction batch writes",
			},
			[]string{"code"},
		),
		storeColumnsStripped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_columns_stripped_total",
				Help: "Total number of batch retries without a rejected column",
			},
			[]string{"column"},
		),
		incomeMonthFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "income_month_failures_total",
				Help: "Total number of monthly income buckets that failed to update",
			},
		),
		goalRecomputeFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "goal_recompute_failures_total",
				Help: "Total number of goals whose saved amount failed to update",
			},
		),
		ingestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingestion_duration_milliseconds",
				Help:    "Statement ingestion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		classifierDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classifier_prediction_duration_milliseconds",
				Help:    "Classifier batch prediction duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingestion_batch_size",
				Help:    "Number of transactions parsed per statement",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		totalIncome: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "income_total",
				Help: "Sum of all stored monthly income buckets",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricStatementParsed:
		m.statementsTotal.WithLabelValues("parsed").Inc()
	case MetricStatementRejected:
		m.statementsTotal.WithLabelValues("rejected").Inc()
		if code := tags["code"]; code != "" {
			m.statementRejections.WithLabelValues(code).Inc()
		}
	case MetricCategorizationDone:
		m.categorizationTotal.WithLabelValues("completed", "").Inc()
	case MetricCategorizationSkipped:
		m.categorizationTotal.WithLabelValues("skipped", tags["reason"]).Inc()
	case MetricCategoryRegistryError:
		m.categoryRegistryFailures.Inc()
	case MetricStoreWriteFailed:
		m.storeWriteFailures.WithLabelValues(tags["code"]).Inc()
	case MetricStoreColumnStripped:
		m.storeColumnsStripped.WithLabelValues(tags["column"]).Inc()
	case MetricIncomeMonthFailed:
		m.incomeMonthFailures.Inc()
	case MetricGoalRecomputeFailed:
		m.goalRecomputeFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricIngestionDuration:
		m.ingestionDuration.Observe(float64(duration.Milliseconds()))
	case MetricClassifierDuration:
		m.classifierDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBatchSize:
		m.batchSize.Observe(value)
	case MetricTotalIncome:
		m.totalIncome.Set(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
