package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	matchesTotal         *prometheus.CounterVec
	importDuration       prometheus.Histogram
	statementsTotal      *prometheus.CounterVec
	pendingReviews       prometheus.Gauge
	reviewDecisionsTotal *prometheus.CounterVec
	transactionsCreated  prometheus.Counter
	fundsCreated         prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		matchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_matches_total",
				Help: "Total number of bank rows matched, by confidence tier",
			},
			[]string{"tier"},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_import_duration_milliseconds",
				Help:    "Statement import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		statementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_imports_total",
				Help: "Total number of statement imports",
			},
			[]string{"status"},
		),
		pendingReviews: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_pending_reviews",
				Help: "Matched items currently awaiting reviewer decision",
			},
		),
		reviewDecisionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_review_decisions_total",
				Help: "Total number of reviewer decisions",
			},
			[]string{"decision"},
		),
		transactionsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of ledger transactions created",
			},
		),
		fundsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "funds_created_total",
				Help: "Total number of funds created",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "reconciliation.match":
		if tier := tags["tier"]; tier != "" {
			m.matchesTotal.WithLabelValues(tier).Inc()
		}
	case "statement.import":
		if status := tags["status"]; status != "" {
			m.statementsTotal.WithLabelValues(status).Inc()
		}
	case "reconciliation.review":
		if decision := tags["decision"]; decision != "" {
			m.reviewDecisionsTotal.WithLabelValues(decision).Inc()
		}
	case "ledger.transaction.created":
		m.transactionsCreated.Inc()
	case "fund.created":
		m.fundsCreated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement.import":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "reconciliation.pending_reviews":
		m.pendingReviews.Set(value)
	}
}
