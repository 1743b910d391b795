package risk

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector records evaluation outcomes for monitoring.
type MetricsCollector interface {
	RecordEvaluation(label string, flagCount int)
	RecordRuleTrigger(ruleID string)
	RecordError(operation, reason string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordEvaluation(string, int) {}
func (n *NoopMetricsCollector) RecordRuleTrigger(string)     {}
func (n *NoopMetricsCollector) RecordError(string, string)   {}

// PrometheusCollector exports evaluation metrics on the default registry.
type PrometheusCollector struct {
	evaluations  *prometheus.CounterVec
	flagCounts   prometheus.Histogram
	ruleTriggers *prometheus.CounterVec
	errors       *prometheus.CounterVec
}

// NewPrometheusCollector registers the collectors on the default prometheus
// registry; construct it once per process.
func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fraudlens_evaluations_total",
			Help: "Risk evaluations by resulting risk label.",
		}, []string{"risk_label"}),
		flagCounts: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraudlens_flag_count",
			Help:    "Number of red flags triggered per evaluation.",
			Buckets: []float64{0, 1, 2, 3, 4},
		}),
		ruleTriggers: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fraudlens_rule_triggers_total",
			Help: "Rule trigger counts by rule ID.",
		}, []string{"rule"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fraudlens_errors_total",
			Help: "Evaluation errors by operation and reason.",
		}, []string{"operation", "reason"}),
	}
}

func (p *PrometheusCollector) RecordEvaluation(label string, flagCount int) {
	p.evaluations.WithLabelValues(label).Inc()
	p.flagCounts.Observe(float64(flagCount))
}

func (p *PrometheusCollector) RecordRuleTrigger(ruleID string) {
	p.ruleTriggers.WithLabelValues(ruleID).Inc()
}

func (p *PrometheusCollector) RecordError(operation, reason string) {
	p.errors.WithLabelValues(operation, reason).Inc()
}
