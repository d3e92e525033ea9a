package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Decision outcomes by status and cited policy rule
	DecisionOutcome *prometheus.CounterVec

	// Overall evaluation latency, advisory call included
	EvaluateLatency prometheus.Histogram

	// Latency of advisory risk assessments
	AdvisoryLatency prometheus.Histogram
}

// New creates a Metrics instance with all decision module metrics registered.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_decision_outcomes_total",
			Help: "Total decision outcomes by status and violated policy rule",
		}, []string{"status", "policy_violated"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "guardian_decision_evaluate_duration_seconds",
			Help:    "Duration of full decision evaluation including advisory assessment",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		AdvisoryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "guardian_decision_advisory_duration_seconds",
			Help:    "Duration of external merchant-risk advisory assessments",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOutcome records a decision outcome. An empty violation is
// recorded as "none" to keep the label space clean.
func (m *Metrics) IncrementOutcome(status, policyViolated string) {
	if m != nil {
		if policyViolated == "" {
			policyViolated = "none"
		}
		m.DecisionOutcome.WithLabelValues(status, policyViolated).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveAdvisoryLatency records the duration of one advisory assessment.
func (m *Metrics) ObserveAdvisoryLatency(d time.Duration) {
	if m != nil {
		m.AdvisoryLatency.Observe(d.Seconds())
	}
}
