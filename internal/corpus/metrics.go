package corpus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts injection outcomes. Labels: kind (the error kind, e.g.
// SubstWrongFormNNNNSError) and, for failures, reason (no_candidate,
// dictionary_rejected, ...).
type Metrics struct {
	injected *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewMetrics registers the corpus counters with reg. A nil reg creates
// unregistered counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		injected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "generrate",
			Subsystem: "corpus",
			Name:      "injected_total",
			Help:      "Sentences that received an error",
		}, []string{"kind"}),
		failed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "generrate",
			Subsystem: "corpus",
			Name:      "failed_total",
			Help:      "Sentences where no error could be created",
		}, []string{"kind", "reason"}),
	}
}

// Injected counts a sentence that received an error of kind.
func (m *Metrics) Injected(kind string) {
	if m != nil {
		m.injected.WithLabelValues(kind).Inc()
	}
}

// Failed counts a sentence where kind could not be created, by reason.
func (m *Metrics) Failed(kind, reason string) {
	if m != nil {
		m.failed.WithLabelValues(kind, reason).Inc()
	}
}
