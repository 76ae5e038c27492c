package reconcile

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors of the reconciler.
type Metrics struct {
	AttributeUpdates *prometheus.CounterVec
	Errors           *prometheus.CounterVec
	Duration         *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AttributeUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_manager_attribute_updates_total",
				Help: "Attribute settings written to the search engine by index and kind.",
			},
			[]string{"index", "kind"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_manager_reconcile_errors_total",
				Help: "Failed index reconciliations by index.",
			},
			[]string{"index"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_manager_reconcile_duration_seconds",
				Help:    "Duration of a single index reconciliation in seconds.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"index"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.AttributeUpdates, m.Errors, m.Duration)
	}

	return m
}
