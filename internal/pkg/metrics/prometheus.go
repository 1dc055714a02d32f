package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alertforge",
			Subsystem: "generator",
			Name:      "runs_total",
			Help:      "Total number of declaration generation runs",
		},
	)

	declarationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "alertforge",
			Subsystem: "generator",
			Name:      "declarations_total",
			Help:      "Total number of alert declarations generated",
		},
		[]string{"category"},
	)

	unknownSelectorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "alertforge",
			Subsystem: "resolver",
			Name:      "unknown_selectors_total",
			Help:      "Total number of unknown alert selectors skipped",
		},
	)
)

// RecordRun counts one generation run.
func RecordRun() {
	generationRunsTotal.Inc()
}

// RecordDeclarations counts declarations generated for a category.
func RecordDeclarations(category string, n int) {
	declarationsGenerated.WithLabelValues(category).Add(float64(n))
}

// RecordUnknownSelector counts one skipped selector.
func RecordUnknownSelector() {
	unknownSelectorsTotal.Inc()
}
