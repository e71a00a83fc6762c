package impact

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "impact_trajectory_runs_total",
			Help: "Total number of trajectory runs by outcome.",
		},
		[]string{"outcome"},
	)

	stepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "impact_integration_steps_total",
			Help: "Total number of integration steps taken.",
		},
	)

	runDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "impact_trajectory_run_seconds",
			Help:    "Wall-clock duration of trajectory runs.",
			Buckets: prometheus.DefBuckets,
		},
	)

	effectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "impact_effects_computations_total",
			Help: "Total number of impact effects pipeline evaluations.",
		},
	)
)

func init() {
	prometheus.MustRegister(runsTotal)
	prometheus.MustRegister(stepsTotal)
	prometheus.MustRegister(runDuration)
	prometheus.MustRegister(effectsTotal)
}

// MetricsHandler returns the Prometheus metrics HTTP handler for hosts which
// expose one; the core itself serves nothing.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
