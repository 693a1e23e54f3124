package httpadapter

import "github.com/prometheus/client_golang/prometheus"

var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sudoku",
		Subsystem: "api",
		Name:      "operations_total",
		Help:      "API operations by route and outcome.",
	}, []string{"route", "outcome"})

	solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sudoku",
		Name:      "solve_duration_seconds",
		Help:      "Wall time of solve operations by strategy.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})
)

func init() {
	prometheus.MustRegister(opsTotal, solveDuration)
}
