package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_submissions_total",
			Help: "Total number of inquiry submissions by result",
		},
		[]string{"result"},
	)

	stepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inquiry_step_duration_seconds",
			Help:    "Duration of each submission step (store write, email sends) in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step", "result"},
	)
)

func RecordSubmission(result string) {
	submissionsTotal.WithLabelValues(result).Inc()
}

func ObserveStep(step string, err error, d time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	stepDuration.WithLabelValues(step, result).Observe(d.Seconds())
}
