package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job run statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// JobRunsTotal counts the total number of scheduled job runs.
	// Labels: job, status (success, failure)
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of scheduled job runs by job and status",
		},
		[]string{"job", "status"},
	)

	// JobDurationSeconds measures the duration of job execution.
	// Buckets are tuned for short maintenance queries.
	JobDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of scheduled job execution in seconds",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"job"},
	)

	// JobLastSuccessTimestamp records the Unix timestamp of the last successful run.
	JobLastSuccessTimestamp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful job run",
		},
		[]string{"job"},
	)
)

func recordRun(job string, duration time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	JobRunsTotal.WithLabelValues(job, status).Inc()
	JobDurationSeconds.WithLabelValues(job).Observe(duration.Seconds())
	if err == nil {
		JobLastSuccessTimestamp.WithLabelValues(job).Set(float64(time.Now().Unix()))
	}
}
