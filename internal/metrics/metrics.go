package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SubmissionScored   = "scored"
	SubmissionConflict = "conflict"
	SubmissionNotFound = "not_found"
	SubmissionInvalid  = "invalid"
	SubmissionError    = "error"
)

var (
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testhub_submissions_total",
			Help: "Total number of test submissions by outcome",
		},
		[]string{"status"},
	)

	SubmissionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "testhub_submission_score",
			Help:    "Distribution of scores of accepted submissions",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	TestsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "testhub_tests_created_total",
			Help: "Total number of tests created",
		},
	)

	TestsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "testhub_tests_deleted_total",
			Help: "Total number of tests deleted",
		},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testhub_logins_total",
			Help: "Total number of logins, split by first-time and returning users",
		},
		[]string{"kind"}, // new, returning
	)
)
