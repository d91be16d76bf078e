package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Decompositions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eigenlab_decompositions_total",
			Help: "Total number of eigendecompositions computed",
		},
		[]string{"dimension"},
	)

	Transforms = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eigenlab_transforms_total",
			Help: "Total number of vector transformations computed",
		},
	)

	AlignmentChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eigenlab_alignment_checks_total",
			Help: "Total number of eigenvector alignment checks",
		},
		[]string{"aligned"},
	)

	ComputationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eigenlab_computation_errors_total",
			Help: "Total number of failed computations",
		},
		[]string{"operation"},
	)

	ComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eigenlab_computation_duration_seconds",
			Help:    "Time taken by numerical operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
