package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valid_validations_total",
			Help: "Total number of delivered validation results",
		},
		[]string{"strategy", "status"}, // status: valid or not_valid
	)

	validationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "valid_validation_duration_seconds",
			Help:    "Time from dispatch to delivery of a validation result",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"strategy"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valid_failures_total",
			Help: "Total number of validations that ended without a result",
		},
		[]string{"strategy", "reason"}, // reason: contract or undelivered
	)

	bulkRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valid_bulk_runs_total",
			Help: "Total number of completed bulk validations",
		},
		[]string{"status"}, // status: all_valid or at_least_one_not_valid
	)

	observerUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "valid_observer_updates_total",
			Help: "Total number of observer notifications that changed the aggregate",
		},
	)
)

const (
	reasonContract    = "contract"
	reasonUndelivered = "undelivered"
)
