// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_calculations_total",
			Help: "Total number of affordability calculations by outcome",
		},
		[]string{"status"},
	)

	CalculationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_calculations_failed_total",
			Help: "Total number of failed calculation requests",
		},
		[]string{"error_code"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "calculator_calculation_duration_seconds",
			Help: "Duration of calculation request processing in seconds",
		},
		[]string{"outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "calculator_upstream_request_duration_seconds",
			Help: "Duration of upstream service calls in seconds",
		},
		[]string{"service"},
	)

	ProfileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_profile_cache_total",
			Help: "Financial profile cache lookups by result",
		},
		[]string{"result"},
	)
)
