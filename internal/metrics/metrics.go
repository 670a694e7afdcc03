package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NASAAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activesky_nasa_api_calls_total",
			Help: "Total NASA POWER API calls",
		},
		[]string{"status"},
	)

	NASAAPILatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "activesky_nasa_api_latency_seconds",
			Help:    "NASA POWER API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ReportsComputedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activesky_reports_computed_total",
			Help: "Total analytics reports computed",
		},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activesky_report_cache_hits_total",
			Help: "Total report cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activesky_report_cache_misses_total",
			Help: "Total report cache misses",
		},
	)

	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activesky_activity_evaluations_total",
			Help: "Total activity evaluations by outcome",
		},
		[]string{"activity", "outcome"},
	)
)
